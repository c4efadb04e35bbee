package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/petstore/petstore-mcp-server/internal/protocol"
)

// Tool defines the behavior of a single MCP tool. Invoke errors are
// boundary faults (bad arguments, reshaping failures); they never reach the
// transport as structural errors.
type Tool interface {
	Descriptor() protocol.ToolDescriptor
	Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, error)
}

// Toolbox stores and dispatches tools by name.
type Toolbox struct {
	tools map[string]Tool
	order []string
}

// NewToolbox constructs a toolbox with the provided tools. Registration
// order is the order tools/list advertises.
func NewToolbox(tools ...Tool) *Toolbox {
	m := make(map[string]Tool, len(tools))
	order := make([]string, 0, len(tools))
	for _, t := range tools {
		desc := t.Descriptor()
		if _, dup := m[desc.Name]; !dup {
			order = append(order, desc.Name)
		}
		m[desc.Name] = t
	}
	return &Toolbox{tools: m, order: order}
}

// Describe returns all tool descriptors in registration order.
func (tb *Toolbox) Describe() []protocol.ToolDescriptor {
	list := make([]protocol.ToolDescriptor, 0, len(tb.order))
	for _, name := range tb.order {
		list = append(list, tb.tools[name].Descriptor())
	}
	return list
}

// Call invokes a named tool. Every per-call fault is rendered as text: an
// unknown name, an invocation error, and a panic all come back as a normal
// result, so one bad call never takes down the process or leaks a
// structural error to the transport.
func (tb *Toolbox) Call(ctx context.Context, name string, args json.RawMessage) (result protocol.CallResult) {
	tool, ok := tb.tools[name]
	if !ok {
		return protocol.TextContent(fmt.Sprintf("Unknown tool: %s", name))
	}

	defer func() {
		if r := recover(); r != nil {
			result = protocol.TextContent(fmt.Sprintf("Error: %v", r))
		}
	}()

	res, err := tool.Invoke(ctx, args)
	if err != nil {
		return protocol.TextContent(fmt.Sprintf("Error: %s", err.Error()))
	}
	return res
}
