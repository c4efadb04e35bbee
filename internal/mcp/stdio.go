package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/petstore/petstore-mcp-server/internal/protocol"
)

// RunStdio serves MCP JSON-RPC over a newline-delimited stream, one request
// per message. It returns nil on EOF. Notifications (methods under
// "notifications/") are consumed without a response, per JSON-RPC.
func RunStdio(ctx context.Context, server *Server, in io.Reader, out io.Writer) error {
	dec := json.NewDecoder(in)
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var req protocol.Request
		if err := dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			// The decoder cannot resync after malformed input; report and stop.
			_ = enc.Encode(WriteError(nil, -32700, "parse error", err))
			return err
		}

		if strings.HasPrefix(req.Method, "notifications/") {
			continue
		}

		resp, err := server.Handle(ctx, req)
		if err != nil {
			resp = WriteError(req.ID, -32603, "internal error", err)
		}
		if err := enc.Encode(resp); err != nil {
			return err
		}
	}
}
