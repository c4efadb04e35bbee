package petstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/petstore/petstore-mcp-server/internal/config"
)

// basePath is the versioned API prefix shared by every endpoint.
const basePath = "/api/v3"

// Client issues one HTTP request per logical Petstore operation.
//
// Every failure mode of the underlying request collapses to absence: a 404,
// any other non-2xx status, a transport fault, and a malformed body all
// yield "no data" plus a log entry. Callers see presence or absence, nothing
// else. The one exception to one-call-per-operation is the anonymous-access
// policy on the pet read operations, which short-circuits without any HTTP
// contact.
type Client struct {
	cfg  config.Config
	http *http.Client
	log  *logrus.Entry
}

// NewClient builds a client against the configured base URL.
func NewClient(cfg config.Config, log *logrus.Entry) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log,
	}
}

// do performs a single request and reports whether a payload came back.
// A bearer header is attached only when token is non-empty.
func (c *Client) do(ctx context.Context, method, endpoint, token string, query url.Values, body any) (json.RawMessage, bool) {
	endpointURL := c.cfg.BaseURL + basePath + endpoint
	if len(query) > 0 {
		endpointURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			c.log.WithError(err).WithField("endpoint", endpoint).Warn("encode request body")
			return nil, false
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpointURL, reader)
	if err != nil {
		c.log.WithError(err).WithField("endpoint", endpoint).Warn("build request")
		return nil, false
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithError(err).WithFields(logrus.Fields{"method": method, "endpoint": endpoint}).Warn("request error")
		return nil, false
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		var payload json.RawMessage
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			c.log.WithError(err).WithField("endpoint", endpoint).Warn("decode response")
			return nil, false
		}
		return payload, true
	case resp.StatusCode == http.StatusNotFound:
		return nil, false
	default:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.WithFields(logrus.Fields{
			"method":   method,
			"endpoint": endpoint,
			"status":   resp.StatusCode,
			"body":     string(snippet),
		}).Warn("api request failed")
		return nil, false
	}
}

// SearchPetsByStatus lists pets with the given availability status.
// Anonymous calls yield an empty list without touching the API.
func (c *Client) SearchPetsByStatus(ctx context.Context, status, token string) []Pet {
	if token == "" {
		return []Pet{}
	}
	raw, ok := c.do(ctx, http.MethodGet, "/pet/findByStatus", token, url.Values{"status": {status}}, nil)
	if !ok {
		return []Pet{}
	}
	return c.decodePets(raw)
}

// SearchPetsByTags lists pets carrying any of the given tags. Same
// anonymous-empty policy as SearchPetsByStatus.
func (c *Client) SearchPetsByTags(ctx context.Context, tags []string, token string) []Pet {
	if token == "" {
		return []Pet{}
	}
	raw, ok := c.do(ctx, http.MethodGet, "/pet/findByTags", token, url.Values{"tags": {strings.Join(tags, ",")}}, nil)
	if !ok {
		return []Pet{}
	}
	return c.decodePets(raw)
}

// GetPetByID fetches a single pet. Anonymous calls yield absence.
func (c *Client) GetPetByID(ctx context.Context, petID int64, token string) *Pet {
	if token == "" {
		return nil
	}
	raw, ok := c.do(ctx, http.MethodGet, fmt.Sprintf("/pet/%d", petID), token, nil, nil)
	if !ok {
		return nil
	}
	var pet Pet
	if err := json.Unmarshal(raw, &pet); err != nil {
		c.log.WithError(err).Warn("decode pet")
		return nil
	}
	return &pet
}

// GetStoreInventory returns pet counts keyed by status.
func (c *Client) GetStoreInventory(ctx context.Context, token string) map[string]int {
	raw, ok := c.do(ctx, http.MethodGet, "/store/inventory", token, nil, nil)
	if !ok {
		return nil
	}
	var inventory map[string]int
	if err := json.Unmarshal(raw, &inventory); err != nil {
		c.log.WithError(err).Warn("decode inventory")
		return nil
	}
	return inventory
}

// GetOrderByID fetches a single order.
func (c *Client) GetOrderByID(ctx context.Context, orderID int64, token string) *Order {
	raw, ok := c.do(ctx, http.MethodGet, fmt.Sprintf("/store/order/%d", orderID), token, nil, nil)
	if !ok {
		return nil
	}
	return c.decodeOrder(raw)
}

// PlaceOrder places a quantity-1 order for a pet. shipDate is included in
// the body only when non-empty.
func (c *Client) PlaceOrder(ctx context.Context, petID int64, token, shipDate string) *Order {
	body := newOrder{
		PetID:    petID,
		Quantity: 1,
		ShipDate: shipDate,
		Status:   "placed",
		Complete: false,
	}
	raw, ok := c.do(ctx, http.MethodPost, "/store/order", token, nil, body)
	if !ok {
		return nil
	}
	return c.decodeOrder(raw)
}

// LoginUser exchanges credentials for a token payload.
func (c *Client) LoginUser(ctx context.Context, username, password string) *LoginResult {
	raw, ok := c.do(ctx, http.MethodGet, "/user/login", "", url.Values{"username": {username}, "password": {password}}, nil)
	if !ok {
		return nil
	}
	var result LoginResult
	if err := json.Unmarshal(raw, &result); err != nil {
		c.log.WithError(err).Warn("decode login result")
		return nil
	}
	return &result
}

// GetUserProfile fetches an account profile by username.
func (c *Client) GetUserProfile(ctx context.Context, username, token string) *User {
	raw, ok := c.do(ctx, http.MethodGet, "/user/"+url.PathEscape(username), token, nil, nil)
	if !ok {
		return nil
	}
	return c.decodeUser(raw)
}

// CreateUser registers a new account. No token: registration is anonymous.
func (c *Client) CreateUser(ctx context.Context, user NewUser) *User {
	raw, ok := c.do(ctx, http.MethodPost, "/user", "", nil, user)
	if !ok {
		return nil
	}
	return c.decodeUser(raw)
}

// AddPet adds a pet to the store catalog.
func (c *Client) AddPet(ctx context.Context, pet NewPet, token string) *Pet {
	raw, ok := c.do(ctx, http.MethodPost, "/pet", token, nil, pet)
	if !ok {
		return nil
	}
	var created Pet
	if err := json.Unmarshal(raw, &created); err != nil {
		c.log.WithError(err).Warn("decode pet")
		return nil
	}
	return &created
}

func (c *Client) decodePets(raw json.RawMessage) []Pet {
	var pets []Pet
	if err := json.Unmarshal(raw, &pets); err != nil {
		c.log.WithError(err).Warn("decode pet list")
		return []Pet{}
	}
	return pets
}

func (c *Client) decodeOrder(raw json.RawMessage) *Order {
	var order Order
	if err := json.Unmarshal(raw, &order); err != nil {
		c.log.WithError(err).Warn("decode order")
		return nil
	}
	return &order
}

func (c *Client) decodeUser(raw json.RawMessage) *User {
	var user User
	if err := json.Unmarshal(raw, &user); err != nil {
		c.log.WithError(err).Warn("decode user")
		return nil
	}
	return &user
}
