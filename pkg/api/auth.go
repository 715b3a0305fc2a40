package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// LoginResult is the checked shape of a successful admin login.
type LoginResult struct {
	Admin   json.RawMessage
	Token   string
	Message string
}

// Login authenticates against the backend. The response shape is checked
// explicitly: a 2xx body missing token or admin is a client-raised error, not
// a downstream nil dereference.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		Admin   json.RawMessage `json:"admin"`
		Token   string          `json:"token"`
		Message string          `json:"message"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/admin/login", nil, body, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" || len(resp.Admin) == 0 || string(resp.Admin) == "null" {
		return nil, fmt.Errorf("login response missing admin or token")
	}
	return &LoginResult{Admin: resp.Admin, Token: resp.Token, Message: resp.Message}, nil
}
