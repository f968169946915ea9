/* account.go
 * Contains the login and registration operations of the backend. Both return the account and a
 * bearer token used by every later call
 * Authors: Zachary Bower
 */

package external

import (
	"context"
	"fmt"
)

const endpointAuth = "auth"

// Login exchanges email and password for a token
func (c *Client) Login(ctx context.Context, request LoginRequest) (*AuthResponse, error) {
	var response AuthResponse
	if err := c.Call(ctx, endpointAuth, "login", request, "", &response); err != nil {
		return nil, err
	}
	if response.Token == "" {
		return nil, &TransportError{Op: endpointAuth + ".login", Err: fmt.Errorf("response has no token")}
	}
	return &response, nil
}

// Register creates an account and logs it in
func (c *Client) Register(ctx context.Context, request RegisterRequest) (*AuthResponse, error) {
	var response AuthResponse
	if err := c.Call(ctx, endpointAuth, "register", request, "", &response); err != nil {
		return nil, err
	}
	if response.Token == "" {
		return nil, &TransportError{Op: endpointAuth + ".register", Err: fmt.Errorf("response has no token")}
	}
	return &response, nil
}
