/* leghe.go
 * Contains the league operations of the backend
 * Authors: Zachary Bower
 */

package external

import "context"

const endpointLeghe = "leghe"

// GetLeghe lists every league
func (c *Client) GetLeghe(ctx context.Context, token string) (*LegheResponse, error) {
	var response LegheResponse
	if err := c.Call(ctx, endpointLeghe, "getAll", nil, token, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetLegheUtente lists the leagues a user has joined
func (c *Client) GetLegheUtente(ctx context.Context, token string, utenteID string) (*LegheResponse, error) {
	var response LegheResponse
	data := map[string]string{"utente_id": utenteID}
	if err := c.Call(ctx, endpointLeghe, "getByUtente", data, token, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// JoinLega adds a user to a league
func (c *Client) JoinLega(ctx context.Context, token string, utenteID string, legaID string) (*Envelope, error) {
	var response Envelope
	data := map[string]string{"utente_id": utenteID, "lega_id": legaID}
	if err := c.Call(ctx, endpointLeghe, "join", data, token, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetClassifica fetches the standings of a league, already ranked by the backend
func (c *Client) GetClassifica(ctx context.Context, token string, legaID string) (*ClassificaResponse, error) {
	var response ClassificaResponse
	data := map[string]string{"lega_id": legaID}
	if err := c.Call(ctx, endpointLeghe, "getClassifica", data, token, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
