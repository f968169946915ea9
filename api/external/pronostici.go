/* pronostici.go
 * Contains the prediction operations of the backend
 * Authors: Zachary Bower
 */

package external

import "context"

const endpointPronostici = "pronostici"

// GetPartitaDetails fetches a match together with its round deadline, both rosters and the caller's
// existing prediction if any
func (c *Client) GetPartitaDetails(ctx context.Context, token string, partitaID string) (*PartitaDetailsResponse, error) {
	var response PartitaDetailsResponse
	data := map[string]string{"partita_id": partitaID}
	if err := c.Call(ctx, endpointPronostici, "getPartitaDetails", data, token, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// SavePronostico sends one prediction. The backend replaces any earlier prediction for the same match
func (c *Client) SavePronostico(ctx context.Context, token string, request SaveRequest) (*Envelope, error) {
	var response Envelope
	if err := c.Call(ctx, endpointPronostici, "save", request, token, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetPronosticiByGiornata fetches the caller's predictions for a round. legaID may be empty
func (c *Client) GetPronosticiByGiornata(ctx context.Context, token string, giornataID string, legaID string) (*PronosticiResponse, error) {
	var response PronosticiResponse
	data := map[string]string{"giornata_id": giornataID}
	if legaID != "" {
		data["lega_id"] = legaID
	}
	if err := c.Call(ctx, endpointPronostici, "getByGiornata", data, token, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
