/* giornate.go
 * Contains the round and match listing operations of the backend
 * Authors: Zachary Bower
 */

package external

import "context"

const (
	endpointGiornate = "giornate"
	endpointPartite  = "partite"
)

// GetGiornateCorrenti lists the rounds that are currently open or in progress
func (c *Client) GetGiornateCorrenti(ctx context.Context, token string) (*GiornateResponse, error) {
	var response GiornateResponse
	if err := c.Call(ctx, endpointGiornate, "getCorrenti", nil, token, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetPartiteByGiornata lists the matches of a round
func (c *Client) GetPartiteByGiornata(ctx context.Context, token string, giornataID string) (*PartiteResponse, error) {
	var response PartiteResponse
	data := map[string]string{"giornata_id": giornataID}
	if err := c.Call(ctx, endpointPartite, "getByGiornata", data, token, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
