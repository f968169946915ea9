/* marcatori.go
 * Contains the encoding of the scorer list. The backend stores marcatori as a JSON encoded string
 * array inside the prediction record
 * Authors: Zachary Bower
 */

package external

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

// EncodeMarcatori encodes scorer ids as a JSON array string. Ids are de-duplicated and sorted so the
// same set always encodes to the same text
func EncodeMarcatori(ids []string) (string, error) {
	seen := make(map[string]bool, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	sort.Strings(unique)

	encoded, err := json.Marshal(unique)
	if err != nil {
		return "", fmt.Errorf("failed to encode marcatori: %w", err)
	}
	return string(encoded), nil
}

// DecodeMarcatori decodes a marcatori string written by EncodeMarcatori or by the backend.
// An empty string decodes to an empty list
func DecodeMarcatori(encoded string) ([]string, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return []string{}, nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(encoded), &ids); err != nil {
		return nil, fmt.Errorf("failed to decode marcatori '%s': %w", encoded, err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}
