// Package attrenc encodes product attribute maps into the opaque string
// representation stored on product rows. The format is JSON; callers treat
// it as opaque.
package attrenc

import "encoding/json"

// Encode serializes an attribute map. A nil map encodes as "{}".
func Encode(attributes map[string]any) (string, error) {
	if attributes == nil {
		return "{}", nil
	}
	b, err := json.Marshal(attributes)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode parses the stored representation back into a map. Empty input
// yields an empty map.
func Decode(encoded string) (map[string]any, error) {
	if encoded == "" {
		return map[string]any{}, nil
	}
	out := map[string]any{}
	if err := json.Unmarshal([]byte(encoded), &out); err != nil {
		return nil, err
	}
	return out, nil
}
