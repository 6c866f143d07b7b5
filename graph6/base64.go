package graph6

import "encoding/base64"

// ToBase64 wraps an ASCII graph6 string for transport to an external
// adapter (standard base64 alphabet, with padding).
func ToBase64(g6 string) string {
	return base64.StdEncoding.EncodeToString([]byte(g6))
}

// FromBase64 reverses ToBase64.
func FromBase64(s string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
