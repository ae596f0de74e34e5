package storage

import (
	"bytes"
	"encoding/base64"
	"encoding/json"

	"github.com/recollect/recollect/internal/apperr"
)

// EncodePageToken serializes key to the opaque string handed to
// clients: JSON wrapped in URL-safe base64. Callers must treat it as a
// black box.
func EncodePageToken(key PageKey) string {
	b, _ := json.Marshal(key)
	return base64.URLEncoding.EncodeToString(b)
}

// DecodePageToken is the inverse of EncodePageToken. A token that is
// not valid base64-encoded JSON of the expected shape is a client
// error, never a server fault.
func DecodePageToken(token string) (PageKey, error) {
	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return PageKey{}, apperr.Validation("Invalid pagination token")
	}

	var key PageKey
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&key); err != nil || key.ID == "" {
		return PageKey{}, apperr.Validation("Invalid pagination token")
	}

	return key, nil
}
