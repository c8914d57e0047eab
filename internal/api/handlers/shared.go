package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxBodyBytes bounds request bodies. Snapshot imports are the largest.
const maxBodyBytes = 8 << 20

// parseJSON decodes the request body into a T. An empty body, trailing data
// and bodies over maxBodyBytes are errors.
func parseJSON[T any](r *http.Request) (T, error) {
	var v T
	if r.Body == nil {
		return v, errors.New("request body is empty")
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes+1))
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return v, errors.New("request body is empty")
		}
		return v, fmt.Errorf("failed to decode request body: %w", err)
	}
	if dec.InputOffset() > maxBodyBytes {
		return v, fmt.Errorf("request body exceeds %d bytes", maxBodyBytes)
	}
	if dec.More() {
		return v, errors.New("request body must contain a single JSON value")
	}

	return v, nil
}
