package director

import (
	"bytes"
	"encoding/json"
)

// Field validators for the client-mutable fields. Patch payloads carry these
// as raw JSON so an absent field can be told apart from a present field of
// the wrong shape; absent is always a no-op for the caller, never an error.

func jsonNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// validateCamera decodes a favorite_camera value. Anything that is not a
// JSON string fails.
func validateCamera(raw json.RawMessage) (string, error) {
	if jsonNull(raw) {
		return "", ErrInvalidCamera
	}

	var camera string
	if err := json.Unmarshal(raw, &camera); err != nil {
		return "", ErrInvalidCamera
	}
	return camera, nil
}

// validateMovies decodes a favorite_movies value. Anything that is not a
// JSON array of strings fails.
func validateMovies(raw json.RawMessage) ([]string, error) {
	if jsonNull(raw) {
		return nil, ErrInvalidMovies
	}

	var movies []string
	if err := json.Unmarshal(raw, &movies); err != nil {
		return nil, ErrInvalidMovies
	}
	return movies, nil
}

// dedupe removes repeated entries, keeping the first occurrence order.
func dedupe(movies []string) []string {
	seen := make(map[string]struct{}, len(movies))
	out := make([]string, 0, len(movies))
	for _, movie := range movies {
		if _, ok := seen[movie]; ok {
			continue
		}
		seen[movie] = struct{}{}
		out = append(out, movie)
	}
	return out
}
