package director

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
)

// Director is the profile entity keyed by a livestream account id. Identity
// fields (livestream_id, full_name, dob) come from the remote accounts API
// and are never client-mutated; the favorite_* fields are the only ones a
// client may edit. Each request works on its own instance; nothing here is
// shared across requests.
type Director struct {
	// Identity
	LivestreamID string `json:"livestream_id"`

	// Remote-sourced, immutable from the client
	FullName string `json:"full_name"`
	DOB      string `json:"dob"`

	// Client-mutable preferences
	FavoriteCamera *string  `json:"favorite_camera,omitempty"`
	FavoriteMovies []string `json:"favorite_movies"`
}

// New constructs a transient director for one request.
func New(livestreamID string) *Director {
	return &Director{LivestreamID: livestreamID}
}

// EnsureDefaults fills in the defaults a persisted record always carries.
func (d *Director) EnsureDefaults() {
	if d.FavoriteMovies == nil {
		d.FavoriteMovies = []string{}
	}
}

// SetFavoriteCamera assigns the camera from a raw patch value. A nil value
// means the field was absent and is a no-op.
func (d *Director) SetFavoriteCamera(raw json.RawMessage) error {
	if raw == nil {
		return nil
	}

	camera, err := validateCamera(raw)
	if err != nil {
		return err
	}

	d.FavoriteCamera = &camera
	return nil
}

// SetFavoriteMovies replaces the whole list with the de-duplicated value.
func (d *Director) SetFavoriteMovies(raw json.RawMessage) error {
	if raw == nil {
		return nil
	}

	movies, err := validateMovies(raw)
	if err != nil {
		return err
	}

	d.FavoriteMovies = dedupe(movies)
	return nil
}

// AddFavoriteMovies appends entries not already in the list.
func (d *Director) AddFavoriteMovies(raw json.RawMessage) error {
	if raw == nil {
		return nil
	}

	movies, err := validateMovies(raw)
	if err != nil {
		return err
	}

	d.FavoriteMovies = dedupe(append(d.FavoriteMovies, movies...))
	return nil
}

// RemoveFavoriteMovies drops every entry present in the value. Set
// difference, not positional: removing a movie removes it wherever it sits.
func (d *Director) RemoveFavoriteMovies(raw json.RawMessage) error {
	if raw == nil {
		return nil
	}

	movies, err := validateMovies(raw)
	if err != nil {
		return err
	}

	drop := make(map[string]struct{}, len(movies))
	for _, movie := range movies {
		drop[movie] = struct{}{}
	}

	kept := make([]string, 0, len(d.FavoriteMovies))
	for _, movie := range d.FavoriteMovies {
		if _, ok := drop[movie]; !ok {
			kept = append(kept, movie)
		}
	}

	d.FavoriteMovies = kept
	return nil
}

// AuthToken derives the shared-knowledge edit token from the director's
// name. Not a security credential; the original registration flow hands the
// name back to the caller, who proves they know it on later edits.
func (d *Director) AuthToken() string {
	sum := md5.Sum([]byte(d.FullName))
	return hex.EncodeToString(sum[:])
}

// IsAuthorized reports whether the supplied token matches the loaded name.
// A director with no loaded full_name is never authorized, even by the hash
// of the empty string.
func (d *Director) IsAuthorized(token string) bool {
	if d.FullName == "" {
		return false
	}
	return token == d.AuthToken()
}
