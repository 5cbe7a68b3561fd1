package director

import (
	"errors"
	"fmt"
)

// Repository-level errors
var (
	ErrDirectorNotFound = errors.New("director not found")
)

// Service-level (business logic) errors
var (
	ErrAlreadyRegistered = errors.New("that account has already been created")
	ErrNotAuthorized     = errors.New("authorization token does not match")
	ErrAccountNotFound   = errors.New("no livestream account with that id")
)

// Validation errors
var (
	ErrMissingLivestreamID = errors.New("must specify a livestream_id")
	ErrInvalidCamera       = errors.New("favorite_camera must be a string")
	ErrInvalidMovies       = errors.New("favorite_movies must be an array of strings")
	ErrInvalidAction       = errors.New("_action must be add or remove")
)

// UpstreamError reports a non-200 livestream API status that has no mapped
// message of its own. The handler propagates the raw status to the client.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("livestream api returned status %d", e.StatusCode)
}
