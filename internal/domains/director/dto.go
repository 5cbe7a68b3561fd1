package director

import (
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Movie-mutation modes for update requests. Replace is the default when the
// payload carries no _action directive.
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
)

// CreateDirectorRequest registers a new director by livestream account id.
type CreateDirectorRequest struct {
	LivestreamID string `json:"livestream_id"`
}

func (r CreateDirectorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.LivestreamID,
			validation.Required.Error(ErrMissingLivestreamID.Error()),
		),
	)
}

// UpdateDirectorRequest is the patch document for an existing director. The
// mutable fields stay raw JSON so the entity can distinguish an absent field
// (no-op) from a present field of the wrong shape (rejected).
type UpdateDirectorRequest struct {
	FavoriteCamera json.RawMessage `json:"favorite_camera,omitempty"`
	FavoriteMovies json.RawMessage `json:"favorite_movies,omitempty"`
	Action         string          `json:"_action,omitempty"`
}

func (r UpdateDirectorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Action,
			validation.In(ActionAdd, ActionRemove).Error(ErrInvalidAction.Error()),
		),
	)
}
