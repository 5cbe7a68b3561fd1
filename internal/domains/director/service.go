package director

import "context"

// Service sequences the director lifecycle: local-existence check, remote
// fetch, authorization, validation, persistence.
type Service interface {
	// Register creates a director from its remote account fields.
	// Returns: ErrAlreadyRegistered for a known id (the remote API is not
	// called in that case), ErrAccountNotFound for a remote 404, an
	// *UpstreamError for any other non-200 remote status.
	Register(ctx context.Context, req CreateDirectorRequest) (*Director, error)

	// Update applies a validated patch to an existing director.
	// Returns: ErrDirectorNotFound, ErrNotAuthorized (checked only after
	// existence), or the failing field's validation error; nothing is
	// persisted unless every present field passes.
	Update(ctx context.Context, livestreamID, token string, req UpdateDirectorRequest) (*Director, error)

	// Get is a read-through by id. Returns ErrDirectorNotFound when absent.
	Get(ctx context.Context, livestreamID string) (*Director, error)

	// List returns all registered directors.
	List(ctx context.Context) ([]*Director, error)
}
