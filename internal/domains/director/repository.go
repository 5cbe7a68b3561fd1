package director

import "context"

// Repository is the persistence gateway the lifecycle core consumes.
type Repository interface {
	// FindByID loads a persisted director.
	// Returns: ErrDirectorNotFound when no record exists; any other error
	// means the store itself failed.
	FindByID(ctx context.Context, livestreamID string) (*Director, error)

	// Save upserts the serialized field set and ensures the record's key is
	// a member of the global index. The two writes are one logical unit; a
	// failure midway surfaces as an error.
	Save(ctx context.Context, d *Director) error

	// All returns every persisted director, in index-set order (undefined).
	All(ctx context.Context) ([]*Director, error)
}
