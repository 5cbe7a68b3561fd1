package director

import "context"

// Account carries the identity fields the livestream accounts API returns.
type Account struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	DOB      string `json:"dob"`
}

// AccountClient is the remote lookup gateway the lifecycle core consumes.
type AccountClient interface {
	// FindByID fetches an account from the remote API. A reachable API
	// always yields its status code; the account is non-nil only on 200.
	// A transport-level failure returns an error, distinguishable from any
	// non-200 status.
	FindByID(ctx context.Context, livestreamID string) (int, *Account, error)
}
