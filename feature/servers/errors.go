package servers

import "errors"

// Sentinel errors surfaced by the list query pipeline. The handler maps them
// to HTTP status codes, everything else becomes a 500.
var (
	// ErrAuthenticationRequired is returned when an anonymous request asks
	// for an identity-scoped filter (by_user or by_serverid).
	ErrAuthenticationRequired = errors.New("you must be logged in to perform this action")

	// ErrInvalidQuantity is returned when qty is not parseable as an integer.
	ErrInvalidQuantity = errors.New("invalid qty")

	// ErrInvalidServerID is returned when by_serverid is not parseable as an integer.
	ErrInvalidServerID = errors.New("invalid server id")

	// ErrServerNotFound is returned when by_serverid resolves to no record
	// after all narrowing steps.
	ErrServerNotFound = errors.New("server not found")
)
