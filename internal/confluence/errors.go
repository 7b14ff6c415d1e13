package confluence

import "errors"

// Sentinel errors for Confluence operations.
var (
	// ErrInvalidURL indicates the page URL does not match any known format.
	ErrInvalidURL = errors.New("unrecognized confluence page url")

	// ErrUnauthorized indicates the API rejected the credentials.
	ErrUnauthorized = errors.New("confluence authentication failed")

	// ErrPageNotFound indicates the page does not exist or is not visible.
	ErrPageNotFound = errors.New("confluence page not found")

	// ErrRemote indicates a transport or server-side failure.
	ErrRemote = errors.New("confluence request failed")
)
