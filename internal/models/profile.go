package models

// OrganizerProfile stores an authenticated user's Venmo payment handle.
// One per user; required before the user may create an event.
type OrganizerProfile struct {
	// UserID is the owning user (one profile per user).
	UserID string

	// VenmoUsername is the handle as stored, always with a leading "@".
	VenmoUsername string

	// VenmoUsernameNormalized is the handle trimmed, stripped of leading
	// "@"s, and lowercased. Used for matching, never for display.
	VenmoUsernameNormalized string

	// CreatedAt is the RFC 3339 UTC timestamp when the profile was created.
	CreatedAt string

	// UpdatedAt is bumped on every upsert.
	UpdatedAt string
}
