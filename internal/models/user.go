package models

// User represents a registered user account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	// Generated server-side at registration; immutable.
	ID string

	// Name is the display name of the user. Required at creation.
	Name string

	// Email is the user's email address. Required at creation but not
	// validated for format.
	Email string

	// CreatedAt is the UTC creation time in RFC 3339 form.
	CreatedAt string
}
