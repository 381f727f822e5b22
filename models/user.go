package models

// User is the backend's view of an account, cached locally for fast display.
// The cached copy is never authoritative; the bearer token is.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// AuthResponse is returned by the signup and login endpoints.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}
