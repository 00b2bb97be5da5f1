package domain

// Profile identifies the student whose plan is loaded.
// Email is the identity key against the remote store; Name is display-only.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
