package model

// UserRef identifies a user signed in with the identity provider
type UserRef struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// NewUserRef creates a user reference
func NewUserRef(id, email string) *UserRef {
	return &UserRef{
		ID:    id,
		Email: email,
	}
}
