package google

// User is the Google account returned by a successful sign-in
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Photo string `json:"photo,omitempty"`
}

// SignInResponse is returned by an interactive sign-in
type SignInResponse struct {
	User    *User  `json:"user,omitempty"`
	IDToken string `json:"idToken,omitempty"`
}

// Tokens holds the credentials of the signed in Google account
type Tokens struct {
	IDToken     string
	AccessToken string
}

// IsSuccessResponse reports whether a sign-in response carries a user with an id
func IsSuccessResponse(response *SignInResponse) bool {
	return response != nil && response.User != nil && response.User.ID != ""
}
