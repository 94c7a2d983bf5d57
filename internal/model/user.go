package model

// User is an account record. Password holds the bcrypt hash and is only
// populated while processing signup/login; it never appears in responses.
type User struct {
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned from signup and login. ID equals the email.
type AuthResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Token     string `json:"token"`
	CreatedAt int64  `json:"createdAt"`
}
