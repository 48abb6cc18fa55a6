package domain

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// AuthResult is what the auth endpoints return on success.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
