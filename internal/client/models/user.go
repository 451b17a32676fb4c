package models

// LoginRequest is the body of POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session credential. Other fields the server may
// send are ignored.
type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email,omitempty"`
}
