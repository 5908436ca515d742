package auth

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse tells the client where to go next; the session itself
// travels in the cookie.
type LoginResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Status   string `json:"status"`
}
