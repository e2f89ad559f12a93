package dto

// LoginRequest payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse mirrors the response shape of the peer system: the display
// name, the bearer token, and the resolved user kind.
type LoginResponse struct {
	User        string `json:"user"`
	AccessToken string `json:"access_token"`
	UserType    string `json:"user_type"`
}
