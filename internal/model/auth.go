package model

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	Token string `json:"token"`
}

// AuthResponse is the uniform outcome envelope every lifecycle
// endpoint returns: a success flag and message, plus token and
// account id when the operation produced them.
type AuthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Token     string `json:"token,omitempty"`
	AccountID string `json:"accountId,omitempty"`
}

type AuthMeResponse struct {
	AccountID string `json:"accountId"`
	Username  string `json:"username"`
}
