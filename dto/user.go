package dto

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=150,username"`
	Password string `json:"password" binding:"required,password"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// TokenRequest is the body of POST /api/token/.
type TokenRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RefreshRequest is the body of both /api/token/refresh/ and /api/token/blacklist/.
type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type AccessToken struct {
	Access string `json:"access"`
}
