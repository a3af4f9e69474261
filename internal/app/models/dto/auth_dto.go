package dto

// LoginRequest represents the login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"4SF22CS001"`
	Password string `json:"password" binding:"required" example:"password123"`
	Role     string `json:"role" binding:"required" example:"student" enums:"student,placement"`
}

// LoginResponse carries the authenticated user and a signed token.
// The user object never includes the password hash.
type LoginResponse struct {
	User  interface{} `json:"user"`
	Token string      `json:"token"`
}

// RegisterRequest represents the registration payload.
type RegisterRequest struct {
	Username string `json:"username" binding:"required" example:"4SF22CS001"`
	Password string `json:"password" binding:"required,min=8" example:"password123"`
	Role     string `json:"role" binding:"required" example:"student" enums:"student,placement"`
	Name     string `json:"name" binding:"required" example:"Rakshith V"`
}

// RegisterResponse wraps the created user record.
type RegisterResponse struct {
	User interface{} `json:"user"`
}
