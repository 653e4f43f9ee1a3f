package dto

type RegisterRequest struct {
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// UserRegisteredMessage is the payload carried by USER_REGISTERED events.
type UserRegisteredMessage struct {
	Email string `json:"email"`
}
