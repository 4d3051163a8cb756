package domain

// Auth wire types shared by the API and its clients.

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// UserView is a User without its password hash.
type UserView struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

func (u User) View() UserView {
	return UserView{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

// AuthResponse answers login, register and reset-password.
type AuthResponse struct {
	Message string    `json:"message,omitempty"`
	Token   string    `json:"token,omitempty"`
	User    *UserView `json:"user,omitempty"`
}

// MessageResponse is the body of errors and of bodiless acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}
