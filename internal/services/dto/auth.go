package dto

// RegisterRequest carries the registration form. IsEmployer is bound as a
// string because HTML checkboxes post "on", which the form binder would
// reject as a bool.
type RegisterRequest struct {
	Username   string `form:"username" json:"username" validate:"required,min=3,max=100"`
	Email      string `form:"email" json:"email" validate:"required,email,max=120"`
	Password   string `form:"password" json:"password" validate:"required,min=8,max=72"`
	IsEmployer string `form:"is_employer" json:"is_employer"`
	Company    string `form:"company" json:"company" validate:"max=200"`
}

// WantsEmployer interprets the checkbox value.
func (r *RegisterRequest) WantsEmployer() bool {
	switch r.IsEmployer {
	case "on", "true", "1":
		return true
	}
	return false
}

type LoginRequest struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required"`
}
