package dto

type PostJobRequest struct {
	Title       string `form:"title" json:"title" validate:"required,max=200"`
	Description string `form:"description" json:"description" validate:"required"`
	Salary      string `form:"salary" json:"salary" validate:"max=100"`
	Location    string `form:"location" json:"location" validate:"max=200"`
	Category    string `form:"category" json:"category" validate:"max=100"`
}
