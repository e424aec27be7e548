package domain

type Employee struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required"`
	Role string `json:"role"`
}
