package domain

// Vehicle belongs to exactly one client. Plate is globally unique.
type Vehicle struct {
	ID       int64  `json:"id"`
	Plate    string `json:"plate" validate:"required"`
	Chassis  string `json:"chassis"`
	Odometer int64  `json:"odometer"`
	Make     string `json:"make"`
	Model    string `json:"model"`
	ClientID int64  `json:"client_id" validate:"required"`
}
