package entity

// Company representa una empresa registrada por un usuario. Inmutable tras su creación.
type Company struct {
	ID          string
	UserID      string
	CompanyName string
}
