package dto

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	UserID      string `json:"userId" validate:"required"`
	CompanyName string `json:"companyName" validate:"required"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID          string `json:"_id"`
	UserID      string `json:"userId"`
	CompanyName string `json:"companyName"`
}
