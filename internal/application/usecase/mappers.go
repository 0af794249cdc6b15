package usecase

import (
	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

func toCompanyResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{ID: c.ID, UserID: c.UserID, CompanyName: c.CompanyName}
}

func toCompanyResponses(list []*entity.Company) []dto.CompanyResponse {
	out := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCompanyResponse(c))
	}
	return out
}

func toCardResponse(c *entity.Card) dto.CardResponse {
	return dto.CardResponse{
		ID:             c.ID,
		CardNumber:     c.CardNumber,
		CompanyID:      c.CompanyID,
		ExpirationDate: c.ExpirationDate,
		CreditLimit:    c.CreditLimit,
		IsActivated:    c.IsActivated,
	}
}

func toCardResponses(list []*entity.Card) []dto.CardResponse {
	out := make([]dto.CardResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCardResponse(c))
	}
	return out
}

func toInvoiceResponse(i *entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:        i.ID,
		CompanyID: i.CompanyID,
		CardID:    i.CardID,
		IsPaid:    i.IsPaid,
		Amount:    i.Amount,
		CreatedAt: i.CreatedAt,
		DueDate:   i.DueDate,
	}
}

func toInvoiceResponses(list []*entity.Invoice) []dto.InvoiceResponse {
	out := make([]dto.InvoiceResponse, 0, len(list))
	for _, i := range list {
		out = append(out, toInvoiceResponse(i))
	}
	return out
}

func toTransactionResponse(t *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          t.ID,
		CardID:      t.CardID,
		Description: t.Description,
		Amount:      t.Amount,
		Date:        t.Date,
	}
}

func toTransactionResponses(list []*entity.Transaction) []dto.TransactionResponse {
	out := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTransactionResponse(t))
	}
	return out
}
