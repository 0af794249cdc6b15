package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Finanzas-api/internal/application/auth"
	"github.com/jhoicas/Finanzas-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	CompanyUC     *usecase.CompanyUseCase
	CardUC        *usecase.CardUseCase
	InvoiceUC     *usecase.InvoiceUseCase
	TransactionUC *usecase.TransactionUseCase
}

// Router registra las rutas de la API.
func Router(app fiber.Router, deps RouterDeps) {
	api := app.Group("/api")

	users := api.Group("/users")
	userHandler := NewUserHandler(deps.AuthUC, deps.UserUC)
	users.Post("/signup", userHandler.SignUp)
	users.Post("/signin", userHandler.SignIn)
	users.Get("/:userId", userHandler.GetByID)
	users.Get("/:userId/companies", userHandler.ListCompanies)

	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Get("/:id/cards/allData", companyHandler.CardsWithSpending)
	companies.Get("/:id/cards", companyHandler.ListCards)
	companies.Get("/:id/invoices", companyHandler.ListInvoices)

	cards := api.Group("/cards")
	cardHandler := NewCardHandler(deps.CardUC)
	cards.Post("/", cardHandler.Create)
	cards.Get("/:id", cardHandler.GetByID)
	cards.Patch("/:id/limit", cardHandler.UpdateLimit)
	cards.Patch("/:id/state", cardHandler.UpdateState)
	cards.Get("/:id/invoices", cardHandler.ListInvoices)
	cards.Get("/:id/transactions", cardHandler.ListTransactions)

	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Patch("/:id", invoiceHandler.Pay)

	transactions := api.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/:id", transactionHandler.GetByID)
}
