package mongodb

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"passwordHash"`
	PasswordSalt string             `bson:"passwordSalt"`
}

func (d userDoc) toEntity() *entity.User {
	return &entity.User{ID: d.ID.Hex(), Email: d.Email, PasswordHash: d.PasswordHash, PasswordSalt: d.PasswordSalt}
}

type companyDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      primitive.ObjectID `bson:"userId"`
	CompanyName string             `bson:"companyName"`
}

func (d companyDoc) toEntity() *entity.Company {
	return &entity.Company{ID: d.ID.Hex(), UserID: d.UserID.Hex(), CompanyName: d.CompanyName}
}

type cardDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	CardNumber     string             `bson:"cardNumber"`
	CompanyID      primitive.ObjectID `bson:"companyId"`
	ExpirationDate time.Time          `bson:"expirationDate"`
	CreditLimit    float64            `bson:"creditLimit"`
	IsActivated    bool               `bson:"isActivated"`
}

func (d cardDoc) toEntity() *entity.Card {
	return &entity.Card{
		ID:             d.ID.Hex(),
		CompanyID:      d.CompanyID.Hex(),
		CardNumber:     d.CardNumber,
		ExpirationDate: d.ExpirationDate,
		CreditLimit:    decimal.NewFromFloat(d.CreditLimit),
		IsActivated:    d.IsActivated,
	}
}

type transactionDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	CardID      primitive.ObjectID `bson:"cardId"`
	Description string             `bson:"description"`
	Amount      float64            `bson:"amount"`
	Date        time.Time          `bson:"date"`
}

func (d transactionDoc) toEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          d.ID.Hex(),
		CardID:      d.CardID.Hex(),
		Description: d.Description,
		Amount:      decimal.NewFromFloat(d.Amount),
		Date:        d.Date,
	}
}

type invoiceDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	CompanyID primitive.ObjectID `bson:"companyId"`
	CardID    primitive.ObjectID `bson:"cardId"`
	IsPaid    bool               `bson:"isPaid"`
	Amount    float64            `bson:"amount"`
	CreatedAt time.Time          `bson:"createdAt"`
	DueDate   time.Time          `bson:"dueDate"`
}

func (d invoiceDoc) toEntity() *entity.Invoice {
	return &entity.Invoice{
		ID:        d.ID.Hex(),
		CompanyID: d.CompanyID.Hex(),
		CardID:    d.CardID.Hex(),
		IsPaid:    d.IsPaid,
		Amount:    decimal.NewFromFloat(d.Amount),
		CreatedAt: d.CreatedAt,
		DueDate:   d.DueDate,
	}
}

func toEntities[D interface{ toEntity() *E }, E any](docs []D) []*E {
	out := make([]*E, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out
}
