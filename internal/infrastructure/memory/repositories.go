package memory

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

var (
	_ repository.UserRepository        = (*UserRepo)(nil)
	_ repository.CompanyRepository     = (*CompanyRepo)(nil)
	_ repository.CardRepository        = (*CardRepo)(nil)
	_ repository.TransactionRepository = (*TransactionRepo)(nil)
	_ repository.InvoiceRepository     = (*InvoiceRepo)(nil)
)

// UserRepo usuarios en memoria; el email es único sin distinguir mayúsculas.
type UserRepo struct{ s *Store }

// NewUserRepository construye el repositorio sobre el store.
func NewUserRepository(s *Store) *UserRepo { return &UserRepo{s: s} }

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rec := range r.s.users {
		if strings.EqualFold(rec.doc.Email, user.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	id, seq := r.s.nextID()
	user.ID = id
	r.s.users[id] = record[entity.User]{seq: seq, doc: *user}
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return get(r.s.users, id), nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := filter(r.s.users, func(u *entity.User) bool { return strings.EqualFold(u.Email, email) })
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// CompanyRepo empresas en memoria.
type CompanyRepo struct{ s *Store }

// NewCompanyRepository construye el repositorio sobre el store.
func NewCompanyRepository(s *Store) *CompanyRepo { return &CompanyRepo{s: s} }

func (r *CompanyRepo) Create(_ context.Context, company *entity.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id, seq := r.s.nextID()
	company.ID = id
	r.s.companies[id] = record[entity.Company]{seq: seq, doc: *company}
	return nil
}

func (r *CompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return get(r.s.companies, id), nil
}

func (r *CompanyRepo) List(_ context.Context) ([]*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filter(r.s.companies, nil), nil
}

func (r *CompanyRepo) ListByUser(_ context.Context, userID string) ([]*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filter(r.s.companies, func(c *entity.Company) bool { return c.UserID == userID }), nil
}

// CardRepo tarjetas en memoria.
type CardRepo struct{ s *Store }

// NewCardRepository construye el repositorio sobre el store.
func NewCardRepository(s *Store) *CardRepo { return &CardRepo{s: s} }

func (r *CardRepo) Create(_ context.Context, card *entity.Card) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id, seq := r.s.nextID()
	card.ID = id
	r.s.cards[id] = record[entity.Card]{seq: seq, doc: *card}
	return nil
}

func (r *CardRepo) GetByID(_ context.Context, id string) (*entity.Card, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return get(r.s.cards, id), nil
}

func (r *CardRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Card, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filter(r.s.cards, func(c *entity.Card) bool { return c.CompanyID == companyID }), nil
}

func (r *CardRepo) UpdateLimit(_ context.Context, id string, limit decimal.Decimal) (*entity.Card, error) {
	return r.update(id, func(c *entity.Card) { c.CreditLimit = limit })
}

func (r *CardRepo) UpdateActivation(_ context.Context, id string, isActivated bool) (*entity.Card, error) {
	return r.update(id, func(c *entity.Card) { c.IsActivated = isActivated })
}

func (r *CardRepo) update(id string, apply func(*entity.Card)) (*entity.Card, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.cards[id]
	if !ok {
		return nil, nil
	}
	apply(&rec.doc)
	r.s.cards[id] = rec
	doc := rec.doc
	return &doc, nil
}

// TransactionRepo transacciones en memoria.
type TransactionRepo struct{ s *Store }

// NewTransactionRepository construye el repositorio sobre el store.
func NewTransactionRepository(s *Store) *TransactionRepo { return &TransactionRepo{s: s} }

func (r *TransactionRepo) Create(_ context.Context, txn *entity.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id, seq := r.s.nextID()
	txn.ID = id
	r.s.transactions[id] = record[entity.Transaction]{seq: seq, doc: *txn}
	return nil
}

func (r *TransactionRepo) GetByID(_ context.Context, id string) (*entity.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return get(r.s.transactions, id), nil
}

func (r *TransactionRepo) ListByCard(_ context.Context, cardID string) ([]*entity.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filter(r.s.transactions, func(t *entity.Transaction) bool { return t.CardID == cardID }), nil
}

// InvoiceRepo facturas en memoria.
type InvoiceRepo struct{ s *Store }

// NewInvoiceRepository construye el repositorio sobre el store.
func NewInvoiceRepository(s *Store) *InvoiceRepo { return &InvoiceRepo{s: s} }

func (r *InvoiceRepo) Create(_ context.Context, invoice *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id, seq := r.s.nextID()
	invoice.ID = id
	r.s.invoices[id] = record[entity.Invoice]{seq: seq, doc: *invoice}
	return nil
}

func (r *InvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return get(r.s.invoices, id), nil
}

func (r *InvoiceRepo) List(_ context.Context) ([]*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filter(r.s.invoices, nil), nil
}

func (r *InvoiceRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filter(r.s.invoices, func(i *entity.Invoice) bool { return i.CompanyID == companyID }), nil
}

func (r *InvoiceRepo) ListByCard(_ context.Context, cardID string) ([]*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filter(r.s.invoices, func(i *entity.Invoice) bool { return i.CardID == cardID }), nil
}

func (r *InvoiceRepo) MarkPaid(_ context.Context, id string) (*entity.Invoice, error) {
	return r.update(id, func(i *entity.Invoice) { i.IsPaid = true })
}

func (r *InvoiceRepo) UpdateAmount(_ context.Context, id string, amount decimal.Decimal) (*entity.Invoice, error) {
	return r.update(id, func(i *entity.Invoice) { i.Amount = amount })
}

func (r *InvoiceRepo) update(id string, apply func(*entity.Invoice)) (*entity.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	apply(&rec.doc)
	r.s.invoices[id] = rec
	doc := rec.doc
	return &doc, nil
}
