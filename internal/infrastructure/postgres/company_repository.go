package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación de CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id::text, user_id::text, company_name`

// Create persiste la empresa.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	userID, err := referenceID("userId", company.UserID)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO companies (user_id, company_name)
		VALUES ($1, $2)
		RETURNING id::text, user_id::text`
	if err := r.q.QueryRow(ctx, query, userID, company.CompanyName).Scan(&company.ID, &company.UserID); err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	cid, ok := lookupID(id)
	if !ok {
		return nil, nil
	}
	c, err := scanCompany(r.q.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, cid))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// List devuelve todas las empresas en orden de inserción.
func (r *CompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	rows, err := r.q.Query(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY inserted_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return collect(rows, scanCompany)
}

// ListByUser empresas de un usuario.
func (r *CompanyRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Company, error) {
	uid, ok := lookupID(userID)
	if !ok {
		return []*entity.Company{}, nil
	}
	rows, err := r.q.Query(ctx, `SELECT `+companyColumns+` FROM companies WHERE user_id = $1 ORDER BY inserted_at, id`, uid)
	if err != nil {
		return nil, fmt.Errorf("list companies by user: %w", err)
	}
	return collect(rows, scanCompany)
}

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	if err := row.Scan(&c.ID, &c.UserID, &c.CompanyName); err != nil {
		return nil, err
	}
	return &c, nil
}
