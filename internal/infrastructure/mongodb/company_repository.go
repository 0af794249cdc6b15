package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación de CompanyRepository sobre la colección companies.
type CompanyRepo struct {
	coll *mongo.Collection
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(db *mongo.Database) *CompanyRepo {
	return &CompanyRepo{coll: db.Collection(collCompanies)}
}

// Create inserta la empresa; userId debe ser un ObjectID.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	userID, err := referenceID("userId", company.UserID)
	if err != nil {
		return err
	}
	res, err := r.coll.InsertOne(ctx, companyDoc{UserID: userID, CompanyName: company.CompanyName})
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	company.ID = insertedHex(res)
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, nil
	}
	var d companyDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if isNoDocuments(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return d.toEntity(), nil
}

// List devuelve todas las empresas.
func (r *CompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	docs, err := findAll[companyDoc](ctx, r.coll, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return toEntities[companyDoc, entity.Company](docs), nil
}

// ListByUser empresas de un usuario.
func (r *CompanyRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Company, error) {
	oid, ok := objectID(userID)
	if !ok {
		return []*entity.Company{}, nil
	}
	docs, err := findAll[companyDoc](ctx, r.coll, bson.M{"userId": oid})
	if err != nil {
		return nil, fmt.Errorf("list companies by user: %w", err)
	}
	return toEntities[companyDoc, entity.Company](docs), nil
}
