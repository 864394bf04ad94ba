package products

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/carnamarket/backend/pkg/db/models"
	"github.com/carnamarket/backend/pkg/enums"
	pkgerrors "github.com/carnamarket/backend/pkg/errors"
)

type stubProductRepo struct {
	product    *models.Product
	listResult []models.Product
	err        error

	created   *CreateProductDTO
	viewBumps int
}

func (s *stubProductRepo) Create(_ context.Context, dto CreateProductDTO) (*models.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = &dto
	model := dto.ToModel()
	s.product = model
	return model, nil
}

func (s *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.product == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.product, nil
}

func (s *stubProductRepo) ListAvailable(context.Context) ([]models.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.listResult, nil
}

func (s *stubProductRepo) IncrementViewCount(context.Context, uuid.UUID) error {
	s.viewBumps++
	return nil
}

type stubCategoriesRepo struct {
	byID  *models.Category
	first *models.Category
}

func (s *stubCategoriesRepo) FindByID(context.Context, uuid.UUID) (*models.Category, error) {
	if s.byID == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.byID, nil
}

func (s *stubCategoriesRepo) FindFirst(context.Context) (*models.Category, error) {
	if s.first == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.first, nil
}

func baseProduct() *models.Product {
	return &models.Product{
		ID:          uuid.New(),
		Title:       "Gilles hat",
		Description: "Ostrich feather hat, worn twice",
		Price:       decimal.NewFromInt(120),
		Condition:   enums.ProductConditionGood,
		IsAvailable: true,
		SellerID:    uuid.New(),
		CategoryID:  uuid.New(),
	}
}

func TestNewServiceRequiresRepos(t *testing.T) {
	if _, err := NewService(nil, &stubCategoriesRepo{}); err == nil {
		t.Fatal("expected error creating service without repo")
	}
	if _, err := NewService(&stubProductRepo{}, nil); err == nil {
		t.Fatal("expected error creating service without categories repo")
	}
}

func TestServiceGetBumpsViewCount(t *testing.T) {
	product := baseProduct()
	repo := &stubProductRepo{product: product}
	svc, err := NewService(repo, &stubCategoriesRepo{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.Get(context.Background(), product.ID)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if repo.viewBumps != 1 {
		t.Fatalf("expected one view bump, got %d", repo.viewBumps)
	}
	if dto.ViewCount != 1 {
		t.Fatalf("expected view count 1, got %d", dto.ViewCount)
	}
}

func TestServiceGetNotFound(t *testing.T) {
	svc, err := NewService(&stubProductRepo{}, &stubCategoriesRepo{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.Get(context.Background(), uuid.New())
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found code, got %v", gotErr)
	}
}

func TestServiceCreateForcesSellerAndDefaults(t *testing.T) {
	category := &models.Category{ID: uuid.New(), Name: "Costumes", Slug: "costumes"}
	repo := &stubProductRepo{}
	svc, err := NewService(repo, &stubCategoriesRepo{first: category})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	seller := uuid.New()
	dto, err := svc.Create(context.Background(), seller, CreateProductInput{
		Title:       "Prince cap",
		Description: "Aalst prince cap with plumes",
		Price:       decimal.NewFromFloat(45.50),
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	if repo.created.SellerID != seller {
		t.Fatalf("expected seller forced to caller, got %s", repo.created.SellerID)
	}
	if repo.created.CategoryID != category.ID {
		t.Fatalf("expected fallback category, got %s", repo.created.CategoryID)
	}
	if repo.created.Condition != enums.ProductConditionGood {
		t.Fatalf("expected default condition, got %s", repo.created.Condition)
	}
	if dto.Title != "Prince cap" {
		t.Fatalf("unexpected title %q", dto.Title)
	}
}

func TestServiceCreateRejectsNonPositivePrice(t *testing.T) {
	svc, err := NewService(&stubProductRepo{}, &stubCategoriesRepo{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.Create(context.Background(), uuid.New(), CreateProductInput{
		Title:       "Free hat",
		Description: "zero priced",
		Price:       decimal.Zero,
	})
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", gotErr)
	}
}

func TestServiceCreateRejectsUnknownCondition(t *testing.T) {
	category := &models.Category{ID: uuid.New()}
	svc, err := NewService(&stubProductRepo{}, &stubCategoriesRepo{first: category})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.Create(context.Background(), uuid.New(), CreateProductInput{
		Title:       "Hat",
		Description: "desc",
		Price:       decimal.NewFromInt(10),
		Condition:   "pristine",
	})
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", gotErr)
	}
}

func TestServiceCreateWithoutAnyCategory(t *testing.T) {
	svc, err := NewService(&stubProductRepo{}, &stubCategoriesRepo{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.Create(context.Background(), uuid.New(), CreateProductInput{
		Title:       "Hat",
		Description: "desc",
		Price:       decimal.NewFromInt(10),
	})
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", gotErr)
	}
}

func TestServiceCreateMapsForeignKeyViolationToConflict(t *testing.T) {
	category := &models.Category{ID: uuid.New(), Name: "Costumes", Slug: "costumes"}
	repo := &stubProductRepo{err: &pgconn.PgError{Code: "23503", ConstraintName: "products_seller_id_fkey"}}
	svc, err := NewService(repo, &stubCategoriesRepo{first: category})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.Create(context.Background(), uuid.New(), CreateProductInput{
		Title:       "Hat",
		Description: "desc",
		Price:       decimal.NewFromInt(10),
	})
	typed := pkgerrors.As(gotErr)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict error, got %v", gotErr)
	}
	if pkgerrors.MetadataFor(typed.Code()).HTTPStatus != 400 {
		t.Fatalf("expected conflict to map to 400, got %d", pkgerrors.MetadataFor(typed.Code()).HTTPStatus)
	}
}

func TestServiceListDependencyError(t *testing.T) {
	svc, err := NewService(&stubProductRepo{err: errors.New("down")}, &stubCategoriesRepo{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.List(context.Background())
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", gotErr)
	}
}
