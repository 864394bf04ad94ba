package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/carnamarket/backend/pkg/db"
	"github.com/carnamarket/backend/pkg/db/models"
	"github.com/carnamarket/backend/pkg/enums"
	pkgerrors "github.com/carnamarket/backend/pkg/errors"
)

type productRepository interface {
	Create(ctx context.Context, dto CreateProductDTO) (*models.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListAvailable(ctx context.Context) ([]models.Product, error)
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
}

type categoriesRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	FindFirst(ctx context.Context) (*models.Category, error)
}

// Service exposes listing operations.
type Service interface {
	List(ctx context.Context) ([]ProductDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
	Create(ctx context.Context, sellerID uuid.UUID, input CreateProductInput) (*ProductDTO, error)
}

type service struct {
	repo       productRepository
	categories categoriesRepository
}

// NewService builds a products service with the provided repositories.
func NewService(repo productRepository, categories categoriesRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if categories == nil {
		return nil, fmt.Errorf("categories repository required")
	}
	return &service{repo: repo, categories: categories}, nil
}

// CreateProductInput captures the listing fields a seller may submit.
type CreateProductInput struct {
	Title       string
	Description string
	Price       decimal.Decimal
	Condition   string
	Size        *string
	Color       *string
	Material    *string
	CategoryID  *uuid.UUID
}

func (s *service) List(ctx context.Context) ([]ProductDTO, error) {
	products, err := s.repo.ListAvailable(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return FromModels(products), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	// view tracking is best effort, a miss never fails the read
	if err := s.repo.IncrementViewCount(ctx, id); err == nil {
		product.ViewCount++
	}

	return FromModel(product), nil
}

func (s *service) Create(ctx context.Context, sellerID uuid.UUID, input CreateProductInput) (*ProductDTO, error) {
	if sellerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Authentication required")
	}
	if !input.Price.IsPositive() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be greater than zero")
	}

	condition := enums.ProductConditionGood
	if input.Condition != "" {
		parsed, err := enums.ParseProductCondition(input.Condition)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid product condition")
		}
		condition = parsed
	}

	categoryID, err := s.resolveCategory(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	product, err := s.repo.Create(ctx, CreateProductDTO{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Condition:   condition,
		Size:        input.Size,
		Color:       input.Color,
		Material:    input.Material,
		SellerID:    sellerID,
		CategoryID:  categoryID,
	})
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "seller or category no longer exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product")
	}

	full, err := s.repo.FindByID(ctx, product.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload product")
	}
	return FromModel(full), nil
}

// resolveCategory returns the supplied category when it exists, otherwise
// falls back to the first category on record.
func (s *service) resolveCategory(ctx context.Context, id *uuid.UUID) (uuid.UUID, error) {
	if id != nil && *id != uuid.Nil {
		category, err := s.categories.FindByID(ctx, *id)
		if err == nil {
			return category.ID, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load category")
		}
	}

	first, err := s.categories.FindFirst(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "no category available")
		}
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load fallback category")
	}
	return first.ID, nil
}
