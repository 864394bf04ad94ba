package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/carnamarket/backend/pkg/db"
	"github.com/carnamarket/backend/pkg/db/models"
	"github.com/carnamarket/backend/pkg/enums"
	pkgerrors "github.com/carnamarket/backend/pkg/errors"
)

// platformFeeRate is the marketplace cut applied on top of the item price.
var platformFeeRate = decimal.NewFromFloat(0.05)

type orderRepository interface {
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
}

type productRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	MarkUnavailable(ctx context.Context, id uuid.UUID) error
}

// Service exposes order operations.
type Service interface {
	Create(ctx context.Context, buyerID uuid.UUID, input CreateOrderInput) (*OrderDTO, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]OrderDTO, error)
	Get(ctx context.Context, userID, orderID uuid.UUID) (*OrderDTO, error)
}

type service struct {
	repo     orderRepository
	products productRepository
	now      func() time.Time
}

// NewService builds an orders service with the provided repositories.
func NewService(repo orderRepository, products productRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{repo: repo, products: products, now: time.Now}, nil
}

// CreateOrderInput captures the fields a buyer submits at checkout.
type CreateOrderInput struct {
	ProductID       uuid.UUID
	PaymentMethod   string
	ShippingAddress string
}

func (s *service) Create(ctx context.Context, buyerID uuid.UUID, input CreateOrderInput) (*OrderDTO, error) {
	if buyerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Authentication required")
	}

	method, err := enums.ParsePaymentMethod(input.PaymentMethod)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment method")
	}

	product, err := s.products.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if !product.IsAvailable {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "Product is no longer available")
	}
	if product.SellerID == buyerID {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cannot buy your own listing")
	}

	fee := product.Price.Mul(platformFeeRate).Round(2)
	order := &models.Order{
		ID:              uuid.New(),
		OrderNumber:     s.nextOrderNumber(),
		ItemPrice:       product.Price,
		PlatformFee:     fee,
		TotalAmount:     product.Price.Add(fee),
		Status:          enums.OrderStatusPending,
		PaymentMethod:   method,
		ShippingAddress: input.ShippingAddress,
		BuyerID:         buyerID,
		SellerID:        product.SellerID,
		ProductID:       product.ID,
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		if db.IsUniqueViolation(err) || db.IsForeignKeyViolation(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "order could not be recorded, please retry")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
	}
	if err := s.products.MarkUnavailable(ctx, product.ID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mark product unavailable")
	}

	created.Product = product
	return FromModel(created), nil
}

func (s *service) ListMine(ctx context.Context, userID uuid.UUID) ([]OrderDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Authentication required")
	}

	orders, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return FromModels(orders), nil
}

func (s *service) Get(ctx context.Context, userID, orderID uuid.UUID) (*OrderDTO, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	if order.BuyerID != userID && order.SellerID != userID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Order not found")
	}
	return FromModel(order), nil
}

// nextOrderNumber yields a sortable, human readable number like
// CM-1756713600-4f2a. Uniqueness is still enforced by the index.
func (s *service) nextOrderNumber() string {
	suffix := uuid.NewString()[:4]
	return fmt.Sprintf("CM-%d-%s", s.now().Unix(), suffix)
}
