package orders

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/carnamarket/backend/pkg/db/models"
	"github.com/carnamarket/backend/pkg/enums"
	pkgerrors "github.com/carnamarket/backend/pkg/errors"
)

type stubOrderRepo struct {
	order  *models.Order
	orders []models.Order
	err    error

	created *models.Order
}

func (s *stubOrderRepo) Create(_ context.Context, order *models.Order) (*models.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = order
	return order, nil
}

func (s *stubOrderRepo) FindByID(context.Context, uuid.UUID) (*models.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.order == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.order, nil
}

func (s *stubOrderRepo) ListForUser(context.Context, uuid.UUID) ([]models.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.orders, nil
}

type stubProductsRepo struct {
	product *models.Product

	unavailableCalls int
}

func (s *stubProductsRepo) FindByID(context.Context, uuid.UUID) (*models.Product, error) {
	if s.product == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.product, nil
}

func (s *stubProductsRepo) MarkUnavailable(context.Context, uuid.UUID) error {
	s.unavailableCalls++
	return nil
}

func availableProduct() *models.Product {
	return &models.Product{
		ID:          uuid.New(),
		Title:       "Gilles hat",
		Description: "d",
		Price:       decimal.NewFromInt(100),
		IsAvailable: true,
		SellerID:    uuid.New(),
		CategoryID:  uuid.New(),
	}
}

func TestServiceCreateComputesFeeAndRetiresListing(t *testing.T) {
	product := availableProduct()
	repo := &stubOrderRepo{}
	prodRepo := &stubProductsRepo{product: product}
	svc, err := NewService(repo, prodRepo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	svc.(*service).now = func() time.Time { return time.Unix(1756713600, 0) }

	buyer := uuid.New()
	dto, err := svc.Create(context.Background(), buyer, CreateOrderInput{
		ProductID:       product.ID,
		PaymentMethod:   "bancontact",
		ShippingAddress: "Grote Markt 1, Aalst",
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if !dto.ItemPrice.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("unexpected item price %s", dto.ItemPrice)
	}
	if !dto.PlatformFee.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("expected 5%% fee, got %s", dto.PlatformFee)
	}
	if !dto.TotalAmount.Equal(decimal.NewFromInt(105)) {
		t.Fatalf("unexpected total %s", dto.TotalAmount)
	}
	if dto.Status != enums.OrderStatusPending {
		t.Fatalf("expected pending status, got %s", dto.Status)
	}
	if !strings.HasPrefix(dto.OrderNumber, "CM-1756713600-") {
		t.Fatalf("unexpected order number %s", dto.OrderNumber)
	}
	if dto.BuyerID != buyer || dto.SellerID != product.SellerID {
		t.Fatal("order parties mismatch")
	}
	if prodRepo.unavailableCalls != 1 {
		t.Fatalf("expected listing retired once, got %d", prodRepo.unavailableCalls)
	}
}

func TestServiceCreateRejectsUnavailableProduct(t *testing.T) {
	product := availableProduct()
	product.IsAvailable = false
	svc, err := NewService(&stubOrderRepo{}, &stubProductsRepo{product: product})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.Create(context.Background(), uuid.New(), CreateOrderInput{
		ProductID:       product.ID,
		PaymentMethod:   "visa",
		ShippingAddress: "x",
	})
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", gotErr)
	}
}

func TestServiceCreateRejectsSelfPurchase(t *testing.T) {
	product := availableProduct()
	svc, err := NewService(&stubOrderRepo{}, &stubProductsRepo{product: product})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.Create(context.Background(), product.SellerID, CreateOrderInput{
		ProductID:       product.ID,
		PaymentMethod:   "visa",
		ShippingAddress: "x",
	})
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", gotErr)
	}
}

func TestServiceCreateRejectsUnknownPaymentMethod(t *testing.T) {
	svc, err := NewService(&stubOrderRepo{}, &stubProductsRepo{product: availableProduct()})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.Create(context.Background(), uuid.New(), CreateOrderInput{
		ProductID:     uuid.New(),
		PaymentMethod: "cheque",
	})
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", gotErr)
	}
}

func TestServiceCreateMapsConstraintViolationToConflict(t *testing.T) {
	product := availableProduct()
	repo := &stubOrderRepo{err: &pgconn.PgError{Code: "23505", ConstraintName: "orders_order_number_key"}}
	svc, err := NewService(repo, &stubProductsRepo{product: product})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.Create(context.Background(), uuid.New(), CreateOrderInput{
		ProductID:       product.ID,
		PaymentMethod:   "visa",
		ShippingAddress: "Grote Markt 1, Aalst",
	})
	typed := pkgerrors.As(gotErr)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict on constraint violation, got %v", gotErr)
	}
	if pkgerrors.MetadataFor(typed.Code()).HTTPStatus != 400 {
		t.Fatal("constraint violation must answer with 400")
	}
}

func TestServiceGetRestrictedToParticipants(t *testing.T) {
	buyer := uuid.New()
	seller := uuid.New()
	order := &models.Order{
		ID:          uuid.New(),
		OrderNumber: "CM-1-abcd",
		ItemPrice:   decimal.NewFromInt(10),
		PlatformFee: decimal.NewFromFloat(0.50),
		TotalAmount: decimal.NewFromFloat(10.50),
		Status:      enums.OrderStatusPending,
		BuyerID:     buyer,
		SellerID:    seller,
		ProductID:   uuid.New(),
	}
	svc, err := NewService(&stubOrderRepo{order: order}, &stubProductsRepo{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	if _, err := svc.Get(context.Background(), buyer, order.ID); err != nil {
		t.Fatalf("buyer should see the order: %v", err)
	}
	if _, err := svc.Get(context.Background(), seller, order.ID); err != nil {
		t.Fatalf("seller should see the order: %v", err)
	}

	_, gotErr := svc.Get(context.Background(), uuid.New(), order.ID)
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("strangers must get not found, got %v", gotErr)
	}
}
