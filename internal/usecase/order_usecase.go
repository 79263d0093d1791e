package usecase

import (
	"context"
	"errors"
	"fmt"

	"vetclinic-backend/internal/converter"
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
	"vetclinic-backend/internal/domain/repository"
	"vetclinic-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrCartEmpty     = errors.New("cart is empty")
)

type OrderUsecase interface {
	Checkout(ctx context.Context, userID uuid.UUID) (*dto.OrderResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) (*dto.OrderListResponse, error)
	ListAll(ctx context.Context) (*dto.OrderListResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error)
}

type orderUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	orderRepo        repository.OrderRepository
	productRepo      repository.ProductRepository
	notificationRepo repository.NotificationRepository
	auditLogRepo     repository.AuditLogRepository
	cartStore        *service.CartStore
}

func NewOrderUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	notificationRepo repository.NotificationRepository,
	auditLogRepo repository.AuditLogRepository,
	cartStore *service.CartStore,
) OrderUsecase {
	return &orderUsecase{
		db:               db,
		log:              log,
		orderRepo:        orderRepo,
		productRepo:      productRepo,
		notificationRepo: notificationRepo,
		auditLogRepo:     auditLogRepo,
		cartStore:        cartStore,
	}
}

// Checkout converts the user's cart into a paid order. Payment is simulated:
// checkout always succeeds if every line still has stock. Stock is
// decremented atomically per line so a concurrent checkout cannot oversell.
func (u *orderUsecase) Checkout(ctx context.Context, userID uuid.UUID) (*dto.OrderResponse, error) {
	cart, err := u.cartStore.Get(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to load cart: %+v", err)
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	order := &entity.Order{
		ClientID: userID,
		Status:   entity.OrderStatusPaid,
		Total:    cart.Total(),
	}

	for _, item := range cart.Items {
		affected, err := u.productRepo.DecrementStock(tx, item.ProductID, item.Quantity)
		if err != nil {
			u.log.Warnf("Failed to decrement stock: %+v", err)
			return nil, err
		}
		if affected == 0 {
			return nil, ErrInsufficientStock
		}

		order.Items = append(order.Items, entity.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal(),
		})
	}

	if err := u.orderRepo.Create(tx, order); err != nil {
		u.log.Warnf("Failed to create order: %+v", err)
		return nil, err
	}

	notification := &entity.Notification{
		UserID:  userID,
		Title:   "Order confirmed",
		Message: fmt.Sprintf("Your order of %d item(s) totalling %s has been placed", cart.ItemCount(), order.Total.StringFixed(2)),
		Type:    entity.NotificationTypeOrder,
	}
	if err := u.notificationRepo.Create(tx, notification); err != nil {
		u.log.Warnf("Failed to create order notification: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if err := u.cartStore.Clear(ctx, userID); err != nil {
		u.log.Warnf("Failed to clear cart after checkout: %+v", err)
	}

	entry := &entity.AuditLog{
		UserID: &userID,
		Action: entity.AuditActionOrderCheckout,
		Metadata: entity.JSON{
			"order_id": order.ID.String(),
			"total":    order.Total.StringFixed(2),
		},
	}
	if err := u.auditLogRepo.Create(u.db, entry); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
	}

	return converter.OrderToResponse(order), nil
}

func (u *orderUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error) {
	order, err := u.orderRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find order: %+v", err)
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	return converter.OrderToResponse(order), nil
}

func (u *orderUsecase) ListByClient(ctx context.Context, clientID uuid.UUID) (*dto.OrderListResponse, error) {
	orders, err := u.orderRepo.FindByClientID(u.db.WithContext(ctx), clientID)
	if err != nil {
		u.log.Warnf("Failed to list orders by client: %+v", err)
		return nil, err
	}

	return &dto.OrderListResponse{
		Orders: converter.OrdersToResponses(orders),
		Total:  len(orders),
	}, nil
}

func (u *orderUsecase) ListAll(ctx context.Context) (*dto.OrderListResponse, error) {
	orders, err := u.orderRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list orders: %+v", err)
		return nil, err
	}

	return &dto.OrderListResponse{
		Orders: converter.OrdersToResponses(orders),
		Total:  len(orders),
	}, nil
}

func (u *orderUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	db := u.db.WithContext(ctx)

	affected, err := u.orderRepo.UpdateStatus(db, id, entity.OrderStatus(req.Status))
	if err != nil {
		u.log.Warnf("Failed to update order status: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrOrderNotFound
	}

	order, err := u.orderRepo.FindByID(db, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	return converter.OrderToResponse(order), nil
}
