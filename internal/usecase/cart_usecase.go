package usecase

import (
	"context"
	"errors"

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
	ErrInsufficientStock = errors.New("not enough stock for requested quantity")
	ErrItemNotInCart     = errors.New("product is not in the cart")
)

type CartUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (*dto.CartResponse, error)
	AddItem(ctx context.Context, userID uuid.UUID, req *dto.AddCartItemRequest) (*dto.CartResponse, error)
	UpdateItem(ctx context.Context, userID uuid.UUID, productID uuid.UUID, req *dto.UpdateCartItemRequest) (*dto.CartResponse, error)
	RemoveItem(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (*dto.CartResponse, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

type cartUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	cartStore   *service.CartStore
	productRepo repository.ProductRepository
}

func NewCartUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cartStore *service.CartStore,
	productRepo repository.ProductRepository,
) CartUsecase {
	return &cartUsecase{
		db:          db,
		log:         log,
		cartStore:   cartStore,
		productRepo: productRepo,
	}
}

func (u *cartUsecase) Get(ctx context.Context, userID uuid.UUID) (*dto.CartResponse, error) {
	cart, err := u.cartStore.Get(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to load cart: %+v", err)
		return nil, err
	}

	return converter.CartToResponse(cart), nil
}

func (u *cartUsecase) AddItem(ctx context.Context, userID uuid.UUID, req *dto.AddCartItemRequest) (*dto.CartResponse, error) {
	product, err := u.productRepo.FindByID(u.db.WithContext(ctx), req.ProductID)
	if err != nil {
		u.log.Warnf("Failed to find product: %+v", err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	cart, err := u.cartStore.Get(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to load cart: %+v", err)
		return nil, err
	}

	quantity := req.Quantity
	for _, item := range cart.Items {
		if item.ProductID == req.ProductID {
			quantity += item.Quantity
		}
	}
	if !product.InStock(quantity) {
		return nil, ErrInsufficientStock
	}

	cart.Upsert(entity.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  req.Quantity,
	})

	if err := u.cartStore.Save(ctx, cart); err != nil {
		u.log.Warnf("Failed to save cart: %+v", err)
		return nil, err
	}

	return converter.CartToResponse(cart), nil
}

func (u *cartUsecase) UpdateItem(ctx context.Context, userID uuid.UUID, productID uuid.UUID, req *dto.UpdateCartItemRequest) (*dto.CartResponse, error) {
	cart, err := u.cartStore.Get(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to load cart: %+v", err)
		return nil, err
	}

	if req.Quantity > 0 {
		product, err := u.productRepo.FindByID(u.db.WithContext(ctx), productID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, ErrProductNotFound
		}
		if !product.InStock(req.Quantity) {
			return nil, ErrInsufficientStock
		}
	}

	if !cart.SetQuantity(productID, req.Quantity) {
		return nil, ErrItemNotInCart
	}

	if err := u.cartStore.Save(ctx, cart); err != nil {
		u.log.Warnf("Failed to save cart: %+v", err)
		return nil, err
	}

	return converter.CartToResponse(cart), nil
}

func (u *cartUsecase) RemoveItem(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (*dto.CartResponse, error) {
	cart, err := u.cartStore.Get(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to load cart: %+v", err)
		return nil, err
	}

	if !cart.Remove(productID) {
		return nil, ErrItemNotInCart
	}

	if err := u.cartStore.Save(ctx, cart); err != nil {
		u.log.Warnf("Failed to save cart: %+v", err)
		return nil, err
	}

	return converter.CartToResponse(cart), nil
}

func (u *cartUsecase) Clear(ctx context.Context, userID uuid.UUID) error {
	return u.cartStore.Clear(ctx, userID)
}
