package usecase

import (
	"context"
	"errors"

	"vetclinic-backend/internal/converter"
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
	"vetclinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

// Stock at or below this level shows up in the low-stock report
const lowStockThreshold = 5

type ProductUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, category string, page, pageSize int) (*dto.ProductListResponse, error)
	ListLowStock(ctx context.Context) (*dto.ProductListResponse, error)
	Update(ctx context.Context, id uuid.UUID, actorID uuid.UUID, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	productRepo  repository.ProductRepository
	auditLogRepo repository.AuditLogRepository
}

func NewProductUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	productRepo repository.ProductRepository,
	auditLogRepo repository.AuditLogRepository,
) ProductUsecase {
	return &productUsecase{
		db:           db,
		log:          log,
		productRepo:  productRepo,
		auditLogRepo: auditLogRepo,
	}
}

func (u *productUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &entity.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
	}

	if err := u.productRepo.Create(u.db.WithContext(ctx), product); err != nil {
		u.log.Warnf("Failed to create product: %+v", err)
		return nil, err
	}

	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	product, err := u.productRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find product: %+v", err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) List(ctx context.Context, category string, page, pageSize int) (*dto.ProductListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	products, total, err := u.productRepo.FindAll(u.db.WithContext(ctx), category, pageSize, (page-1)*pageSize)
	if err != nil {
		u.log.Warnf("Failed to list products: %+v", err)
		return nil, err
	}

	return &dto.ProductListResponse{
		Products: converter.ProductsToResponses(products),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (u *productUsecase) ListLowStock(ctx context.Context) (*dto.ProductListResponse, error) {
	products, err := u.productRepo.FindLowStock(u.db.WithContext(ctx), lowStockThreshold)
	if err != nil {
		u.log.Warnf("Failed to list low stock products: %+v", err)
		return nil, err
	}

	return &dto.ProductListResponse{
		Products: converter.ProductsToResponses(products),
		Total:    int64(len(products)),
		Page:     1,
		PageSize: len(products),
	}, nil
}

func (u *productUsecase) Update(ctx context.Context, id uuid.UUID, actorID uuid.UUID, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	db := u.db.WithContext(ctx)

	product, err := u.productRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find product: %+v", err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if err := u.productRepo.Update(db, product); err != nil {
		u.log.Warnf("Failed to update product: %+v", err)
		return nil, err
	}

	entry := &entity.AuditLog{
		UserID:   &actorID,
		Action:   entity.AuditActionProductUpdate,
		Metadata: entity.JSON{"product_id": product.ID.String()},
	}
	if err := u.auditLogRepo.Create(db, entry); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
	}

	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	db := u.db.WithContext(ctx)

	product, err := u.productRepo.FindByID(db, id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}

	return u.productRepo.Delete(db, id)
}
