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

var ErrBranchNotFound = errors.New("branch not found")

type BranchUsecase interface {
	Create(ctx context.Context, req *dto.CreateBranchRequest) (*dto.BranchResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.BranchResponse, error)
	ListAll(ctx context.Context) (*dto.BranchListResponse, error)
	ListActive(ctx context.Context) (*dto.BranchListResponse, error)
	Update(ctx context.Context, id uuid.UUID, actorID uuid.UUID, req *dto.UpdateBranchRequest) (*dto.BranchResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type branchUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	branchRepo   repository.BranchRepository
	auditLogRepo repository.AuditLogRepository
}

func NewBranchUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	branchRepo repository.BranchRepository,
	auditLogRepo repository.AuditLogRepository,
) BranchUsecase {
	return &branchUsecase{
		db:           db,
		log:          log,
		branchRepo:   branchRepo,
		auditLogRepo: auditLogRepo,
	}
}

func toServiceList(services []string) entity.ServiceList {
	list := make(entity.ServiceList, 0, len(services))
	for _, svc := range services {
		list = append(list, entity.BranchService(svc))
	}
	return list
}

func (u *branchUsecase) Create(ctx context.Context, req *dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	branch := &entity.Branch{
		Name:         req.Name,
		Address:      req.Address,
		Services:     toServiceList(req.Services),
		IsActive:     true,
		Is24Hours:    req.Is24Hours,
		OpeningHours: req.OpeningHours,
	}

	if err := u.branchRepo.Create(u.db.WithContext(ctx), branch); err != nil {
		u.log.Warnf("Failed to create branch: %+v", err)
		return nil, err
	}

	return converter.BranchToResponse(branch), nil
}

func (u *branchUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.BranchResponse, error) {
	branch, err := u.branchRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find branch: %+v", err)
		return nil, err
	}
	if branch == nil {
		return nil, ErrBranchNotFound
	}

	return converter.BranchToResponse(branch), nil
}

func (u *branchUsecase) ListAll(ctx context.Context) (*dto.BranchListResponse, error) {
	branches, err := u.branchRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list branches: %+v", err)
		return nil, err
	}

	return &dto.BranchListResponse{
		Branches: converter.BranchesToResponses(branches),
		Total:    len(branches),
	}, nil
}

// ListActive returns only branches that are selectable for booking
func (u *branchUsecase) ListActive(ctx context.Context) (*dto.BranchListResponse, error) {
	branches, err := u.branchRepo.FindActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list active branches: %+v", err)
		return nil, err
	}

	return &dto.BranchListResponse{
		Branches: converter.BranchesToResponses(branches),
		Total:    len(branches),
	}, nil
}

func (u *branchUsecase) Update(ctx context.Context, id uuid.UUID, actorID uuid.UUID, req *dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	db := u.db.WithContext(ctx)

	branch, err := u.branchRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find branch: %+v", err)
		return nil, err
	}
	if branch == nil {
		return nil, ErrBranchNotFound
	}

	if req.Name != nil {
		branch.Name = *req.Name
	}
	if req.Address != nil {
		branch.Address = *req.Address
	}
	if req.Services != nil {
		branch.Services = toServiceList(req.Services)
	}
	if req.IsActive != nil {
		branch.IsActive = *req.IsActive
	}
	if req.Is24Hours != nil {
		branch.Is24Hours = *req.Is24Hours
	}
	if req.OpeningHours != nil {
		branch.OpeningHours = *req.OpeningHours
	}

	if err := u.branchRepo.Update(db, branch); err != nil {
		u.log.Warnf("Failed to update branch: %+v", err)
		return nil, err
	}

	entry := &entity.AuditLog{
		UserID:   &actorID,
		Action:   entity.AuditActionBranchUpdate,
		Metadata: entity.JSON{"branch_id": branch.ID.String()},
	}
	if err := u.auditLogRepo.Create(db, entry); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
	}

	return converter.BranchToResponse(branch), nil
}

func (u *branchUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	db := u.db.WithContext(ctx)

	branch, err := u.branchRepo.FindByID(db, id)
	if err != nil {
		return err
	}
	if branch == nil {
		return ErrBranchNotFound
	}

	return u.branchRepo.Delete(db, id)
}
