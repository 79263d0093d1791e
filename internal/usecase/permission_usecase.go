package usecase

import (
	"context"
	"errors"

	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
	"vetclinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrUnknownRole = errors.New("unknown role name")

type PermissionUsecase interface {
	GetMatrix(ctx context.Context) (*dto.PermissionMatrixResponse, error)
	SetPermission(ctx context.Context, actorID uuid.UUID, req *dto.SetPermissionRequest) (*dto.PermissionMatrixResponse, error)
	SeedDefaults(ctx context.Context) error
}

type permissionUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	permissionRepo repository.PermissionRepository
	auditLogRepo   repository.AuditLogRepository
}

func NewPermissionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	permissionRepo repository.PermissionRepository,
	auditLogRepo repository.AuditLogRepository,
) PermissionUsecase {
	return &permissionUsecase{
		db:             db,
		log:            log,
		permissionRepo: permissionRepo,
		auditLogRepo:   auditLogRepo,
	}
}

func (u *permissionUsecase) GetMatrix(ctx context.Context) (*dto.PermissionMatrixResponse, error) {
	perms, err := u.permissionRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to load permissions: %+v", err)
		return nil, err
	}

	return &dto.PermissionMatrixResponse{Matrix: entity.BuildPermissionMatrix(perms)}, nil
}

func (u *permissionUsecase) SetPermission(ctx context.Context, actorID uuid.UUID, req *dto.SetPermissionRequest) (*dto.PermissionMatrixResponse, error) {
	roleID := entity.RoleIDByName(req.Role)
	if roleID == 0 {
		return nil, ErrUnknownRole
	}

	db := u.db.WithContext(ctx)

	perm := &entity.RolePermission{
		RoleID:   roleID,
		Resource: req.Resource,
		Action:   req.Action,
		Allowed:  req.Allowed,
	}

	if err := u.permissionRepo.Upsert(db, perm); err != nil {
		u.log.Warnf("Failed to upsert permission: %+v", err)
		return nil, err
	}

	entry := &entity.AuditLog{
		UserID: &actorID,
		Action: entity.AuditActionPermissionUpdate,
		Metadata: entity.JSON{
			"role":     req.Role,
			"resource": req.Resource,
			"action":   req.Action,
			"allowed":  req.Allowed,
		},
	}
	if err := u.auditLogRepo.Create(db, entry); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
	}

	return u.GetMatrix(ctx)
}

// SeedDefaults installs the default permission matrix if no rows exist yet.
// Called once at startup; a populated table is left untouched.
func (u *permissionUsecase) SeedDefaults(ctx context.Context) error {
	db := u.db.WithContext(ctx)

	count, err := u.permissionRepo.Count(db)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	u.log.Info("Seeding default role permissions")
	return u.permissionRepo.CreateBatch(db, entity.DefaultPermissions())
}
