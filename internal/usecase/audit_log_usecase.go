package usecase

import (
	"context"

	"vetclinic-backend/internal/converter"
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditLogUsecase interface {
	List(ctx context.Context, page, pageSize int) (*dto.AuditLogListResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) List(ctx context.Context, page, pageSize int) (*dto.AuditLogListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	logs, total, err := u.auditLogRepo.FindAll(u.db.WithContext(ctx), pageSize, (page-1)*pageSize)
	if err != nil {
		u.log.Warnf("Failed to list audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:     converter.AuditLogsToResponses(logs),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
