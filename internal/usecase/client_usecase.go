package usecase

import (
	"context"

	"vetclinic-backend/internal/converter"
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ClientUsecase interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*dto.ClientResponse, error)
	ListAll(ctx context.Context) (*dto.ClientListResponse, error)
	Update(ctx context.Context, userID uuid.UUID, req *dto.UpdateClientRequest) (*dto.ClientResponse, error)
}

type clientUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	clientProfileRepo repository.ClientProfileRepository
	userRepo          repository.UserRepository
}

func NewClientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clientProfileRepo repository.ClientProfileRepository,
	userRepo repository.UserRepository,
) ClientUsecase {
	return &clientUsecase{
		db:                db,
		log:               log,
		clientProfileRepo: clientProfileRepo,
		userRepo:          userRepo,
	}
}

func (u *clientUsecase) GetByID(ctx context.Context, userID uuid.UUID) (*dto.ClientResponse, error) {
	client, err := u.clientProfileRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find client profile: %+v", err)
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	return converter.ClientToResponse(client), nil
}

func (u *clientUsecase) ListAll(ctx context.Context) (*dto.ClientListResponse, error) {
	clients, err := u.clientProfileRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list clients: %+v", err)
		return nil, err
	}

	return &dto.ClientListResponse{
		Clients: converter.ClientsToResponses(clients),
		Total:   len(clients),
	}, nil
}

func (u *clientUsecase) Update(ctx context.Context, userID uuid.UUID, req *dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	client, err := u.clientProfileRepo.FindByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find client profile: %+v", err)
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	if req.FullName != nil {
		client.User.FullName = *req.FullName
		if err := u.userRepo.Update(tx, &client.User); err != nil {
			u.log.Warnf("Failed to update user: %+v", err)
			return nil, err
		}
	}
	if req.PhoneNumber != nil {
		client.PhoneNumber = *req.PhoneNumber
	}
	if req.Address != nil {
		client.Address = *req.Address
	}

	if err := u.clientProfileRepo.Update(tx, client); err != nil {
		u.log.Warnf("Failed to update client profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ClientToResponse(client), nil
}
