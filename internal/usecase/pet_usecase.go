package usecase

import (
	"context"
	"errors"
	"time"

	"vetclinic-backend/internal/converter"
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
	"vetclinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPetNotFound       = errors.New("pet not found")
	ErrClientNotFound    = errors.New("client not found")
	ErrNotPetOwner       = errors.New("pet does not belong to this client")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
)

type PetUsecase interface {
	Create(ctx context.Context, req *dto.CreatePetRequest) (*dto.PetResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PetResponse, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) (*dto.PetListResponse, error)
	ListAll(ctx context.Context) (*dto.PetListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePetRequest) (*dto.PetResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type petUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	petRepo           repository.PetRepository
	clientProfileRepo repository.ClientProfileRepository
}

func NewPetUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	petRepo repository.PetRepository,
	clientProfileRepo repository.ClientProfileRepository,
) PetUsecase {
	return &petUsecase{
		db:                db,
		log:               log,
		petRepo:           petRepo,
		clientProfileRepo: clientProfileRepo,
	}
}

func (u *petUsecase) Create(ctx context.Context, req *dto.CreatePetRequest) (*dto.PetResponse, error) {
	db := u.db.WithContext(ctx)

	client, err := u.clientProfileRepo.FindByUserID(db, req.ClientID)
	if err != nil {
		u.log.Warnf("Failed to find client profile: %+v", err)
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	pet := &entity.Pet{
		ClientID: req.ClientID,
		Name:     req.Name,
		Species:  req.Species,
		Breed:    req.Breed,
		WeightKg: req.WeightKg,
	}

	if req.BirthDate != "" {
		birthDate, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		pet.BirthDate = &birthDate
	}

	if err := u.petRepo.Create(db, pet); err != nil {
		u.log.Warnf("Failed to create pet: %+v", err)
		return nil, err
	}

	return converter.PetToResponse(pet), nil
}

func (u *petUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PetResponse, error) {
	pet, err := u.petRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find pet: %+v", err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}

	return converter.PetToResponse(pet), nil
}

func (u *petUsecase) ListByClient(ctx context.Context, clientID uuid.UUID) (*dto.PetListResponse, error) {
	pets, err := u.petRepo.FindByClientID(u.db.WithContext(ctx), clientID)
	if err != nil {
		u.log.Warnf("Failed to list pets by client: %+v", err)
		return nil, err
	}

	return &dto.PetListResponse{Pets: converter.PetsToResponses(pets), Total: len(pets)}, nil
}

func (u *petUsecase) ListAll(ctx context.Context) (*dto.PetListResponse, error) {
	pets, err := u.petRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list pets: %+v", err)
		return nil, err
	}

	return &dto.PetListResponse{Pets: converter.PetsToResponses(pets), Total: len(pets)}, nil
}

func (u *petUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePetRequest) (*dto.PetResponse, error) {
	db := u.db.WithContext(ctx)

	pet, err := u.petRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find pet: %+v", err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}

	if req.Name != nil {
		pet.Name = *req.Name
	}
	if req.Species != nil {
		pet.Species = *req.Species
	}
	if req.Breed != nil {
		pet.Breed = *req.Breed
	}
	if req.BirthDate != nil {
		birthDate, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		pet.BirthDate = &birthDate
	}
	if req.WeightKg != nil {
		pet.WeightKg = *req.WeightKg
	}

	if err := u.petRepo.Update(db, pet); err != nil {
		u.log.Warnf("Failed to update pet: %+v", err)
		return nil, err
	}

	return converter.PetToResponse(pet), nil
}

func (u *petUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	db := u.db.WithContext(ctx)

	pet, err := u.petRepo.FindByID(db, id)
	if err != nil {
		return err
	}
	if pet == nil {
		return ErrPetNotFound
	}

	return u.petRepo.Delete(db, id)
}
