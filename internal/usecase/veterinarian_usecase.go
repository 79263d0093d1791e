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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrVeterinarianNotFound = errors.New("veterinarian not found")
	ErrLicenseAlreadyExists = errors.New("license number already exists")
	ErrVetBranchNotFound    = errors.New("branch not found for veterinarian assignment")
)

type VeterinarianUsecase interface {
	Create(ctx context.Context, req *dto.CreateVeterinarianRequest) (*dto.VeterinarianResponse, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*dto.VeterinarianResponse, error)
	ListAll(ctx context.Context) (*dto.VeterinarianListResponse, error)
	ListByBranch(ctx context.Context, branchID uuid.UUID) (*dto.VeterinarianListResponse, error)
	Update(ctx context.Context, userID uuid.UUID, req *dto.UpdateVeterinarianRequest) (*dto.VeterinarianResponse, error)
}

type veterinarianUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	vetRepo    repository.VeterinarianProfileRepository
	userRepo   repository.UserRepository
	branchRepo repository.BranchRepository
}

func NewVeterinarianUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	vetRepo repository.VeterinarianProfileRepository,
	userRepo repository.UserRepository,
	branchRepo repository.BranchRepository,
) VeterinarianUsecase {
	return &veterinarianUsecase{
		db:         db,
		log:        log,
		vetRepo:    vetRepo,
		userRepo:   userRepo,
		branchRepo: branchRepo,
	}
}

func (u *veterinarianUsecase) Create(ctx context.Context, req *dto.CreateVeterinarianRequest) (*dto.VeterinarianResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if req.BranchID != nil {
		branch, err := u.branchRepo.FindByID(tx, *req.BranchID)
		if err != nil {
			return nil, err
		}
		if branch == nil {
			return nil, ErrVetBranchNotFound
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
		RoleID:   entity.RoleIDVeterinarian,
		IsActive: true,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	profile := &entity.VeterinarianProfile{
		UserID:        user.ID,
		LicenseNumber: req.LicenseNumber,
		Specialty:     req.Specialty,
		Biography:     req.Biography,
		BranchID:      req.BranchID,
	}

	if err := u.vetRepo.Create(tx, profile); err != nil {
		if isDuplicateKeyError(err, "license_number") {
			return nil, ErrLicenseAlreadyExists
		}
		u.log.Warnf("Failed to create veterinarian profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	profile.User = *user
	return converter.VeterinarianToResponse(profile), nil
}

func (u *veterinarianUsecase) GetByID(ctx context.Context, userID uuid.UUID) (*dto.VeterinarianResponse, error) {
	vet, err := u.vetRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find veterinarian: %+v", err)
		return nil, err
	}
	if vet == nil {
		return nil, ErrVeterinarianNotFound
	}

	return converter.VeterinarianToResponse(vet), nil
}

func (u *veterinarianUsecase) ListAll(ctx context.Context) (*dto.VeterinarianListResponse, error) {
	vets, err := u.vetRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list veterinarians: %+v", err)
		return nil, err
	}

	return &dto.VeterinarianListResponse{
		Veterinarians: converter.VeterinariansToResponses(vets),
		Total:         len(vets),
	}, nil
}

func (u *veterinarianUsecase) ListByBranch(ctx context.Context, branchID uuid.UUID) (*dto.VeterinarianListResponse, error) {
	vets, err := u.vetRepo.FindByBranchID(u.db.WithContext(ctx), branchID)
	if err != nil {
		u.log.Warnf("Failed to list veterinarians by branch: %+v", err)
		return nil, err
	}

	return &dto.VeterinarianListResponse{
		Veterinarians: converter.VeterinariansToResponses(vets),
		Total:         len(vets),
	}, nil
}

func (u *veterinarianUsecase) Update(ctx context.Context, userID uuid.UUID, req *dto.UpdateVeterinarianRequest) (*dto.VeterinarianResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	vet, err := u.vetRepo.FindByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find veterinarian: %+v", err)
		return nil, err
	}
	if vet == nil {
		return nil, ErrVeterinarianNotFound
	}

	if req.BranchID != nil {
		branch, err := u.branchRepo.FindByID(tx, *req.BranchID)
		if err != nil {
			return nil, err
		}
		if branch == nil {
			return nil, ErrVetBranchNotFound
		}
		vet.BranchID = req.BranchID
	}

	if req.FullName != nil || req.IsActive != nil {
		if req.FullName != nil {
			vet.User.FullName = *req.FullName
		}
		if req.IsActive != nil {
			vet.User.IsActive = *req.IsActive
		}
		if err := u.userRepo.Update(tx, &vet.User); err != nil {
			u.log.Warnf("Failed to update user: %+v", err)
			return nil, err
		}
	}

	if req.Specialty != nil {
		vet.Specialty = *req.Specialty
	}
	if req.Biography != nil {
		vet.Biography = *req.Biography
	}

	if err := u.vetRepo.Update(tx, vet); err != nil {
		u.log.Warnf("Failed to update veterinarian profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.VeterinarianToResponse(vet), nil
}
