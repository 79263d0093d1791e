package usecase

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"vetclinic-backend/internal/converter"
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
	"vetclinic-backend/internal/domain/repository"
	"vetclinic-backend/pkg/jwt"
	"vetclinic-backend/pkg/twofa"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
	ErrChallengeExpired   = errors.New("verification challenge expired or not found")
	ErrInvalidTwoFACode   = errors.New("invalid verification code")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterClientRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TwoFAChallengeResponse, error)
	VerifyTwoFA(ctx context.Context, req *dto.VerifyTwoFARequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, userID uuid.UUID, accessTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	IsTokenValid(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error)
}

// twoFAChallenge is the pending login state stored in Redis between the
// password step and the code verification step
type twoFAChallenge struct {
	UserID uuid.UUID `json:"user_id"`
	Code   string    `json:"code"`
}

type authUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	userRepo          repository.UserRepository
	roleRepo          repository.RoleRepository
	clientProfileRepo repository.ClientProfileRepository
	auditLogRepo      repository.AuditLogRepository
	jwtService        *jwt.JWTService
	twofaGen          *twofa.Generator
	redisClient       *redis.Client
	codeExpiry        time.Duration
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	clientProfileRepo repository.ClientProfileRepository,
	auditLogRepo repository.AuditLogRepository,
	jwtService *jwt.JWTService,
	twofaGen *twofa.Generator,
	redisClient *redis.Client,
	codeExpiry time.Duration,
) AuthUsecase {
	return &authUsecase{
		db:                db,
		log:               log,
		userRepo:          userRepo,
		roleRepo:          roleRepo,
		clientProfileRepo: clientProfileRepo,
		auditLogRepo:      auditLogRepo,
		jwtService:        jwtService,
		twofaGen:          twofaGen,
		redisClient:       redisClient,
		codeExpiry:        codeExpiry,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterClientRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	role, err := u.roleRepo.FindByID(tx, entity.RoleIDClient)
	if err != nil {
		u.log.Warnf("Failed to find client role: %+v", err)
		return nil, err
	}
	if role == nil {
		return nil, errors.New("client role is not seeded")
	}

	user := &entity.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
		RoleID:   role.ID,
		IsActive: true,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	profile := &entity.ClientProfile{
		UserID:      user.ID,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}

	if err := u.clientProfileRepo.Create(tx, profile); err != nil {
		u.log.Warnf("Failed to create client profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.audit(&user.ID, entity.AuditActionUserRegister, entity.JSON{"email": user.Email})

	return converter.UserToResponse(user), nil
}

// Login is the first step of the sign-in flow. The password is checked and a
// six-digit code is generated; the code is stored against a challenge ID in
// Redis and echoed back to the caller for the verification step.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TwoFAChallengeResponse, error) {
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	code, err := u.twofaGen.NewCode()
	if err != nil {
		u.log.Warnf("Failed to generate 2FA code: %+v", err)
		return nil, err
	}

	challengeID := uuid.New().String()
	payload, err := json.Marshal(twoFAChallenge{UserID: user.ID, Code: code})
	if err != nil {
		return nil, err
	}

	challengeKey := fmt.Sprintf("twofa:%s", challengeID)
	if err := u.redisClient.Set(ctx, challengeKey, payload, u.codeExpiry).Err(); err != nil {
		u.log.Warnf("Failed to store 2FA challenge in Redis: %+v", err)
		return nil, err
	}

	u.audit(&user.ID, entity.AuditActionUserLogin, entity.JSON{"email": user.Email})

	return &dto.TwoFAChallengeResponse{
		ChallengeID: challengeID,
		Code:        code,
		ExpiresIn:   int64(u.codeExpiry.Seconds()),
	}, nil
}

// VerifyTwoFA completes the sign-in flow, exchanging a valid challenge code
// for a token pair. The challenge is single-use.
func (u *authUsecase) VerifyTwoFA(ctx context.Context, req *dto.VerifyTwoFARequest) (*dto.TokenResponse, error) {
	challengeKey := fmt.Sprintf("twofa:%s", req.ChallengeID)

	data, err := u.redisClient.Get(ctx, challengeKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrChallengeExpired
		}
		u.log.Warnf("Failed to read 2FA challenge from Redis: %+v", err)
		return nil, err
	}

	var challenge twoFAChallenge
	if err := json.Unmarshal(data, &challenge); err != nil {
		return nil, err
	}

	if subtle.ConstantTimeCompare([]byte(challenge.Code), []byte(req.Code)) != 1 {
		return nil, ErrInvalidTwoFACode
	}

	if err := u.redisClient.Del(ctx, challengeKey).Err(); err != nil {
		u.log.Warnf("Failed to delete 2FA challenge: %+v", err)
		return nil, err
	}

	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), challenge.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	tokens, err := u.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	u.audit(&user.ID, entity.AuditActionTwoFAVerified, nil)

	return tokens, nil
}

func (u *authUsecase) Logout(ctx context.Context, userID uuid.UUID, accessTokenID string) error {
	accessKey := fmt.Sprintf("access_token:%s:%s", userID.String(), accessTokenID)
	if err := u.redisClient.Del(ctx, accessKey).Err(); err != nil {
		u.log.Warnf("Failed to delete access token: %+v", err)
		return err
	}

	u.audit(&userID, entity.AuditActionUserLogout, nil)
	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	refreshKey := fmt.Sprintf("refresh_token:%s:%s", claims.UserID.String(), claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	// Rotate: old refresh token is spent
	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return u.issueTokens(ctx, user)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

// IsTokenValid reports whether the token has been stored (and not revoked)
func (u *authUsecase) IsTokenValid(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error) {
	var key string
	if tokenType == jwt.AccessToken {
		key = fmt.Sprintf("access_token:%s:%s", userID.String(), tokenID)
	} else {
		key = fmt.Sprintf("refresh_token:%s:%s", userID.String(), tokenID)
	}

	exists, err := u.redisClient.Exists(ctx, key).Result()
	if err != nil {
		u.log.Warnf("Failed to check token validity: %+v", err)
		return false, err
	}

	return exists > 0, nil
}

func (u *authUsecase) issueTokens(ctx context.Context, user *entity.User) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email, user.RoleID)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(user.ID, user.Email, user.RoleID)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKey := fmt.Sprintf("access_token:%s:%s", user.ID.String(), accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", user.ID.String(), refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}
	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

// audit writes a best-effort audit trail entry; failures are logged, never
// surfaced to the caller
func (u *authUsecase) audit(userID *uuid.UUID, action string, metadata entity.JSON) {
	entry := &entity.AuditLog{UserID: userID, Action: action, Metadata: metadata}
	if err := u.auditLogRepo.Create(u.db, entry); err != nil {
		u.log.Warnf("Failed to write audit log %s: %+v", action, err)
	}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
