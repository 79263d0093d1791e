package usecase

import (
	"context"
	"errors"

	"vetclinic-backend/internal/converter"
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationUsecase interface {
	ListMine(ctx context.Context, userID uuid.UUID) (*dto.NotificationListResponse, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

type notificationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
}

func NewNotificationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	notificationRepo repository.NotificationRepository,
) NotificationUsecase {
	return &notificationUsecase{
		db:               db,
		log:              log,
		notificationRepo: notificationRepo,
	}
}

func (u *notificationUsecase) ListMine(ctx context.Context, userID uuid.UUID) (*dto.NotificationListResponse, error) {
	db := u.db.WithContext(ctx)

	notifications, err := u.notificationRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to list notifications: %+v", err)
		return nil, err
	}

	unread, err := u.notificationRepo.CountUnread(db, userID)
	if err != nil {
		u.log.Warnf("Failed to count unread notifications: %+v", err)
		return nil, err
	}

	return &dto.NotificationListResponse{
		Notifications: converter.NotificationsToResponses(notifications),
		Unread:        unread,
		Total:         len(notifications),
	}, nil
}

// MarkRead marks a single notification as read. Scoped to the owning user so
// one user cannot touch another's feed.
func (u *notificationUsecase) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	affected, err := u.notificationRepo.MarkRead(u.db.WithContext(ctx), id, userID)
	if err != nil {
		u.log.Warnf("Failed to mark notification read: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (u *notificationUsecase) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if err := u.notificationRepo.MarkAllRead(u.db.WithContext(ctx), userID); err != nil {
		u.log.Warnf("Failed to mark all notifications read: %+v", err)
		return err
	}
	return nil
}
