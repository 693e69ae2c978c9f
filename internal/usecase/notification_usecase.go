package usecase

import (
	"context"
	"errors"

	"dental-clinic-portal/internal/delivery/dto"
	"dental-clinic-portal/internal/domain/entity"
	"dental-clinic-portal/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationUsecase interface {
	CreateNotification(ctx context.Context, req *dto.NotificationRequest) (*dto.NotificationResponse, error)
	GetNotification(ctx context.Context, id uint) (*dto.NotificationResponse, error)
	UpdateNotification(ctx context.Context, id uint, req *dto.NotificationRequest) (*dto.NotificationResponse, error)
	DeleteNotification(ctx context.Context, id uint) error
}

type notificationUsecase struct {
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
}

func NewNotificationUsecase(
	log *logrus.Logger,
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
) NotificationUsecase {
	return &notificationUsecase{
		log:              log,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

func (u *notificationUsecase) CreateNotification(ctx context.Context, req *dto.NotificationRequest) (*dto.NotificationResponse, error) {
	user, err := u.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	notification := &entity.Notification{
		UserID:  req.UserID,
		Message: req.Message,
		IsRead:  req.IsRead,
	}

	if err := u.notificationRepo.Create(ctx, notification); err != nil {
		u.log.Warnf("Failed to create notification: %+v", err)
		return nil, err
	}

	return notificationToResponse(notification), nil
}

func (u *notificationUsecase) GetNotification(ctx context.Context, id uint) (*dto.NotificationResponse, error) {
	notification, err := u.notificationRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find notification: %+v", err)
		return nil, err
	}
	if notification == nil {
		return nil, ErrNotificationNotFound
	}

	return notificationToResponse(notification), nil
}

// UpdateNotification is how a notification gets marked read: the client
// resubmits the record with is_read set.
func (u *notificationUsecase) UpdateNotification(ctx context.Context, id uint, req *dto.NotificationRequest) (*dto.NotificationResponse, error) {
	notification, err := u.notificationRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find notification: %+v", err)
		return nil, err
	}
	if notification == nil {
		return nil, ErrNotificationNotFound
	}

	user, err := u.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	notification.UserID = req.UserID
	notification.Message = req.Message
	notification.IsRead = req.IsRead

	if err := u.notificationRepo.Update(ctx, notification); err != nil {
		u.log.Warnf("Failed to update notification: %+v", err)
		return nil, err
	}

	return notificationToResponse(notification), nil
}

func (u *notificationUsecase) DeleteNotification(ctx context.Context, id uint) error {
	notification, err := u.notificationRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find notification: %+v", err)
		return err
	}
	if notification == nil {
		return ErrNotificationNotFound
	}

	if err := u.notificationRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete notification: %+v", err)
		return err
	}

	return nil
}

func notificationToResponse(notification *entity.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Message:   notification.Message,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
		UpdatedAt: notification.UpdatedAt,
	}
}
