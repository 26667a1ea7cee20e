package notifications

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/internal/service/notifications/models"
)

// Service сервис уведомлений. Создание уведомлений доступно только
// изнутри (Notify вызывают сервисы бронирований и отзывов), presentation
// слой может только читать и помечать прочитанными.
type Service struct {
	notificationRepo NotificationRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(notificationRepo NotificationRepository, logger Logger) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Notify создает уведомление. Вызывается только как side-effect мутаций
// бронирований и отзывов.
func (s *Service) Notify(ctx context.Context, typ domain.NotificationType, title, message string) error {
	created, err := s.notificationRepo.Create(ctx, typ, title, message, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("Notify: repository error: %v", err)
		return fmt.Errorf("%w: Notify - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Notify: notification id=%d type=%s created", created.ID, typ)
	return nil
}

// List возвращает все уведомления (свежие в начале) и счетчик непрочитанных
func (s *Service) List(ctx context.Context) (*models.NotificationListResponse, error) {
	notifications, err := s.notificationRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	unread, err := s.notificationRepo.UnreadCount(ctx)
	if err != nil {
		s.logger.Error("List: failed to count unread: %v", err)
		return nil, fmt.Errorf("%w: List - failed to count unread: %v", ErrInternal, err)
	}

	return models.FromDomainNotificationList(notifications, unread), nil
}

// MarkRead помечает уведомление прочитанным (no-op для отсутствующего ID)
func (s *Service) MarkRead(ctx context.Context, id int64) error {
	if err := s.notificationRepo.MarkRead(ctx, id); err != nil {
		s.logger.Error("MarkRead: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkRead: notification id=%d marked read", id)
	return nil
}

// MarkAllRead помечает все уведомления прочитанными
func (s *Service) MarkAllRead(ctx context.Context) error {
	if err := s.notificationRepo.MarkAllRead(ctx); err != nil {
		s.logger.Error("MarkAllRead: repository error: %v", err)
		return fmt.Errorf("%w: MarkAllRead - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkAllRead: all notifications marked read")
	return nil
}

// UnreadCount возвращает количество непрочитанных уведомлений
func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	count, err := s.notificationRepo.UnreadCount(ctx)
	if err != nil {
		s.logger.Error("UnreadCount: repository error: %v", err)
		return 0, fmt.Errorf("%w: UnreadCount - repository error: %v", ErrInternal, err)
	}
	return count, nil
}
