package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/catalog"
	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/internal/service/reviews/models"
)

// Service сервис для работы с отзывами
type Service struct {
	reviewRepo   ReviewRepository
	courtCatalog CourtCatalog
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(
	reviewRepo ReviewRepository,
	courtCatalog CourtCatalog,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		reviewRepo:   reviewRepo,
		courtCatalog: courtCatalog,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create создает отзыв. Отзыв неизменяем после создания.
// Пустой (после trim) комментарий и оценка вне 1..5 отклоняются,
// при отказе коллекция и уведомления не меняются.
func (s *Service) Create(ctx context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("Create: review for court=%s by %s, rating=%d", req.CourtID, req.ClientName, req.Rating)

	if err := s.validate(req); err != nil {
		s.logger.Warn("Create: validation failed for court=%s: %v", req.CourtID, err)
		return nil, err
	}

	court, err := s.courtCatalog.GetCourt(req.CourtID)
	if err != nil {
		if errors.Is(err, catalog.ErrCourtNotFound) {
			s.logger.Warn("Create: court id=%s not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("Create: failed to get court id=%s: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// Дата отзыва - календарный день создания
	date := dateOnly(s.timeProvider.Now())

	created, err := s.reviewRepo.Create(ctx, req.ToDomainReview(date))
	if err != nil {
		s.logger.Error("Create: repository error for court=%s: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	msg := fmt.Sprintf("%s оставил отзыв %d/5 о %s", created.ClientName, created.Rating, court.Name)
	if err := s.notifier.Notify(ctx, domain.NotificationReview, "Новый отзыв", msg); err != nil {
		s.logger.Error("Create: failed to emit review notification for id=%d: %v", created.ID, err)
	}

	s.logger.Info("Create: review id=%d created for court=%s", created.ID, req.CourtID)
	return models.FromDomainReview(created), nil
}

// GetCourtReviews получает отзывы корта по точному совпадению идентификатора
func (s *Service) GetCourtReviews(ctx context.Context, courtID string) (*models.ReviewListResponse, error) {
	s.logger.Info("GetCourtReviews: fetching reviews for court=%s", courtID)

	if courtID == "" {
		return nil, fmt.Errorf("%w: court id is required", ErrInvalidInput)
	}

	reviews, err := s.reviewRepo.GetByCourtID(ctx, courtID)
	if err != nil {
		s.logger.Error("GetCourtReviews: repository error for court=%s: %v", courtID, err)
		return nil, fmt.Errorf("%w: GetCourtReviews - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReviewList(reviews), nil
}

// validate проверяет входные данные отзыва
func (s *Service) validate(req *models.CreateReviewRequest) error {
	if req.CourtID == "" {
		return fmt.Errorf("%w: court id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}
	if req.Rating < domain.MinRating || req.Rating > domain.MaxRating {
		return fmt.Errorf("%w: got %d", ErrInvalidRating, req.Rating)
	}
	if strings.TrimSpace(req.Comment) == "" {
		return ErrEmptyComment
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
