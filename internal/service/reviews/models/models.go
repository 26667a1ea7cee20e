package models

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// Request модели

// CreateReviewRequest запрос на создание отзыва
type CreateReviewRequest struct {
	CourtID    string `json:"courtId"`
	ClientName string `json:"clientName"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// Response модели

// ReviewResponse ответ с данными отзыва
type ReviewResponse struct {
	ID         int64  `json:"id"`
	CourtID    string `json:"courtId"`
	ClientName string `json:"clientName"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	Date       string `json:"date"` // "2026-01-15"
}

// ReviewListResponse ответ со списком отзывов
type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}

// Методы конвертации

// ToDomainReview конвертирует запрос в domain модель (без ID и даты)
func (r *CreateReviewRequest) ToDomainReview(date time.Time) *domain.Review {
	return &domain.Review{
		CourtID:    r.CourtID,
		ClientName: r.ClientName,
		Rating:     r.Rating,
		Comment:    r.Comment,
		Date:       date,
	}
}

// FromDomainReview конвертирует domain модель в DTO
func FromDomainReview(rev *domain.Review) *ReviewResponse {
	if rev == nil {
		return nil
	}

	return &ReviewResponse{
		ID:         rev.ID,
		CourtID:    rev.CourtID,
		ClientName: rev.ClientName,
		Rating:     rev.Rating,
		Comment:    rev.Comment,
		Date:       rev.Date.Format(domain.DateFormat),
	}
}

// FromDomainReviewList конвертирует список domain моделей в DTO
func FromDomainReviewList(reviews []*domain.Review) *ReviewListResponse {
	resp := &ReviewListResponse{
		Reviews: make([]ReviewResponse, 0, len(reviews)),
	}

	for _, rev := range reviews {
		if revResp := FromDomainReview(rev); revResp != nil {
			resp.Reviews = append(resp.Reviews, *revResp)
		}
	}

	return resp
}
