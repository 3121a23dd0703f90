package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "expensely/internal/errors"
	"expensely/internal/models"
)

// summaryService aggregates expenses per category over a date range.
type summaryService struct {
	db *gorm.DB
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(db *gorm.DB) SummaryServicer {
	return &summaryService{db: db}
}

// GetSummary returns per-category totals for the user's expenses in the
// half-open range [from, to). Unlike budget spend, summaries respect the
// included flag: excluded expenses do not count here.
func (s *summaryService) GetSummary(userID string, from, to time.Time) (*Summary, error) {
	var categories []CategoryTotal
	err := s.db.Model(&models.Expense{}).
		Select("type, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("user_id = ? AND included = ? AND date >= ? AND date < ?", userID, true, from, to).
		Group("type").
		Order("total DESC").
		Scan(&categories).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := &Summary{
		From:       from,
		To:         to,
		Categories: categories,
	}
	for _, c := range categories {
		summary.Total += c.Total
	}
	if summary.Categories == nil {
		summary.Categories = []CategoryTotal{}
	}
	return summary, nil
}
