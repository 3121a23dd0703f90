package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "expensely/internal/errors"
	"expensely/internal/models"
)

// templateService handles reusable expense templates.
type templateService struct {
	db *gorm.DB
}

// NewTemplateService creates a new TemplateServicer.
func NewTemplateService(db *gorm.DB) TemplateServicer {
	return &templateService{db: db}
}

// CreateTemplate creates a reusable expense preset.
func (s *templateService) CreateTemplate(userID, name, expenseType string, amount int64, description string) (*models.Template, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}

	template := &models.Template{
		UserID:      userID,
		Name:        name,
		Type:        expenseType,
		Amount:      amount,
		Description: description,
	}

	if err := s.db.Create(template).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return template, nil
}

// GetUserTemplates returns the user's templates ordered by name.
func (s *templateService) GetUserTemplates(userID string) ([]models.Template, error) {
	var templates []models.Template
	if err := s.db.Where("user_id = ?", userID).Order("name").Find(&templates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return templates, nil
}

// UpdateTemplate updates the supplied fields of an existing template.
func (s *templateService) UpdateTemplate(userID, templateID string, name, expenseType *string, amount *int64, description *string) (*models.Template, error) {
	template, err := s.getTemplate(userID, templateID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != nil {
		updates["name"] = *name
	}
	if expenseType != nil {
		updates["type"] = *expenseType
	}
	if amount != nil {
		if *amount < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
		}
		updates["amount"] = *amount
	}
	if description != nil {
		updates["description"] = *description
	}

	if len(updates) > 0 {
		if err := s.db.Model(template).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return template, nil
}

// DeleteTemplate removes a template owned by the user.
func (s *templateService) DeleteTemplate(userID, templateID string) error {
	template, err := s.getTemplate(userID, templateID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(template).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ApplyTemplate records a new expense from the template on the given date.
func (s *templateService) ApplyTemplate(userID, templateID string, date time.Time) (*models.Expense, error) {
	template, err := s.getTemplate(userID, templateID)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		UserID:      userID,
		Type:        template.Type,
		Amount:      template.Amount,
		Date:        date,
		Description: template.Description,
		Included:    true,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

func (s *templateService) getTemplate(userID, templateID string) (*models.Template, error) {
	var template models.Template
	if err := s.db.Where("id = ? AND user_id = ?", templateID, userID).First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTemplateNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &template, nil
}
