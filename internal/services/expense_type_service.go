package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "expensely/internal/errors"
	"expensely/internal/models"
)

// expenseTypeService handles user-defined expense categories.
type expenseTypeService struct {
	db *gorm.DB
}

// NewExpenseTypeService creates a new ExpenseTypeServicer.
func NewExpenseTypeService(db *gorm.DB) ExpenseTypeServicer {
	return &expenseTypeService{db: db}
}

// CreateExpenseType creates a new named category for the user.
func (s *expenseTypeService) CreateExpenseType(userID, name, description string) (*models.ExpenseType, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}

	expenseType := &models.ExpenseType{
		UserID:      userID,
		Name:        name,
		Description: description,
	}

	if err := s.db.Create(expenseType).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateExpenseType
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expenseType, nil
}

// GetUserExpenseTypes returns the user's categories ordered by name.
func (s *expenseTypeService) GetUserExpenseTypes(userID string) ([]models.ExpenseType, error) {
	var types []models.ExpenseType
	if err := s.db.Where("user_id = ?", userID).Order("name").Find(&types).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return types, nil
}

// UpdateExpenseType renames a category or updates its description. Existing
// expenses keep the old type string; they are not reclassified.
func (s *expenseTypeService) UpdateExpenseType(userID, typeID, name, description string) (*models.ExpenseType, error) {
	var expenseType models.ExpenseType
	if err := s.db.Where("id = ? AND user_id = ?", typeID, userID).First(&expenseType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseTypeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if description != "" {
		updates["description"] = description
	}

	if len(updates) > 0 {
		if err := s.db.Model(&expenseType).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, apperrors.ErrDuplicateExpenseType
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return &expenseType, nil
}

// DeleteExpenseType removes a category owned by the user.
func (s *expenseTypeService) DeleteExpenseType(userID, typeID string) error {
	result := s.db.Where("id = ? AND user_id = ?", typeID, userID).Delete(&models.ExpenseType{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrExpenseTypeNotFound
	}
	return nil
}
