package categories

import (
	"context"
	"fmt"

	"chat-directory/feature/servers/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles category operations.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new category service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// List returns all categories ordered by name.
func (s *Service) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("category list query failed: %w", err)
	}
	return categories, nil
}
