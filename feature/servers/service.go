package servers

import (
	"context"
	"fmt"

	"chat-directory/core/auth"
	"chat-directory/core/storage"
	"chat-directory/feature/servers/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles server directory operations.
type Service struct {
	db     *gorm.DB
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new server directory service.
func NewService(db *gorm.DB, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// List composes and executes the filtered server query. The returned flag
// tells the caller whether the rows carry the num_members annotation.
func (s *Service) List(ctx context.Context, p ListParams, id auth.Identity) ([]models.AnnotatedServer, bool, error) {
	tx, err := Compose(s.db.WithContext(ctx), p, id)
	if err != nil {
		return nil, false, err
	}

	var rows []models.AnnotatedServer
	if err := tx.Find(&rows).Error; err != nil {
		return nil, false, fmt.Errorf("server list query failed: %w", err)
	}

	// An id lookup must resolve to an existing record; an empty result after
	// narrowing is reported the same way the absence of the id would be.
	if p.ByServerID != "" && len(rows) == 0 {
		return nil, false, ErrServerNotFound
	}

	return rows, p.WithNumMembers, nil
}
