package servers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"chat-directory/feature/servers/models"

	"github.com/minio/minio-go/v7"
)

// ErrIconNotFound is returned when a server has no stored icon.
var ErrIconNotFound = errors.New("icon not found")

func iconObjectName(serverID uint) string {
	return fmt.Sprintf("icons/%d", serverID)
}

// GetIcon streams the stored icon for a server. The returned content type
// comes from the object metadata.
func (s *Service) GetIcon(ctx context.Context, serverID uint) (io.ReadCloser, string, error) {
	if err := s.serverExists(ctx, serverID); err != nil {
		return nil, "", err
	}

	objectName := iconObjectName(serverID)
	info, err := s.client.StatObject(ctx, s.bucket, objectName, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, "", ErrIconNotFound
		}
		return nil, "", fmt.Errorf("failed to stat icon: %w", err)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch icon: %w", err)
	}

	return obj, info.ContentType, nil
}

// PutIcon uploads or replaces a server's icon.
func (s *Service) PutIcon(ctx context.Context, serverID uint, data []byte, contentType string) error {
	if err := s.serverExists(ctx, serverID); err != nil {
		return err
	}

	_, err := s.client.PutObject(ctx, s.bucket, iconObjectName(serverID),
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("failed to store icon: %w", err)
	}
	return nil
}

// DeleteIcon removes a server's icon. Removing an absent icon is not an error.
func (s *Service) DeleteIcon(ctx context.Context, serverID uint) error {
	if err := s.serverExists(ctx, serverID); err != nil {
		return err
	}

	if err := s.client.RemoveObject(ctx, s.bucket, iconObjectName(serverID), minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove icon: %w", err)
	}
	return nil
}

// serverExists translates a missing server row into ErrServerNotFound so the
// icon endpoints report unknown ids consistently with the list endpoint.
func (s *Service) serverExists(ctx context.Context, serverID uint) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Server{}).Where("id = ?", serverID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to look up server %d: %w", serverID, err)
	}
	if count == 0 {
		return ErrServerNotFound
	}
	return nil
}
