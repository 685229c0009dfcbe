package servers

import (
	"testing"

	"chat-directory/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestFeature(t *testing.T) {
	mockClient := new(mocks.Client)
	feature := NewFeature(nil, mockClient, "test-bucket", zap.NewNop())

	assert.Equal(t, "servers", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	err := feature.Load(app)
	assert.NoError(t, err)
}
