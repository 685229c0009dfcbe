package server_test

import (
	"testing"

	"chat-directory/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_BodyLimitBytes(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"Default", 0, 4 * 1024 * 1024},
		{"Negative", -3, 4 * 1024 * 1024},
		{"One", 1, 1024 * 1024},
		{"Ten", 10, 10 * 1024 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{BodyLimitMB: tt.limit}
			assert.Equal(t, tt.want, c.BodyLimitBytes())
		})
	}
}
