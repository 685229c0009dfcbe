package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotatedServer_Response(t *testing.T) {
	row := AnnotatedServer{
		Server: Server{
			ID:         5,
			Name:       "Go Gophers",
			OwnerID:    2,
			CategoryID: 1,
		},
		NumMembers: 12,
	}

	t.Run("WithNumMembers", func(t *testing.T) {
		resp := row.Response(true)
		require.NotNil(t, resp.NumMembers)
		assert.Equal(t, int64(12), *resp.NumMembers)

		data, err := json.Marshal(resp)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"num_members":12`)
	})

	t.Run("WithoutNumMembers", func(t *testing.T) {
		resp := row.Response(false)
		assert.Nil(t, resp.NumMembers)

		data, err := json.Marshal(resp)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "num_members")
	})
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "servers", AnnotatedServer{}.TableName())
	assert.Equal(t, "server_members", ServerMember{}.TableName())
}
