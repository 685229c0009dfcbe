package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "chat_directory",
			TimeoutSeconds: 1,
		}

		// Connect should fail (timeout or refused)
		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	// We cannot test a successful connection without a real database,
	// but the error path ensures Connect fails gracefully.
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestMissingColumns(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("id", "bigint unsigned", "NO", "PRI", nil, "auto_increment").
		AddRow("name", "varchar(100)", "NO", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `servers`").WillReturnRows(rows)

	missing, err := MissingColumns(db, "servers", []string{"id", "name", "category_id"})
	require.NoError(t, err)
	assert.Equal(t, []string{"category_id"}, missing)
}

func TestMissingColumns_AllPresent(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("id", "bigint unsigned", "NO", "PRI", nil, "auto_increment").
		AddRow("name", "varchar(100)", "NO", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `categories`").WillReturnRows(rows)

	missing, err := MissingColumns(db, "categories", []string{"ID", "Name"})
	require.NoError(t, err)
	assert.Empty(t, missing)
}
