package accounts

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"chat-directory/core/auth"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

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

func testIssuer() *auth.Issuer {
	return auth.NewIssuer(auth.Config{Secret: "test-secret", TokenTTLMinutes: 5})
}

func TestService_Register(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		svc := NewService(db, testIssuer(), zap.NewNop())

		sqlMock.ExpectQuery("SELECT count").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		sqlMock.ExpectBegin()
		sqlMock.ExpectExec("INSERT INTO `users`").WillReturnResult(sqlmock.NewResult(1, 1))
		sqlMock.ExpectCommit()

		user, err := svc.Register(context.Background(), "alice", "hunter2hunter2")
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.NotEqual(t, "hunter2hunter2", user.PasswordHash)
	})

	t.Run("UsernameTaken", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		svc := NewService(db, testIssuer(), zap.NewNop())

		sqlMock.ExpectQuery("SELECT count").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		_, err := svc.Register(context.Background(), "alice", "hunter2hunter2")
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("ShortUsername", func(t *testing.T) {
		db, _ := setupMockDB(t)
		svc := NewService(db, testIssuer(), zap.NewNop())

		_, err := svc.Register(context.Background(), "ab", "hunter2hunter2")
		assert.ErrorIs(t, err, ErrInvalidUsername)
	})

	t.Run("WeakPassword", func(t *testing.T) {
		db, _ := setupMockDB(t)
		svc := NewService(db, testIssuer(), zap.NewNop())

		_, err := svc.Register(context.Background(), "alice", "short")
		assert.ErrorIs(t, err, ErrWeakPassword)
	})
}

func TestService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	userRow := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "username", "password_hash"}).
			AddRow(7, "alice", string(hash))
	}

	t.Run("Valid", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		issuer := testIssuer()
		svc := NewService(db, issuer, zap.NewNop())

		sqlMock.ExpectQuery("SELECT .* FROM `users`").WillReturnRows(userRow())

		token, err := svc.Login(context.Background(), "alice", "hunter2hunter2")
		require.NoError(t, err)

		claims, err := issuer.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, uint(7), claims.UserID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		svc := NewService(db, testIssuer(), zap.NewNop())

		sqlMock.ExpectQuery("SELECT .* FROM `users`").WillReturnRows(userRow())

		_, err := svc.Login(context.Background(), "alice", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		svc := NewService(db, testIssuer(), zap.NewNop())

		sqlMock.ExpectQuery("SELECT .* FROM `users`").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash"}))

		_, err := svc.Login(context.Background(), "nobody", "hunter2hunter2")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func setupTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	app := fiber.New()
	db, sqlMock := setupMockDB(t)
	handler := NewHandler(NewService(db, testIssuer(), zap.NewNop()))
	handler.RegisterRoutes(app)
	return app, sqlMock
}

func TestHandleRegister(t *testing.T) {
	app, sqlMock := setupTestApp(t)

	sqlMock.ExpectQuery("SELECT count").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	sqlMock.ExpectBegin()
	sqlMock.ExpectExec("INSERT INTO `users`").WillReturnResult(sqlmock.NewResult(1, 1))
	sqlMock.ExpectCommit()

	payload, _ := json.Marshal(map[string]string{"username": "alice", "password": "hunter2hunter2"})
	req := httptest.NewRequest("POST", "/api/account/register", bytes.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "alice", body["username"])
}

func TestHandleLogin_InvalidCredentials(t *testing.T) {
	app, sqlMock := setupTestApp(t)

	sqlMock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash"}))

	payload, _ := json.Marshal(map[string]string{"username": "nobody", "password": "whatever1"})
	req := httptest.NewRequest("POST", "/api/account/login", bytes.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestFeature(t *testing.T) {
	feature := NewFeature(nil, testIssuer(), zap.NewNop())

	assert.Equal(t, "accounts", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}
