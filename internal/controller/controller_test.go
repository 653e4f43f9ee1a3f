package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"smartnotes-be/internal/dto"
	"smartnotes-be/internal/model"
	"smartnotes-be/internal/pkg/serverutils"
	"smartnotes-be/internal/repository/unitofwork"
	"smartnotes-be/internal/service"
	"smartnotes-be/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testApp struct {
	app      *fiber.App
	authSvc  service.IAuthService
	noteSvc  service.INoteService
	sessions *session.Manager
}

// newTestApp wires the full HTTP surface against an in-memory database.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Note{}))

	factory := unitofwork.NewRepositoryFactory(db)
	authSvc := service.NewAuthService(factory, nil)
	noteSvc := service.NewNoteService(factory)

	sessions := session.NewManager(session.NewMemoryStore(time.Hour), "test-secret", time.Hour)

	engine := html.New("../../views", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(serverutils.ErrorHandlerMiddleware())
	app.Use(serverutils.SessionMiddleware(sessions))

	NewApiAuthController(authSvc).RegisterRoutes(app)
	NewApiNoteController(noteSvc).RegisterRoutes(app)
	NewAuthController(authSvc, sessions).RegisterRoutes(app)
	NewNoteController(noteSvc).RegisterRoutes(app)

	return &testApp{
		app:      app,
		authSvc:  authSvc,
		noteSvc:  noteSvc,
		sessions: sessions,
	}
}

func (ta *testApp) registerUser(t *testing.T, email, password string) uint {
	t.Helper()

	user, err := ta.authSvc.Register(context.Background(), &dto.RegisterRequest{
		Email:           email,
		Password:        password,
		ConfirmPassword: password,
	})
	require.NoError(t, err)
	return user.Id
}

func (ta *testApp) issueToken(t *testing.T, email, password string) string {
	t.Helper()

	res, err := ta.authSvc.IssueToken(context.Background(), &dto.LoginRequest{
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return res.AccessToken
}

func jsonRequest(method, target, token string, payload interface{}) *http.Request {
	var body io.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}
