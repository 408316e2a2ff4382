package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	localCache "github.com/quillworks/quill/pkg/internal/cache"
	"github.com/quillworks/quill/pkg/internal/database"
	"github.com/quillworks/quill/pkg/internal/http/admin"
	"github.com/quillworks/quill/pkg/internal/models"
	"github.com/quillworks/quill/pkg/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestApp wires the handlers onto a fresh in-memory database, with a
// header-driven stand-in for the auth middleware.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	source, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigration(source))
	database.C = source

	if localCache.S == nil {
		require.NoError(t, localCache.NewStore())
	}
	require.NoError(t, services.ClearGlobalFeedCache())

	// The language models load lazily; warm them up outside any request
	// deadline.
	_ = services.DetectLanguage("warming up the detector")

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
	})

	app.Use(func(c *fiber.Ctx) error {
		if name := c.Get("X-Test-User"); len(name) > 0 {
			if user, err := services.GetAccount(name); err == nil {
				c.Locals("user", user)
			}
		}
		return c.Next()
	})

	MapAPIs(app, "/api")
	admin.MapControllers(app, "/api/admin")

	return app
}

func makeAccount(t *testing.T, name string) models.Account {
	t.Helper()

	account := models.Account{Name: name, Nick: name}
	require.NoError(t, database.C.Create(&account).Error)
	return account
}

func makePost(t *testing.T, author models.Account, text string) models.Post {
	t.Helper()

	item, err := services.NewPost(author, models.Post{Text: text})
	require.NoError(t, err)
	return item
}

func jsonRequest(method, target, user string, payload any) *http.Request {
	var body io.Reader
	if payload != nil {
		raw, _ := jsoniter.Marshal(payload)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if len(user) > 0 {
		req.Header.Set("X-Test-User", user)
	}
	return req
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return raw
}
