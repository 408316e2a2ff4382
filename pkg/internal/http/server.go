package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	pkg "github.com/quillworks/quill/pkg/internal"
	"github.com/quillworks/quill/pkg/internal/http/admin"
	"github.com/quillworks/quill/pkg/internal/http/api"
	"github.com/quillworks/quill/pkg/internal/security"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type App struct {
	app *fiber.App
}

func NewServer() *App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		ServerHeader:          "Quill",
		AppName:               "Quill v" + pkg.AppVersion,
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		ErrorHandler:          renderError,
	})

	app.Use(requestRecorder)
	app.Use(security.AuthMiddleware)

	api.MapAPIs(app, "/api")
	admin.MapControllers(app, "/api/admin")

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "the page you are looking for flew away")
	})

	return &App{app}
}

func (v *App) Listen() {
	if err := v.app.Listen(viper.GetString("bind")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting http server...")
	}
}

func requestRecorder(c *fiber.Ctx) error {
	id := uuid.NewString()
	c.Set(fiber.HeaderXRequestID, id)

	start := time.Now()
	err := c.Next()

	log.Debug().
		Str("request_id", id).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Dur("elapsed", time.Since(start)).
		Msg("Handled one http request.")

	return err
}

func renderError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if fe, ok := err.(*fiber.Error); ok {
		code = fe.Code
	}

	// API consumers get structured errors, everyone else a themed page.
	if strings.HasPrefix(c.Path(), "/api") || strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON) {
		return c.Status(code).JSON(fiber.Map{
			"code":    code,
			"message": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(code).SendString(
		"<html><head><title>Quill</title></head><body><h1>" +
			utils.StatusMessage(code) + "</h1><p>" + err.Error() + "</p></body></html>",
	)
}
