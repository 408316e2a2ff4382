package admin

import "github.com/gofiber/fiber/v2"

func MapControllers(app *fiber.App, baseURL string) {
	admin := app.Group(baseURL)
	{
		admin.Delete("/feed/cache", adminClearFeedCache)
		admin.Post("/groups", adminCreateGroup)
		admin.Put("/groups/:slug", adminEditGroup)
		admin.Delete("/groups/:slug", adminDeleteGroup)
	}
}
