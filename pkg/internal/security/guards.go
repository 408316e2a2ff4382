package security

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/quillworks/quill/pkg/internal/models"
	"github.com/quillworks/quill/pkg/internal/services"
	"github.com/spf13/viper"
)

const CookieAuthToken = "quill_auth_token"

// AuthMiddleware resolves the caller's account from a bearer token or the
// session cookie. Requests without a usable token stay anonymous; guarding
// individual routes is up to EnsureAuthenticated.
func AuthMiddleware(c *fiber.Ctx) error {
	raw := c.Cookies(CookieAuthToken)
	if header := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(header, "Bearer ") {
		raw = strings.TrimPrefix(header, "Bearer ")
	}
	if len(raw) == 0 {
		return c.Next()
	}

	claims, err := ReadToken(raw)
	if err != nil {
		return c.Next()
	}

	if user, err := services.GetAccount(claims.Name); err == nil {
		c.Locals("user", user)
	}

	return c.Next()
}

// EnsureAuthenticated sends anonymous callers to the login step, keeping
// the original target as the return-to parameter.
func EnsureAuthenticated(c *fiber.Ctx) error {
	if _, authenticated := c.Locals("user").(models.Account); !authenticated {
		return RedirectToLogin(c)
	}
	return nil
}

func RedirectToLogin(c *fiber.Ctx) error {
	loginURL := viper.GetString("security.login_url")
	if len(loginURL) == 0 {
		loginURL = "/auth/login"
	}

	target := url.QueryEscape(c.OriginalURL())
	return c.Redirect(fmt.Sprintf("%s?next=%s", loginURL, target), fiber.StatusFound)
}
