package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quillworks/quill/pkg/internal/http/exts"
	"github.com/quillworks/quill/pkg/internal/services"
)

// Groups are managed by operators out-of-band of the normal posting flow.

func adminCreateGroup(c *fiber.Ctx) error {
	var data struct {
		Slug        string `json:"slug" validate:"required,lowercase"`
		Title       string `json:"title" validate:"required"`
		Description string `json:"description"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group, err := services.NewGroup(data.Slug, data.Title, data.Description)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(group)
}

func adminEditGroup(c *fiber.Ctx) error {
	group, err := services.GetGroup(c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	var data struct {
		Slug        string `json:"slug" validate:"required,lowercase"`
		Title       string `json:"title" validate:"required"`
		Description string `json:"description"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group, err = services.EditGroup(group, data.Slug, data.Title, data.Description)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(group)
}

func adminDeleteGroup(c *fiber.Ctx) error {
	group, err := services.GetGroup(c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	// Posts survive the group; their group link is cleared by the schema.
	if err := services.DeleteGroup(group); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
