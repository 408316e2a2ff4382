package api

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/quillworks/quill/pkg/internal/database"
	"github.com/quillworks/quill/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRequiresLoginAndKeepsTarget(t *testing.T) {
	app := newTestApp(t)
	author := makeAccount(t, "leo")
	item := makePost(t, author, "hello")

	target := fmt.Sprintf("/api/posts/%d/comments", item.ID)
	resp, err := app.Test(jsonRequest(fiber.MethodPost, target, "", fiber.Map{
		"text": "anonymous words",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)

	location := resp.Header.Get(fiber.HeaderLocation)
	assert.True(t, strings.HasPrefix(location, "/auth/login?next="))
	assert.Contains(t, location, "comments")

	var count int64
	require.NoError(t, database.C.Model(&models.Comment{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCommentOnUnknownPost(t *testing.T) {
	app := newTestApp(t)
	makeAccount(t, "leo")

	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/api/posts/999/comments", "leo", fiber.Map{
		"text": "echo",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCommentValidationAndCreation(t *testing.T) {
	app := newTestApp(t)
	author := makeAccount(t, "leo")
	makeAccount(t, "mira")
	item := makePost(t, author, "hello")

	target := fmt.Sprintf("/api/posts/%d/comments", item.ID)

	resp, err := app.Test(jsonRequest(fiber.MethodPost, target, "mira", fiber.Map{
		"text": "",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(jsonRequest(fiber.MethodPost, target, "mira", fiber.Map{
		"text": "well said",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var comment models.Comment
	require.NoError(t, database.C.First(&comment).Error)
	assert.Equal(t, item.ID, comment.PostID)
	assert.Equal(t, "well said", comment.Text)
}
