package api

import (
	"github.com/gofiber/fiber/v2"
)

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL)
	{
		feed := api.Group("/feed")
		{
			feed.Get("/", listGlobalFeed)
			feed.Get("/followed", listFollowedFeed)
		}

		groups := api.Group("/groups")
		{
			groups.Get("/", listGroup)
			groups.Get("/:slug", getGroup)
			groups.Get("/:slug/posts", listGroupPosts)
		}

		users := api.Group("/users")
		{
			users.Get("/:name", getUserProfile)
			users.Get("/:name/posts", listUserPosts)
			users.Post("/:name/follow", followUser)
			users.Post("/:name/unfollow", unfollowUser)
		}

		posts := api.Group("/posts")
		{
			posts.Get("/", searchPost)
			posts.Get("/:postId", getPost)
			posts.Post("/", createPost)
			posts.Put("/:postId", editPost)
			posts.Delete("/:postId", deletePost)
			posts.Get("/:postId/comments", listPostComments)
			posts.Post("/:postId/comments", createPostComment)
		}
	}
}
