// file: internals/features/social/posts/route/post_route.go
package route

import (
	controller "soundgalore_backend/internals/features/social/posts/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PostUserRoutes mounts posts, likes and comments.
// Base: /api/u
func PostUserRoutes(userGroup fiber.Router, db *gorm.DB) {
	postController := controller.NewPostController(db)
	likeController := controller.NewPostLikeController(db)
	commentController := controller.NewCommentController(db)

	// Posts
	userGroup.Post("/posts", postController.Create)
	userGroup.Get("/posts/:id", postController.GetByID)
	userGroup.Delete("/posts/:id", postController.Delete)
	userGroup.Get("/users/:id/posts", postController.ListByAuthor)

	// Likes
	userGroup.Post("/posts/:id/like", likeController.Toggle)
	userGroup.Get("/posts/:id/like", likeController.MyStatus)
	userGroup.Get("/posts/:id/likes", likeController.List)

	// Comments
	userGroup.Post("/posts/:id/comments", commentController.Create)
	userGroup.Get("/posts/:id/comments", commentController.List)
}
