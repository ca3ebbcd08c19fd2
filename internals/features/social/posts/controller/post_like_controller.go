// file: internals/features/social/posts/controller/post_like_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"soundgalore_backend/internals/features/social/posts/dto"
	postRepo "soundgalore_backend/internals/features/social/posts/repository"
	helper "soundgalore_backend/internals/helpers"
)

/* ==============================
   Controller
============================== */

type PostLikeController struct {
	DB *gorm.DB
}

func NewPostLikeController(db *gorm.DB) *PostLikeController {
	return &PostLikeController{DB: db}
}

/* ==============================
   Handlers
============================== */

// POST /api/u/posts/:id/like — flips the like; response says where it landed
func (ctl *PostLikeController) Toggle(c *fiber.Ctx) error {
	uid, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	postID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid post id")
	}

	db := ctl.DB.WithContext(c.Context())
	liked, err := postRepo.ToggleLike(db, uid, postID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	total, err := postRepo.CountLikes(db, postID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	msg := "Post unliked"
	if liked {
		msg = "Post liked"
	}
	return helper.JsonOK(c, msg, fiber.Map{
		"post_id":     postID,
		"liked":       liked,
		"likes_count": total,
	})
}

// GET /api/u/posts/:id/likes?page=&limit=
func (ctl *PostLikeController) List(c *fiber.Ctx) error {
	postID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid post id")
	}

	page := atoiOr(1, c.Query("page"))
	limit := atoiOr(20, c.Query("limit"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, total, err := postRepo.ListLikes(ctl.DB.WithContext(c.Context()), postID, limit, (page-1)*limit)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	likes := make([]dto.PostLikeDTO, 0, len(rows))
	for _, l := range rows {
		likes = append(likes, dto.ToPostLikeDTO(l))
	}
	return helper.JsonList(c, "Post likes", likes, helper.BuildPaginationFromPage(total, page, limit))
}

// GET /api/u/posts/:id/like — viewer's own like state
func (ctl *PostLikeController) MyStatus(c *fiber.Ctx) error {
	uid, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	postID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid post id")
	}

	db := ctl.DB.WithContext(c.Context())
	liked, err := postRepo.LikeStatus(db, uid, postID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	total, err := postRepo.CountLikes(db, postID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	return helper.JsonOK(c, "", fiber.Map{
		"post_id":     postID,
		"liked":       liked,
		"likes_count": total,
	})
}
