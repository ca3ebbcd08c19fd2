// file: internals/features/social/posts/controller/comment_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"soundgalore_backend/internals/features/social/posts/dto"
	postRepo "soundgalore_backend/internals/features/social/posts/repository"
	helper "soundgalore_backend/internals/helpers"
)

/* ==============================
   Controller
============================== */

type CommentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db, Validator: validator.New()}
}

/* ==============================
   Handlers
============================== */

// POST /api/u/posts/:id/comments
func (ctl *CommentController) Create(c *fiber.Ctx) error {
	uid, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	postID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid post id")
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	comment, err := postRepo.CreateComment(
		ctl.DB.WithContext(c.Context()),
		postID, uid, req.CommentBody, req.CommentParentID,
	)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Comment created", dto.ToCommentDTO(*comment))
}

// GET /api/u/posts/:id/comments — full thread, oldest first
func (ctl *CommentController) List(c *fiber.Ctx) error {
	postID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid post id")
	}

	rows, err := postRepo.ListComments(ctl.DB.WithContext(c.Context()), postID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	comments := make([]dto.CommentDTO, 0, len(rows))
	for _, cm := range rows {
		comments = append(comments, dto.ToCommentDTO(cm))
	}
	return helper.JsonOK(c, "Comments", fiber.Map{
		"post_id":  postID,
		"comments": comments,
		"total":    len(comments),
	})
}
