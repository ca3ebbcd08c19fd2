// file: internals/features/social/posts/controller/post_controller.go
package controller

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"soundgalore_backend/internals/features/social/posts/dto"
	postRepo "soundgalore_backend/internals/features/social/posts/repository"
	helper "soundgalore_backend/internals/helpers"
)

/* ==============================
   Controller
============================== */

type PostController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{DB: db, Validator: validator.New()}
}

/* ==============================
   Small helpers
============================== */

func atoiOr(def int, s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" is required")
	}
	return uuid.Parse(idStr)
}

/* ==============================
   Handlers
============================== */

// POST /api/u/posts — publish
func (ctl *PostController) Create(c *fiber.Ctx) error {
	uid, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.Empty() {
		return helper.JsonError(c, fiber.StatusBadRequest, "post needs text or media")
	}

	post, err := postRepo.CreatePost(
		ctl.DB.WithContext(c.Context()),
		uid, req.PostText, req.PostImageMediaID, req.PostAudioMediaID,
	)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Post created", dto.ToPostDTO(*post))
}

// GET /api/u/posts/:id — soft-deleted rows still resolve here
func (ctl *PostController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid post id")
	}
	post, err := postRepo.GetPost(ctl.DB.WithContext(c.Context()), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "", dto.ToPostDTO(*post))
}

// DELETE /api/u/posts/:id — soft delete, author only
func (ctl *PostController) Delete(c *fiber.Ctx) error {
	uid, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid post id")
	}

	if err := postRepo.SoftDeletePost(ctl.DB.WithContext(c.Context()), id, uid); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonDeleted(c, "Post deleted", fiber.Map{"post_id": id})
}

// GET /api/u/users/:id/posts?limit=&cursor= — author timeline, keyset paged
func (ctl *PostController) ListByAuthor(c *fiber.Ctx) error {
	authorID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	limit := atoiOr(20, c.Query("limit"))
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	cur, err := helper.ParseFeedCursor(c.Query("cursor"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var before *time.Time
	var beforeID uuid.UUID
	if cur != nil {
		before = &cur.CreatedAt
		beforeID = cur.ID
	}

	list, err := postRepo.ListPostsByAuthor(ctl.DB.WithContext(c.Context()), authorID, limit, before, beforeID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	posts := []dto.PostDTO{}
	var nextCursor string
	for _, p := range list {
		posts = append(posts, dto.ToPostDTO(p))
	}
	if len(list) == limit {
		last := list[len(list)-1]
		nextCursor = helper.EncodeFeedCursor(last.PostCreatedAt, last.PostID)
	}

	data := fiber.Map{"posts": posts}
	if nextCursor != "" {
		data["next_cursor"] = nextCursor
	}
	return helper.JsonOK(c, "Posts by author", data)
}
