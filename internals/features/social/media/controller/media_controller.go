// file: internals/features/social/media/controller/media_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"soundgalore_backend/internals/features/social/media/dto"
	mediaRepo "soundgalore_backend/internals/features/social/media/repository"
	helper "soundgalore_backend/internals/helpers"
)

/* ==============================
   Controller
============================== */

type MediaController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewMediaController(db *gorm.DB) *MediaController {
	return &MediaController{DB: db, Validator: validator.New()}
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

// POST /api/u/media — register an already-uploaded object
func (ctl *MediaController) Attach(c *fiber.Ctx) error {
	uid, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.AttachMediaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	media, err := mediaRepo.AttachMedia(
		ctl.DB.WithContext(c.Context()),
		uid, req.MediaType, req.MediaURL, req.MediaFilename, req.MediaMeta,
	)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Media attached", dto.ToMediaDTO(*media))
}

// GET /api/u/media/:id
func (ctl *MediaController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid media id")
	}
	media, err := mediaRepo.GetMedia(ctl.DB.WithContext(c.Context()), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "", dto.ToMediaDTO(*media))
}

// GET /api/u/media — the caller's own library, newest first
func (ctl *MediaController) ListMine(c *fiber.Ctx) error {
	uid, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	rows, err := mediaRepo.ListMediaByOwner(ctl.DB.WithContext(c.Context()), uid)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	items := make([]dto.MediaDTO, 0, len(rows))
	for _, m := range rows {
		items = append(items, dto.ToMediaDTO(m))
	}
	return helper.JsonOK(c, "My media", fiber.Map{
		"media": items,
		"total": len(items),
	})
}
