package comment

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/mflix-space/core/internal/models"
	"github.com/mflix-space/core/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	svc *Service
	log *zap.Logger
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log.Named("comment")}
}

// RegisterRoutes mounts the comment routes. Extra middleware (for example
// idempotence) is applied to the write routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, writeMW ...gin.HandlerFunc) {
	g := rg.Group("/comments", writeMW...)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateCommentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	cm, err := h.svc.Create(c.Request.Context(), &dto)
	if err != nil {
		switch {
		case errors.Is(err, errMissingFields):
			response.BadRequest(c, "Movie ID, name, and text are required")
		case errors.Is(err, models.ErrInvalidID):
			response.BadRequest(c, "Invalid movie ID format")
		default:
			h.log.Error("create comment failed", zap.Error(err))
			response.InternalError(c, "Error creating comment")
		}
		return
	}
	response.Created(c, cm)
}

func (h *Handler) update(c *gin.Context) {
	id, err := models.ParseObjectID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid comment ID format")
		return
	}
	var dto UpdateCommentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := h.svc.UpdateText(c.Request.Context(), id, &dto); err != nil {
		switch {
		case errors.Is(err, errMissingText):
			response.BadRequest(c, "Text is required")
		case errors.Is(err, ErrCommentNotFound):
			response.NotFoundMsg(c, "Comment not found")
		default:
			h.log.Error("update comment failed", zap.String("id", id.Hex()), zap.Error(err))
			response.InternalError(c, "Error updating comment")
		}
		return
	}
	response.Message(c, "Comment updated successfully")
}

func (h *Handler) delete(c *gin.Context) {
	id, err := models.ParseObjectID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid comment ID format")
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrCommentNotFound) {
			response.NotFoundMsg(c, "Comment not found")
			return
		}
		h.log.Error("delete comment failed", zap.String("id", id.Hex()), zap.Error(err))
		response.InternalError(c, "Error deleting comment")
		return
	}
	response.Message(c, "Comment deleted successfully")
}
