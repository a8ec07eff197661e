package movie

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mflix-space/core/internal/models"
	"github.com/mflix-space/core/internal/pkg/pagination"
	"github.com/mflix-space/core/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	svc *Service
	log *zap.Logger
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log.Named("movie")}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/movies")
	g.GET("", h.list)
	g.GET("/check/*title", h.checkTitle)
	g.GET("/:id", h.get)
}

func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	resp, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		h.log.Error("list movies failed", zap.Error(err))
		response.InternalError(c, "Error fetching movies")
		return
	}
	response.OK(c, resp)
}

func (h *Handler) get(c *gin.Context) {
	id, err := models.ParseObjectID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid movie ID format")
		return
	}
	resp, err := h.svc.Detail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrMovieNotFound) {
			response.NotFoundMsg(c, "Movie not found")
			return
		}
		h.log.Error("get movie failed", zap.String("id", id.Hex()), zap.Error(err))
		response.InternalError(c, "Error fetching movie details")
		return
	}
	response.OK(c, resp)
}

// checkTitle takes the rest of the path as the title so that a decoded
// "%2F" stays part of it.
func (h *Handler) checkTitle(c *gin.Context) {
	title := strings.TrimPrefix(c.Param("title"), "/")
	resp, err := h.svc.CheckTitle(c.Request.Context(), title)
	if err != nil {
		h.log.Error("check title failed", zap.Error(err))
		response.InternalError(c, "Error checking movie")
		return
	}
	response.OK(c, resp)
}
