package recommend

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/mflix-space/core/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	svc *Service
	log *zap.Logger
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log.Named("recommend")}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/movies/recommend", h.recommend)
}

func (h *Handler) recommend(c *gin.Context) {
	var dto recommendDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	persona := DefaultPersona
	if len(dto.UserType) > 0 {
		// null and non-string values leave key empty, which is rejected.
		var key string
		_ = json.Unmarshal(dto.UserType, &key)
		persona = Persona(key)
	}

	res, err := h.svc.Recommend(c.Request.Context(), Request{Prompt: dto.Prompt, Persona: persona})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, res)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var malformed *MalformedOutputError
	var upstream *UpstreamError

	switch {
	case errors.Is(err, ErrPromptRequired):
		response.BadRequest(c, "Prompt is required")
	case errors.Is(err, ErrInvalidPersona):
		response.BadRequest(c, "Invalid user type")
	case errors.Is(err, ErrEmptyCatalog):
		response.NotFoundMsg(c, "No movies found in database")
	case errors.Is(err, ErrConfiguration):
		h.log.Error("completion credential missing")
		response.InternalError(c, "API key is not configured")
	case errors.As(err, &malformed):
		response.InternalErrorDetails(c, "Invalid JSON from model", "raw", malformed.Raw)
	case errors.As(err, &upstream):
		h.log.Error("completion request failed", zap.Int("status", upstream.StatusCode), zap.Error(err))
		response.InternalErrorDetails(c, "Error communicating with the model provider", "details", detailsValue(upstream.Details()))
	case errors.Is(err, ErrEmptyResponse):
		h.log.Error("completion returned no content")
		response.InternalError(c, "Empty response from model")
	default:
		h.log.Error("recommendation failed", zap.Error(err))
		response.InternalError(c, "Error getting recommendations")
	}
}

// detailsValue embeds a JSON upstream body as-is and anything else as a string.
func detailsValue(details string) interface{} {
	if json.Valid([]byte(details)) {
		return json.RawMessage(details)
	}
	return details
}
