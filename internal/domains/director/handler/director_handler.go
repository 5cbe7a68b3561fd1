package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mkigikm/director-api/internal/domains/director"
	"github.com/mkigikm/director-api/internal/shared/response"
)

// DirectorHandler adapts HTTP requests to the director service. Stateless;
// holds only its dependencies.
type DirectorHandler struct {
	service director.Service
}

func NewDirectorHandler(service director.Service) *DirectorHandler {
	return &DirectorHandler{service: service}
}

// Create handles POST /directors.
func (h *DirectorHandler) Create(c *gin.Context) {
	var req director.CreateDirectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, director.ErrMissingLivestreamID.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	d, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, d)
}

// Update handles POST /directors/:id. The Authorization header carries the
// caller's edit token.
func (h *DirectorHandler) Update(c *gin.Context) {
	var req director.UpdateDirectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "request body must be a JSON object")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token := c.GetHeader("Authorization")
	d, err := h.service.Update(c.Request.Context(), c.Param("id"), token, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, d)
}

// Show handles GET /directors/:id.
func (h *DirectorHandler) Show(c *gin.Context) {
	d, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, d)
}

// Index handles GET /directors.
func (h *DirectorHandler) Index(c *gin.Context) {
	directors, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, directors)
}

// handleError maps domain errors to HTTP statuses. Storage and transport
// detail is logged here and never leaks to the client.
func (h *DirectorHandler) handleError(c *gin.Context, err error) {
	var upstream *director.UpstreamError

	switch {
	// 400 Bad Request - client error
	case errors.Is(err, director.ErrAlreadyRegistered),
		errors.Is(err, director.ErrMissingLivestreamID),
		errors.Is(err, director.ErrInvalidCamera),
		errors.Is(err, director.ErrInvalidMovies),
		errors.Is(err, director.ErrInvalidAction):
		response.BadRequest(c, err.Error())

	// 401 Unauthorized - token does not match
	case errors.Is(err, director.ErrNotAuthorized):
		response.Unauthorized(c, err.Error())

	// 404 Not Found - unknown director or unknown remote account
	case errors.Is(err, director.ErrDirectorNotFound),
		errors.Is(err, director.ErrAccountNotFound):
		response.NotFound(c, err.Error())

	// Unmapped upstream statuses propagate as-is
	case errors.As(err, &upstream):
		if upstream.StatusCode == http.StatusInternalServerError {
			response.InternalServerError(c, "internal server error")
			return
		}
		response.Status(c, upstream.StatusCode)

	// 500 Internal Server Error - store or transport failure
	default:
		log.Error().
			Str("request_id", c.GetString("request_id")).
			Err(err).
			Msg("director request failed")
		response.InternalServerError(c, "internal server error")
	}
}
