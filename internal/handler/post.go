package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/firepost/backend/internal/apperr"
	"github.com/firepost/backend/internal/logging"
	"github.com/firepost/backend/internal/model"
	"github.com/firepost/backend/internal/service"
	"github.com/firepost/backend/internal/validate"
)

type PostHandler struct {
	svc     *service.PostService
	log     logging.Logger
	verbose bool
}

func NewPostHandler(svc *service.PostService, log logging.Logger, verbose bool) *PostHandler {
	return &PostHandler{svc: svc, log: log, verbose: verbose}
}

// List godoc
// @Summary List all posts
// @Tags posts
// @Produce json
// @Success 200 {array} model.Post
// @Failure 500 {object} model.ErrorResponse
// @Router /posts [get]
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, h.log, h.verbose, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Get godoc
// @Summary Get a post by ID
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} model.Post
// @Failure 404 {object} model.ErrorResponse
// @Router /posts/{id} [get]
func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, h.verbose, err)
		return
	}
	if post == nil {
		writeError(c, h.log, h.verbose, apperr.NotFound("Post"))
		return
	}
	c.JSON(http.StatusOK, post)
}

// Create godoc
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.PostInput true "Post payload"
// @Success 201 {object} model.Post
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /posts [post]
func (h *PostHandler) Create(c *gin.Context) {
	input, ok := h.bindPost(c, validate.CreatePost)
	if !ok {
		return
	}

	post, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, h.log, h.verbose, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// Update godoc
// @Summary Update a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param request body model.PostInput true "Post payload"
// @Success 200 {object} model.Post
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /posts/{id} [put]
func (h *PostHandler) Update(c *gin.Context) {
	input, ok := h.bindPost(c, validate.UpdatePost)
	if !ok {
		return
	}

	post, err := h.svc.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		writeError(c, h.log, h.verbose, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Delete godoc
// @Summary Delete a post
// @Tags posts
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 204 "No Content"
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /posts/{id} [delete]
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.log, h.verbose, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// bindPost parses and validates a post body. On failure it writes the 400
// response and reports ok=false, so the handler body never runs.
func (h *PostHandler) bindPost(c *gin.Context, schema validate.Schema) (model.PostInput, bool) {
	var req model.PostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.log, h.verbose, apperr.Validation("Invalid request body"))
		return model.PostInput{}, false
	}

	values, fieldErrs := schema.Apply(map[string]string{
		"title":   req.Title,
		"content": req.Content,
	})
	if len(fieldErrs) > 0 {
		writeError(c, h.log, h.verbose, apperr.Validation("Validation failed", fieldErrs...))
		return model.PostInput{}, false
	}

	return model.PostInput{Title: values["title"], Content: values["content"]}, true
}
