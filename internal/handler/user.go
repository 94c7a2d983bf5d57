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

type UserHandler struct {
	svc     *service.UserService
	log     logging.Logger
	verbose bool
}

func NewUserHandler(svc *service.UserService, log logging.Logger, verbose bool) *UserHandler {
	return &UserHandler{svc: svc, log: log, verbose: verbose}
}

// Signup godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.CredentialsRequest true "Email and password"
// @Success 201 {object} model.AuthResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /signup [post]
func (h *UserHandler) Signup(c *gin.Context) {
	email, password, ok := h.bindCredentials(c, validate.Signup)
	if !ok {
		return
	}

	res, err := h.svc.Signup(c.Request.Context(), email, password)
	if err != nil {
		writeError(c, h.log, h.verbose, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.CredentialsRequest true "Email and password"
// @Success 200 {object} model.AuthResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	email, password, ok := h.bindCredentials(c, validate.Login)
	if !ok {
		return
	}

	res, err := h.svc.Login(c.Request.Context(), email, password)
	if err != nil {
		writeError(c, h.log, h.verbose, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *UserHandler) bindCredentials(c *gin.Context, schema validate.Schema) (string, string, bool) {
	var req model.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.log, h.verbose, apperr.Validation("Invalid request body"))
		return "", "", false
	}

	values, fieldErrs := schema.Apply(map[string]string{
		"email":    req.Email,
		"password": req.Password,
	})
	if len(fieldErrs) > 0 {
		writeError(c, h.log, h.verbose, apperr.Validation("Validation failed", fieldErrs...))
		return "", "", false
	}

	return values["email"], values["password"], true
}
