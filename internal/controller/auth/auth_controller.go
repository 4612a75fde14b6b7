package auth

import (
	"errors"
	"net/http"

	"github.com/achyut02/Ai-Placement-Tracker/config"
	"github.com/achyut02/Ai-Placement-Tracker/internal/apperror"
	"github.com/achyut02/Ai-Placement-Tracker/internal/dto"
	"github.com/achyut02/Ai-Placement-Tracker/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
	cfg         *config.Config
}

func NewAuthController(authService service.AuthService, cfg *config.Config) *AuthController {
	return &AuthController{authService: authService, cfg: cfg}
}

// Register godoc
// @Summary Register a new account
// @Description Creates an account and returns a bearer token with the user profile.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.RegisterRequest true "Name, email and password"
// @Success 201 {object} dto.Response{data=dto.AuthResponse}
// @Failure 400 {object} dto.Response "Validation failure or duplicate email"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Validation failed", bindingErrors(err)...))
		return
	}

	resp, err := c.authService.Register(req)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.OK(resp))
}

// Login godoc
// @Summary Exchange credentials for a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Email and password"
// @Success 200 {object} dto.Response{data=dto.AuthResponse}
// @Failure 401 {object} dto.Response "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Validation failed", bindingErrors(err)...))
		return
	}

	resp, err := c.authService.Login(req)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(resp))
}

func (c *AuthController) respondError(ctx *gin.Context, err error) {
	appErr := apperror.From(err, "")
	if appErr.Status() >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Auth request failed")
	}
	body := dto.Fail(appErr.Message, appErr.Details...)
	if !c.cfg.IsProduction() && appErr.Unwrap() != nil {
		body.Errors = append(body.Errors, appErr.Unwrap().Error())
	}
	ctx.JSON(appErr.Status(), body)
}

// bindingErrors flattens validator errors into field-level messages.
func bindingErrors(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Field()+" failed on the '"+fe.Tag()+"' rule")
	}
	return msgs
}
