package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/home-listing/internal/httperr"
	"github.com/BruksfildServices01/home-listing/internal/httpresp"
	"github.com/BruksfildServices01/home-listing/internal/middleware"
	ucAuth "github.com/BruksfildServices01/home-listing/internal/usecase/auth"
	"github.com/BruksfildServices01/home-listing/internal/validators"
)

type AuthHandler struct {
	signup *ucAuth.Signup
	login  *ucAuth.Login
}

func NewAuthHandler(
	signup *ucAuth.Signup,
	login *ucAuth.Login,
) *AuthHandler {
	return &AuthHandler{
		signup: signup,
		login:  login,
	}
}

// Signup registers a user whose type comes from the :userType path segment.
func (h *AuthHandler) Signup(c *gin.Context) {
	userType, err := validators.ParseUserType(c.Param("userType"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var req SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.signup.Execute(c.Request.Context(), ucAuth.SignupInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	}, userType)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, out)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.login.Execute(c.Request.Context(), ucAuth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, out)
}

// Me echoes the identity carried by the caller's token.
func (h *AuthHandler) Me(c *gin.Context) {
	httpresp.OK(c, gin.H{
		"id":   middleware.UserID(c),
		"name": middleware.UserName(c),
	})
}
