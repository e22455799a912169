package handlers

import (
	"errors"
	"net/http"

	"fintrack/internal/service"

	"github.com/gin-gonic/gin"
)

type signUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type signInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  signUpRequest  true  "Account payload"
// @Success      201   {object}  map[string]int
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /sign-up [post]
func (h *Handler) signUp(c *gin.Context) {
	var input signUpRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	id, err := h.services.SignUp(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		if h.log != nil {
			h.log.Errorw("sign_up_failed", "email", input.Email, "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary      Sign in and obtain a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  signInRequest  true  "Credentials"
// @Success      200   {object}  map[string]interface{}  "id, name, email, token"
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /sign-in [post]
func (h *Handler) signIn(c *gin.Context) {
	var input signInRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, token, err := h.services.SignIn(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		// Unknown email and wrong password are deliberately indistinguishable.
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email or password"})
			return
		}
		if h.log != nil {
			h.log.Errorw("sign_in_failed", "email", input.Email, "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"token": token,
	})
}

// @Summary      Sign out, revoking the presented token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /sign-out [post]
// @Security     BearerAuth
func (h *Handler) signOut(c *gin.Context) {
	token := c.GetString(ctxToken)

	if err := h.services.SignOut(c.Request.Context(), token); err != nil {
		if h.log != nil {
			h.log.Errorw("sign_out_failed", "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
