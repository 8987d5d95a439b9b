package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"chemstock/app"
	"chemstock/models"
	"chemstock/session"
)

type AuthController struct{ *Srv }

func NewAuthController(s *Srv) *AuthController { return &AuthController{Srv: s} }

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	FullName string `json:"fullName"`
	Role     string `json:"role" binding:"required"`
}

// Login is a self-declared username + role pick with no credential check, a
// known limitation of this surface. It upserts the audit registry, revokes
// older sessions for the name and mints a fresh cookie-backed session.
func (ac *AuthController) Login(c *gin.Context) {
	var in loginRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	username := strings.TrimSpace(in.Username)
	if username == "" {
		c.JSON(http.StatusBadRequest, app.H{"error": "username is required"})
		return
	}
	role, err := models.ParseRole(in.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	u, err := ac.Repo.UpsertUser(c.Request.Context(), username, strings.TrimSpace(in.FullName), role)
	if err != nil {
		writeErr(c, err)
		return
	}
	_ = ac.Repo.TouchUserLogin(c.Request.Context(), username, c.ClientIP(), c.Request.UserAgent())

	_ = ac.Sess.RevokeAllForUser(c.Request.Context(), username)
	sid := uuid.NewString()
	if err := ac.Sess.Create(c.Request.Context(), sid, session.Session{
		Username: username,
		FullName: u.FullName,
		Role:     role,
	}); err != nil {
		writeErr(c, err)
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     app.SessionCookie,
		Value:    sid,
		Path:     "/",
		MaxAge:   int(ac.Cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   strings.HasPrefix(ac.Cfg.WebOrigin, "https://"),
	})
	c.JSON(http.StatusOK, app.H{"username": username, "fullName": u.FullName, "role": role})
}

func (ac *AuthController) Logout(c *gin.Context) {
	if ck, err := c.Request.Cookie(app.SessionCookie); err == nil && ck.Value != "" {
		_ = ac.Sess.Delete(c.Request.Context(), ck.Value)
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     app.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   strings.HasPrefix(ac.Cfg.WebOrigin, "https://"),
	})
	c.JSON(http.StatusOK, app.H{"ok": true})
}

func (ac *AuthController) WhoAmI(c *gin.Context) {
	v, _ := c.Get("fullName")
	fullName, _ := v.(string)
	c.JSON(http.StatusOK, app.H{
		"username": app.Username(c),
		"fullName": fullName,
		"role":     app.RoleOf(c),
	})
}
