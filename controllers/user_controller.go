package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chemstock/app"
)

type UserController struct{ *Srv }

func NewUserController(s *Srv) *UserController { return &UserController{Srv: s} }

// List exposes the audit registry (who has logged in, as which role) for the
// supervisor dashboard. ?q= matches username or full name.
func (uc *UserController) List(c *gin.Context) {
	users, err := uc.Repo.ListUsers(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"users": users})
}
