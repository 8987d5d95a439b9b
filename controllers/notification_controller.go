package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chemstock/app"
	"chemstock/models"
)

type NotificationController struct{ *Srv }

func NewNotificationController(s *Srv) *NotificationController {
	return &NotificationController{Srv: s}
}

// ListUnseen returns the caller's unseen inbox, newest first. Supervisors and
// lab staff also read their role channel.
func (nc *NotificationController) ListUnseen(c *gin.Context) {
	recipients := []string{app.Username(c)}
	switch app.RoleOf(c) {
	case models.RoleSupervisor:
		recipients = append(recipients, models.ChannelSupervisor)
	case models.RoleLab:
		recipients = append(recipients, models.ChannelLab)
	}
	rows, err := nc.Stock.FetchUnseen(c.Request.Context(), recipients...)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"notifications": rows})
}

type markSeenInput struct {
	IDs []uint `json:"ids"`
}

// MarkSeen flips the seen flag; an empty id set is a no-op. Ids are taken on
// trust, matching the demo scope of this surface.
func (nc *NotificationController) MarkSeen(c *gin.Context) {
	var in markSeenInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if err := nc.Stock.MarkSeen(c.Request.Context(), in.IDs); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}
