package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chemstock/app"
	"chemstock/models"
	"chemstock/spreadsheet"
)

type IssuanceController struct{ *Srv }

func NewIssuanceController(s *Srv) *IssuanceController { return &IssuanceController{Srv: s} }

// List scopes by role: users get their own history, supervisors and lab
// staff the full log.
func (ic *IssuanceController) List(c *gin.Context) {
	username := ""
	if app.RoleOf(c) == models.RoleUser {
		username = app.Username(c)
	} else if u := c.Query("username"); u != "" {
		username = u
	}
	rows, err := ic.Stock.ListIssuances(c.Request.Context(), username)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"issuances": rows})
}

// ExportCSV streams the full issuance log.
func (ic *IssuanceController) ExportCSV(c *gin.Context) {
	rows, err := ic.Stock.ListIssuances(c.Request.Context(), "")
	if err != nil {
		writeErr(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="issuance_log.csv"`)
	c.Header("Content-Type", "text/csv")
	if err := spreadsheet.WriteIssuancesCSV(c.Writer, rows); err != nil {
		ic.Log.Error("csv export failed: " + err.Error())
	}
}
