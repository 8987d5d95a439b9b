package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chemstock/app"
	"chemstock/spreadsheet"
)

type ChemicalController struct{ *Srv }

func NewChemicalController(s *Srv) *ChemicalController { return &ChemicalController{Srv: s} }

// List returns the master list.
func (cc *ChemicalController) List(c *gin.Context) {
	rows, err := cc.Stock.ListChemicals(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"chemicals": rows})
}

// Import replaces the master list wholesale from an uploaded .xlsx file. A
// schema failure leaves the current list untouched.
func (cc *ChemicalController) Import(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "missing file upload"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	defer f.Close()

	n, err := cc.Stock.ImportMasterList(c.Request.Context(), f)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true, "imported": n})
}

type adjustInput struct {
	Chemical string  `json:"chemical" binding:"required"`
	Delta    float64 `json:"delta" binding:"required"`
}

// Adjust applies a manual stock correction: positive delta restocks,
// negative dispenses outside the request flow (spillage, recalibration).
func (cc *ChemicalController) Adjust(c *gin.Context) {
	var in adjustInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	remaining, err := cc.Stock.AdjustStock(c.Request.Context(), in.Chemical, in.Delta)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"chemical": in.Chemical, "remaining": remaining})
}

// DeleteAll truncates the master list. Irreversible.
func (cc *ChemicalController) DeleteAll(c *gin.Context) {
	if err := cc.Stock.DeleteMasterList(c.Request.Context()); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// ExportCSV streams the master list as CSV.
func (cc *ChemicalController) ExportCSV(c *gin.Context) {
	rows, err := cc.Stock.ListChemicals(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="chemicals.csv"`)
	c.Header("Content-Type", "text/csv")
	if err := spreadsheet.WriteChemicalsCSV(c.Writer, rows); err != nil {
		cc.Log.Error("csv export failed: " + err.Error())
	}
}
