// controllers/srv.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chemstock/app"
	"chemstock/db"
	"chemstock/logger"
	"chemstock/session"
	"chemstock/spreadsheet"
	"chemstock/stock"
)

// Srv bundles the dependencies every controller needs.
type Srv struct {
	Repo  *db.Repo
	Stock *stock.Service
	Sess  *session.Store
	Cfg   app.Config
	Log   *zap.Logger
}

func GetSrv(a *app.App) *Srv {
	repo := db.NewRepo(a.DB)
	return &Srv{
		Repo:  repo,
		Stock: stock.NewService(repo, logger.Named(a.Log, "stock")),
		Sess:  a.Sessions(),
		Cfg:   a.Config,
		Log:   logger.Named(a.Log, "http"),
	}
}

// writeErr maps domain errors onto HTTP statuses. Nothing here is fatal; the
// boundary always answers with a user-visible message.
func writeErr(c *gin.Context, err error) {
	var schemaErr *spreadsheet.SchemaError
	switch {
	case errors.Is(err, stock.ErrNotFound):
		c.JSON(http.StatusNotFound, app.H{"error": err.Error()})
	case errors.Is(err, stock.ErrInsufficientStock),
		errors.Is(err, stock.ErrExceedsStock),
		errors.Is(err, stock.ErrUnsupportedTransition):
		c.JSON(http.StatusConflict, app.H{"error": err.Error()})
	case errors.As(err, &schemaErr):
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
	}
}
