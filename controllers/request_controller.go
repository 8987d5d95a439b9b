package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"chemstock/app"
	"chemstock/models"
	"chemstock/stock"
)

type RequestController struct{ *Srv }

func NewRequestController(s *Srv) *RequestController { return &RequestController{Srv: s} }

type createRequestInput struct {
	Chemical string  `json:"chemical" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Note     string  `json:"note"`
}

// Create files a Pending request for the logged-in user. The chemical may
// name something not in the master list; the ledger check then happens at
// issue time instead.
func (rc *RequestController) Create(c *gin.Context) {
	var in createRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	r, err := rc.Stock.CreateRequest(c.Request.Context(), app.Username(c), in.Chemical, in.Amount, in.Note)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

type setStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// SetStatus drives the lifecycle. Supervisors may target Approved/Rejected,
// lab staff Issued; the transition table rejects everything else.
func (rc *RequestController) SetStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid request id"})
		return
	}
	var in setStatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	target, err := models.ParseStatus(in.Status)
	if err != nil {
		c.JSON(http.StatusConflict, app.H{"error": stock.ErrUnsupportedTransition.Error() + ": " + err.Error()})
		return
	}

	role := app.RoleOf(c)
	switch target {
	case models.StatusApproved, models.StatusRejected:
		if role != models.RoleSupervisor {
			c.JSON(http.StatusForbidden, app.H{"error": "forbidden"})
			return
		}
	case models.StatusIssued:
		if role != models.RoleLab {
			c.JSON(http.StatusForbidden, app.H{"error": "forbidden"})
			return
		}
	default:
		c.JSON(http.StatusConflict, app.H{"error": stock.ErrUnsupportedTransition.Error()})
		return
	}

	r, err := rc.Stock.SetStatus(c.Request.Context(), uint(id), target, app.Username(c))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// List scopes by role: users see their own requests, supervisors and lab
// staff see everything, optionally narrowed by ?status=.
func (rc *RequestController) List(c *gin.Context) {
	f := stock.RequestFilter{}
	if app.RoleOf(c) == models.RoleUser {
		f.Username = app.Username(c)
	} else if u := c.Query("username"); u != "" {
		f.Username = u
	}
	if s := c.Query("status"); s != "" {
		status, err := models.ParseStatus(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
			return
		}
		f.Status = status
	}
	rows, err := rc.Stock.ListRequests(c.Request.Context(), f)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"requests": rows})
}
