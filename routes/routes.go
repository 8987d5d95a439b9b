package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"chemstock/app"
	"chemstock/controllers"
	"chemstock/models"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	authCtl := controllers.NewAuthController(s)
	chemCtl := controllers.NewChemicalController(s)
	reqCtl := controllers.NewRequestController(s)
	issCtl := controllers.NewIssuanceController(s)
	notifCtl := controllers.NewNotificationController(s)
	userCtl := controllers.NewUserController(s)

	authMW := app.AuthRequired(a.Sessions())
	seenMW := app.TouchLastSeen(s.Repo, a.RDB, 5*time.Minute)
	supervisorMW := app.RoleRequired(models.RoleSupervisor)
	labMW := app.RoleRequired(models.RoleLab)
	staffMW := app.RoleRequired(models.RoleSupervisor, models.RoleLab)

	// ------------------------------
	// Login (public)
	// ------------------------------
	auth := r.Group("/auth")
	{
		auth.POST("/login", authCtl.Login)
	}
	authed := auth.Group("", authMW, seenMW)
	{
		authed.GET("/whoami", authCtl.WhoAmI)
		authed.POST("/logout", authCtl.Logout)
	}

	// ------------------------------
	// Requests (all roles create/list; transitions are role-gated inside)
	// ------------------------------
	requests := r.Group("/api/requests", authMW, seenMW)
	{
		requests.POST("", reqCtl.Create)
		requests.GET("", reqCtl.List) // ?status=&username=
		requests.POST("/:id/status", reqCtl.SetStatus)
	}

	// ------------------------------
	// Master list (private to supervisor/lab; upload and delete are lab only)
	// ------------------------------
	chems := r.Group("/api/chemicals", authMW, seenMW, staffMW)
	{
		chems.GET("", chemCtl.List)
		chems.GET("/export", chemCtl.ExportCSV)
	}
	chemsLab := r.Group("/api/chemicals", authMW, labMW)
	{
		chemsLab.POST("/import", chemCtl.Import)
		chemsLab.POST("/adjust", chemCtl.Adjust)
		chemsLab.DELETE("", chemCtl.DeleteAll)
	}

	// ------------------------------
	// Issuance log (users see their own history; full download is staff)
	// ------------------------------
	issuances := r.Group("/api/issuances", authMW, seenMW)
	{
		issuances.GET("", issCtl.List)
		issuances.GET("/export", staffMW, issCtl.ExportCSV)
	}

	// ------------------------------
	// Notifications
	// ------------------------------
	notifs := r.Group("/api/notifications", authMW, seenMW)
	{
		notifs.GET("", notifCtl.ListUnseen)
		notifs.POST("/seen", notifCtl.MarkSeen)
	}

	// ------------------------------
	// Audit registry (supervisor dashboard)
	// ------------------------------
	usersAdmin := r.Group("/api/users", authMW, supervisorMW)
	{
		usersAdmin.GET("", userCtl.List) // ?q=
	}
}
