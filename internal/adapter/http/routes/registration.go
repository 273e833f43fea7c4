package routes

import (
	"temporada_ferias/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathRegistrations = "/registrations"
	PathQuestions     = "/questions"
	PathAdmin         = "/admin"
)

// addPublicRoutes registers what the landing page calls. Every route shares
// the per-client rate limit.
func addPublicRoutes(rg *gin.RouterGroup, deps Dependencies) {
	public := rg.Group("", middleware.RateLimit(deps.Limiter))

	registrations := public.Group(PathRegistrations)
	{
		registrations.POST("", deps.Registrations.SignUp)
		registrations.GET("/:id/pix", deps.Registrations.PixCharge)
		registrations.GET("/:id/pix/qrcode", deps.Registrations.PixQRCode)
	}

	public.POST(PathQuestions, deps.Questions.Submit)
	public.POST("/auth/login", deps.Auth.Login)
}

func addAdminRoutes(rg *gin.RouterGroup, deps Dependencies) {
	admin := rg.Group(PathAdmin, middleware.RequireAdmin(deps.Tokens))

	registrations := admin.Group(PathRegistrations)
	{
		registrations.GET("", deps.Registrations.ListRegistrations)
		registrations.GET("/:id", deps.Registrations.GetRegistration)
		registrations.POST("/:id/installments", deps.Ledger.RecordInstallment)
		registrations.POST("/:id/finalize", deps.Ledger.Finalize)
		registrations.PATCH("/:id/adoptee", deps.Ledger.SetAdoptee)
	}

	questions := admin.Group(PathQuestions)
	{
		questions.GET("", deps.Questions.List)
		questions.POST("/:id/reply", deps.Questions.Reply)
		questions.DELETE("/:id", deps.Questions.Archive)
	}

	admin.GET("/stats", deps.Registrations.Stats)
	admin.GET("/activity", deps.Activity.List)
	admin.POST("/sheets/sync", deps.Registrations.SyncSheet)
}
