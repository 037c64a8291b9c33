package routes

import (
	adminapi "competition-portal/internal/api/admin"
	authapi "competition-portal/internal/api/auth"
	"competition-portal/internal/api/competitions"
	"competition-portal/internal/api/registrations"
	"competition-portal/internal/api/teams"
	"competition-portal/internal/api/users"
	"competition-portal/internal/app/http/middleware"
	"competition-portal/internal/domain/access"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/competition/", competitions.ListCompetitions)
	r.GET("/competition/:id", competitions.GetCompetition)

	// Public routes get input sanitization
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/auth/register", authapi.Register)
	public.POST("/auth/login", authapi.Login)
	public.GET("/auth/verify", authapi.VerifyEmail)
	public.POST("/auth/resend-verification", authapi.ResendVerification)
	public.POST("/auth/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/auth/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated — the edge layer decodes the token and checks
	// expiry/revocation; status-gated routes add RegistrationGuard,
	// which re-checks against fresh registration data.
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.POST("/auth/logout", authapi.Logout)
	auth.GET("/me", users.GetCurrentUser)
	auth.GET("/guard/decision", users.GuardDecision)

	auth.POST("/team", teams.CreateTeam)
	auth.PUT("/team/update", teams.UpdateTeam)

	auth.GET("/registration", registrations.ListMyRegistrations)
	auth.GET("/registration/:id", registrations.GetRegistration)
	auth.POST("/registration", registrations.CreateRegistration)
	auth.POST("/registration/upload", registrations.UploadDocument)

	auth.PUT("/registration",
		middleware.RegistrationGuard(access.ActionEditRegistration),
		registrations.UpdateBiodata)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/registrations", adminapi.ListRegistrations)
	admin.GET("/registrations/:id", adminapi.GetRegistrationDetail)
	admin.GET("/stats", adminapi.GetStats)
	admin.POST("/competition", competitions.CreateCompetition)

	// Status transitions stay admin-only; the upload flow's automatic
	// PENDING→REVIEW promotion is the single exception.
	statusAdmin := r.Group("/")
	statusAdmin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	statusAdmin.POST("/registration/status", registrations.ChangeStatus)
}
