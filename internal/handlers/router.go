package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/qazimatch/qazimatch/internal/auth"
	"github.com/qazimatch/qazimatch/internal/models"
)

// Deps bundles everything the router mounts.
type Deps struct {
	Auth         *AuthHandler
	Jobs         *JobHandler
	Applications *ApplicationHandler
	Headhunts    *HeadhuntHandler
	Resumes      *ResumeHandler

	JWTSecret string
	// ResumeDir/ResumeBaseURL serve uploaded resumes statically; empty
	// disables serving (tests).
	ResumeDir     string
	ResumeBaseURL string
}

// NewRouter wires routes and middleware. Shared between the binary and the
// integration tests.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authed := auth.Middleware(d.JWTSecret)
	employer := auth.RequireRole(models.RoleEmployer)
	employee := auth.RequireRole(models.RoleEmployee)

	if d.ResumeDir != "" && d.ResumeBaseURL != "" {
		r.Static(d.ResumeBaseURL, d.ResumeDir)
	}

	api := r.Group("/api")
	{
		api.GET("/health", HealthCheck)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", d.Auth.Signup)
			authGroup.POST("/login", d.Auth.Login)
			authGroup.POST("/logout", authed, d.Auth.Logout)
			authGroup.GET("/profile", authed, d.Auth.Profile)
			authGroup.DELETE("/delete", authed, d.Auth.Delete)
		}

		jobs := api.Group("/jobs")
		{
			jobs.GET("", d.Jobs.List)
			jobs.GET("/my", authed, employer, d.Jobs.Mine)
			jobs.GET("/:id", d.Jobs.Get)
			jobs.POST("", authed, employer, d.Jobs.Create)
			jobs.PATCH("/:id", authed, employer, d.Jobs.Update)
			jobs.PUT("/:id/status", authed, employer, d.Jobs.UpdateStatus)
			jobs.DELETE("/:id", authed, employer, d.Jobs.Delete)
		}

		apps := api.Group("/applications", authed)
		{
			apps.POST("/:id/apply", employee, d.Applications.Apply)
			apps.GET("/job/:jobId", employer, d.Applications.ForJob)
			apps.GET("/my", employee, d.Applications.Mine)
			apps.GET("/employer/open", employer, d.Applications.OpenJobs)
			apps.POST("/job/:jobId/select/:applicationId", employer, d.Applications.Select)
			apps.POST("/job/:jobId/reject/:applicationId", employer, d.Applications.Reject)
			apps.POST("/job/:jobId/review/:applicationId", employer, d.Applications.Review)
		}

		headhunt := api.Group("/headhunt", authed, employer)
		{
			headhunt.POST("", d.Headhunts.Create)
			headhunt.GET("/my", d.Headhunts.Mine)
			headhunt.PUT("/:id/assign", d.Headhunts.Assign)
			headhunt.PUT("/:id/fulfill", d.Headhunts.Fulfill)
		}

		api.POST("/submit-resume", d.Resumes.Submit)
	}

	return r
}
