package server

import (
	"net/http"

	"job-board/internal/config"
	"job-board/internal/handlers"
	"job-board/internal/middleware"
	"job-board/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, apps *handlers.ApplicationHandler) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("web/templates/*.html")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("jobboard_session", store))

	r.Use(middleware.InjectUser())

	r.GET("/", handlers.IndexPage)

	// AUTH
	r.GET("/signup", handlers.ShowSignup)
	r.POST("/signup", handlers.Signup)
	r.GET("/login", handlers.ShowLogin)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)

	// SEEKER
	seeker := r.Group("/", middleware.RequireRole(models.RoleSeeker))
	seeker.GET("/seeker/dashboard", handlers.SeekerDashboard)
	seeker.POST("/apply/:id", apps.Apply)

	// RECRUITER
	recruiter := r.Group("/", middleware.RequireRole(models.RoleRecruiter))
	recruiter.GET("/recruiter/dashboard", handlers.RecruiterDashboard)
	recruiter.GET("/post-job", handlers.ShowPostJob)
	recruiter.POST("/post-job", handlers.PostJob)
	recruiter.POST("/accept/:id", apps.Accept)
	recruiter.POST("/reject/:id", apps.Reject)

	// stored resumes require a session
	auth := r.Group("/", middleware.RequireAuth())
	auth.GET("/upload/:filename", apps.ServeResume)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
