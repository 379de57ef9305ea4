package router

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/microcourses/microcourses-web/internal/config"
	"github.com/microcourses/microcourses-web/internal/handler"
	"github.com/microcourses/microcourses-web/internal/middleware"
	"github.com/microcourses/microcourses-web/internal/session"
	"github.com/microcourses/microcourses-web/web"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth    *handler.AuthHandler
	Student *handler.StudentHandler
	Creator *handler.CreatorHandler
	Admin   *handler.AdminHandler
}

// Setup configures the Gin engine: templates, middlewares, and the full
// route surface. Every dashboard route passes the session gate; role
// screens are not otherwise gated, since the API enforces authorization on
// each call it receives.
func Setup(sessions *session.Manager, handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	r := gin.Default()

	r.Use(middleware.RequestID())

	tmpl := template.Must(template.New("").
		Funcs(template.FuncMap{
			"addOne": func(i int) int { return i + 1 },
		}).
		ParseFS(web.Templates, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)

	// Health check.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── Public ────────────────────────────────────────────────────────
	r.GET("/", handlers.Auth.ShowAuth)

	auth := r.Group("/auth")
	{
		auth.POST("/login", handlers.Auth.Login)
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/logout", handlers.Auth.Logout)
	}

	gate := middleware.RequireSession(sessions, cfg.CookieSecure)

	// ─── Student ───────────────────────────────────────────────────────
	student := r.Group("/dashboard/student", gate)
	{
		student.GET("", handlers.Student.Dashboard)
		student.POST("/enroll", handlers.Student.Enroll)
		student.POST("/complete-lesson", handlers.Student.CompleteLesson)
		student.GET("/certificate/:id", handlers.Student.Certificate)
	}

	// ─── Creator ───────────────────────────────────────────────────────
	r.GET("/dashboard/creator", gate, handlers.Creator.Dashboard)
	r.GET("/my-courses", gate, handlers.Creator.MyCourses)

	creator := r.Group("/creator", gate)
	{
		creator.GET("/create-course", handlers.Creator.ShowCreateCourse)
		creator.POST("/create-course", handlers.Creator.CreateCourse)
		creator.POST("/add-lesson", handlers.Creator.AddLesson)
	}

	// ─── Admin ─────────────────────────────────────────────────────────
	admin := r.Group("/dashboard/admin", gate)
	{
		admin.GET("", handlers.Admin.Dashboard)
		admin.POST("/approve/:id", handlers.Admin.Approve)
		admin.POST("/users/:id/role", handlers.Admin.UpdateRole)
	}

	return r
}
