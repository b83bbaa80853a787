package router

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-tracker/internal/handlers"
	"github.com/yukikurage/project-tracker/internal/middleware"
	"github.com/yukikurage/project-tracker/internal/repository"
	"go.uber.org/zap"
)

type RouterDeps struct {
	Log          *zap.Logger
	SessionName  string
	SessionStore sessions.Store
	UserRepo     repository.UserRepository

	AuthHandler      *handlers.AuthHandler
	HierarchyHandler *handlers.HierarchyHandler
	AdminHandler     *handlers.AdminHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	if d.Log != nil {
		r.Use(middleware.ZapLogger(d.Log))
	}
	r.Use(sessions.Sessions(d.SessionName, d.SessionStore))
	r.Use(middleware.LoadPrincipal())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// public
	r.GET("/", d.AuthHandler.Index)
	r.GET("/register", d.AuthHandler.RegisterPage)
	r.POST("/register", d.AuthHandler.Register)
	r.GET("/login", d.AuthHandler.LoginPage)
	r.POST("/login", d.AuthHandler.Login)
	r.GET("/logout", d.AuthHandler.Logout)

	// signed in
	authed := r.Group("/")
	authed.Use(middleware.RequireLogin())
	{
		authed.GET("/dashboard", d.HierarchyHandler.Dashboard)
		authed.GET("/objects/:id", d.HierarchyHandler.ObjectDetail)
		authed.GET("/sections/:id", d.HierarchyHandler.SectionDetail)
		authed.POST("/sections/:id", d.HierarchyHandler.UpdatePart)
	}

	// administrators
	admin := r.Group("/admin")
	admin.Use(middleware.RequireLogin(), middleware.RequireAdmin(d.UserRepo))
	{
		admin.GET("/users", d.AdminHandler.ListUsers)
		admin.POST("/users", d.AdminHandler.ApplyAction)
	}

	return r
}
