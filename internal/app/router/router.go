// Package router builds the HTTP route table.
package router

import (
	"log"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authhandler "portal_backend/internal/feature/auth/transport/handler"
	authusecase "portal_backend/internal/feature/auth/usecase"
	settingshandler "portal_backend/internal/feature/settings/transport/handler"
	userdatahandler "portal_backend/internal/feature/userdata/transport/handler"
	"portal_backend/internal/interface/handler"
	"portal_backend/internal/platform/middleware"
	"portal_backend/internal/platform/view"
	"portal_backend/internal/shared/ratelimiter"
	"portal_backend/web"
)

// NewRouter wires the middleware chain and all routes.
func NewRouter(
	auth *authhandler.AuthHandler,
	settings *settingshandler.SettingsHandler,
	userData *userdatahandler.UserDataHandler,
	sessions *authusecase.SessionManager,
	limiter *ratelimiter.RateLimiter,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		slog.Error("panic recovered", "error", err, "path", c.Request.URL.Path)
		view.Error(c, http.StatusInternalServerError, "Server error")
	}))

	r.SetHTMLTemplate(view.MustTemplates())

	staticFS, err := web.Static()
	if err != nil {
		log.Fatalf("failed to load static assets: %v", err)
	}

	// No session needed for probes and assets.
	r.GET("/healthz", handler.Health)
	r.StaticFS("/static", http.FS(staticFS))

	// Every route below carries a session.
	r.Use(middleware.Sessions(sessions))

	r.GET("/", home)

	r.GET("/auth", auth.Page)
	r.POST("/auth/register", auth.Register)
	r.POST("/auth/login", auth.Login)
	r.GET("/auth/logout", auth.Logout)
	r.POST("/auth/set-theme", auth.SetTheme)

	// Gated content.
	protected := r.Group("/auth")
	protected.Use(middleware.AuthRequired(sessions))
	{
		protected.GET("/protected", auth.Protected)
	}

	r.GET("/settings", settings.Page)
	r.POST("/settings/set-theme", settings.SetTheme)

	r.GET("/users", userData.ListPage)

	// Generic collection API, rate limited per client IP.
	data := r.Group("/userdata")
	data.Use(limiter.Middleware())
	{
		data.POST("/insertOne", userData.InsertOne)
		data.POST("/insertMany", userData.InsertMany)
		data.PUT("/updateOne/:id", userData.UpdateOne)
		data.PUT("/updateMany", userData.UpdateMany)
		data.PUT("/replaceOne/:id", userData.ReplaceOne)
		data.DELETE("/deleteOne/:id", userData.DeleteOne)
		data.DELETE("/deleteMany", userData.DeleteMany)
		data.GET("/find", userData.Find)
		data.GET("/findWithCursor", userData.FindWithCursor)
		data.GET("/aggregate", userData.Aggregate)
	}

	r.NoRoute(func(c *gin.Context) {
		view.Error(c, http.StatusNotFound, "Page not found")
	})

	return r
}

// home renders the landing page with the session's theme.
func home(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	c.HTML(http.StatusOK, "home.html", gin.H{
		"Title": "Home",
		"Theme": sess.Theme,
	})
}
