package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/tapnote/tapnote/internal/server/http/handlers"
	"github.com/tapnote/tapnote/internal/server/http/middleware"
	"github.com/tapnote/tapnote/internal/server/http/templates"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.BreweryFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.SetHTMLTemplate(templates.MustLoad())

	authHandler := handlers.NewAuthHandler(facade)
	searchHandler := handlers.NewSearchHandler(facade, facade)
	breweryHandler := handlers.NewBreweryHandler(facade)

	engine.GET("/register", authHandler.RegisterPage)
	engine.POST("/register", authHandler.Register)
	engine.GET("/login", authHandler.LoginPage)
	engine.POST("/login", authHandler.Login)
	engine.GET("/logout", authHandler.Logout)

	authed := engine.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/", searchHandler.Home)
	authed.GET("/home", searchHandler.Home)
	authed.GET("/search", searchHandler.SearchPage)
	authed.POST("/search", searchHandler.Search)
	authed.GET("/brewery/:id", breweryHandler.Show)
	authed.POST("/brewery/:id", breweryHandler.Submit)

	return engine
}
