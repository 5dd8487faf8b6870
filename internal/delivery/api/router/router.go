// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"profilecard/config"
	"profilecard/internal/delivery/api/middleware"
	"profilecard/internal/delivery/api/router/handler"
	"profilecard/internal/domain/constants"
	"profilecard/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PublicProfileHandler *handler.PublicProfileHandler
	AdminProfileHandler  *handler.AdminProfileHandler
	AuthHandler          *handler.AuthHandler
	MediaHandler         *handler.MediaHandler
	AuthMiddleware       *middleware.AuthMiddleware
	Config               *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	publicProfileHandler *handler.PublicProfileHandler
	adminProfileHandler  *handler.AdminProfileHandler
	authHandler          *handler.AuthHandler
	mediaHandler         *handler.MediaHandler
	authMiddleware       *middleware.AuthMiddleware
	config               *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		publicProfileHandler: params.PublicProfileHandler,
		adminProfileHandler:  params.AdminProfileHandler,
		authHandler:          params.AuthHandler,
		mediaHandler:         params.MediaHandler,
		authMiddleware:       params.AuthMiddleware,
		config:               params.Config,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public pages
	e.GET("/", r.publicProfileHandler.Home)
	e.GET("/u/:identifier", r.publicProfileHandler.ProfilePage)
	e.GET("/u/:identifier/qr.png", r.publicProfileHandler.QRCode)

	if r.serveMedia() {
		e.GET("/media/*", r.mediaHandler.Serve)
	}

	// Local admin accounts sign in here; Firebase clients bring their own ID token.
	if r.authProvider() == constants.AuthProviderJWT {
		authGroup := e.Group("/auth")
		{
			authGroup.POST("/login", r.authHandler.Login)
		}
	}

	apiV1 := e.Group("/api/v1")
	{
		apiV1.GET("/profiles/:identifier", r.publicProfileHandler.GetProfile)
	}

	// Admin routes require an authenticated admin
	adminGroup := apiV1.Group("/admin/profiles")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("", r.adminProfileHandler.ListProfiles)
		adminGroup.GET("/new", r.adminProfileHandler.NewProfileForm)
		adminGroup.POST("", r.adminProfileHandler.CreateProfile)
		adminGroup.GET("/:id", r.adminProfileHandler.GetProfileForm)
		adminGroup.PUT("/:id", r.adminProfileHandler.UpdateProfile)
		adminGroup.DELETE("/:id", r.adminProfileHandler.DeleteProfile)
	}
}

func (r *router) serveMedia() bool {
	return r.config.Storage != nil && r.config.Storage.ServeMedia && r.mediaHandler.Enabled()
}

func (r *router) authProvider() string {
	if r.config.Auth == nil || r.config.Auth.Provider == "" {
		return constants.AuthProviderJWT
	}

	return r.config.Auth.Provider
}
