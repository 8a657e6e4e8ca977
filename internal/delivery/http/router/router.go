// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"habitude/internal/delivery/http/middleware"
	"habitude/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	HabitHandler        *handler.HabitHandler
	SocialHandler       *handler.SocialHandler
	NotificationHandler *handler.NotificationHandler
	AnalyticsHandler    *handler.AnalyticsHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	habitHandler        *handler.HabitHandler
	socialHandler       *handler.SocialHandler
	notificationHandler *handler.NotificationHandler
	analyticsHandler    *handler.AnalyticsHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		userHandler:         params.UserHandler,
		habitHandler:        params.HabitHandler,
		socialHandler:       params.SocialHandler,
		notificationHandler: params.NotificationHandler,
		analyticsHandler:    params.AnalyticsHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/google", r.authHandler.GoogleLogin)
		authGroup.POST("/refresh", r.authHandler.RefreshSession)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/password-reset", r.authHandler.RequestPasswordReset)
	}

	// Auth routes that require an access token
	authedAuthGroup := e.Group("/auth")
	authedAuthGroup.Use(r.authMiddleware.Authenticate)
	{
		authedAuthGroup.POST("/logout-all", r.authHandler.LogoutAll)
		authedAuthGroup.PUT("/password", r.authHandler.ChangePassword)
		authedAuthGroup.POST("/mfa/enroll", r.authHandler.EnrollMFA)
		authedAuthGroup.POST("/mfa/activate", r.authHandler.ActivateMFA)
		authedAuthGroup.POST("/mfa/disable", r.authHandler.DisableMFA)
	}

	// User routes
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.GetProfile)
		userGroup.PUT("/me", r.userHandler.UpdateProfile)
		userGroup.DELETE("/me", r.userHandler.DeleteAccount)
		userGroup.PUT("/me/privacy", r.userHandler.UpdatePrivacy)
		userGroup.GET("/me/avatar", r.userHandler.GetAvatar)
		userGroup.PUT("/me/avatar/traits", r.userHandler.UpdateAvatarTraits)
		userGroup.PUT("/me/avatar/appearance", r.userHandler.UpdateAvatarAppearance)
		userGroup.GET("/me/stats", r.userHandler.GetUserStats)
		userGroup.GET("/me/activities", r.userHandler.ListActivities)
		userGroup.GET("/search", r.userHandler.SearchUsers)
		userGroup.GET("/:id", r.userHandler.GetProfile)
		userGroup.GET("/:id/stats", r.userHandler.GetUserStats)
		userGroup.GET("/:id/activities", r.userHandler.ListActivities)
	}

	// Habit routes
	habitGroup := e.Group("/habits")
	habitGroup.Use(r.authMiddleware.Authenticate)
	{
		habitGroup.POST("", r.habitHandler.CreateHabit)
		habitGroup.GET("", r.habitHandler.ListHabits)
		habitGroup.GET("/:id", r.habitHandler.GetHabit)
		habitGroup.PUT("/:id", r.habitHandler.UpdateHabit)
		habitGroup.DELETE("/:id", r.habitHandler.DeleteHabit)
		habitGroup.POST("/:id/archive", r.habitHandler.ArchiveHabit)
		habitGroup.POST("/:id/progress", r.habitHandler.LogProgress)
		habitGroup.GET("/:id/progress", r.habitHandler.GetProgress)
		habitGroup.GET("/:id/stats", r.analyticsHandler.GetHabitStats)
		habitGroup.GET("/:id/export", r.analyticsHandler.ExportProgress)
	}

	// Social routes
	socialGroup := e.Group("/social")
	socialGroup.Use(r.authMiddleware.Authenticate)
	{
		socialGroup.POST("/friends/requests", r.socialHandler.SendFriendRequest)
		socialGroup.GET("/friends/requests", r.socialHandler.ListFriendRequests)
		socialGroup.PUT("/friends/requests/:id", r.socialHandler.RespondFriendRequest)
		socialGroup.GET("/friends", r.socialHandler.ListFriends)
		socialGroup.DELETE("/friends/:id", r.socialHandler.RemoveFriend)
		socialGroup.POST("/blocks/:id", r.socialHandler.BlockUser)
		socialGroup.DELETE("/blocks/:id", r.socialHandler.UnblockUser)
		socialGroup.GET("/blocks", r.socialHandler.ListBlocked)
		socialGroup.GET("/invite/qr", r.socialHandler.GenerateInviteQR)
		socialGroup.POST("/invite/accept", r.socialHandler.AcceptInviteQR)
		socialGroup.POST("/challenges", r.socialHandler.CreateChallenge)
		socialGroup.GET("/challenges", r.socialHandler.ListChallenges)
		socialGroup.GET("/challenges/:id", r.socialHandler.GetChallenge)
		socialGroup.POST("/challenges/:id/join", r.socialHandler.JoinChallenge)
		socialGroup.POST("/challenges/:id/leave", r.socialHandler.LeaveChallenge)
		socialGroup.POST("/challenges/:id/progress", r.socialHandler.UpdateChallengeProgress)
		socialGroup.GET("/feed", r.socialHandler.GetActivityFeed)
	}

	// Notification routes
	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationGroup.GET("", r.notificationHandler.ListNotifications)
		notificationGroup.GET("/unread-count", r.notificationHandler.GetUnreadCount)
		notificationGroup.PUT("/:id/read", r.notificationHandler.MarkRead)
		notificationGroup.PUT("/read-all", r.notificationHandler.MarkAllRead)
		notificationGroup.DELETE("/:id", r.notificationHandler.DeleteNotification)
		notificationGroup.GET("/preferences", r.notificationHandler.GetPreferences)
		notificationGroup.PUT("/preferences", r.notificationHandler.UpdatePreferences)
		notificationGroup.POST("/devices", r.notificationHandler.RegisterDevice)
		notificationGroup.GET("/devices", r.notificationHandler.ListDevices)
		notificationGroup.DELETE("/devices/:id", r.notificationHandler.DeactivateDevice)
	}

	// Analytics routes
	analyticsGroup := e.Group("/analytics")
	analyticsGroup.Use(r.authMiddleware.Authenticate)
	{
		analyticsGroup.GET("/weekly-summary", r.analyticsHandler.GetWeeklySummary)
		analyticsGroup.GET("/insights", r.analyticsHandler.GetInsights)
	}
}
