package router

import (
	"github.com/fasthttp/router"

	apiHandler "github.com/brainboard/backend/api/handler"
)

type Handlers struct {
	Notification *apiHandler.NotificationHandler
	Message      *apiHandler.MessageHandler
	Task         *apiHandler.TaskHandler
	Search       *apiHandler.SearchHandler
	Utility      *apiHandler.UtilityHandler
	Health       *apiHandler.HealthHandler
}

func New(handlers Handlers) *router.Router {
	r := router.New()

	r.GET("/api/notifications", handlers.Notification.List)
	r.GET("/api/notifications/{id}", handlers.Notification.Get)
	r.POST("/api/notifications", handlers.Notification.Create)
	r.PUT("/api/notifications/{id}", handlers.Notification.Update)
	r.DELETE("/api/notifications/{id}", handlers.Notification.Delete)
	r.PATCH("/api/notifications/{id}/read", handlers.Notification.MarkRead)

	// Static segments are registered before the {id} routes they overlap with.
	r.GET("/api/messages", handlers.Message.List)
	r.GET("/api/messages/ai-status", handlers.Message.ReminderStatus)
	r.POST("/api/messages/ai-reminder", handlers.Message.TriggerReminder)
	r.GET("/api/messages/{id}", handlers.Message.Get)
	r.POST("/api/messages", handlers.Message.Create)
	r.PUT("/api/messages/{id}", handlers.Message.Update)
	r.DELETE("/api/messages/{id}", handlers.Message.Delete)
	r.PATCH("/api/messages/{id}/read", handlers.Message.MarkRead)

	r.GET("/api/tasks", handlers.Task.List)
	r.GET("/api/tasks/today", handlers.Task.TodayFocus)
	r.GET("/api/tasks/{id}", handlers.Task.Get)
	r.POST("/api/tasks", handlers.Task.Create)
	r.PUT("/api/tasks/{id}", handlers.Task.Update)
	r.DELETE("/api/tasks/{id}", handlers.Task.Delete)

	r.GET("/api/search", handlers.Search.Query)
	r.POST("/api/search", handlers.Search.AddItem)
	r.DELETE("/api/search/{id}", handlers.Search.DeleteItem)

	r.GET("/api/stats", handlers.Utility.Stats)
	r.PATCH("/api/mark-all-read", handlers.Utility.MarkAllRead)
	r.GET("/api/health", handlers.Health.Check)

	return r
}
