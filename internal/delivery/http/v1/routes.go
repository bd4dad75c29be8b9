package v1

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.Engine, h Handler) {
	router.HandleMethodNotAllowed = true
	router.NoRoute(h.HandleNoRoute)
	router.NoMethod(h.HandleNoMethod)

	router.GET("/status", h.HandleHealth)

	tasksRouter := router.Group("/tasks")
	tasksRouter.POST("", h.HandleCreateTask)
	tasksRouter.GET("", h.HandleGetTasks)
	tasksRouter.PUT("/:id", h.HandleUpdateTask)
	tasksRouter.DELETE("/:id", h.HandleDeleteTask)
}
