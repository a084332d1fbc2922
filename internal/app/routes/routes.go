package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/idscan/internal/app/controllers"
	"github.com/yigit/idscan/internal/app/models/dto"
	"github.com/yigit/idscan/internal/middleware"
	"github.com/yigit/idscan/internal/pkg/websocket"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	scanController *controllers.ScanController,
	uploadController *controllers.UploadController,
	healthController *controllers.HealthController,
	feedHandler *websocket.Handler,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", healthController.Health)

	students := v1.Group("/students")
	{
		students.GET("", studentController.ListStudents)
		students.POST("", middleware.ValidateRequest[dto.StudentRequest](), studentController.CreateStudent)
		students.DELETE("", studentController.ClearStudents)

		// Static segments before /:id
		students.GET("/export", studentController.ExportCSV)
		students.POST("/upload", uploadController.Upload)

		students.GET("/:id", studentController.GetStudent)
		students.PUT("/:id", middleware.ValidateRequest[dto.StudentRequest](), studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	scans := v1.Group("/scans")
	{
		scans.POST("", middleware.ValidateRequest[dto.ScanRequest](), scanController.Scan)
		scans.POST("/text", middleware.ValidateRequest[dto.ScanTextRequest](), scanController.ScanText)
		scans.GET("/ws", feedHandler.HandleConnection)
	}
}
