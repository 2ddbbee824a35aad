package app

import (
	"exam_platform_backend/docs"
	"exam_platform_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// The whole API is public: authentication is deliberately absent, students
// identify themselves by id in the request body.
func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// Core operations: submit and fetch
		api.POST("/exams/submissions", c.submission.Submit)
		api.GET("/exams/submissions", c.submission.Fetch)

		// Exam management
		api.POST("/exams", c.exam.CreateExam)
		api.GET("/exams", c.exam.ListExams)
		api.GET("/exams/:id", c.exam.GetExam)
		api.POST("/exams/:id/questions", c.exam.AttachQuestion)

		// Question bank
		api.POST("/questions", c.question.CreateQuestion)
		api.GET("/questions", c.question.ListQuestions)
		api.GET("/questions/:id", c.question.GetQuestion)

		// Student directory
		api.POST("/students", c.student.CreateStudent)
		api.GET("/students", c.student.ListStudents)
		api.GET("/students/:id", c.student.GetStudent)
	}
}
