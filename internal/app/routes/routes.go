package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolportal/internal/app/controllers"
	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/middleware"
	"github.com/yigit/schoolportal/internal/pkg/websocket"
)

// Controllers groups every HTTP handler set the router mounts
type Controllers struct {
	Auth       *controllers.AuthController
	Students   *controllers.StudentController
	Tasks      *controllers.TaskController
	Attendance *controllers.AttendanceController
	Exams      *controllers.ExamController
	Me         *controllers.MeController
	Health     *controllers.HealthController

	// Notifications may be nil, in which case /me/ws is not mounted
	Notifications *websocket.Handler
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.GET("/health", c.Health.Health)

	auth := v1.Group("/auth")
	{
		auth.POST("/teacher/login", c.Auth.LoginTeacher)
		auth.POST("/student/login", c.Auth.LoginStudent)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	// Students may read their own summary here too; the controller enforces ownership
	authenticated.GET("/students/:id/summary",
		authMiddleware.RoleRequired(models.RoleTeacher, models.RoleStudent),
		c.Students.GetSummary,
	)

	teacherOnly := authenticated.Group("")
	teacherOnly.Use(authMiddleware.RoleRequired(models.RoleTeacher))
	{
		students := teacherOnly.Group("/students")
		{
			students.GET("", c.Students.ListStudents)
			students.POST("", c.Students.CreateStudent)
			students.GET("/:id", c.Students.GetStudent)
		}

		tasks := teacherOnly.Group("/tasks")
		{
			tasks.GET("", c.Tasks.ListTasks)
			tasks.POST("", c.Tasks.CreateTask)
		}

		teacherOnly.POST("/weeks", c.Attendance.CreateWeek)
		teacherOnly.POST("/attendance", c.Attendance.RecordAttendance)

		exams := teacherOnly.Group("/exams")
		{
			exams.POST("", c.Exams.CreateExam)
			exams.POST("/:id/results", c.Exams.RecordResult)
		}
	}

	me := authenticated.Group("/me")
	me.Use(authMiddleware.RoleRequired(models.RoleStudent))
	{
		me.GET("", c.Me.Profile)
		me.GET("/summary", c.Me.Summary)
		me.GET("/tasks", c.Me.Tasks)
		me.GET("/attendance", c.Me.Attendance)
		me.GET("/exams", c.Me.Exams)
		if c.Notifications != nil {
			me.GET("/ws", c.Notifications.HandleConnection)
		}
	}
}
