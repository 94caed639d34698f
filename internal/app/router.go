package app

import (
	"course_backend/docs"
	"course_backend/internal/config"
	"course_backend/internal/middleware"
	"course_backend/internal/model"
	"course_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg.JWT.Secret, s.auth))
	{
		authGroup.POST("/logout", c.auth.Logout)
		authGroup.GET("/profile", c.auth.Profile)

		// 教师相关接口
		a.registerTeacherRoutes(authGroup, c)

		// 学生相关接口
		a.registerUserRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/signup", c.auth.Signup)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerTeacherRoutes(authGroup *gin.RouterGroup, c *controllers) {
	teacher := authGroup.Group("/teacher")
	teacher.Use(middleware.RoleMiddleware(model.KindTeacher))
	{
		courses := teacher.Group("/courses")
		{
			courses.POST("", c.course.CreateCourse)
			courses.GET("", c.course.ListTeacherCourses)
			courses.GET("/:courseId", c.course.GetTeacherCourse)
			courses.PATCH("/:courseId", c.course.UpdateCourse)
			courses.PATCH("/:courseId/urls/:urlId", c.course.UpdateCourseURL)
			courses.POST("/:courseId/materials", c.course.UploadMaterial)
			courses.DELETE("/:courseId", c.course.DeleteCourse)
			courses.GET("/:courseId/users", c.course.ListEnrolledUsers)
		}

		assignments := teacher.Group("/assignments")
		{
			assignments.POST("", c.assignment.CreateAssignment)
			assignments.GET("", c.assignment.ListAssignments)
			assignments.GET("/:assignmentId", c.assignment.GetAssignment)
			assignments.PATCH("/:assignmentId", c.assignment.UpdateAssignment)
			assignments.PATCH("/:assignmentId/questions", c.assignment.UpdateAssignmentQuestions)
			assignments.DELETE("/:assignmentId", c.assignment.DeleteAssignment)
			assignments.GET("/:assignmentId/submissions", c.assignment.ListAssignmentSubmissions)
		}

		quizzes := teacher.Group("/quizzes")
		{
			quizzes.POST("", c.quiz.CreateQuiz)
			quizzes.GET("", c.quiz.ListQuizzes)
			quizzes.GET("/:quizId", c.quiz.GetQuiz)
			quizzes.PATCH("/:quizId", c.quiz.UpdateQuiz)
			quizzes.PATCH("/:quizId/questions", c.quiz.UpdateQuizQuestions)
			quizzes.DELETE("/:quizId", c.quiz.DeleteQuiz)
			quizzes.GET("/:quizId/submissions", c.quiz.ListQuizSubmissions)
		}
	}
}

func (a *App) registerUserRoutes(authGroup *gin.RouterGroup, c *controllers) {
	user := authGroup.Group("/user")
	user.Use(middleware.RoleMiddleware(model.KindUser))
	{
		user.GET("/courses", c.course.ListCourses)
		user.GET("/courses/:courseId", c.course.GetCourse)
		user.POST("/courses/:courseId/enroll", c.course.Enroll)

		user.GET("/assignments", c.assignment.ListUserAssignments)
		user.POST("/assignments/submit", c.submission.SubmitAssignment)
		user.GET("/assignments/:assignmentId", c.assignment.GetUserAssignment)

		user.GET("/quizzes", c.quiz.ListUserQuizzes)
		user.POST("/quizzes/submit", c.submission.SubmitQuiz)
		user.GET("/quizzes/:quizId", c.quiz.GetUserQuiz)

		user.GET("/submissions/assignments/:assignmentId", c.submission.ListOwnAssignmentSubmissions)
		user.GET("/submissions/quizzes/:quizId", c.submission.ListOwnQuizSubmissions)
	}
}
