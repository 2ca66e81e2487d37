package routes

import (
	"time"

	"tutorhq/handlers"
	"tutorhq/middleware"

	tutorRepo "tutorhq/database/repository/tutor"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterTutorRoutes registers account, onboarding and profile endpoints.
func RegisterTutorRoutes(r *gin.Engine, hb *handlers.HandlerBundle, tutors tutorRepo.TutorRepository) {
	api := r.Group("/api/tutors")
	{
		api.POST("/register", hb.RegisterTutorHandler)
		api.POST("/login", hb.AuthenticateTutorHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.TutorAuthMiddleware(tutors))
		api.GET("/me", hb.GetTutorProfileHandler)
		api.PATCH("/me", hb.UpdateTutorProfileHandler)
		api.DELETE("/me", hb.DeleteTutorHandler)
		api.DELETE("/revoke", hb.RevokeTutorAuthTokenHandler)
		api.PUT("/onboarding", hb.SaveOnboardingHandler)
		api.GET("/onboarding", hb.GetOnboardingHandler)
	}
}

// RegisterSchedulingRoutes registers availability and booking management.
func RegisterSchedulingRoutes(r *gin.Engine, hb *handlers.HandlerBundle, tutors tutorRepo.TutorRepository) {
	api := r.Group("/api/scheduling")
	{
		api.Use(middleware.TutorAuthMiddleware(tutors))
		api.GET("/rules", hb.ListRulesHandler)
		api.POST("/rules", hb.AddRuleHandler)
		api.DELETE("/rules/:id", hb.DeleteRuleHandler)
		api.GET("/bookings", hb.ListBookingsHandler)
		api.DELETE("/bookings/:id", hb.CancelBookingHandler)
	}
}

// RegisterSiteRoutes registers mini-site management endpoints.
func RegisterSiteRoutes(r *gin.Engine, hb *handlers.HandlerBundle, tutors tutorRepo.TutorRepository) {
	api := r.Group("/api/site")
	{
		api.Use(middleware.TutorAuthMiddleware(tutors))
		api.GET("", hb.GetSiteHandler)
		api.PUT("", hb.SaveSiteHandler)
		api.PUT("/publish", hb.PublishSiteHandler)
	}
}

// RegisterCRMRoutes registers the lead pipeline endpoints.
func RegisterCRMRoutes(r *gin.Engine, hb *handlers.HandlerBundle, tutors tutorRepo.TutorRepository) {
	api := r.Group("/api/crm")
	{
		api.Use(middleware.TutorAuthMiddleware(tutors))
		api.POST("/leads", hb.CreateLeadHandler)
		api.GET("/leads", hb.ListLeadsHandler)
		api.GET("/leads/:id", hb.GetLeadHandler)
		api.PATCH("/leads/:id", hb.UpdateLeadHandler)
		api.DELETE("/leads/:id", hb.DeleteLeadHandler)
		api.POST("/leads/:id/follow-up", hb.ScheduleFollowUpHandler)
	}
}

// RegisterContentRoutes registers AI growth plan and asset endpoints.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle, tutors tutorRepo.TutorRepository) {
	api := r.Group("/api/content")
	{
		api.Use(middleware.TutorAuthMiddleware(tutors))
		api.POST("/growth-plan", hb.GenerateGrowthPlanHandler)
		api.GET("/growth-plan", hb.GetGrowthPlanHandler)
		api.POST("/assets/:type", hb.GenerateAssetHandler)
		api.GET("/assets/:type", hb.GetAssetHandler)
		api.GET("/assets", hb.ListAssetsHandler)
	}
}

// RegisterStudentRoutes registers the tutor-side roster and homework
// endpoints.
func RegisterStudentRoutes(r *gin.Engine, hb *handlers.HandlerBundle, tutors tutorRepo.TutorRepository) {
	api := r.Group("/api/students")
	{
		api.Use(middleware.TutorAuthMiddleware(tutors))
		api.POST("", hb.AddStudentHandler)
		api.GET("", hb.ListStudentsHandler)
		api.DELETE("/:id", hb.RemoveStudentHandler)
		api.POST("/:id/files", hb.UploadStudentFileHandler)
		api.DELETE("/:id/files/:fileId", hb.DeleteStudentFileHandler)
		api.POST("/:id/homework", hb.AssignHomeworkHandler)
		api.DELETE("/:id/homework/:homeworkId", hb.DeleteHomeworkHandler)
		api.GET("/:id/homework/:homeworkId/submissions", hb.ListSubmissionsHandler)
	}
}

// RegisterPublicRoutes registers the unauthenticated booking surface.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/public")
	{
		api.GET("/sites/:slug", hb.GetPublicSiteHandler)
		api.GET("/sites/:slug/slots", hb.ListSlotsHandler)
		api.POST("/sites/:slug/bookings", hb.CreateBookingHandler)
	}
}

// RegisterPortalRoutes registers the token-gated student portal.
func RegisterPortalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/portal")
	{
		api.GET("/me", hb.PortalMeHandler)
		api.GET("/files", hb.PortalListFilesHandler)
		api.POST("/files", hb.PortalUploadFileHandler)
		api.GET("/files/:fileId/url", hb.PortalFileURLHandler)
		api.GET("/homework", hb.PortalListHomeworkHandler)
		api.POST("/homework/:homeworkId/submit", hb.PortalSubmitHomeworkHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, tutors tutorRepo.TutorRepository) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Portal-Token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterTutorRoutes(r, hb, tutors)
	RegisterSchedulingRoutes(r, hb, tutors)
	RegisterSiteRoutes(r, hb, tutors)
	RegisterCRMRoutes(r, hb, tutors)
	RegisterContentRoutes(r, hb, tutors)
	RegisterStudentRoutes(r, hb, tutors)
	RegisterPublicRoutes(r, hb)
	RegisterPortalRoutes(r, hb)
	RegisterHealthRoute(r)
}
