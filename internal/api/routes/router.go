package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/freelance-market/internal/api/handlers"
	"github.com/linskybing/freelance-market/internal/api/middleware"
	"github.com/linskybing/freelance-market/internal/application"
	"github.com/linskybing/freelance-market/internal/domain/account"
	"github.com/linskybing/freelance-market/internal/realtime"
	"github.com/linskybing/freelance-market/internal/repository"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func RegisterRoutes(r *gin.Engine, repos *repository.Repos, svc *application.Services, hub *realtime.Hub) {
	h := handlers.New(svc, hub)
	authMiddleware := middleware.NewAuth(repos)
	clientOnly := authMiddleware.RequireRole(account.RoleClient)
	freelancerOnly := authMiddleware.RequireRole(account.RoleFreelancer)

	r.GET("/healthz", handlers.Healthz(repos))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/notifications", middleware.OptionalJWTMiddleware(), h.WS.Notifications)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/logout", h.Auth.Logout)
	}

	// Public reads. The detail route inspects the token when one is sent.
	api.GET("/jobs", h.Job.ListJobs)

	auth := api.Group("")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		jobs := auth.Group("/jobs")
		{
			jobs.GET("/mine", clientOnly, h.Job.ListMyJobs)
			jobs.POST("", clientOnly, h.Job.CreateJob)
			jobs.PUT("", clientOnly, h.Job.UpdateJob)
			jobs.PUT("/:id", clientOnly, h.Job.UpdateJob)
			jobs.DELETE("", clientOnly, h.Job.DeleteJob)
			jobs.DELETE("/:id", clientOnly, h.Job.DeleteJob)
			jobs.POST("/:id/proposals", freelancerOnly, h.Proposal.SubmitProposal)
			jobs.GET("/:id/proposals", h.Proposal.ListJobProposals)
		}

		proposals := auth.Group("/proposals")
		{
			proposals.GET("/mine", freelancerOnly, h.Proposal.ListMyProposals)
			proposals.POST("/:id/withdraw", freelancerOnly, h.Proposal.WithdrawProposal)
			proposals.POST("/:id/accept", clientOnly, h.Proposal.AcceptProposal)
		}

		contracts := auth.Group("/contracts")
		{
			contracts.GET("", h.Contract.ListContracts)
			contracts.GET("/:id", h.Contract.GetContract)
			contracts.POST("/:id/sign", h.Contract.SignContract)
			contracts.POST("/:id/fund", clientOnly, h.Contract.FundContract)
			contracts.POST("/:id/milestones/:index/complete", clientOnly, h.Contract.CompleteMilestone)
			contracts.POST("/:id/cancel", h.Contract.CancelContract)
		}

		notifications := auth.Group("/notifications")
		{
			notifications.GET("", h.Notification.ListNotifications)
			notifications.POST("/:id/read", h.Notification.MarkRead)
		}

		settings := auth.Group("/settings")
		{
			settings.GET("", h.Settings.GetSettings)
			settings.PUT("", h.Settings.UpdateSettings)
			settings.POST("/avatar", h.Settings.UploadAvatar)
		}

		admin := auth.Group("/admin")
		admin.Use(authMiddleware.Admin())
		{
			admin.GET("/jobs", h.AdminJob.ListJobs)
			admin.PATCH("/jobs", h.AdminJob.ModerateJob)
			admin.GET("/users", h.AdminUser.ListUsers)
			admin.PATCH("/users", h.AdminUser.ModerateUser)
			admin.DELETE("/users", h.AdminUser.DeleteUser)
			admin.GET("/audit-logs", h.Audit.GetAuditLogs)
		}
	}

	api.GET("/jobs/:id", middleware.OptionalJWTMiddleware(), h.Job.GetJob)
}
