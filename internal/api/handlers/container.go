package handlers

import (
	"github.com/linskybing/freelance-market/internal/application"
	"github.com/linskybing/freelance-market/internal/config"
	"github.com/linskybing/freelance-market/internal/realtime"
)

type Handlers struct {
	Auth         *AuthHandler
	Job          *JobHandler
	AdminJob     *AdminJobHandler
	AdminUser    *AdminUserHandler
	Audit        *AuditHandler
	Settings     *SettingsHandler
	Proposal     *ProposalHandler
	Contract     *ContractHandler
	Notification *NotificationHandler
	WS           *WSHandler
}

func New(svc *application.Services, hub *realtime.Hub) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(svc.Account),
		Job:          NewJobHandler(svc.Job),
		AdminJob:     NewAdminJobHandler(svc.Moderation, svc.Job.CategoryAliases()),
		AdminUser:    NewAdminUserHandler(svc.Account),
		Audit:        NewAuditHandler(svc.Audit),
		Settings:     NewSettingsHandler(svc.Settings),
		Proposal:     NewProposalHandler(svc.Proposal),
		Contract:     NewContractHandler(svc.Contract),
		Notification: NewNotificationHandler(svc.Notification),
		WS:           NewWSHandler(hub, config.AllowedOrigins),
	}
}
