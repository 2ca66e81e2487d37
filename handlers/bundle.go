// File: tutorhq/handlers/bundle.go
package handlers

import (
	"tutorhq/services/content"
	"tutorhq/services/crm"
	"tutorhq/services/portal"
	"tutorhq/services/scheduling"
	"tutorhq/services/site"
	"tutorhq/services/tutor"
)

// HandlerBundle groups all endpoint handlers and the services behind them.
type HandlerBundle struct {
	TutorSvc      tutor.TutorService
	SchedulingSvc scheduling.SchedulingService
	SiteSvc       site.SiteService
	CRMSvc        crm.CRMService
	ContentSvc    content.ContentService
	PortalSvc     portal.PortalService
}
