package worker

import (
	"github.com/spec-kit/agrilink/internal/service"
)

// StartNotificationWorker registers notification event handlers.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}
