package service

import (
	"context"

	"userhub/internal/audit"
	"userhub/internal/profile/metrics"
	"userhub/internal/profile/models"
	"userhub/pkg/requestcontext"
)

// logAudit fills request-scoped fields and emits the event, logging and
// dropping on failure so a broken audit pipeline never blocks the workflow.
func (s *Service) logAudit(ctx context.Context, event audit.Event) {
	if s.auditPublisher == nil {
		return
	}

	event.OriginatorID = requestcontext.UserID(ctx)
	if event.UserID.IsNil() {
		event.UserID = event.OriginatorID
	}
	event.Timestamp = requestcontext.Now(ctx)
	event.RequestID = requestcontext.RequestID(ctx)

	if err := s.auditPublisher.Emit(ctx, event); err != nil {
		metrics.AuditPublishFailures.Inc()
		s.logger.WarnContext(ctx, "audit event dropped",
			"activity", string(event.ActivityType),
			"business_object_id", event.BusinessObjectID,
			"error", err,
		)
	}
}

func businessObject(t models.ProfileType) audit.BusinessObject {
	if t == models.ProfileTypeEmployer {
		return audit.BusinessObjectEmployer
	}
	return audit.BusinessObjectIndividual
}
