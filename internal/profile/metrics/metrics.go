// Package metrics exposes Prometheus instrumentation for the profile
// workflows.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	InvitationsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "userhub_profile_invitations_created_total",
		Help: "Profile invitations created, by profile type",
	}, []string{"profile_type"})

	InvitationsClaimed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "userhub_profile_invitations_claimed_total",
		Help: "Profile invitations successfully claimed, by profile type",
	}, []string{"profile_type"})

	InvitationClaimRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "userhub_profile_invitation_claim_rejections_total",
		Help: "Invitation claim attempts rejected, by reason",
	}, []string{"reason"})

	LinksUpserted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "userhub_profile_links_upserted_total",
		Help: "Profile link grants and access level changes, by outcome",
	}, []string{"outcome"})

	AuditPublishFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "userhub_audit_publish_failures_total",
		Help: "Audit events that could not be published and were dropped",
	})

	NotificationSendFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "userhub_notification_send_failures_total",
		Help: "Invitation notification requests that failed to publish",
	})
)
