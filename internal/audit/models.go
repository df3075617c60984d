// Package audit captures structured audit events emitted by the profile
// workflows. Delivery is best-effort at-most-once: emission failures are
// logged by the caller and never fail the business operation.
package audit

import (
	"time"

	id "userhub/pkg/domain"
)

// ActivityType names the business action an event records.
type ActivityType string

const (
	ActivityProfileCreated     ActivityType = "profile_created"
	ActivityProfileDataChanged ActivityType = "profile_data_changed"

	ActivityProfileUserAdded              ActivityType = "profile_user_added"
	ActivityProfileUserRemoved            ActivityType = "profile_user_removed"
	ActivityProfileUserAccessLevelChanged ActivityType = "profile_user_access_level_changed"

	ActivityProfileInvitationSent    ActivityType = "profile_invitation_sent"
	ActivityProfileInvitationResent  ActivityType = "profile_invitation_resent"
	ActivityProfileInvitationClaimed ActivityType = "profile_invitation_claimed"
	ActivityProfileInvitationDeleted ActivityType = "profile_invitation_deleted"
)

// BusinessObject classifies the entity an event is about.
type BusinessObject string

const (
	BusinessObjectIndividual BusinessObject = "individual"
	BusinessObjectEmployer   BusinessObject = "employer"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so sinks can fan out.
type Event struct {
	// OriginatorID and UserID are both the acting user for self-service
	// operations; they diverge when an agent acts on a user's behalf.
	OriginatorID id.UserID
	UserID       id.UserID

	Summary            string
	BusinessObjectID   string
	BusinessObjectType BusinessObject
	ActivityType       ActivityType

	Timestamp time.Time
	RequestID string

	// Payload carries activity-specific detail (before/after access
	// levels, invitation email, ...).
	Payload map[string]any
}
