package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"userhub/internal/profile/models"
	"userhub/pkg/email"
)

const invitationTemplateKey = "ProfileInvitationTemplate"

// KafkaPublisher publishes templated notification requests onto the
// notification-requests topic; a downstream worker renders and delivers
// the actual email.
type KafkaPublisher struct {
	client *kgo.Client
	topic  string

	// Claim URLs differ per profile kind; the invitation id is appended
	// as the final path segment.
	individualClaimURL string
	employerClaimURL   string
}

func NewKafkaPublisher(client *kgo.Client, topic, individualClaimURL, employerClaimURL string) *KafkaPublisher {
	return &KafkaPublisher{
		client:             client,
		topic:              topic,
		individualClaimURL: individualClaimURL,
		employerClaimURL:   employerClaimURL,
	}
}

// request is the JSON structure published to the notification topic.
type request struct {
	Method      string            `json:"communicationMethod"`
	Recipient   string            `json:"recipient"`
	TemplateKey string            `json:"templateKey"`
	Properties  map[string]string `json:"properties"`
	RequestedAt string            `json:"requestedAt"`
}

func (p *KafkaPublisher) SendInvitationEmail(ctx context.Context, invitation *models.ProfileInvitation, profileDisplayName string) error {
	if p.topic == "" {
		return ErrTopicNotConfigured
	}

	claimURL := p.individualClaimURL
	if invitation.Type == models.ProfileTypeEmployer {
		claimURL = p.employerClaimURL
	}

	greeting, _ := email.DeriveNameFromEmail(invitation.Email)

	value, err := json.Marshal(request{
		Method:      "EMAIL",
		Recipient:   invitation.Email,
		TemplateKey: invitationTemplateKey,
		Properties: map[string]string{
			"portal-url":           claimURL + "/" + invitation.ID.String(),
			"profile-display-name": profileDisplayName,
			"invitation-id":        invitation.ID.String(),
			"recipient-name":       greeting,
		},
		RequestedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("marshal notification request: %w", err)
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(invitation.Email),
		Value: value,
	}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce notification request: %w", err)
	}
	return nil
}
