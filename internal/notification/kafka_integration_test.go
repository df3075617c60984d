//go:build integration

package notification

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kadm"

	"userhub/internal/profile/models"
	id "userhub/pkg/domain"
	"userhub/pkg/testutil/containers"
)

func TestKafkaPublisherSendInvitationEmail(t *testing.T) {
	kafka := containers.NewKafkaContainer(t)

	const topic = "notification-requests-test"
	producer := kafka.NewClient(t, "")
	_, err := kadm.NewClient(producer).CreateTopics(context.Background(), 1, 1, nil, topic)
	require.NoError(t, err)

	publisher := NewKafkaPublisher(producer, topic,
		"https://portal.example.com/individual/claim",
		"https://portal.example.com/employer/claim",
	)

	invitation := &models.ProfileInvitation{
		ID:          id.NewInvitationID(),
		ProfileID:   id.NewProfileID(),
		Type:        models.ProfileTypeEmployer,
		AccessLevel: models.AccessLevelReader,
		Email:       "grace.hopper@example.com",
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, publisher.SendInvitationEmail(ctx, invitation, "Acme Corp"))

	consumer := kafka.NewClient(t, topic)
	fetches := consumer.PollFetches(ctx)
	require.NoError(t, fetches.Err())

	records := fetches.Records()
	require.Len(t, records, 1)
	require.Equal(t, invitation.Email, string(records[0].Key))

	var got struct {
		Method      string            `json:"communicationMethod"`
		Recipient   string            `json:"recipient"`
		TemplateKey string            `json:"templateKey"`
		Properties  map[string]string `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(records[0].Value, &got))
	require.Equal(t, "EMAIL", got.Method)
	require.Equal(t, invitation.Email, got.Recipient)
	require.Equal(t, "ProfileInvitationTemplate", got.TemplateKey)
	require.Equal(t,
		"https://portal.example.com/employer/claim/"+invitation.ID.String(),
		got.Properties["portal-url"],
	)
	require.Equal(t, "Acme Corp", got.Properties["profile-display-name"])
	require.Equal(t, "Grace", got.Properties["recipient-name"])
}

func TestKafkaPublisherMissingTopic(t *testing.T) {
	publisher := NewKafkaPublisher(nil, "", "", "")
	err := publisher.SendInvitationEmail(context.Background(), &models.ProfileInvitation{}, "")
	require.ErrorIs(t, err, ErrTopicNotConfigured)
}
