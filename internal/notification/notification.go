// Package notification manages the communication with the notification
// service: invitation emails are published as templated notification
// requests on a Kafka topic and rendered/delivered downstream.
package notification

import (
	"context"
	"errors"
	"sync"

	"userhub/internal/profile/models"
)

// ErrTopicNotConfigured is returned when no notification-requests topic is
// configured. Invitation creation treats this as a hard failure: an
// invitation nobody is told about is useless.
var ErrTopicNotConfigured = errors.New("notification requests topic not configured")

// Publisher sends the invitation email for an invitation.
type Publisher interface {
	SendInvitationEmail(ctx context.Context, invitation *models.ProfileInvitation, profileDisplayName string) error
}

// MemoryPublisher records sends for tests.
type MemoryPublisher struct {
	mu    sync.Mutex
	sends []Send
}

// Send is one recorded invitation email.
type Send struct {
	Invitation         models.ProfileInvitation
	ProfileDisplayName string
}

func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{}
}

func (p *MemoryPublisher) SendInvitationEmail(_ context.Context, invitation *models.ProfileInvitation, profileDisplayName string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sends = append(p.sends, Send{Invitation: *invitation, ProfileDisplayName: profileDisplayName})
	return nil
}

// Sends returns a snapshot of everything sent so far.
func (p *MemoryPublisher) Sends() []Send {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Send, len(p.sends))
	copy(out, p.sends)
	return out
}
