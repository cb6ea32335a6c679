// Package notify implements the outbound Discord webhook sink.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/api/metrics"
	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/domain"
)

const (
	webhookUsername = "Campus Health Leave"
	embedColor      = 1733608
)

// DiscordNotifier posts leave-request announcements to a Discord webhook.
// Delivery is best-effort: the caller records the outcome but never retries.
type DiscordNotifier struct {
	webhookURL string
	// fallbackMention is addressed when the submitter has not linked a
	// Discord account of their own.
	fallbackMention string
	client          *http.Client
	logger          zerolog.Logger
}

func NewDiscordNotifier(webhookURL, fallbackMention string, logger zerolog.Logger) *DiscordNotifier {
	return &DiscordNotifier{
		webhookURL:      webhookURL,
		fallbackMention: fallbackMention,
		client:          &http.Client{Timeout: 10 * time.Second},
		logger:          logger,
	}
}

type webhookPayload struct {
	Username string         `json:"username"`
	Content  string         `json:"content,omitempty"`
	Embeds   []webhookEmbed `json:"embeds,omitempty"`
}

type webhookEmbed struct {
	Title  string       `json:"title"`
	Color  int          `json:"color"`
	Fields []embedField `json:"fields"`
}

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// SubmissionReceived announces a new pending request as a structured embed.
func (n *DiscordNotifier) SubmissionReceived(ctx context.Context, s *domain.Submission) error {
	payload := webhookPayload{
		Username: webhookUsername,
		Embeds: []webhookEmbed{{
			Title: "New Health Leave Request",
			Color: embedColor,
			Fields: []embedField{
				{Name: "Student Name", Value: s.StudentName, Inline: true},
				{Name: "Email", Value: s.Email, Inline: true},
				{Name: "Reason", Value: s.Reason},
				{Name: "Leave Date", Value: s.Date, Inline: true},
				{Name: "Duration", Value: s.LeaveTime, Inline: true},
				{Name: "Status", Value: string(s.Status), Inline: true},
			},
		}},
	}
	return n.post(ctx, "submitted", payload)
}

// SubmissionApproved addresses the submitter directly.
func (n *DiscordNotifier) SubmissionApproved(ctx context.Context, s *domain.Submission, mentionID string) error {
	payload := webhookPayload{
		Username: webhookUsername,
		Content: fmt.Sprintf("%s your health leave for %s (%s) has been approved. Take care!",
			n.address(mentionID, s.StudentName), s.Date, s.LeaveTime),
	}
	return n.post(ctx, "approved", payload)
}

// SubmissionRejected carries the reason back to the submitter.
func (n *DiscordNotifier) SubmissionRejected(ctx context.Context, s *domain.Submission, mentionID, reason string) error {
	payload := webhookPayload{
		Username: webhookUsername,
		Content: fmt.Sprintf("%s your health leave for %s has been rejected. Reason: %s",
			n.address(mentionID, s.StudentName), s.Date, reason),
	}
	return n.post(ctx, "rejected", payload)
}

// address renders a Discord mention when an id is known, falling back first to
// the configured default mention and finally to the bold display name.
func (n *DiscordNotifier) address(mentionID, displayName string) string {
	if mentionID == "" {
		mentionID = n.fallbackMention
	}
	if mentionID != "" {
		return fmt.Sprintf("<@%s>", mentionID)
	}
	return fmt.Sprintf("**%s**", displayName)
}

func (n *DiscordNotifier) post(ctx context.Context, kind string, payload webhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		metrics.NotificationsTotal.WithLabelValues(kind, "failed").Inc()
		return fmt.Errorf("discord post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		metrics.NotificationsTotal.WithLabelValues(kind, "failed").Inc()
		return fmt.Errorf("discord post: unexpected status %d", resp.StatusCode)
	}

	metrics.NotificationsTotal.WithLabelValues(kind, "sent").Inc()
	n.logger.Debug().Str("kind", kind).Msg("discord webhook delivered")
	return nil
}
