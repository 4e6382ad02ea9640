package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/psgtech/techresolve-api/internal/config"
	"github.com/psgtech/techresolve-api/internal/models"
	"github.com/psgtech/techresolve-api/pkg/utils"
)

// Discord embed colors per event
const (
	colorCreated    = 3447003
	colorAssigned   = 10181046
	colorResolved   = 3066993
	colorTerminated = 15158332
	colorPending    = 16776960
	colorInProgress = 3447003
	colorDefault    = 9807270
)

// Embed descriptions are truncated to this many characters
const embedDescriptionLimit = 500

// webhookPayload is the Discord webhook message body
type webhookPayload struct {
	Content string  `json:"content,omitempty"`
	Embeds  []embed `json:"embeds"`
}

type embed struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color"`
	Fields      []embedField `json:"fields,omitempty"`
	Footer      *embedFooter `json:"footer,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
}

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type embedFooter struct {
	Text string `json:"text"`
}

// DiscordSender posts event embeds to per-lab Discord webhooks
type DiscordSender struct {
	cfg        *config.DiscordConfig
	httpClient *http.Client
	lookupEnv  func(string) (string, bool)
	logger     *logrus.Logger
}

// NewDiscordSender creates a new DiscordSender instance
func NewDiscordSender(cfg *config.DiscordConfig, logger *logrus.Logger) *DiscordSender {
	return &DiscordSender{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		lookupEnv: os.LookupEnv,
		logger:    logger,
	}
}

// WebhookURL resolves the webhook for a lab. The lab record wins when it
// carries a URL; otherwise the environment is consulted under the primary
// key and then the spaces-stripped fallback key.
func (s *DiscordSender) WebhookURL(lab *models.Lab) string {
	if lab == nil {
		return ""
	}

	if lab.DiscordWebhook != nil && *lab.DiscordWebhook != "" {
		return *lab.DiscordWebhook
	}

	if url, ok := s.lookupEnv(s.cfg.WebhookEnvKey(lab.Name)); ok && url != "" {
		return url
	}

	if url, ok := s.lookupEnv(s.cfg.WebhookEnvKeyFallback(lab.Name)); ok && url != "" {
		return url
	}

	return ""
}

// Send posts the event to the lab's webhook. A lab without a webhook is
// skipped silently; transport failures are returned to the dispatcher.
func (s *DiscordSender) Send(ctx context.Context, event *models.NotificationEvent) error {
	url := s.WebhookURL(event.Lab)
	if url == "" {
		s.logger.WithField("lab", labName(event.Lab)).Debug("No Discord webhook configured for lab, skipping")
		return nil
	}

	payload := webhookPayload{
		Content: contentLine(event),
		Embeds:  []embed{buildEmbed(event)},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, string(snippet))
	}

	return nil
}

// buildEmbed renders the event as a Discord embed
func buildEmbed(event *models.NotificationEvent) embed {
	c := event.Complaint

	e := embed{
		Fields: []embedField{
			{Name: "Complaint", Value: c.ComplaintCode, Inline: true},
			{Name: "Lab", Value: labName(event.Lab), Inline: true},
			{Name: "Category", Value: c.Category, Inline: true},
		},
		Footer:    &embedFooter{Text: "TechResolve"},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	switch event.Kind {
	case models.EventComplaintCreated:
		e.Title = fmt.Sprintf("New Complaint: %s", c.ComplaintCode)
		e.Description = utils.TruncateEllipsis(c.Description, embedDescriptionLimit)
		e.Color = colorCreated
		e.Fields = append(e.Fields,
			embedField{Name: "Reported By", Value: c.Name, Inline: true},
			embedField{Name: "Email", Value: c.Email, Inline: true},
			embedField{Name: "Priority", Value: string(c.Priority), Inline: true},
			embedField{Name: "Status", Value: string(c.Status), Inline: true},
		)

	case models.EventStatusChanged:
		e.Title = fmt.Sprintf("Status Update: %s", c.ComplaintCode)
		e.Description = utils.TruncateEllipsis(
			fmt.Sprintf("Status changed from %s to %s", event.OldStatus, c.Status),
			embedDescriptionLimit,
		)
		e.Color = statusColor(c.Status)
		e.Fields = append(e.Fields,
			embedField{Name: "Status", Value: string(c.Status), Inline: true},
		)
		if c.Status.IsTerminal() && c.ResolutionNotes != nil && *c.ResolutionNotes != "" {
			e.Fields = append(e.Fields, embedField{
				Name:  "Resolution Notes",
				Value: utils.TruncateEllipsis(*c.ResolutionNotes, embedDescriptionLimit),
			})
		}

	case models.EventAdminAssigned:
		e.Title = fmt.Sprintf("Admin Assigned: %s", c.ComplaintCode)
		e.Color = colorAssigned
		assignee := "Unassigned"
		if event.AssignedAdmin != nil {
			assignee = event.AssignedAdmin.Name
		}
		e.Fields = append(e.Fields,
			embedField{Name: "Assigned To", Value: assignee, Inline: true},
			embedField{Name: "Status", Value: string(c.Status), Inline: true},
		)

	default:
		e.Title = fmt.Sprintf("Complaint Update: %s", c.ComplaintCode)
		e.Color = colorDefault
	}

	return e
}

// contentLine is the plain-text message shown above the embed
func contentLine(event *models.NotificationEvent) string {
	switch event.Kind {
	case models.EventComplaintCreated:
		return "**New Complaint Received**"
	case models.EventStatusChanged:
		return fmt.Sprintf("**Status Update - %s**", event.Complaint.Status)
	case models.EventAdminAssigned:
		return "**Admin Assignment Update**"
	}
	return ""
}

// statusColor maps a complaint status to its embed color
func statusColor(status models.Status) int {
	switch status {
	case models.StatusResolved:
		return colorResolved
	case models.StatusTerminated:
		return colorTerminated
	case models.StatusPending:
		return colorPending
	case models.StatusInProgress:
		return colorInProgress
	}
	return colorDefault
}

func labName(lab *models.Lab) string {
	if lab == nil {
		return "Unknown"
	}
	return lab.Name
}
