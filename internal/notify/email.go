package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"github.com/psgtech/techresolve-api/internal/config"
	"github.com/psgtech/techresolve-api/internal/models"
)

var createdTemplate = template.Must(template.New("created").Parse(`
<p>Hello {{.Name}},</p>
<p>Your complaint has been registered with reference code <strong>{{.Code}}</strong>.</p>
<p>Lab: {{.Lab}}<br>Category: {{.Category}}</p>
<p>You can use the reference code to track the status of your complaint.</p>
<p>Regards,<br>TechResolve</p>
`))

var statusTemplate = template.Must(template.New("status").Parse(`
<p>Hello {{.Name}},</p>
<p>The status of your complaint <strong>{{.Code}}</strong> has changed from {{.OldStatus}} to <strong>{{.NewStatus}}</strong>.</p>
{{if .Notes}}<p>Notes from the team:</p><blockquote>{{.Notes}}</blockquote>{{end}}
{{if .Closing}}<p>This complaint is now closed. Reply to this email if the issue persists.</p>{{end}}
<p>Regards,<br>TechResolve</p>
`))

var assignedTemplate = template.Must(template.New("assigned").Parse(`
<p>Hello {{.AdminName}},</p>
<p>Complaint <strong>{{.Code}}</strong> has been assigned to you.</p>
<p>Lab: {{.Lab}}<br>Category: {{.Category}}<br>Priority: {{.Priority}}<br>Status: {{.Status}}</p>
<p>Description:</p><blockquote>{{.Description}}</blockquote>
<p>Regards,<br>TechResolve</p>
`))

// EmailSender delivers event notifications over SMTP
type EmailSender struct {
	cfg    *config.MailConfig
	send   func(m *gomail.Message) error
	logger *logrus.Logger
}

// NewEmailSender creates a new EmailSender instance
func NewEmailSender(cfg *config.MailConfig, logger *logrus.Logger) *EmailSender {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &EmailSender{
		cfg:    cfg,
		send:   func(m *gomail.Message) error { return dialer.DialAndSend(m) },
		logger: logger,
	}
}

// Send delivers the email for the event. Creation and status changes go to
// the reporter; assignments go to the assigned admin. Unconfigured mail is
// skipped silently.
func (s *EmailSender) Send(ctx context.Context, event *models.NotificationEvent) error {
	if !s.cfg.IsConfigured() {
		s.logger.Debug("Mail channel not configured, skipping")
		return nil
	}

	recipient, subject, body, err := s.compose(event)
	if err != nil {
		return err
	}
	if recipient == "" {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.SenderAddress())
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.send(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", recipient, err)
	}

	return nil
}

// compose picks the recipient, subject and body for the event
func (s *EmailSender) compose(event *models.NotificationEvent) (recipient, subject, body string, err error) {
	c := event.Complaint

	switch event.Kind {
	case models.EventComplaintCreated:
		recipient = c.Email
		subject = fmt.Sprintf("Complaint Registered: %s", c.ComplaintCode)
		body, err = render(createdTemplate, map[string]interface{}{
			"Name":     c.Name,
			"Code":     c.ComplaintCode,
			"Lab":      labName(event.Lab),
			"Category": c.Category,
		})

	case models.EventStatusChanged:
		recipient = c.Email
		subject = fmt.Sprintf("Complaint %s: %s", c.Status, c.ComplaintCode)
		notes := ""
		if c.Status.IsTerminal() && c.ResolutionNotes != nil {
			notes = *c.ResolutionNotes
		}
		body, err = render(statusTemplate, map[string]interface{}{
			"Name":      c.Name,
			"Code":      c.ComplaintCode,
			"OldStatus": event.OldStatus,
			"NewStatus": c.Status,
			"Notes":     notes,
			"Closing":   c.Status.IsTerminal(),
		})

	case models.EventAdminAssigned:
		if event.AssignedAdmin == nil {
			// unassignment carries no email
			return "", "", "", nil
		}
		recipient = event.AssignedAdmin.Email
		subject = fmt.Sprintf("Complaint Assigned: %s", c.ComplaintCode)
		body, err = render(assignedTemplate, map[string]interface{}{
			"AdminName":   event.AssignedAdmin.Name,
			"Code":        c.ComplaintCode,
			"Lab":         labName(event.Lab),
			"Category":    c.Category,
			"Priority":    c.Priority,
			"Status":      c.Status,
			"Description": c.Description,
		})

	default:
		return "", "", "", nil
	}

	return recipient, subject, body, err
}

func render(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}
	return buf.String(), nil
}
