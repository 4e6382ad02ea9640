package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psgtech/techresolve-api/internal/config"
	"github.com/psgtech/techresolve-api/internal/models"
)

func testDiscordConfig() *config.DiscordConfig {
	return &config.DiscordConfig{
		EnvPrefix: "DISCORD",
		EnvSuffix: "WEBHOOK",
		Timeout:   10 * time.Second,
	}
}

func testSender(env map[string]string) *DiscordSender {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	sender := NewDiscordSender(testDiscordConfig(), logger)
	sender.lookupEnv = func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}
	return sender
}

func testEvent(kind models.EventKind) *models.NotificationEvent {
	return &models.NotificationEvent{
		Kind: kind,
		Complaint: &models.Complaint{
			ComplaintID:   7,
			ComplaintCode: "CMP2025-0007",
			Email:         "student@psgtech.ac.in",
			Name:          "Asha",
			LabID:         1,
			Category:      "Hardware",
			Description:   "Monitor flickers",
			Status:        models.StatusPending,
			Priority:      models.PriorityLow,
			Tags:          "none",
		},
		Lab: &models.Lab{LabID: 1, Name: "CC Lab"},
	}
}

func TestWebhookURL_LabColumnWins(t *testing.T) {
	sender := testSender(map[string]string{
		"DISCORD_CC_LAB_WEBHOOK": "https://discord.test/env",
	})

	url := "https://discord.test/column"
	lab := &models.Lab{LabID: 1, Name: "CC Lab", DiscordWebhook: &url}

	assert.Equal(t, "https://discord.test/column", sender.WebhookURL(lab))
}

func TestWebhookURL_PrimaryEnvKey(t *testing.T) {
	sender := testSender(map[string]string{
		"DISCORD_CC_LAB_WEBHOOK": "https://discord.test/primary",
		"DISCORD_CCLAB_WEBHOOK":  "https://discord.test/fallback",
	})

	lab := &models.Lab{LabID: 1, Name: "CC Lab"}
	assert.Equal(t, "https://discord.test/primary", sender.WebhookURL(lab))
}

func TestWebhookURL_FallbackStripsSpaces(t *testing.T) {
	sender := testSender(map[string]string{
		"DISCORD_CCLAB_WEBHOOK": "https://discord.test/fallback",
	})

	lab := &models.Lab{LabID: 1, Name: "CC Lab"}
	assert.Equal(t, "https://discord.test/fallback", sender.WebhookURL(lab))
}

func TestWebhookURL_Unconfigured(t *testing.T) {
	sender := testSender(nil)

	lab := &models.Lab{LabID: 1, Name: "CC Lab"}
	assert.Empty(t, sender.WebhookURL(lab))
}

func TestBuildEmbed_Created(t *testing.T) {
	event := testEvent(models.EventComplaintCreated)
	event.Complaint.Description = strings.Repeat("x", 600)

	e := buildEmbed(event)

	assert.Equal(t, "New Complaint: CMP2025-0007", e.Title)
	assert.Equal(t, colorCreated, e.Color)
	assert.Len(t, e.Description, 503)
	assert.True(t, strings.HasSuffix(e.Description, "..."))

	fields := map[string]string{}
	for _, f := range e.Fields {
		fields[f.Name] = f.Value
	}
	assert.Equal(t, "CMP2025-0007", fields["Complaint"])
	assert.Equal(t, "Asha", fields["Reported By"])
	assert.Equal(t, "student@psgtech.ac.in", fields["Email"])
	assert.Equal(t, "CC Lab", fields["Lab"])
	assert.Equal(t, "Hardware", fields["Category"])
	assert.Equal(t, "Low", fields["Priority"])
	assert.Equal(t, "Pending", fields["Status"])
}

func TestBuildEmbed_StatusColors(t *testing.T) {
	cases := []struct {
		status models.Status
		color  int
	}{
		{models.StatusResolved, colorResolved},
		{models.StatusTerminated, colorTerminated},
		{models.StatusPending, colorPending},
		{models.StatusInProgress, colorInProgress},
	}

	for _, tc := range cases {
		event := testEvent(models.EventStatusChanged)
		event.OldStatus = models.StatusPending
		event.Complaint.Status = tc.status

		e := buildEmbed(event)
		assert.Equal(t, tc.color, e.Color, "status %s", tc.status)
	}
}

func TestBuildEmbed_ResolvedIncludesNotes(t *testing.T) {
	event := testEvent(models.EventStatusChanged)
	event.OldStatus = models.StatusInProgress
	event.Complaint.Status = models.StatusResolved
	notes := "Replaced the display cable"
	event.Complaint.ResolutionNotes = &notes

	e := buildEmbed(event)

	found := false
	for _, field := range e.Fields {
		if field.Name == "Resolution Notes" {
			found = true
			assert.Equal(t, notes, field.Value)
		}
	}
	assert.True(t, found, "expected a resolution notes field")
}

func TestBuildEmbed_Assignment(t *testing.T) {
	event := testEvent(models.EventAdminAssigned)
	event.AssignedAdmin = &models.Admin{AdminID: 5, Name: "Meena"}

	e := buildEmbed(event)

	assert.Equal(t, colorAssigned, e.Color)
	found := false
	for _, field := range e.Fields {
		if field.Name == "Assigned To" {
			found = true
			assert.Equal(t, "Meena", field.Value)
		}
	}
	assert.True(t, found, "expected an assignee field")
}

func TestSend_PostsEmbed(t *testing.T) {
	var received webhookPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	sender := testSender(map[string]string{"DISCORD_CC_LAB_WEBHOOK": server.URL})

	err := sender.Send(context.Background(), testEvent(models.EventComplaintCreated))

	require.NoError(t, err)
	assert.Equal(t, "**New Complaint Received**", received.Content)
	require.Len(t, received.Embeds, 1)
	assert.Equal(t, "New Complaint: CMP2025-0007", received.Embeds[0].Title)
}

func TestContentLine_PerEvent(t *testing.T) {
	created := testEvent(models.EventComplaintCreated)
	assert.Equal(t, "**New Complaint Received**", contentLine(created))

	status := testEvent(models.EventStatusChanged)
	status.Complaint.Status = models.StatusResolved
	assert.Equal(t, "**Status Update - Resolved**", contentLine(status))

	assigned := testEvent(models.EventAdminAssigned)
	assert.Equal(t, "**Admin Assignment Update**", contentLine(assigned))
}

func TestSend_SkipsLabWithoutWebhook(t *testing.T) {
	sender := testSender(nil)

	err := sender.Send(context.Background(), testEvent(models.EventComplaintCreated))
	assert.NoError(t, err)
}

func TestSend_SurfacesHTTPErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	sender := testSender(map[string]string{"DISCORD_CC_LAB_WEBHOOK": server.URL})

	err := sender.Send(context.Background(), testEvent(models.EventComplaintCreated))
	assert.Error(t, err)
}
