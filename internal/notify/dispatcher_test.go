package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/psgtech/techresolve-api/internal/models"
)

type recordingChannel struct {
	events []*models.NotificationEvent
	err    error
}

func (c *recordingChannel) Send(_ context.Context, event *models.NotificationEvent) error {
	c.events = append(c.events, event)
	return c.err
}

func TestDispatch_FanOut(t *testing.T) {
	first := &recordingChannel{}
	second := &recordingChannel{}
	dispatcher := NewDispatcherWithChannels(logrus.New(), first, second)

	dispatcher.Dispatch(context.Background(), testEvent(models.EventComplaintCreated))

	assert.Len(t, first.events, 1)
	assert.Len(t, second.events, 1)
}

func TestDispatch_FailingChannelDoesNotBlockOthers(t *testing.T) {
	failing := &recordingChannel{err: errors.New("webhook down")}
	healthy := &recordingChannel{}
	dispatcher := NewDispatcherWithChannels(logrus.New(), failing, healthy)

	dispatcher.Dispatch(context.Background(), testEvent(models.EventStatusChanged))

	assert.Len(t, healthy.events, 1)
}
