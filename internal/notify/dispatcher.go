package notify

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/psgtech/techresolve-api/internal/config"
	"github.com/psgtech/techresolve-api/internal/models"
)

// Channel delivers an event over a single medium
type Channel interface {
	Send(ctx context.Context, event *models.NotificationEvent) error
}

// Dispatcher fans events out to all configured channels. Delivery is best
// effort: a failing channel is logged and never surfaces to the caller, so
// notification problems cannot fail the operation that raised the event.
type Dispatcher struct {
	channels []Channel
	logger   *logrus.Logger
}

// NewDispatcher creates a dispatcher with the standard channel set
func NewDispatcher(cfg *config.Config, logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		channels: []Channel{
			NewDiscordSender(&cfg.Discord, logger),
			NewEmailSender(&cfg.Mail, logger),
		},
		logger: logger,
	}
}

// NewDispatcherWithChannels creates a dispatcher over explicit channels (for
// testing purposes)
func NewDispatcherWithChannels(logger *logrus.Logger, channels ...Channel) *Dispatcher {
	return &Dispatcher{channels: channels, logger: logger}
}

// Dispatch delivers the event on every channel
func (d *Dispatcher) Dispatch(ctx context.Context, event *models.NotificationEvent) {
	for _, ch := range d.channels {
		if err := ch.Send(ctx, event); err != nil {
			d.logger.WithError(err).WithFields(logrus.Fields{
				"event":     event.Kind,
				"complaint": event.Complaint.ComplaintCode,
			}).Warn("Notification delivery failed")
		}
	}
}
