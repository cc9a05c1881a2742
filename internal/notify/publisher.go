package notify

import (
	"context"
	"time"

	"watchparty_backend/internal/logger"
)

// Publisher delivers a notification to one recipient. Implementations must be
// safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, recipientID, content, link string, data map[string]interface{}) error
}

// Notifier wraps a Publisher with the fire-and-forget contract: publishing
// happens on its own goroutine under a bounded deadline, and failures are
// logged, never returned to the triggering request.
type Notifier struct {
	publisher Publisher
	timeout   time.Duration
}

func NewNotifier(publisher Publisher, timeout time.Duration) *Notifier {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Notifier{
		publisher: publisher,
		timeout:   timeout,
	}
}

// PublishAsync delivers in the background. The caller's request finishes
// regardless of the outcome.
func (n *Notifier) PublishAsync(recipientID, content, link string, data map[string]interface{}) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
		defer cancel()

		if err := n.publisher.Publish(ctx, recipientID, content, link, data); err != nil {
			logger.Error("notification publish failed",
				"recipient_id", recipientID,
				"link", link,
				"error", err.Error(),
			)
		}
	}()
}
