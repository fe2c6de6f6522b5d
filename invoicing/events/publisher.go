package events

import (
	"context"
)

// Publisher abstracts topic publication so business code and activities can
// be tested without live pubsub infrastructure.
type Publisher interface {
	PublishStatusChanged(ctx context.Context, ev *InvoiceStatusChanged) error
	PublishReminder(ctx context.Context, ev *PaymentReminder) error
}

// TopicPublisher publishes to the real Encore topics.
type TopicPublisher struct{}

func (TopicPublisher) PublishStatusChanged(ctx context.Context, ev *InvoiceStatusChanged) error {
	_, err := InvoiceStatusChangedTopic.Publish(ctx, ev)
	return err
}

func (TopicPublisher) PublishReminder(ctx context.Context, ev *PaymentReminder) error {
	_, err := PaymentReminderTopic.Publish(ctx, ev)
	return err
}
