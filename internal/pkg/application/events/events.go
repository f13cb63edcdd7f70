package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
	"golang.org/x/sys/unix"
)

const EventSource string = "github.com/huertapp/plant-mgmt"

type EventSender interface {
	PublishOnTopic(ctx context.Context, message messaging.TopicMessage) error
}

type eventSender struct {
	subscribers map[string][]SubscriberConfig
	messenger   EventSender
}

// New returns an EventSender that forwards every message to messenger, when one
// is given, and posts it as a cloud event to the subscribers configured for its topic.
func New(cfg *Config, messenger EventSender) EventSender {
	e := &eventSender{
		subscribers: make(map[string][]SubscriberConfig),
		messenger:   messenger,
	}

	if cfg != nil {
		for _, n := range cfg.Notifications {
			e.subscribers[n.Type] = append(e.subscribers[n.Type], n.Subscribers...)
		}
	}

	return e
}

func (e *eventSender) PublishOnTopic(ctx context.Context, message messaging.TopicMessage) error {
	var errs []error

	if e.messenger != nil {
		if err := e.messenger.PublishOnTopic(ctx, message); err != nil {
			errs = append(errs, fmt.Errorf("failed to publish on topic %s: %w", message.TopicName(), err))
		}
	}

	if err := e.notify(ctx, message); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (e *eventSender) notify(ctx context.Context, message messaging.TopicMessage) error {
	subscribers, ok := e.subscribers[message.TopicName()]
	if !ok || len(subscribers) == 0 {
		return nil
	}

	c, err := cloudevents.NewClientHTTP()
	if err != nil {
		return err
	}

	event := cloudevents.NewEvent()
	event.SetID(uuid.NewString())
	event.SetTime(time.Now().UTC())
	event.SetSource(EventSource)
	event.SetType(message.TopicName())

	err = event.SetData(cloudevents.ApplicationJSON, message)
	if err != nil {
		return err
	}

	logger := logging.GetFromContext(ctx)

	for _, s := range subscribers {
		ctxWithTarget := cloudevents.ContextWithTarget(ctx, s.Endpoint)

		result := c.Send(ctxWithTarget, event)
		if cloudevents.IsUndelivered(result) || errors.Is(result, unix.ECONNREFUSED) {
			logger.Error().Err(result).Msgf("failed to send event to %s", s.Endpoint)
			err = fmt.Errorf("%w", result)
		}
	}

	return err
}

type SubscriberConfig struct {
	Endpoint string `yaml:"endpoint"`
}

type Notification struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Type        string             `yaml:"type"`
	Subscribers []SubscriberConfig `yaml:"subscribers"`
}

type Config struct {
	Notifications []Notification `yaml:"notifications"`
}
