package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/huertapp/plant-mgmt/pkg/types"
	"github.com/matryer/is"
)

func TestSubscriberReceivesCloudEvent(t *testing.T) {
	is := setupTest(t)

	var mu sync.Mutex
	var eventType, source string
	var body []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()

		eventType = r.Header.Get("Ce-Type")
		source = r.Header.Get("Ce-Source")
		body, _ = io.ReadAll(r.Body)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := &Config{
		Notifications: []Notification{
			{ID: "riegos", Type: types.TopicWateringRecorded, Subscribers: []SubscriberConfig{{Endpoint: server.URL}}},
		},
	}

	messenger := newMessenger(nil)
	sender := New(cfg, messenger)

	duration := 30.0
	err := sender.PublishOnTopic(context.Background(), &types.WateringRecorded{
		Registro: types.Registro{ID: 1, PlantID: 7, WateringDuration: &duration},
	})
	is.NoErr(err)

	is.Equal(1, len(messenger.PublishOnTopicCalls()))
	is.Equal(types.TopicWateringRecorded, messenger.PublishOnTopicCalls()[0].Message.TopicName())

	mu.Lock()
	defer mu.Unlock()

	is.Equal(types.TopicWateringRecorded, eventType)
	is.Equal(EventSource, source)

	var received types.Registro
	is.NoErr(json.Unmarshal(body, &received))
	is.Equal(7, received.PlantID)
}

func TestTopicsWithoutSubscribersOnlyReachMessenger(t *testing.T) {
	is := setupTest(t)

	messenger := newMessenger(nil)
	sender := New(nil, messenger)

	err := sender.PublishOnTopic(context.Background(), &types.ModuleConnected{ModuleID: 1, PlantID: 7})
	is.NoErr(err)
	is.Equal(1, len(messenger.PublishOnTopicCalls()))
}

func TestMessengerErrorIsReturned(t *testing.T) {
	is := setupTest(t)

	messenger := newMessenger(errors.New("channel closed"))
	sender := New(nil, messenger)

	err := sender.PublishOnTopic(context.Background(), &types.ModuleConnected{ModuleID: 1, PlantID: 7})
	is.True(err != nil)
	is.Equal(1, len(messenger.PublishOnTopicCalls()))
}

func TestUnreachableSubscriberIsReported(t *testing.T) {
	is := setupTest(t)

	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := server.URL
	server.Close()

	cfg := &Config{
		Notifications: []Notification{
			{Type: types.TopicReadingRecorded, Subscribers: []SubscriberConfig{{Endpoint: endpoint}}},
		},
	}

	err := New(cfg, nil).PublishOnTopic(context.Background(), &types.ReadingRecorded{})
	is.True(err != nil)
}

func newMessenger(err error) *messaging.MsgContextMock {
	return &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return err
		},
	}
}

func setupTest(t *testing.T) *is.I {
	is := is.New(t)

	return is
}
