package messaging_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"student-service/internal/events"
	"student-service/internal/messaging"
	"student-service/internal/metrics"
	"student-service/testing/testnats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducerWithNATSContainer(t *testing.T) {
	natsContainer := testnats.SetupSharedNATS(t)
	defer natsContainer.Cleanup(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Publish_UsesEventTypeSubject", func(t *testing.T) {
		subject := "test." + strings.ReplaceAll(t.Name(), "/", ".")
		received := natsContainer.Subscribe(t, subject+".>")

		producer, err := messaging.NewProducer(natsContainer.URL, subject, logger, metrics.NewMock().Messaging)
		require.NoError(t, err)
		defer producer.Close()

		event := events.NewStudentEvent(events.StudentUpdated, "S-10", "jane@example.com")
		require.NoError(t, producer.Publish(context.Background(), event))

		select {
		case msg := <-received:
			assert.Equal(t, subject+".student.updated", msg.Subject)

			var got events.StudentEvent
			require.NoError(t, json.Unmarshal(msg.Data, &got))
			assert.Equal(t, event.EventID, got.EventID)
			assert.Equal(t, "S-10", got.StudentID)
			assert.Equal(t, "jane@example.com", got.Email)
		case <-time.After(2 * time.Second):
			t.Fatal("event not received on NATS within timeout")
		}
	})

	t.Run("Publish_EachLifecycleStep", func(t *testing.T) {
		subject := "test." + strings.ReplaceAll(t.Name(), "/", ".")
		received := natsContainer.Subscribe(t, subject+".>")

		producer, err := messaging.NewProducer(natsContainer.URL, subject, logger, metrics.NewMock().Messaging)
		require.NoError(t, err)
		defer producer.Close()

		types := []events.Type{events.StudentCreated, events.StudentUpdated, events.StudentDeleted}
		for _, typ := range types {
			require.NoError(t, producer.Publish(context.Background(), events.NewStudentEvent(typ, "S-11", "")))
		}

		for _, typ := range types {
			select {
			case msg := <-received:
				assert.Equal(t, subject+"."+string(typ), msg.Subject)
			case <-time.After(2 * time.Second):
				t.Fatalf("%s not received within timeout", typ)
			}
		}
	})

	t.Run("NewProducer_Unreachable", func(t *testing.T) {
		_, err := messaging.NewProducer("nats://127.0.0.1:1", "students", logger, nil)
		assert.Error(t, err)
	})
}
