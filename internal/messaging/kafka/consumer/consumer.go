package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ErrUnknownEvent marks messages whose event_type has no handler.
var ErrUnknownEvent = errors.New("unknown event type")

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeNotifications hands every lifecycle event to the notifier. Malformed or
// unknown messages are committed and skipped; notifier failures are left
// uncommitted so the message is redelivered.
func ConsumeNotifications(
	ctx context.Context,
	reader MessageReader,
	notifier notification.Notifier,
	deduper notification.Deduper,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.notifications")
	log.Info("notification consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("notification consumer stopped")
				return
			}
			log.Error("fetch notification message failed", zap.Error(err))
			continue
		}

		if err := HandleMessage(ctx, msg, notifier, deduper); err != nil {
			var decodeErr *decodeError
			if errors.As(err, &decodeErr) || errors.Is(err, ErrUnknownEvent) {
				log.Warn("skip undeliverable message",
					zap.String("topic", msg.Topic),
					zap.Int64("offset", msg.Offset),
					zap.Error(err),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("notify failed",
				zap.String("topic", msg.Topic),
				zap.String("outbox_id", kafka.HeaderValue(msg, kafka.HeaderOutboxID)),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit notification message failed", zap.Error(err))
			continue
		}

		log.Info("notification dispatched",
			zap.String("topic", msg.Topic),
			zap.String("event_type", kafka.HeaderValue(msg, kafka.HeaderEventType)),
			zap.String("request_id", kafka.HeaderValue(msg, kafka.HeaderRequestID)),
		)
	}
}

type decodeError struct {
	eventType string
	err       error
}

func (e *decodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.eventType, e.err)
}

func (e *decodeError) Unwrap() error { return e.err }

// HandleMessage dispatches a single message. Messages already delivered
// (same outbox id) are acknowledged without notifying again.
func HandleMessage(
	ctx context.Context,
	msg kafkago.Message,
	notifier notification.Notifier,
	deduper notification.Deduper,
) error {
	env, err := events.PeekEnvelope(msg.Value)
	if err != nil {
		return &decodeError{eventType: "envelope", err: err}
	}

	if deduper != nil {
		if id := kafka.HeaderValue(msg, kafka.HeaderOutboxID); id != "" {
			first, err := deduper.FirstSeen(ctx, id)
			if err != nil {
				return err
			}
			if !first {
				return nil
			}
		}
	}

	switch env.EventType {
	case events.EventEmployeeCreated:
		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return &decodeError{eventType: env.EventType, err: err}
		}
		return notifier.EmployeeCreated(ctx, event)
	case events.EventContractRenewalCreated:
		var event events.ContractRenewalCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return &decodeError{eventType: env.EventType, err: err}
		}
		return notifier.ContractRenewalCreated(ctx, event)
	case events.EventContractExpired:
		var event events.ContractExpiredEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return &decodeError{eventType: env.EventType, err: err}
		}
		return notifier.ContractExpired(ctx, event)
	case events.EventLeaveBalanceInsufficient:
		var event events.LeaveBalanceInsufficientEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return &decodeError{eventType: env.EventType, err: err}
		}
		return notifier.LeaveBalanceInsufficient(ctx, event)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, env.EventType)
	}
}
