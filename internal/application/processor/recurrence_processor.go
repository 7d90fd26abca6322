package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-taskflow/internal/domain/model"
	"go-taskflow/internal/domain/usecase/recurrence"
	"go-taskflow/pkg/log"
	"go-taskflow/pkg/msg"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// RecurrenceProcessor extends the series named by each queue message
type RecurrenceProcessor struct {
	recurrenceUseCase recurrence.UseCase
}

func NewRecurrenceProcessor(recurrenceUseCase recurrence.UseCase) *RecurrenceProcessor {
	return &RecurrenceProcessor{
		recurrenceUseCase: recurrenceUseCase,
	}
}

// HandleMessage implements the sqs.Handler interface. Malformed messages and series that no
// longer exist are acknowledged so they are not redelivered.
func (p *RecurrenceProcessor) HandleMessage(ctx context.Context, message types.Message) error {
	if message.Body == nil {
		return fmt.Errorf("received message without body")
	}

	var payload model.ExtendSeriesMessage
	if err := json.Unmarshal([]byte(*message.Body), &payload); err != nil || payload.RecurringID == "" {
		if err == nil {
			err = errors.New("missing recurringId")
		}
		log.Warn(msg.GetMessage("recurrence.worker.invalid-message", messageID(message), err.Error()))
		return nil
	}

	log.Info(msg.GetMessage("recurrence.worker.received", messageID(message), payload.RecurringID))

	if _, err := p.recurrenceUseCase.ExtendSeries(ctx, payload.RecurringID, payload.RequestID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			log.Warn(err.Error())
			return nil
		}
		return fmt.Errorf("failed to extend series %s: %w", payload.RecurringID, err)
	}
	return nil
}

func messageID(message types.Message) string {
	if message.MessageId == nil {
		return ""
	}
	return *message.MessageId
}
