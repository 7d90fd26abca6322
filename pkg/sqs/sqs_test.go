package sqs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	mu           sync.Mutex
	urlCalls     int
	sent         []string
	batchSizes   []int
	failBatchIDs map[string]bool
	rejectBatch  string
	received     bool
	deleted      []string
	onDelete     func()
}

func (f *fakeClient) GetQueueUrl(_ context.Context, params *sqs.GetQueueUrlInput, _ ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urlCalls++
	if *params.QueueName == "missing" {
		return nil, errors.New("queue does not exist")
	}
	return &sqs.GetQueueUrlOutput{QueueUrl: aws.String("http://localhost/000/" + *params.QueueName)}, nil
}

func (f *fakeClient) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, *params.MessageBody)
	return &sqs.SendMessageOutput{}, nil
}

func (f *fakeClient) SendMessageBatch(_ context.Context, params *sqs.SendMessageBatchInput, _ ...func(*sqs.Options)) (*sqs.SendMessageBatchOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batchSizes = append(f.batchSizes, len(params.Entries))
	for _, entry := range params.Entries {
		if *entry.Id == f.rejectBatch {
			return nil, errors.New("throttled")
		}
	}
	output := &sqs.SendMessageBatchOutput{}
	for _, entry := range params.Entries {
		if f.failBatchIDs[*entry.Id] {
			output.Failed = append(output.Failed, types.BatchResultErrorEntry{Id: entry.Id})
			continue
		}
		output.Successful = append(output.Successful, types.SendMessageBatchResultEntry{Id: entry.Id})
	}
	return output, nil
}

func (f *fakeClient) ReceiveMessage(ctx context.Context, _ *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	f.mu.Lock()
	if !f.received {
		f.received = true
		f.mu.Unlock()
		return &sqs.ReceiveMessageOutput{Messages: []types.Message{
			{MessageId: aws.String("m-1"), Body: aws.String(`{"recurringId":"abc"}`), ReceiptHandle: aws.String("r-1")},
		}}, nil
	}
	f.mu.Unlock()
	<-ctx.Done()
	return nil, ctx.Err()
}

func (f *fakeClient) DeleteMessage(_ context.Context, params *sqs.DeleteMessageInput, _ ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	f.mu.Lock()
	f.deleted = append(f.deleted, *params.ReceiptHandle)
	f.mu.Unlock()
	if f.onDelete != nil {
		f.onDelete()
	}
	return &sqs.DeleteMessageOutput{}, nil
}

func TestSender_SendMessage(t *testing.T) {
	client := &fakeClient{}
	sender := NewSender(client)

	require.NoError(t, sender.SendMessage(context.Background(), "jobs", map[string]string{"recurringId": "abc"}))
	require.NoError(t, sender.SendMessage(context.Background(), "jobs", map[string]string{"recurringId": "def"}))

	assert.Equal(t, []string{`{"recurringId":"abc"}`, `{"recurringId":"def"}`}, client.sent)
	assert.Equal(t, 1, client.urlCalls, "queue URL should be resolved once")
}

func TestSender_SendMessage_UnknownQueue(t *testing.T) {
	err := NewSender(&fakeClient{}).SendMessage(context.Background(), "missing", "body")
	assert.ErrorContains(t, err, "failed to get queue URL for missing")
}

func TestSender_SendMessageBatch(t *testing.T) {
	client := &fakeClient{failBatchIDs: map[string]bool{"msg-4": true}}
	sender := NewSender(client)

	messages := make([]BatchMessage, 0, 23)
	for i := 0; i < 23; i++ {
		messages = append(messages, BatchMessage{MessageID: fmt.Sprintf("msg-%d", i), Body: i})
	}
	// channels cannot be serialized
	messages = append(messages, BatchMessage{MessageID: "bad", Body: make(chan int)})

	result, err := sender.SendMessageBatch(context.Background(), "jobs", messages)
	require.NoError(t, err)

	assert.Len(t, result.Successful, 22)
	assert.ElementsMatch(t, []string{"msg-4", "bad"}, result.Failed)
	assert.ElementsMatch(t, []int{10, 10, 3}, client.batchSizes)
}

func TestSender_SendMessageBatch_RejectedChunk(t *testing.T) {
	client := &fakeClient{rejectBatch: "msg-12"}
	sender := NewSender(client)

	messages := make([]BatchMessage, 0, 25)
	for i := 0; i < 25; i++ {
		messages = append(messages, BatchMessage{MessageID: fmt.Sprintf("msg-%d", i), Body: i})
	}

	result, err := sender.SendMessageBatch(context.Background(), "jobs", messages)
	require.NoError(t, err)

	failed := make([]string, 0, 10)
	for i := 10; i < 20; i++ {
		failed = append(failed, fmt.Sprintf("msg-%d", i))
	}
	assert.ElementsMatch(t, failed, result.Failed)
	assert.Len(t, result.Successful, 15)
	assert.NotContains(t, result.Successful, "msg-12")
}

func TestSender_SendMessageBatch_Empty(t *testing.T) {
	result, err := NewSender(&fakeClient{}).SendMessageBatch(context.Background(), "jobs", nil)
	require.NoError(t, err)
	assert.Empty(t, result.Successful)
	assert.Empty(t, result.Failed)
}

func TestNewWorker_Validation(t *testing.T) {
	handler := HandlerFunc(func(context.Context, types.Message) error { return nil })

	tests := []struct {
		name   string
		queue  string
		config *WorkerConfig
		errMsg string
	}{
		{name: "too many messages", queue: "jobs", config: &WorkerConfig{MaxNumberOfMessages: 11}, errMsg: "maxNumberOfMessages must be between 1 and 10"},
		{name: "wait too long", queue: "jobs", config: &WorkerConfig{WaitTimeSeconds: 21}, errMsg: "waitTimeSeconds must be between 1 and 20"},
		{name: "negative pool", queue: "jobs", config: &WorkerConfig{PoolSize: -1}, errMsg: "poolSize must be greater than 0"},
		{name: "unknown queue", queue: "missing", errMsg: "unable to get queue URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWorker(context.Background(), &fakeClient{}, tt.queue, handler, tt.config)
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestWorker_ProcessesAndDeletes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := &fakeClient{onDelete: cancel}
	var bodies []string
	handler := HandlerFunc(func(_ context.Context, msg types.Message) error {
		var payload map[string]string
		if err := json.Unmarshal([]byte(*msg.Body), &payload); err != nil {
			return err
		}
		bodies = append(bodies, payload["recurringId"])
		return nil
	})

	worker, err := NewWorker(ctx, client, "jobs", handler, &WorkerConfig{WaitTimeSeconds: 1})
	require.NoError(t, err)

	worker.Start(ctx)

	assert.Equal(t, []string{"abc"}, bodies)
	assert.Equal(t, []string{"r-1"}, client.deleted)
	health := worker.HealthCheck()
	assert.Equal(t, StatusDown, health.Status)
	assert.Equal(t, "1", health.Details["messages_processed"])
}

func TestWorker_FailedMessageIsKept(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := &fakeClient{}
	handler := HandlerFunc(func(context.Context, types.Message) error {
		cancel()
		return errors.New("boom")
	})

	worker, err := NewWorker(ctx, client, "jobs", handler, nil)
	require.NoError(t, err)

	worker.Start(ctx)

	assert.Empty(t, client.deleted)
	assert.Equal(t, "1", worker.HealthCheck().Details["messages_failed"])
}
