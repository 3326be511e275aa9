// Package consume long-polls a queue provisioned for NOAA MRMS notifications
// and hands each raw message body to a handler. With raw delivery enabled on
// the subscription, bodies are the published notification payloads without
// the SNS envelope.
package consume

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"golang.org/x/sync/errgroup"

	"github.com/approach-viz/mrmsq/log"
)

const (
	defaultMaxMessages       = 10
	defaultWaitSeconds       = 20
	defaultVisibilitySeconds = 90
)

//go:generate go tool moq -pkg consume_test -stub -out sqs_mock_test.go . SQSAPI

// SQSAPI defines the AWS SQS methods used by the Consumer. This is used for testing purposes.
type SQSAPI interface {
	ReceiveMessage(
		context.Context,
		*sqs.ReceiveMessageInput,
		...func(*sqs.Options),
	) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(
		context.Context,
		*sqs.DeleteMessageInput,
		...func(*sqs.Options),
	) (*sqs.DeleteMessageOutput, error)
}

// Handler processes one raw notification body. Returning an error leaves the
// message on the queue; it becomes receivable again once its visibility
// timeout expires.
type Handler func(ctx context.Context, body string) error

// ErrorHandler receives the errors the consumer cannot return to its caller,
// such as a failing handler or a failed message deletion.
type ErrorHandler interface {
	Error(ctx context.Context, err error)
}

// Option is a function to set options to Consumer.
type Option interface {
	applyConsumer(*Consumer)
}

// Open creates a new Consumer for the given queue URL using the default AWS
// configuration resolved from the environment.
func Open(ctx context.Context, queueURL string, opts ...Option) (*Consumer, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading aws config from default: %w", err)
	}

	return New(sqs.NewFromConfig(cfg), queueURL, opts...), nil
}

// New creates a new Consumer with the given SQS client and queue URL.
// This function allows for custom configuration and dependency injection.
func New(cli SQSAPI, queueURL string, opts ...Option) *Consumer {
	c := Consumer{
		cli:        cli,
		queueURL:   queueURL,
		errHandler: log.NewDefault(),
		group:      new(errgroup.Group),

		maxMessages:       defaultMaxMessages,
		waitSeconds:       defaultWaitSeconds,
		visibilitySeconds: defaultVisibilitySeconds,
	}

	for _, opt := range opts {
		opt.applyConsumer(&c)
	}

	return &c
}

// Consumer receives messages from the provisioned queue, processes them and
// deletes the ones whose handler succeeded.
type Consumer struct {
	cli      SQSAPI
	queueURL string

	errHandler ErrorHandler
	group      *errgroup.Group

	maxMessages       int
	waitSeconds       int
	visibilitySeconds int
}

// Listen polls the queue until the context is cancelled or a receive call
// fails. Handler and deletion errors are reported to the error handler and do
// not stop the loop; the affected message stays on the queue.
func (c *Consumer) Listen(ctx context.Context, h Handler) error {
	c.group.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			default:
				out, err := c.cli.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
					QueueUrl:            aws.String(c.queueURL),
					MaxNumberOfMessages: int32(c.maxMessages),
					WaitTimeSeconds:     int32(c.waitSeconds),
					VisibilityTimeout:   int32(c.visibilitySeconds),
				})
				if err != nil {
					return fmt.Errorf("receiving from %s: %w", c.queueURL, err)
				}

				for _, msg := range out.Messages {
					if err := h(ctx, aws.ToString(msg.Body)); err != nil {
						c.errHandler.Error(ctx, fmt.Errorf("handling message %s: %w", aws.ToString(msg.MessageId), err))
						continue
					}
					if _, err := c.cli.DeleteMessage(ctx, &sqs.DeleteMessageInput{
						QueueUrl:      aws.String(c.queueURL),
						ReceiptHandle: msg.ReceiptHandle,
					}); err != nil {
						c.errHandler.Error(ctx, fmt.Errorf("deleting message %s: %w", aws.ToString(msg.MessageId), err))
					}
				}
			}
		}
	})

	return c.group.Wait()
}
