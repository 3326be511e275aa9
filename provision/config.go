package provision

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// SQS-documented bounds for the queue attributes this tool sets.
const (
	maxWaitTimeSeconds   = 20
	maxVisibilitySeconds = 43200
	minRetentionSeconds  = 60
	maxRetentionSeconds  = 1209600
	maxQueueNameLength   = 80
)

// Validation errors returned before any remote call is made.
var (
	ErrInvalidQueueName     = errors.New("invalid queue name")
	ErrInvalidTopicARN      = errors.New("invalid topic arn")
	ErrWaitTimeOutOfRange   = errors.New("receive wait time out of range")
	ErrVisibilityOutOfRange = errors.New("visibility timeout out of range")
	ErrRetentionOutOfRange  = errors.New("retention period out of range")
)

// Config is the desired state of the queue and its subscription. It is
// immutable once a Provision call begins.
type Config struct {
	// QueueName is the SQS queue to create or update.
	QueueName string
	// TopicARN is the SNS topic whose notifications the queue will receive.
	TopicARN string
	// RetentionSeconds is how long undelivered messages are kept.
	RetentionSeconds int
	// VisibilityTimeoutSeconds is how long a received message stays hidden
	// from other consumers before it becomes receivable again.
	VisibilityTimeoutSeconds int
	// WaitTimeSeconds is the long-poll wait applied to receive calls.
	WaitTimeSeconds int
}

// Validate checks the configuration against the ranges the remote API
// accepts, so malformed input fails before any network call.
func (c Config) Validate() error {
	if err := validQueueName(c.QueueName); err != nil {
		return err
	}
	if err := validTopicARN(c.TopicARN); err != nil {
		return err
	}
	if c.WaitTimeSeconds < 0 || c.WaitTimeSeconds > maxWaitTimeSeconds {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrWaitTimeOutOfRange, c.WaitTimeSeconds, maxWaitTimeSeconds)
	}
	if c.VisibilityTimeoutSeconds < 0 || c.VisibilityTimeoutSeconds > maxVisibilitySeconds {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrVisibilityOutOfRange, c.VisibilityTimeoutSeconds, maxVisibilitySeconds)
	}
	if c.RetentionSeconds < minRetentionSeconds || c.RetentionSeconds > maxRetentionSeconds {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrRetentionOutOfRange, c.RetentionSeconds, minRetentionSeconds, maxRetentionSeconds)
	}

	return nil
}

// attributes is the attribute map sent on queue creation and update. Values
// are the exact stringified integer form the API expects.
func (c Config) attributes() map[string]string {
	return map[string]string{
		string(types.QueueAttributeNameReceiveMessageWaitTimeSeconds): strconv.Itoa(c.WaitTimeSeconds),
		string(types.QueueAttributeNameVisibilityTimeout):             strconv.Itoa(c.VisibilityTimeoutSeconds),
		string(types.QueueAttributeNameMessageRetentionPeriod):        strconv.Itoa(c.RetentionSeconds),
	}
}

func validQueueName(name string) error {
	if name == "" || len(name) > maxQueueNameLength {
		return fmt.Errorf("%w: %q must be 1-%d characters", ErrInvalidQueueName, name, maxQueueNameLength)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("%w: %q contains %q", ErrInvalidQueueName, name, r)
		}
	}

	return nil
}

// validTopicARN checks the arn:<partition>:sns:<region>:<account>:<name>
// shape without resolving the topic; existence is the Subscribe call's job.
func validTopicARN(arn string) error {
	parts := strings.Split(arn, ":")
	if len(parts) != 6 || parts[0] != "arn" || parts[2] != "sns" {
		return fmt.Errorf("%w: %q", ErrInvalidTopicARN, arn)
	}
	for _, part := range parts[1:] {
		if part == "" {
			return fmt.Errorf("%w: %q", ErrInvalidTopicARN, arn)
		}
	}

	return nil
}
