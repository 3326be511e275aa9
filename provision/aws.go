package provision

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

//go:generate go tool moq -pkg provision_test -stub -out aws_mock_test.go . SQSAPI SNSAPI

// SQSAPI defines the AWS SQS methods used by the Provisioner. This is used for testing purposes.
type SQSAPI interface {
	CreateQueue(
		context.Context,
		*sqs.CreateQueueInput,
		...func(*sqs.Options),
	) (*sqs.CreateQueueOutput, error)
	GetQueueUrl(
		context.Context,
		*sqs.GetQueueUrlInput,
		...func(*sqs.Options),
	) (*sqs.GetQueueUrlOutput, error)
	GetQueueAttributes(
		context.Context,
		*sqs.GetQueueAttributesInput,
		...func(*sqs.Options),
	) (*sqs.GetQueueAttributesOutput, error)
	SetQueueAttributes(
		context.Context,
		*sqs.SetQueueAttributesInput,
		...func(*sqs.Options),
	) (*sqs.SetQueueAttributesOutput, error)
}

// SNSAPI defines the AWS SNS methods used by the Provisioner. This is used for testing purposes.
type SNSAPI interface {
	Subscribe(
		context.Context,
		*sns.SubscribeInput,
		...func(*sns.Options),
	) (*sns.SubscribeOutput, error)
}
