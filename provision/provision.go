// Package provision converges an AWS SQS queue into a raw-delivery subscriber
// of an SNS topic. A single Provision call creates (or updates) the queue,
// resolves its ARN, installs an access policy restricting publishes to the
// configured topic and subscribes the queue to it. The call is idempotent:
// re-running it against the same configuration returns the same identifiers
// and leaves the remote resources unchanged.
package provision

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// ErrMissingQueueARN reports a queue whose QueueArn attribute could not be
// resolved, usually because the queue was deleted between calls.
var ErrMissingQueueARN = errors.New("queue arn attribute missing")

// Result holds the identifiers of the converged resources.
type Result struct {
	QueueURL        string `json:"queueUrl"`
	QueueARN        string `json:"queueArn"`
	SubscriptionARN string `json:"subscriptionArn"`
}

// Option is a function to set options to Provisioner.
type Option interface {
	applyProvisioner(*Provisioner)
}

// Open creates a new Provisioner for the given region using the default AWS
// configuration resolved from the environment.
func Open(ctx context.Context, region string, opts ...Option) (*Provisioner, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config from default: %w", err)
	}

	p := New(nil, nil, opts...)

	p.sqs = sqs.NewFromConfig(awsCfg, func(o *sqs.Options) {
		if p.endpoint != "" {
			o.BaseEndpoint = aws.String(p.endpoint)
		}
	})
	p.sns = sns.NewFromConfig(awsCfg, func(o *sns.Options) {
		if p.endpoint != "" {
			o.BaseEndpoint = aws.String(p.endpoint)
		}
	})

	return p, nil
}

// New creates a new Provisioner with the given SQS and SNS clients.
// This function allows for custom configuration and dependency injection.
func New(sqsCli SQSAPI, snsCli SNSAPI, opts ...Option) *Provisioner {
	p := Provisioner{
		sqs:       sqsCli,
		sns:       snsCli,
		policySid: DefaultPolicySid,
	}

	for _, opt := range opts {
		opt.applyProvisioner(&p)
	}

	return &p
}

// Provisioner drives the remote SQS and SNS APIs towards a desired queue and
// subscription configuration. It keeps no state between calls; every run
// re-reads the remote resources.
type Provisioner struct {
	sqs SQSAPI
	sns SNSAPI

	// statement id installed on the queue policy
	policySid string
	// base endpoint override for both clients, used by Open
	endpoint string
}

// Provision executes the four reconciliation steps in order: ensure the
// queue, resolve its ARN, install the access policy, subscribe the queue to
// the topic. The first failing step aborts the call; earlier steps are not
// rolled back, re-running is the recovery mechanism.
func (p *Provisioner) Provision(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	queueURL, err := p.ensureQueue(ctx, cfg)
	if err != nil {
		return nil, err
	}

	queueARN, err := p.queueARN(ctx, queueURL)
	if err != nil {
		return nil, err
	}

	if err := p.installPolicy(ctx, queueURL, queueARN, cfg.TopicARN); err != nil {
		return nil, err
	}

	subscriptionARN, err := p.subscribe(ctx, cfg.TopicARN, queueARN)
	if err != nil {
		return nil, err
	}

	return &Result{
		QueueURL:        queueURL,
		QueueARN:        queueARN,
		SubscriptionARN: subscriptionARN,
	}, nil
}

// ensureQueue creates the queue with the configured attributes. CreateQueue
// is idempotent for a matching attribute set, but refuses to touch a
// pre-existing queue with a different one, so that case is converged with an
// explicit attribute update.
func (p *Provisioner) ensureQueue(ctx context.Context, cfg Config) (string, error) {
	out, err := p.sqs.CreateQueue(ctx, &sqs.CreateQueueInput{
		QueueName:  aws.String(cfg.QueueName),
		Attributes: cfg.attributes(),
	})
	if err == nil {
		return aws.ToString(out.QueueUrl), nil
	}

	var exists *types.QueueNameExists
	if !errors.As(err, &exists) {
		return "", fmt.Errorf("creating queue %s: %w", cfg.QueueName, err)
	}

	urlOut, err := p.sqs.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: aws.String(cfg.QueueName),
	})
	if err != nil {
		return "", fmt.Errorf("resolving url of existing queue %s: %w", cfg.QueueName, err)
	}

	if _, err := p.sqs.SetQueueAttributes(ctx, &sqs.SetQueueAttributesInput{
		QueueUrl:   urlOut.QueueUrl,
		Attributes: cfg.attributes(),
	}); err != nil {
		return "", fmt.Errorf("updating attributes of existing queue %s: %w", cfg.QueueName, err)
	}

	return aws.ToString(urlOut.QueueUrl), nil
}

func (p *Provisioner) queueARN(ctx context.Context, queueURL string) (string, error) {
	out, err := p.sqs.GetQueueAttributes(ctx, &sqs.GetQueueAttributesInput{
		QueueUrl:       aws.String(queueURL),
		AttributeNames: []types.QueueAttributeName{types.QueueAttributeNameQueueArn},
	})
	if err != nil {
		return "", fmt.Errorf("resolving arn of queue %s: %w", queueURL, err)
	}

	arn := out.Attributes[string(types.QueueAttributeNameQueueArn)]
	if arn == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingQueueARN, queueURL)
	}

	return arn, nil
}

// installPolicy overwrites the queue policy wholesale with the single
// statement allowing the topic to send messages. Pre-existing statements are
// not merged, the last writer wins.
func (p *Provisioner) installPolicy(ctx context.Context, queueURL, queueARN, topicARN string) error {
	doc, err := sendMessagePolicy(p.policySid, queueARN, topicARN)
	if err != nil {
		return err
	}

	if _, err := p.sqs.SetQueueAttributes(ctx, &sqs.SetQueueAttributesInput{
		QueueUrl: aws.String(queueURL),
		Attributes: map[string]string{
			string(types.QueueAttributeNamePolicy): doc,
		},
	}); err != nil {
		return fmt.Errorf("installing policy on queue %s: %w", queueURL, err)
	}

	return nil
}

// subscribe binds the topic to the queue over the sqs protocol with raw
// message delivery, so consumers receive the published body without the
// notification envelope. Subscribing an already-subscribed queue returns the
// existing subscription ARN.
func (p *Provisioner) subscribe(ctx context.Context, topicARN, queueARN string) (string, error) {
	out, err := p.sns.Subscribe(ctx, &sns.SubscribeInput{
		TopicArn: aws.String(topicARN),
		Protocol: aws.String("sqs"),
		Endpoint: aws.String(queueARN),
		Attributes: map[string]string{
			"RawMessageDelivery": "true",
		},
		ReturnSubscriptionArn: true,
	})
	if err != nil {
		return "", fmt.Errorf("subscribing queue %s to topic %s: %w", queueARN, topicARN, err)
	}

	return aws.ToString(out.SubscriptionArn), nil
}
