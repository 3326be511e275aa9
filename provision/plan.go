package provision

import (
	"maps"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// QueueARNPlaceholder stands in for the queue ARN in planned calls. The real
// ARN only exists once the queue does, so a plan rendered ahead of execution
// cannot know it.
const QueueARNPlaceholder = "${queue-arn}"

// Step is one remote call a Provision run will issue, with its scalar
// parameters flattened into a map.
type Step struct {
	// Operation is the API call, e.g. "sqs:CreateQueue".
	Operation string
	// Params are the call parameters relevant to the desired state.
	Params map[string]string
}

// Plan is the ordered list of remote calls Provision will issue for a desired
// configuration. It is computed locally from the configuration alone and
// shares the attribute and policy builders with Provision, so a dry run shows
// the exact attribute maps and policy document a live run would send.
type Plan struct {
	Steps []Step
}

// NewPlan validates the configuration and returns the calls required to
// converge to it. It makes no remote call.
func NewPlan(cfg Config, opts ...Option) (*Plan, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := New(nil, nil, opts...)

	policy, err := sendMessagePolicy(p.policySid, QueueARNPlaceholder, cfg.TopicARN)
	if err != nil {
		return nil, err
	}

	createParams := map[string]string{"QueueName": cfg.QueueName}
	maps.Copy(createParams, cfg.attributes())

	return &Plan{Steps: []Step{
		{
			Operation: "sqs:CreateQueue",
			Params:    createParams,
		},
		{
			Operation: "sqs:GetQueueAttributes",
			Params: map[string]string{
				"AttributeNames": string(types.QueueAttributeNameQueueArn),
			},
		},
		{
			Operation: "sqs:SetQueueAttributes",
			Params: map[string]string{
				string(types.QueueAttributeNamePolicy): policy,
			},
		},
		{
			Operation: "sns:Subscribe",
			Params: map[string]string{
				"TopicArn":              cfg.TopicARN,
				"Protocol":              "sqs",
				"Endpoint":              QueueARNPlaceholder,
				"RawMessageDelivery":    "true",
				"ReturnSubscriptionArn": "true",
			},
		},
	}}, nil
}
