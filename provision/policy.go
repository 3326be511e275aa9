package provision

import (
	"encoding/json"
	"fmt"
)

// DefaultPolicySid is the statement id installed on the queue policy unless
// overridden with WithPolicySid.
const DefaultPolicySid = "AllowNOAAMRMSSNSPublish"

const (
	policyVersion       = "2012-10-17"
	snsServicePrincipal = "sns.amazonaws.com"
)

// The policy document has a fixed shape; only the queue and topic ARNs vary.
// Field order is the struct order, so the rendered JSON is reproducible
// byte-for-byte for a given input pair.
type policyDocument struct {
	Version   string            `json:"Version"`
	Statement []policyStatement `json:"Statement"`
}

type policyStatement struct {
	Sid       string           `json:"Sid"`
	Effect    string           `json:"Effect"`
	Principal servicePrincipal `json:"Principal"`
	Action    string           `json:"Action"`
	Resource  string           `json:"Resource"`
	Condition policyCondition  `json:"Condition"`
}

type servicePrincipal struct {
	Service string `json:"Service"`
}

type policyCondition struct {
	ArnEquals sourceARN `json:"ArnEquals"`
}

type sourceARN struct {
	SourceArn string `json:"aws:SourceArn"`
}

// sendMessagePolicy renders the single-statement policy granting the SNS
// service permission to send messages into the queue, conditioned on the
// publishing topic's ARN matching exactly.
func sendMessagePolicy(sid, queueARN, topicARN string) (string, error) {
	doc := policyDocument{
		Version: policyVersion,
		Statement: []policyStatement{{
			Sid:       sid,
			Effect:    "Allow",
			Principal: servicePrincipal{Service: snsServicePrincipal},
			Action:    "sqs:SendMessage",
			Resource:  queueARN,
			Condition: policyCondition{ArnEquals: sourceARN{SourceArn: topicARN}},
		}},
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshalling queue policy: %w", err)
	}

	return string(b), nil
}
