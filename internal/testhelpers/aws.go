// Package testhelpers starts the containers the integration tests run
// against.
package testhelpers

import (
	"context"
	"net"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/localstack"
)

const localstackImage = "localstack/localstack:3.0.2"

// LocalStack wraps a running localstack container together with an AWS
// configuration and the endpoint clients should target.
type LocalStack struct {
	Config   aws.Config
	Endpoint string

	*localstack.LocalStackContainer
}

// RunLocalStack starts a localstack container exposing SNS and SQS and
// returns a ready-to-use AWS configuration with static test credentials.
func RunLocalStack(ctx context.Context) (*LocalStack, error) {
	container, err := localstack.Run(ctx, localstackImage,
		testcontainers.CustomizeRequest(testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Env: map[string]string{"SERVICES": "sns,sqs"},
			},
		}),
	)
	if err != nil {
		return nil, err
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, err
	}

	port, err := container.MappedPort(ctx, nat.Port("4566/tcp"))
	if err != nil {
		return nil, err
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion("us-east-1"),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("test", "test", "")),
	)
	if err != nil {
		return nil, err
	}

	return &LocalStack{
		Config:              awsCfg,
		Endpoint:            "http://" + net.JoinHostPort(host, port.Port()),
		LocalStackContainer: container,
	}, nil
}
