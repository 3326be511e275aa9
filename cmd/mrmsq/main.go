// Command mrmsq provisions the SQS queue receiving NOAA MRMS new-object
// notifications: it creates or updates the queue, allows the MRMS SNS topic
// to publish into it and subscribes the queue with raw message delivery.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/approach-viz/mrmsq/provision"
)

const defaultTopicARN = "arn:aws:sns:us-east-1:123901341784:NewMRMSObject"

// record is the success output printed for operators and scripts.
type record struct {
	Region    string `json:"region"`
	TopicARN  string `json:"topicArn"`
	QueueName string `json:"queueName"`
	provision.Result
}

func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	app := &cli.App{
		Name:      "mrmsq",
		Usage:     "Create/update the SQS subscription for NOAA MRMS SNS notifications",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "region",
				Usage: "AWS region for SNS/SQS resources",
				Value: "us-east-1",
			},
			&cli.StringFlag{
				Name:  "topic-arn",
				Usage: "MRMS SNS topic ARN",
				Value: defaultTopicARN,
			},
			&cli.StringFlag{
				Name:  "queue-name",
				Usage: "SQS queue name to create/update",
				Value: "approach-viz-mrms-oci-useast-arm-4",
			},
			&cli.IntFlag{
				Name:  "message-retention-seconds",
				Usage: "SQS retention in seconds",
				Value: 4 * 24 * 60 * 60,
			},
			&cli.IntFlag{
				Name:  "visibility-timeout-seconds",
				Usage: "SQS visibility timeout in seconds",
				Value: 120,
			},
			&cli.IntFlag{
				Name:  "wait-time-seconds",
				Usage: "SQS long-poll wait time in seconds",
				Value: 20,
			},
			&cli.StringFlag{
				Name:  "endpoint",
				Usage: "override the AWS endpoint (e.g. a localstack instance)",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "print the calls that would be made without issuing them",
			},
		},
		Action: run,
	}

	return app.RunContext(ctx, args)
}

func run(c *cli.Context) error {
	cfg := provision.Config{
		QueueName:                c.String("queue-name"),
		TopicARN:                 c.String("topic-arn"),
		RetentionSeconds:         c.Int("message-retention-seconds"),
		VisibilityTimeoutSeconds: c.Int("visibility-timeout-seconds"),
		WaitTimeSeconds:          c.Int("wait-time-seconds"),
	}

	if c.Bool("dry-run") {
		plan, err := provision.NewPlan(cfg)
		if err != nil {
			return err
		}
		return printPlan(c.App.Writer, plan)
	}

	var opts []provision.Option
	if endpoint := c.String("endpoint"); endpoint != "" {
		opts = append(opts, provision.WithEndpoint(endpoint))
	}

	p, err := provision.Open(c.Context, c.String("region"), opts...)
	if err != nil {
		return err
	}

	res, err := p.Provision(c.Context, cfg)
	if err != nil {
		return err
	}

	return printResult(c.App.Writer, record{
		Region:    c.String("region"),
		TopicARN:  cfg.TopicARN,
		QueueName: cfg.QueueName,
		Result:    *res,
	})
}

func printPlan(w io.Writer, plan *provision.Plan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(plan.Steps); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Dry run: no remote call was made.")

	return nil
}

func printResult(w io.Writer, rec record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Set this for the ingest service:")
	fmt.Fprintf(w, "MRMS_SQS_QUEUE_URL=%s\n", rec.QueueURL)

	return nil
}

func main() {
	ctx := context.Background()
	err := Run(ctx, os.Args, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
