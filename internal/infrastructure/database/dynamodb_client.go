package database

import (
	"context"
	"log"

	"fenceworks/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client from cfg.
//
// With an endpoint set (e.g. http://dynamodb:8000) the client talks to a
// local DynamoDB; static credentials are used either way.
func ConnectDynamoDB(cfg config.StoreConfig) *dynamodb.Client {
	awsCfg, err := NewDynamoDBConfig(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
}

func NewDynamoDBConfig(ctx context.Context, cfg config.StoreConfig) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")

	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(creds),
		awsconfig.WithRetryer(func() aws.Retryer { return NewRetryer(cfg) }),
	)
}

// NewRetryer retries throttling and transient failures with exponential
// backoff, up to cfg.MaxAttempts calls per operation.
func NewRetryer(cfg config.StoreConfig) aws.Retryer {
	return retry.NewStandard(func(o *retry.StandardOptions) {
		if cfg.MaxAttempts > 0 {
			o.MaxAttempts = cfg.MaxAttempts
		}
		if cfg.MaxBackoff > 0 {
			o.MaxBackoff = cfg.MaxBackoff
		}
	})
}
