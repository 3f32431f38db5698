package infra_s3

import (
	"context"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/humanbelnik/cinevault/internal/config"
)

type ClientType string

const (
	ClientTypeRealS3 ClientType = "real"
	ClientTypeMock   ClientType = "mock"
)

func ParseClientType(s string) ClientType {
	if s == string(ClientTypeRealS3) {
		return ClientTypeRealS3
	}
	return ClientTypeMock
}

// MustEstablishConn builds a client for AWS or, when an endpoint is
// configured, for an S3 compatible server.
func MustEstablishConn(cfg config.S3) *s3.Client {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(), opts...)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Endpoint == "" {
		log.Println("[s3] using AWS in region:", awsCfg.Region)
		return s3.NewFromConfig(awsCfg)
	}

	log.Println("[s3] using endpoint:", cfg.Endpoint)
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
		// Most S3 compatible servers reject the default trailing checksums.
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})
}
