package storage

import (
	"context"
	"io"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"skillbridge/internal/common"
)

type S3Config struct {
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
}

type S3Store struct {
	client *s3.Client
	bucket string
}

func NewS3Store(cfg S3Config) *S3Store {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(), opts...)
	if err != nil {
		log.Fatalf("failed to load aws config: %v", err)
	}
	return &S3Store{client: s3.NewFromConfig(awsCfg), bucket: cfg.Bucket}
}

func (s *S3Store) Save(ctx context.Context, kind Kind, originalName string, r io.Reader) (string, error) {
	key := "uploads/" + string(kind) + "/" + storedName(originalName)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   r,
	})
	if err != nil {
		return "", common.NewError(common.CodeInternal, "failed to store upload", err)
	}
	return "/" + key, nil
}
