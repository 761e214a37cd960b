package imagestore

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gmaschi/go-recipes-api/pkg/config/env"
)

// S3Storer keeps images in an S3 compatible bucket (AWS, DigitalOcean Spaces, MinIO)
type S3Storer struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewS3Storer(ctx context.Context, s3Config env.S3Config) (*S3Storer, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(s3Config.Region),
	}
	if s3Config.Key != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s3Config.Key, s3Config.Secret, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load s3 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s3Config.Endpoint != "" {
			o.BaseEndpoint = aws.String(s3Config.Endpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := strings.TrimSuffix(s3Config.PublicURL, "/")
	if publicURL == "" {
		publicURL = defaultPublicURL(s3Config)
	}

	return &S3Storer{
		client:    client,
		bucket:    s3Config.Bucket,
		publicURL: publicURL,
	}, nil
}

func (s *S3Storer) Put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload image: %w", err)
	}
	return nil
}

func (s *S3Storer) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

func (s *S3Storer) URL(key string) string {
	return s.publicURL + "/" + strings.TrimPrefix(key, "/")
}

func defaultPublicURL(s3Config env.S3Config) string {
	if s3Config.Endpoint != "" {
		return strings.TrimSuffix(s3Config.Endpoint, "/") + "/" + s3Config.Bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", s3Config.Bucket, s3Config.Region)
}
