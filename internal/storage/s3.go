// Package storage handles shared-file uploads to object storage.
package storage

import (
	"bytes"
	"fmt"

	"prospeo/internal/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// Uploader stores a named object and returns its public URL.
type Uploader interface {
	Upload(key string, data []byte, contentType string) (string, error)
}

type S3Service struct {
	s3Client *s3.S3
	cfg      *config.S3Config
}

func NewS3Service(cfg *config.S3Config) (*S3Service, error) {
	awsCfg := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return &S3Service{
		s3Client: s3.New(sess),
		cfg:      cfg,
	}, nil
}

func (s *S3Service) Upload(key string, data []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("%s/%s", s.cfg.BucketURL, key), nil
}

var _ Uploader = (*S3Service)(nil)
