// Package storage publica os artefatos dos relatórios no S3
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/vfg2006/creator-automation/internal/config"
)

// ObjectPutter é o subconjunto do cliente S3 usado aqui
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Store struct {
	client  ObjectPutter
	bucket  string
	baseURL string
}

func NewS3Store(awsCfg aws.Config, cfg config.Reports) *S3Store {
	return newS3Store(s3.NewFromConfig(awsCfg), awsCfg.Region, cfg)
}

func newS3Store(client ObjectPutter, region string, cfg config.Reports) *S3Store {
	baseURL := strings.TrimRight(cfg.PublicBaseURL, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, region)
	}

	return &S3Store{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: baseURL,
	}
}

// Upload grava o objeto e devolve a URL pública montada a partir da base configurada
func (s *S3Store) Upload(ctx context.Context, key, contentType string, body []byte) (string, error) {
	key = strings.TrimLeft(key, "/")

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return "", fmt.Errorf("erro ao enviar %s para o bucket %s: %w", key, s.bucket, err)
	}

	return s.baseURL + "/" + key, nil
}
