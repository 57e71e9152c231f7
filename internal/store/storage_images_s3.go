// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/profile-card/internal/config"
	"github.com/MKhiriev/profile-card/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3PutObjectAPI is the subset of *s3.Client used by [s3ImageStorage].
type s3PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// s3ImageStorage uploads profile images to an S3-compatible bucket (AWS S3
// or MinIO) and returns URLs under the configured public base URL.
type s3ImageStorage struct {
	client        s3PutObjectAPI
	bucket        string
	publicBaseURL string
	logger        *logger.Logger
}

// NewImageStorage returns an S3-backed [ImageStorage] when cfg names a bucket
// and a disabled one otherwise.
func NewImageStorage(ctx context.Context, cfg config.Images, log *logger.Logger) (ImageStorage, error) {
	if !cfg.Enabled() {
		log.Debug().Msg("image storage disabled, profile images are stored inline")
		return noopImageStorage{}, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Info().Str("bucket", cfg.Bucket).Msg("image storage enabled")

	return newS3ImageStorage(client, cfg.Bucket, cfg.PublicBaseURL, log), nil
}

func newS3ImageStorage(client s3PutObjectAPI, bucket, publicBaseURL string, log *logger.Logger) *s3ImageStorage {
	return &s3ImageStorage{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        log,
	}
}

// SaveImage implements [ImageStorage].
func (s *s3ImageStorage) SaveImage(ctx context.Context, key, contentType string, data []byte) (string, error) {
	log := logger.FromContext(ctx)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		log.Err(err).
			Str("func", "s3ImageStorage.SaveImage").
			Str("key", key).
			Msg("failed to put object")
		return "", fmt.Errorf("%w: %w", ErrUploadingImage, err)
	}

	return s.publicBaseURL + "/" + key, nil
}

// Enabled implements [ImageStorage].
func (s *s3ImageStorage) Enabled() bool {
	return true
}

type noopImageStorage struct{}

func (noopImageStorage) SaveImage(context.Context, string, string, []byte) (string, error) {
	return "", ErrImageStorageDisabled
}

func (noopImageStorage) Enabled() bool {
	return false
}
