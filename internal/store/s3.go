// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/apex/log"
	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the subset of the S3 client used by S3.
type S3API interface {
	GetObject(ctx context.Context, params *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3v2.PutObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.PutObjectOutput, error)
}

// S3 is a Store holding one object per key at Prefix/key in Bucket.
type S3 struct {
	Client S3API
	Bucket string
	Prefix string
}

// NewS3 returns an S3 store. bucket is required.
func NewS3(client S3API, bucket, prefix string) (*S3, error) {
	if bucket == "" {
		return nil, errors.New("s3 store requires a bucket")
	}
	return &S3{Client: client, Bucket: bucket, Prefix: strings.Trim(prefix, "/")}, nil
}

func (s *S3) objectKey(key string) string {
	if s.Prefix == "" {
		return key
	}
	return path.Join(s.Prefix, key)
}

func (s *S3) Get(ctx context.Context, key string) (string, bool, error) {
	okey := s.objectKey(key)
	out, err := s.Client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(s.Bucket),
		Key:    awsv2.String(okey),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			log.Debugf("s3://%s/%s not found", s.Bucket, okey)
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get s3://%s/%s: %w", s.Bucket, okey, err)
	}
	defer out.Body.Close()

	b, err := io.ReadAll(out.Body)
	if err != nil {
		return "", false, fmt.Errorf("failed to read s3://%s/%s: %w", s.Bucket, okey, err)
	}
	return string(b), true, nil
}

func (s *S3) Set(ctx context.Context, key string, value string) error {
	okey := s.objectKey(key)
	_, err := s.Client.PutObject(ctx, &s3v2.PutObjectInput{
		Bucket:      awsv2.String(s.Bucket),
		Key:         awsv2.String(okey),
		Body:        strings.NewReader(value),
		ContentType: awsv2.String("text/plain; charset=utf-8"),
	})
	if err != nil {
		return fmt.Errorf("failed to put s3://%s/%s: %w", s.Bucket, okey, err)
	}
	return nil
}
