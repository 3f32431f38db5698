package infra_s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/humanbelnik/cinevault/internal/model"
	usecase_movie "github.com/humanbelnik/cinevault/internal/usecase/movie"
)

// S3Storage keeps thumbnails in a private bucket and hands out presigned
// links to them.
type S3Storage struct {
	client *s3.Client

	prefix     string
	bucketName string
}

func New(bucketName string, client *s3.Client, prefix string) (*S3Storage, error) {
	storage := S3Storage{
		bucketName: bucketName,
		client:     client,
		prefix:     prefix,
	}

	_, err := storage.client.HeadBucket(context.TODO(), &s3.HeadBucketInput{
		Bucket: aws.String(bucketName),
	})
	if err != nil {
		var apiError smithy.APIError
		if errors.As(err, &apiError) {
			switch apiError.(type) {
			case *types.NotFound:
				log.Printf("Bucket %v is available.\n", bucketName)
				err = nil
			default:
				log.Printf("Either you don't have access to bucket %v or another error occurred. "+
					"Here's what happened: %v\n", bucketName, err)
			}
		}
	} else {
		log.Printf("Bucket %v exists and you already own it.", bucketName)
	}

	return &storage, err
}

func buildKey(paths ...string) string {
	var cleaned []string
	for _, p := range paths {
		clean := strings.ReplaceAll(p, "\\", "")
		clean = strings.ReplaceAll(clean, "/", "")
		if clean == "" {
			continue
		}
		cleaned = append(cleaned, clean)
	}
	return path.Join(cleaned...)
}

func (s *S3Storage) Save(ctx context.Context, obj *model.Thumbnail, readyKey *string) (string, error) {
	var key string
	if readyKey == nil {
		key = buildKey(s.prefix, obj.GetParent(), obj.GetFilename())
	} else {
		key = *readyKey
	}

	input := &s3.PutObjectInput{
		Bucket: &s.bucketName,
		Key:    &key,
		Body:   bytes.NewReader(obj.GetContent()),
		ACL:    types.ObjectCannedACLPrivate,
	}
	if obj.ContentType != "" {
		input.ContentType = aws.String(obj.ContentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to save object to S3: %w", err)
	}
	return key, nil
}

func (s *S3Storage) Load(ctx context.Context, readyKey string) (*model.Thumbnail, error) {
	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.bucketName,
		Key:    &readyKey,
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, fmt.Errorf("failed to load object %s: %w", readyKey, usecase_movie.ErrResourceNotFound)
		}
		return nil, fmt.Errorf("failed to load object from S3: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object content: %w", err)
	}

	return &model.Thumbnail{
		Filename:    filepath.Base(readyKey),
		ContentType: aws.ToString(resp.ContentType),
		Content:     data,
		Parent:      path.Base(path.Dir(readyKey)),
	}, nil
}

func (s *S3Storage) Delete(ctx context.Context, readyKey string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucketName,
		Key:    &readyKey,
	})
	if err != nil {
		return fmt.Errorf("failed to delete object from S3: %w", err)
	}
	return nil
}

func (s *S3Storage) GeneratePresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	presignClient := s3.NewPresignClient(s.client)

	req, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", key, err)
	}

	return req.URL, nil
}
