package s3

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3API interface {
	PutObject(ctx context.Context, params *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error)
}

type Client struct {
	api S3API
}

func NewClient(api S3API) *Client {
	return &Client{api: api}
}

// ReportKey joins an optional prefix and a report file name into an object key.
func ReportKey(prefix, fileName string) string {
	if prefix == "" {
		return fileName
	}
	return path.Join(prefix, fileName)
}

// PutReport uploads a finished report and returns its s3:// location.
func (c *Client) PutReport(ctx context.Context, bucket, key string, body io.Reader, contentType string) (string, error) {
	input := &awss3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := c.api.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("PutObject(%s/%s): %w", bucket, key, err)
	}
	return fmt.Sprintf("s3://%s/%s", bucket, key), nil
}
