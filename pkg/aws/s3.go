package aws

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/filehub/filehubctl/internal/models"
)

// S3Client wraps the S3 API surface the console needs: listing the
// transfer bucket and deleting expired objects.
type S3Client struct {
	client *s3.Client
	region string
}

// Options configures the S3 client. AccessKey/SecretKey are optional;
// when empty the SDK default credential chain is used.
type Options struct {
	Region    string
	AccessKey string
	SecretKey string
}

// NewS3Client creates a new S3Client for the given region.
func NewS3Client(ctx context.Context, opt Options) (*S3Client, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opt.Region),
		awsconfig.WithRetryMode(aws.RetryModeStandard),
	}
	if opt.AccessKey != "" && opt.SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opt.AccessKey, opt.SecretKey, "")))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	return &S3Client{
		client: s3.NewFromConfig(cfg, func(o *s3.Options) {
			o.UsePathStyle = true // Use path-style addressing which is more reliable
		}),
		region: opt.Region,
	}, nil
}

// ListObjects returns every object in the bucket as an ObjectInfo
// snapshot. LastModified timestamps are normalized to UTC.
func (c *S3Client) ListObjects(ctx context.Context, bucket string) ([]models.ObjectInfo, error) {
	var objects []models.ObjectInfo

	paginator := s3.NewListObjectsV2Paginator(c.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error listing objects in bucket %s: %w", bucket, err)
		}

		for _, obj := range page.Contents {
			info := models.ObjectInfo{
				Key:       aws.ToString(obj.Key),
				SizeBytes: aws.ToInt64(obj.Size),
			}
			if obj.LastModified != nil {
				info.LastModified = obj.LastModified.UTC()
			}
			objects = append(objects, info)
		}
	}

	return objects, nil
}

// DeleteObject removes a single object from the bucket.
func (c *S3Client) DeleteObject(ctx context.Context, bucket, key string) error {
	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return fmt.Errorf("error deleting object %s: %s: %s", key, apiErr.ErrorCode(), apiErr.ErrorMessage())
		}
		return fmt.Errorf("error deleting object %s: %w", key, err)
	}
	return nil
}
