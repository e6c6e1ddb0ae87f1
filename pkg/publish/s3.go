package publish

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"path"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/google/uuid"

	"github.com/df07/go-mirror-raytracer/pkg/config"
	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// UploadTimeout bounds a single frame upload
const UploadTimeout = 30 * time.Second

// S3Publisher uploads rendered frames to an S3-compatible bucket
type S3Publisher struct {
	client    s3iface.S3API
	bucket    string
	keyPrefix string
	logger    core.Logger
}

// NewS3Publisher wraps an existing S3 client
func NewS3Publisher(client s3iface.S3API, bucket, keyPrefix string, logger core.Logger) *S3Publisher {
	return &S3Publisher{
		client:    client,
		bucket:    bucket,
		keyPrefix: keyPrefix,
		logger:    logger,
	}
}

// NewS3PublisherFromConfig creates a session from the S3 settings in cfg
func NewS3PublisherFromConfig(cfg config.Config, logger core.Logger) (*S3Publisher, error) {
	if !cfg.UploadEnabled() {
		return nil, fmt.Errorf("no S3 bucket configured")
	}

	s3Config := &aws.Config{
		Region:           aws.String(cfg.S3Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.S3Endpoint != "" {
		s3Config.Endpoint = aws.String(cfg.S3Endpoint)
	}
	if cfg.S3AccessKey != "" {
		s3Config.Credentials = credentials.NewStaticCredentials(cfg.S3AccessKey, cfg.S3SecretKey, "")
	}

	sess, err := session.NewSession(s3Config)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return NewS3Publisher(s3.New(sess), cfg.S3Bucket, cfg.S3KeyPrefix, logger), nil
}

// ObjectKey builds a unique key of the form <prefix>/<scene>/<id>.png
func (p *S3Publisher) ObjectKey(sceneName string, id uuid.UUID) string {
	return path.Join(p.keyPrefix, sceneName, id.String()+".png")
}

// PublishImage encodes img as PNG and uploads it, returning the object key
func (p *S3Publisher) PublishImage(ctx context.Context, sceneName string, img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode frame: %w", err)
	}

	key := p.ObjectKey(sceneName, uuid.New())
	if err := p.upload(ctx, buf.Bytes(), key); err != nil {
		return "", err
	}
	return key, nil
}

func (p *S3Publisher) upload(ctx context.Context, data []byte, key string) error {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	size := int64(len(data))
	_, err := p.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String("image/png"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	p.logger.Printf("Uploaded %s to s3://%s (%d bytes)\n", key, p.bucket, size)
	return nil
}
