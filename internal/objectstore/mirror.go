package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/folio-dev/portfolio-api/internal/config"
)

// maxImageBytes caps the size of a mirrored image.
const maxImageBytes = 20 << 20

// Bucket is the part of *minio.Client the mirror needs.
type Bucket interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// Mirror copies generated images into a bucket. Provider image URLs expire,
// bucket URLs do not.
type Mirror struct {
	client     Bucket
	httpClient *http.Client
	bucket     string
	baseURL    string
	maxBytes   int64
}

// New connects to the MinIO endpoint in cfg.
func New(cfg config.MinIOConfig, timeout time.Duration) (*Mirror, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		scheme := "http"
		if cfg.Secure {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}
	return NewWithClient(client, cfg.Bucket, baseURL, &http.Client{Timeout: timeout}), nil
}

// NewWithClient builds a mirror over an existing bucket client. baseURL is the
// public prefix objects are served under.
func NewWithClient(client Bucket, bucket, baseURL string, httpClient *http.Client) *Mirror {
	return &Mirror{
		client:     client,
		httpClient: httpClient,
		bucket:     bucket,
		baseURL:    strings.TrimRight(baseURL, "/"),
		maxBytes:   maxImageBytes,
	}
}

// EnsureBucket creates the bucket when it does not exist yet.
func (m *Mirror) EnsureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %q: %w", m.bucket, err)
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %q: %w", m.bucket, err)
	}
	slog.Info("created image bucket", "bucket", m.bucket)
	return nil
}

// Mirror downloads sourceURL and stores it under a unique object name derived
// from name. It returns the public URL of the stored object.
func (m *Mirror) Mirror(ctx context.Context, name, sourceURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return "", fmt.Errorf("cannot build image request: %w", err)
	}
	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("cannot download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cannot download image: %s", resp.Status)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}
	if resp.ContentLength > m.maxBytes {
		return "", fmt.Errorf("image too large: %d bytes", resp.ContentLength)
	}

	// ContentLength is -1 for chunked responses, so the limit is enforced on the body.
	data, err := io.ReadAll(io.LimitReader(resp.Body, m.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("cannot download image: %w", err)
	}
	if int64(len(data)) > m.maxBytes {
		return "", fmt.Errorf("image too large: more than %d bytes", m.maxBytes)
	}

	objectName := ObjectName(name, contentType)
	_, err = m.client.PutObject(ctx, m.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return m.baseURL + "/" + objectName, nil
}

var unsafeChars = regexp.MustCompile(`[^a-z0-9]+`)

// ObjectName returns projects/<slug>-<uuid><ext> for a project name.
func ObjectName(name, contentType string) string {
	slug := strings.Trim(unsafeChars.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if slug == "" {
		slug = "project"
	}

	ext := ".png"
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		if exts, err := mime.ExtensionsByType(mediaType); err == nil && len(exts) > 0 {
			ext = exts[0]
		}
	}
	return fmt.Sprintf("projects/%s-%s%s", slug, uuid.NewString(), ext)
}
