package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"strings"

	"github.com/google/uuid"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// AvatarStore keeps profile pictures in a MinIO bucket.
type AvatarStore struct {
	client    *minioSDK.Client
	bucket    string
	publicURL string
}

// NewAvatarStore connects to MinIO and creates the bucket when it is missing.
func NewAvatarStore(ctx context.Context, endpoint, accessKey, secretKey string, useSSL bool, bucket, publicURL string) (*AvatarStore, error) {
	client, err := minioSDK.New(endpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", bucket, err)
		}
		slog.Info("bucket created", "bucket", bucket)
	}

	if publicURL == "" {
		scheme := "http"
		if useSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, endpoint)
	}

	return &AvatarStore{client: client, bucket: bucket, publicURL: publicURL}, nil
}

// PutAvatar uploads the image and returns its public URL.
func (s *AvatarStore) PutAvatar(ctx context.Context, role string, userID uint, r io.Reader, size int64, contentType string) (string, error) {
	key := ObjectKey(role, userID, uuid.NewString(), contentType)
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload avatar: %w", err)
	}
	return ObjectURL(s.publicURL, s.bucket, key), nil
}

// ObjectKey names an avatar object: avatars/<role>/<user id>/<id><ext>.
func ObjectKey(role string, userID uint, id, contentType string) string {
	ext := ""
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		ext = exts[0]
	}
	return fmt.Sprintf("avatars/%s/%d/%s%s", role, userID, id, ext)
}

func ObjectURL(base, bucket, key string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(base, "/"), bucket, key)
}
