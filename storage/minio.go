package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"AuraFM/config"
	"AuraFM/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const snapshotPrefix = "snapshots"

var minioClient *minio.Client

// InitMinio initializes the MinIO client and ensures the bucket exists.
func InitMinio(cfg *config.Config) error {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
		Region: cfg.MinioRegion,
	})
	if err != nil {
		return fmt.Errorf("create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", cfg.MinioBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{Region: cfg.MinioRegion}); err != nil {
			return fmt.Errorf("create bucket %s: %w", cfg.MinioBucket, err)
		}
		logger.Info("created bucket", logger.String("bucket", cfg.MinioBucket))
	}

	minioClient = client
	logger.Info("minio client initialized", logger.String("bucket", cfg.MinioBucket))
	return nil
}

// GetMinioClient returns the shared client, nil before InitMinio.
func GetMinioClient() *minio.Client {
	return minioClient
}

// PutSnapshot stores an encoded PNG frame for a visualizer session and
// returns the path the HTTP server serves it under.
func PutSnapshot(ctx context.Context, cfg *config.Config, session string, data []byte) (string, error) {
	if minioClient == nil {
		return "", fmt.Errorf("minio client not initialized")
	}
	objectName := path.Join(snapshotPrefix, session, fmt.Sprintf("%d.png", time.Now().UnixMilli()))
	_, err := minioClient.PutObject(ctx, cfg.MinioBucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "image/png", DisableMultipart: true})
	if err != nil {
		return "", fmt.Errorf("upload snapshot %s: %w", objectName, err)
	}
	return "/" + objectName, nil
}

// ListSnapshots returns the object names stored for a session (or all
// sessions when session is empty).
func ListSnapshots(ctx context.Context, cfg *config.Config, session string) ([]string, error) {
	if minioClient == nil {
		return nil, fmt.Errorf("minio client not initialized")
	}
	prefix := snapshotPrefix + "/"
	if session != "" {
		prefix = path.Join(snapshotPrefix, session) + "/"
	}
	var names []string
	for obj := range minioClient.ListObjects(ctx, cfg.MinioBucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list snapshots: %w", obj.Err)
		}
		names = append(names, obj.Key)
	}
	return names, nil
}
