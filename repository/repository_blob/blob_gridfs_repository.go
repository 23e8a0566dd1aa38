package repository_blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/Super-Badmen-Viper/NineSongProject/domain"
	"github.com/Super-Badmen-Viper/NineSongProject/mongo"
)

type gridFSBlobRepository struct {
	bucket mongo.Bucket
}

func NewGridFSBlobRepository(db mongo.Database, bucketName string) (domain.BlobStore, error) {
	bucket, err := db.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to open gridfs bucket %s: %w", bucketName, err)
	}
	return &gridFSBlobRepository{bucket: bucket}, nil
}

func (r *gridFSBlobRepository) Put(ctx context.Context, key string, data []byte) error {
	if err := r.bucket.Upload(ctx, key, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to upload blob %s: %w", key, err)
	}
	return nil
}

func (r *gridFSBlobRepository) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.bucket.Download(ctx, key)
	if err != nil {
		if errors.Is(err, mongo.ErrFileNotFound) {
			return nil, domain.ErrBlobNotFound
		}
		return nil, fmt.Errorf("failed to download blob %s: %w", key, err)
	}
	return data, nil
}

func (r *gridFSBlobRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.bucket.DeleteByName(ctx, key); err != nil {
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}
	return nil
}
