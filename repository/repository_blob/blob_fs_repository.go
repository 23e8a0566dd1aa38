package repository_blob

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Super-Badmen-Viper/NineSongProject/domain"
	"github.com/spf13/afero"
)

type fsBlobRepository struct {
	fs afero.Fs
}

// NewFSBlobRepository 对象以扁平文件名保存在 fs 根目录下
func NewFSBlobRepository(fs afero.Fs) domain.BlobStore {
	return &fsBlobRepository{fs: fs}
}

// NewLocalBlobRepository 以 root 为根目录的本地磁盘存储
func NewLocalBlobRepository(root string) (domain.BlobStore, error) {
	osFs := afero.NewOsFs()
	if err := osFs.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create blob root %s: %w", root, err)
	}
	return NewFSBlobRepository(afero.NewBasePathFs(osFs, root)), nil
}

func validateBlobKey(key string) error {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("invalid blob key %q", key)
	}
	return nil
}

func (r *fsBlobRepository) Put(ctx context.Context, key string, data []byte) error {
	if err := validateBlobKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := afero.WriteFile(r.fs, key, data, 0644); err != nil {
		return fmt.Errorf("failed to write blob %s: %w", key, err)
	}
	return nil
}

func (r *fsBlobRepository) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateBlobKey(key); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(r.fs, key)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrBlobNotFound
		}
		return nil, fmt.Errorf("failed to read blob %s: %w", key, err)
	}
	return data, nil
}

func (r *fsBlobRepository) Delete(ctx context.Context, key string) error {
	if err := validateBlobKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.fs.Remove(key); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}
	return nil
}
