package mongo

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrFileNotFound 透传 GridFS 的未找到错误
var ErrFileNotFound = gridfs.ErrFileNotFound

// Bucket GridFS 存储桶，同名文件只保留最新一份
type Bucket interface {
	Upload(ctx context.Context, name string, source io.Reader) error
	Download(ctx context.Context, name string) ([]byte, error)
	DeleteByName(ctx context.Context, name string) (int, error)
}

type mongoBucket struct{ b *gridfs.Bucket }

func (md *mongoDatabase) Bucket(name string) (Bucket, error) {
	b, err := gridfs.NewBucket(md.db, options.GridFSBucket().SetName(name))
	if err != nil {
		return nil, err
	}
	return &mongoBucket{b: b}, nil
}

// 驱动 v1 的 GridFS 接口不接收 context，这里把 context 的截止时间换算为读写超时
func (mb *mongoBucket) applyDeadline(ctx context.Context) error {
	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Time{}
	}
	if err := mb.b.SetReadDeadline(deadline); err != nil {
		return err
	}
	return mb.b.SetWriteDeadline(deadline)
}

func (mb *mongoBucket) Upload(ctx context.Context, name string, source io.Reader) error {
	if err := mb.applyDeadline(ctx); err != nil {
		return err
	}
	if _, err := mb.DeleteByName(ctx, name); err != nil {
		return err
	}
	_, err := mb.b.UploadFromStream(name, source)
	return err
}

func (mb *mongoBucket) Download(ctx context.Context, name string) ([]byte, error) {
	if err := mb.applyDeadline(ctx); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := mb.b.DownloadToStreamByName(name, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (mb *mongoBucket) DeleteByName(ctx context.Context, name string) (int, error) {
	if err := mb.applyDeadline(ctx); err != nil {
		return 0, err
	}
	cursor, err := mb.b.Find(bson.M{"filename": name})
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var files []struct {
		ID interface{} `bson:"_id"`
	}
	if err := cursor.All(ctx, &files); err != nil {
		return 0, err
	}

	deleted := 0
	for _, f := range files {
		if err := mb.b.Delete(f.ID); err != nil {
			if errors.Is(err, gridfs.ErrFileNotFound) {
				continue
			}
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}
