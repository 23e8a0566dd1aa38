package domain

import (
	"context"
	"errors"
)

var (
	ErrKeyNotFound  = errors.New("key not found")
	ErrBlobNotFound = errors.New("blob not found")
)

// KVStore 字符串键值存储，值为序列化后的 JSON
type KVStore interface {
	// Get 键不存在时返回 ErrKeyNotFound
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	// Delete 键不存在时不报错
	Delete(ctx context.Context, key string) error
	// List 返回所有匹配前缀的键，顺序由具体存储决定
	List(ctx context.Context, prefix string) ([]string, error)
}

// BlobStore 二进制对象存储，对象名形如 <id>.<ext>
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte) error
	// Get 对象不存在时返回 ErrBlobNotFound
	Get(ctx context.Context, key string) ([]byte, error)
	// Delete 不检查对象是否存在
	Delete(ctx context.Context, key string) error
}
