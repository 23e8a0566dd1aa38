package bootstrap

import (
	"fmt"

	"github.com/Super-Badmen-Viper/NineSongProject/domain"
	"github.com/Super-Badmen-Viper/NineSongProject/mongo"
	"github.com/Super-Badmen-Viper/NineSongProject/repository/repository_blob"
	"github.com/Super-Badmen-Viper/NineSongProject/repository/repository_kv"
	"go.uber.org/zap"
)

type Application struct {
	Env    *Env
	Logger *zap.Logger
	KV     domain.KVStore
	Blob   domain.BlobStore

	closers []func() error
}

// App 按配置建立存储连接，调用方负责 Close
func App(env *Env, logger *zap.Logger) (*Application, error) {
	app := &Application{Env: env, Logger: logger}

	if env.AppEnv == "development" {
		logger.Info("The App is running in development env")
	}

	var db mongo.Database
	if env.UsesMongo() {
		client, err := NewMongoDatabase(env)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, func() error { return CloseMongoDBConnection(client) })
		db = client.Database(env.DBName)
	}

	switch env.KVBackend {
	case KVBackendMongo:
		collection := env.KVCollection
		if collection == "" {
			collection = domain.CollectionKeyValue
		}
		app.KV = repository_kv.NewMongoKVRepository(db, collection)
	case KVBackendRedis:
		client, err := NewRedisClient(env)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.closers = append(app.closers, client.Close)
		app.KV = repository_kv.NewRedisKVRepository(client)
	case KVBackendBadger:
		store, err := repository_kv.NewBadgerKVRepository(env.BadgerPath)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.closers = append(app.closers, store.Close)
		app.KV = store
	default:
		app.Close()
		return nil, fmt.Errorf("unknown KV_BACKEND %q", env.KVBackend)
	}

	switch env.BlobBackend {
	case BlobBackendFS:
		store, err := repository_blob.NewLocalBlobRepository(env.BlobRoot)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.Blob = store
	case BlobBackendGridFS:
		bucket := env.BlobBucket
		if bucket == "" {
			bucket = domain.BucketBlobObjects
		}
		store, err := repository_blob.NewGridFSBlobRepository(db, bucket)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.Blob = store
	default:
		app.Close()
		return nil, fmt.Errorf("unknown BLOB_BACKEND %q", env.BlobBackend)
	}

	logger.Info("stores ready",
		zap.String("kv_backend", env.KVBackend),
		zap.String("blob_backend", env.BlobBackend))
	return app, nil
}

// Close 按创建的逆序关闭连接
func (app *Application) Close() {
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i](); err != nil {
			app.Logger.Warn("failed to close store", zap.Error(err))
		}
	}
	app.closers = nil
}
