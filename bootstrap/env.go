package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

const (
	KVBackendMongo  = "mongo"
	KVBackendRedis  = "redis"
	KVBackendBadger = "badger"

	BlobBackendFS     = "fs"
	BlobBackendGridFS = "gridfs"
)

type Env struct {
	AppEnv         string `mapstructure:"APP_ENV"`
	ServerAddress  string `mapstructure:"SERVER_ADDRESS"`
	ContextTimeout int    `mapstructure:"CONTEXT_TIMEOUT"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`

	KVBackend    string `mapstructure:"KV_BACKEND"`
	MongoURI     string `mapstructure:"MONGO_URI"`
	DBName       string `mapstructure:"DB_NAME"`
	KVCollection string `mapstructure:"KV_COLLECTION"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	BadgerPath string `mapstructure:"BADGER_PATH"`

	BlobBackend string `mapstructure:"BLOB_BACKEND"`
	BlobRoot    string `mapstructure:"BLOB_ROOT"`
	BlobBucket  string `mapstructure:"BLOB_BUCKET"`

	CascadeDelete bool `mapstructure:"CASCADE_DELETE"`
}

func setEnvDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("CONTEXT_TIMEOUT", 5)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("KV_BACKEND", KVBackendMongo)
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("DB_NAME", "ninesong_project")
	v.SetDefault("KV_COLLECTION", "")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("BADGER_PATH", "")
	v.SetDefault("BLOB_BACKEND", BlobBackendFS)
	v.SetDefault("BLOB_ROOT", "./data/blobs")
	v.SetDefault("BLOB_BUCKET", "")
	v.SetDefault("CASCADE_DELETE", true)
}

// NewEnv 读取 configFile（通常为 .env），文件不存在时只使用默认值和环境变量
func NewEnv(configFile string) (*Env, error) {
	v := viper.New()
	setEnvDefaults(v)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("can't read config file %s: %w", configFile, err)
			}
		}
	}

	env := Env{}
	if err := v.Unmarshal(&env); err != nil {
		return nil, fmt.Errorf("environment can't be loaded: %w", err)
	}
	if err := env.validate(); err != nil {
		return nil, err
	}
	return &env, nil
}

func (e *Env) validate() error {
	switch e.KVBackend {
	case KVBackendMongo, KVBackendRedis, KVBackendBadger:
	default:
		return fmt.Errorf("unknown KV_BACKEND %q", e.KVBackend)
	}
	switch e.BlobBackend {
	case BlobBackendFS, BlobBackendGridFS:
	default:
		return fmt.Errorf("unknown BLOB_BACKEND %q", e.BlobBackend)
	}
	if e.ContextTimeout <= 0 {
		return fmt.Errorf("CONTEXT_TIMEOUT must be positive, got %d", e.ContextTimeout)
	}
	return nil
}

func (e *Env) UsesMongo() bool {
	return e.KVBackend == KVBackendMongo || e.BlobBackend == BlobBackendGridFS
}
