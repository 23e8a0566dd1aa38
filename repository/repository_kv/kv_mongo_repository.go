package repository_kv

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/Super-Badmen-Viper/NineSongProject/domain"
	"github.com/Super-Badmen-Viper/NineSongProject/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type kvEntry struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

type mongoKVRepository struct {
	db         mongo.Database
	collection string
}

// NewMongoKVRepository 每个键对应集合中的一个文档，_id 即键名
func NewMongoKVRepository(db mongo.Database, collection string) domain.KVStore {
	return &mongoKVRepository{
		db:         db,
		collection: collection,
	}
}

func (r *mongoKVRepository) Get(ctx context.Context, key string) (string, error) {
	var entry kvEntry
	err := r.db.Collection(r.collection).FindOne(ctx, bson.M{"_id": key}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", domain.ErrKeyNotFound
		}
		return "", fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return entry.Value, nil
}

func (r *mongoKVRepository) Put(ctx context.Context, key, value string) error {
	filter := bson.M{"_id": key}
	update := bson.M{"$set": bson.M{"value": value}}

	opts := options.Update().SetUpsert(true)
	if _, err := r.db.Collection(r.collection).UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to put key %s: %w", key, err)
	}
	return nil
}

func (r *mongoKVRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.Collection(r.collection).DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

func (r *mongoKVRepository) List(ctx context.Context, prefix string) ([]string, error) {
	filter := bson.M{}
	if prefix != "" {
		filter["_id"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(prefix)}
	}
	opts := options.Find().SetProjection(bson.M{"_id": 1})

	cursor, err := r.db.Collection(r.collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list prefix %s: %w", prefix, err)
	}
	defer cursor.Close(ctx)

	var entries []kvEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode keys: %w", err)
	}

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	return keys, nil
}
