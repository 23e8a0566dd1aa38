package usecase_project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Super-Badmen-Viper/NineSongProject/domain"
)

var errUndecodable = errors.New("stored value is not valid json")

func getJSON(ctx context.Context, kv domain.KVStore, key string, v interface{}) error {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("%w: %s: %v", errUndecodable, key, err)
	}
	return nil
}

func putJSON(ctx context.Context, kv domain.KVStore, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return kv.Put(ctx, key, string(data))
}
