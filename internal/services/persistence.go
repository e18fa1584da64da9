package services

import (
	"errors"
	"fauna/internal/models"
	"fmt"

	json "github.com/goccy/go-json"
)

// readJSON decodes the value under key. An absent key yields the zero value.
func readJSON[T any](store models.PersistentStore, key string) models.Result[T] {
	var value T
	raw, err := store.Get(key)
	if errors.Is(err, models.ErrNotFound) {
		return models.Ok(value)
	}
	if err != nil {
		return models.Fail[T](fmt.Errorf("%w: %s: %w", models.ErrStoreRead, key, err))
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return models.Fail[T](fmt.Errorf("%w: %s: %w", models.ErrStoreRead, key, err))
	}
	return models.Ok(value)
}

func writeJSON(store models.PersistentStore, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", models.ErrStoreWrite, key, err)
	}
	if err := store.Set(key, raw); err != nil {
		return fmt.Errorf("%w: %s: %w", models.ErrStoreWrite, key, err)
	}
	return nil
}
