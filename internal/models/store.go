package models

// PersistentStore is a durable string key to value store with synchronous access.
// Get returns ErrNotFound when nothing is stored under the key.
type PersistentStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

const (
	ViewHistoryKey = "animalViews"
	QuizStatsKey   = "quizStats"
)
