package interfaces

// StoreInterface is a PersistentStore backend with a lifecycle.
// Restore loads durable state, Flush makes pending writes durable.
type StoreInterface interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Restore() error
	Flush() error
	Close() error
}
