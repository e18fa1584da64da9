package statistic

import (
	"fauna/internal/providers"
	"fauna/internal/statistic/interfaces"
	"fauna/internal/structures"
	"fmt"
)

// NewStore builds the configured store backend wrapped with metrics.
func NewStore(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) (interfaces.StoreInterface, error) {
	var inner interfaces.StoreInterface
	switch conf.Store.Driver {
	case "memory":
		inner = NewMemoryStore()
	case "file":
		compressor, err := NewZstdCompressor()
		if err != nil {
			return nil, err
		}
		inner = NewFileStore(conf.Store.Path, compressor, logger)
	case "sqlite":
		store, err := OpenSQLiteStore(conf.Store.Path)
		if err != nil {
			return nil, err
		}
		inner = store
	default:
		return nil, fmt.Errorf("unknown store driver %q", conf.Store.Driver)
	}
	logger.Infof(providers.TypeStore, "Store initialized: driver=%s path=%s", conf.Store.Driver, conf.Store.Path)
	return NewInstrumentedStore(inner, metrics), nil
}
