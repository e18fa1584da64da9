package statistic

import (
	"errors"
	"fauna/internal/models"
	"fauna/internal/providers"
	"fauna/internal/statistic/interfaces"
	"time"
)

// InstrumentedStore wraps a StoreInterface with duration and failure metrics.
// A missing key is not counted as a failure.
type InstrumentedStore struct {
	inner   interfaces.StoreInterface
	metrics providers.MetricsProviderInterface
}

func NewInstrumentedStore(inner interfaces.StoreInterface, metrics providers.MetricsProviderInterface) *InstrumentedStore {
	return &InstrumentedStore{inner: inner, metrics: metrics}
}

func (s *InstrumentedStore) observe(op string, start time.Time, err error) {
	s.metrics.ObservePersistenceDuration(time.Since(start))
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		s.metrics.IncStoreFailures(op)
	}
}

func (s *InstrumentedStore) Get(key string) ([]byte, error) {
	start := time.Now()
	val, err := s.inner.Get(key)
	s.observe("get", start, err)
	return val, err
}

func (s *InstrumentedStore) Set(key string, value []byte) error {
	start := time.Now()
	err := s.inner.Set(key, value)
	s.observe("set", start, err)
	return err
}

func (s *InstrumentedStore) Delete(key string) error {
	start := time.Now()
	err := s.inner.Delete(key)
	s.observe("delete", start, err)
	return err
}

func (s *InstrumentedStore) Restore() error {
	start := time.Now()
	err := s.inner.Restore()
	s.observe("restore", start, err)
	return err
}

func (s *InstrumentedStore) Flush() error {
	start := time.Now()
	err := s.inner.Flush()
	s.observe("flush", start, err)
	return err
}

func (s *InstrumentedStore) Close() error {
	return s.inner.Close()
}
