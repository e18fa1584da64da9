package testutil

import (
	"fauna/internal/models"
	"fauna/internal/providers"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, l := range m.Logs {
		if l.Level == level {
			n++
		}
	}
	return n
}

// MemoryStore implements models.PersistentStore with injectable failures.
type MemoryStore struct {
	mu        sync.Mutex
	Data      map[string][]byte
	GetErr    error
	SetErr    error
	DeleteErr error
	SetCalls  int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{Data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	val, ok := m.Data[key]
	if !ok {
		return nil, models.ErrNotFound
	}
	return val, nil
}

func (m *MemoryStore) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls++
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Data[key] = value
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.Data, key)
	return nil
}

func (m *MemoryStore) Restore() error { return nil }
func (m *MemoryStore) Flush() error   { return nil }
func (m *MemoryStore) Close() error   { return nil }

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
	TTLs map[string]time.Duration
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) SetWithTTL(key string, value []byte, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
	if m.TTLs == nil {
		m.TTLs = make(map[string]time.Duration)
	}
	m.TTLs[key] = ttl
}

func (m *MockCache) Del(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Data, key)
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
	Closed       bool
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() { m.Closed = true }

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu                sync.Mutex
	Requests          int
	CacheHits         int
	CacheMisses       int
	Persistence       int
	StoreFailures     map[string]int
	ViewsTracked      int
	QuizzesCompleted  int
	SessionsGenerated map[string]int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}
func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}
func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Persistence++
}
func (m *MockMetrics) IncStoreFailures(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.StoreFailures == nil {
		m.StoreFailures = make(map[string]int)
	}
	m.StoreFailures[op]++
}
func (m *MockMetrics) IncViewsTracked() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ViewsTracked++
}
func (m *MockMetrics) IncQuizzesCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.QuizzesCompleted++
}
func (m *MockMetrics) IncSessionsGenerated(mode string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SessionsGenerated == nil {
		m.SessionsGenerated = make(map[string]int)
	}
	m.SessionsGenerated[mode]++
}

// FixedClock returns Current on every call and can be moved forward.
type FixedClock struct {
	mu      sync.Mutex
	Current time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{Current: t}
}

func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Current
}

func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Current = c.Current.Add(d)
}

// SequenceRandom replays Values in order, each reduced modulo n.
// Once exhausted it starts again from the first value.
type SequenceRandom struct {
	mu     sync.Mutex
	Values []int
	pos    int
}

func (s *SequenceRandom) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Values) == 0 || n <= 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}
