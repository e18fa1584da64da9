package statistic

import (
	"fauna/internal/models"
	"fauna/internal/providers"
	"fauna/internal/statistic/interfaces"
	"fmt"
	"os"
	"sync"

	json "github.com/goccy/go-json"
	"go.uber.org/atomic"
)

const snapshotVersion = 1

// storeSnapshot is the on-disk envelope of a FileStore.
type storeSnapshot struct {
	Version int               `json:"version"`
	Entries map[string]string `json:"entries"`
}

// FileStore serves reads and writes from memory and persists a compressed
// snapshot of all keys to a single file on Flush.
type FileStore struct {
	mu         sync.RWMutex
	data       map[string][]byte
	path       string
	dirty      atomic.Bool
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileStore(path string, compressor interfaces.CompressorInterface, logger providers.Logger) *FileStore {
	return &FileStore{
		data:       make(map[string][]byte),
		path:       path,
		compressor: compressor,
		logger:     logger,
	}
}

func (f *FileStore) Get(key string) ([]byte, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	val, ok := f.data[key]
	if !ok {
		return nil, models.ErrNotFound
	}
	return cloneBytes(val), nil
}

func (f *FileStore) Set(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = cloneBytes(value)
	f.dirty.Store(true)
	return nil
}

func (f *FileStore) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.data[key]; ok {
		delete(f.data, key)
		f.dirty.Store(true)
	}
	return nil
}

func (f *FileStore) Dirty() bool {
	return f.dirty.Load()
}

// Flush writes the snapshot when something changed since the last flush.
func (f *FileStore) Flush() error {
	if !f.dirty.CompareAndSwap(true, false) {
		return nil
	}
	if err := f.SaveToFile(f.path); err != nil {
		f.dirty.Store(true)
		return err
	}
	return nil
}

func (f *FileStore) Restore() error {
	return f.LoadFromFile(f.path)
}

func (f *FileStore) Close() error {
	err := f.Flush()
	f.compressor.Close()
	return err
}

func (f *FileStore) snapshot() storeSnapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()
	snap := storeSnapshot{
		Version: snapshotVersion,
		Entries: make(map[string]string, len(f.data)),
	}
	for k, v := range f.data {
		snap.Entries[k] = string(v)
	}
	return snap
}

func (f *FileStore) SaveToFile(fileName string) error {
	jsonData, err := json.Marshal(f.snapshot())
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileStore) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressedData, err := f.compressor.Decompress(data)
	if err != nil {
		return err
	}

	var snap storeSnapshot
	if err := json.Unmarshal(decompressedData, &snap); err != nil {
		return err
	}
	if snap.Entries == nil {
		f.logger.Warnf(providers.TypeStore, "Store file %s has no entries envelope", fileName)
		return fmt.Errorf("unrecognized snapshot format in %s", fileName)
	}
	if snap.Version > snapshotVersion {
		return fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}
	f.replace(snap.Entries)
	return nil
}

func (f *FileStore) replace(entries map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data = make(map[string][]byte, len(entries))
	for k, v := range entries {
		f.data[k] = []byte(v)
	}
}
