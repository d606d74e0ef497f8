package store // import "github.com/Xunop/amana-bookstore/internal/store"

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Xunop/amana-bookstore/internal/log"
	"github.com/Xunop/amana-bookstore/internal/storage"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	ErrStorageRead  = storage.ErrStorageRead
	ErrStorageWrite = storage.ErrStorageWrite
)

// Store loads collections fresh from the driver on every call. Nothing is
// cached between calls; the only shared state is one writer lock per
// collection.
type Store struct {
	driver storage.Driver

	locksMu sync.Mutex
	locks   map[storage.Collection]*sync.Mutex

	// now is replaced in tests.
	now func() time.Time
}

func NewStore(driver storage.Driver) *Store {
	return &Store{
		driver: driver,
		locks:  make(map[storage.Collection]*sync.Mutex),
		now:    time.Now,
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.driver.Ping(ctx)
}

func (s *Store) Close() error {
	return s.driver.Close()
}

// Init creates the missing collections and returns the ones it created.
func (s *Store) Init(ctx context.Context) ([]storage.Collection, error) {
	var created []storage.Collection
	for _, c := range storage.Collections {
		ok, err := s.driver.Init(ctx, c)
		if err != nil {
			return created, err
		}
		if ok {
			created = append(created, c)
		}
	}
	return created, nil
}

// Load reads and normalizes the whole collection.
func (s *Store) Load(ctx context.Context, c storage.Collection) ([]json.RawMessage, error) {
	document, err := s.driver.Read(ctx, c)
	if err != nil {
		return nil, err
	}
	return storage.Normalize(c, document)
}

// Save replaces the whole collection, always in the wrapped shape.
func (s *Store) Save(ctx context.Context, c storage.Collection, entries []json.RawMessage) error {
	document, err := storage.Wrap(c, entries)
	if err != nil {
		return err
	}
	return s.driver.Write(ctx, c, document)
}

// Append reloads the collection under its writer lock, appends the entry
// returned by build and saves the collection. Concurrent appends to the
// same collection are serialized, so build always sees the latest entries.
func (s *Store) Append(ctx context.Context, c storage.Collection, build func(entries []json.RawMessage) (json.RawMessage, error)) error {
	mu := s.lock(c)
	mu.Lock()
	defer mu.Unlock()

	entries, err := s.Load(ctx, c)
	if err != nil {
		return err
	}
	entry, err := build(entries)
	if err != nil {
		return err
	}
	return s.Save(ctx, c, append(entries, entry))
}

func (s *Store) lock(c storage.Collection) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	mu, ok := s.locks[c]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[c] = mu
	}
	return mu
}

// decode decodes every entry it can. Entries that do not fit the model are
// skipped here but stay untouched in the stored document.
func decode[T any](c storage.Collection, entries []json.RawMessage) []T {
	items := make([]T, 0, len(entries))
	for i, entry := range entries {
		var item T
		if err := json.Unmarshal(entry, &item); err != nil {
			log.Warn("Skipping malformed entry",
				zap.String("collection", string(c)),
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		items = append(items, item)
	}
	return items
}

func encode(c storage.Collection, v interface{}) (json.RawMessage, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to encode %s entry", c)
	}
	return b, nil
}
