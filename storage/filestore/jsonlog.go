package filestore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/google/renameio/v2"
)

// jsonLog is an append-only collection stored as one JSON array file.
// Every append rewrites the whole file through a temp file and rename, so a
// failed write leaves the previous contents intact.
type jsonLog[T any] struct {
	mu   sync.Mutex
	path string
	id   func(T) int64
}

func newJSONLog[T any](path string, id func(T) int64) *jsonLog[T] {
	return &jsonLog[T]{path: path, id: id}
}

func (l *jsonLog[T]) all() ([]T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.readLocked()
}

// appendRecord builds the next record with an id one above the largest stored id.
func (l *jsonLog[T]) appendRecord(build func(id int64) T) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var zero T
	records, err := l.readLocked()
	if err != nil {
		return zero, err
	}

	var maxID int64
	for _, r := range records {
		if id := l.id(r); id > maxID {
			maxID = id
		}
	}
	rec := build(maxID + 1)
	records = append(records, rec)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return zero, fmt.Errorf("encode %s: %w", l.path, err)
	}
	if err := renameio.WriteFile(l.path, data, 0o644); err != nil {
		return zero, fmt.Errorf("write %s: %w", l.path, err)
	}
	return rec, nil
}

func (l *jsonLog[T]) readLocked() ([]T, error) {
	data, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", l.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", l.path, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}
