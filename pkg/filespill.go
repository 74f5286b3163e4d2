// Package pkg provides utilities for cleanarch.
package pkg

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// ErrReadOnly is returned when appending to a spill opened for reading.
var ErrReadOnly = errors.New("filespill is read-only")

// FileSpill is a gob-encoded sequence of items of type T kept on disk.
type FileSpill[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	AppendBatch(items []T) error
	Range(f func(index uint64, item T) error) error
	Close() error
}

type fileSpill[T any] struct {
	path    string
	file    *os.File
	encoder *gob.Encoder
	mu      sync.Mutex
	length  uint64
}

// CreateFileSpill creates, or truncates, a FileSpill at path.
func CreateFileSpill[T any](path string) (FileSpill[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create spill directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create spill: %w", err)
	}

	slog.Debug("created filespill", "path", path)

	return &fileSpill[T]{
		path:    path,
		file:    file,
		encoder: gob.NewEncoder(file),
	}, nil
}

// OpenFileSpill opens the FileSpill previously written at path for reading.
// Items after the first undecodable one are dropped.
func OpenFileSpill[T any](path string) (FileSpill[T], error) {
	var length uint64

	err := decodeAll(path, func(_ T) error {
		length++
		return nil
	})
	if errors.Is(err, errTruncated) {
		slog.Warn("truncated filespill", "path", path, "length", length)
	} else if err != nil {
		return nil, err
	}

	slog.Debug("opened filespill", "path", path, "length", length)

	return &fileSpill[T]{path: path, length: length}, nil
}

var errTruncated = errors.New("filespill truncated")

// decodeAll feeds every decodable item of the file at path to fn.
func decodeAll[T any](path string, fn func(item T) error) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open spill: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close spill", "path", path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(file)

	for {
		// gob leaves zero-valued fields untouched, so decode into a fresh value
		var item T

		err := decoder.Decode(&item)
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("%w: %w", errTruncated, err)
		}

		if err := fn(item); err != nil {
			return err
		}
	}
}

func (f *fileSpill[T]) Len() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.length
}

func (f *fileSpill[T]) Path() string {
	return f.path
}

func (f *fileSpill[T]) Append(item T) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.encoder == nil {
		return ErrReadOnly
	}

	if err := f.encoder.Encode(item); err != nil {
		return fmt.Errorf("encode item %d: %w", f.length, err)
	}

	f.length++

	return nil
}

func (f *fileSpill[T]) AppendBatch(items []T) error {
	for _, item := range items {
		if err := f.Append(item); err != nil {
			return err
		}
	}

	slog.Debug("appended to filespill", "path", f.path, "items", len(items))

	return nil
}

// Range calls fn for the first Len items in order and stops at the first
// error fn returns.
func (f *fileSpill[T]) Range(fn func(index uint64, item T) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var index uint64

	err := decodeAll(f.path, func(item T) error {
		if index >= f.length {
			return errRangeDone
		}

		if err := fn(index, item); err != nil {
			return err
		}

		index++

		return nil
	})
	if errors.Is(err, errRangeDone) || (errors.Is(err, errTruncated) && index >= f.length) {
		return nil
	}

	return err
}

var errRangeDone = errors.New("range done")

func (f *fileSpill[T]) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return nil
	}

	err := f.file.Close()
	f.file = nil
	f.encoder = nil

	if err != nil {
		return fmt.Errorf("close spill %s: %w", f.path, err)
	}

	slog.Debug("closed filespill", "path", f.path, "length", f.length)

	return nil
}
