package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// FileStore writes each slot to <dir>/<key>.json.zst. Writes go to a temp
// file first and are renamed into place, so a crash never leaves a torn slot.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates the directory if needed and returns a FileStore
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New(ErrMsgEmptyDir)
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf(ErrMsgCreateDirFmt, dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Path returns the file a key is stored in
func (s *FileStore) Path(key string) string {
	return filepath.Join(s.dir, key+FileExtension)
}

// Get reads and decompresses the slot
func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New(ErrMsgEmptyKey)
	}
	path := s.Path(key)

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadSlotFmt, key, err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgDecompressFmt, key, err)
	}
	defer dec.Close()

	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgDecompressFmt, key, err)
	}
	return data, nil
}

// Set compresses value and atomically replaces the slot file
func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	if key == "" {
		return errors.New(ErrMsgEmptyKey)
	}

	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf(ErrMsgCompressFmt, key, err)
	}
	if _, err := enc.Write(value); err != nil {
		_ = enc.Close()
		return fmt.Errorf(ErrMsgCompressFmt, key, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf(ErrMsgCompressFmt, key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.Path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf(ErrMsgWriteSlotFmt, key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf(ErrMsgWriteSlotFmt, key, err)
	}
	return nil
}

// Ping checks the directory is still there
func (s *FileStore) Ping(context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s.dir)
	}
	return nil
}

// Close is a no-op
func (s *FileStore) Close() error { return nil }
