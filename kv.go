package travel

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// MemoryKV is a KeyValue held in memory. Its zero value is ready to use.
type MemoryKV struct {
	m map[string][]byte
}

func (kv *MemoryKV) Get(key string) ([]byte, bool, error) {
	v, ok := kv.m[key]
	return slices.Clone(v), ok, nil
}

func (kv *MemoryKV) Set(key string, value []byte) error {
	if kv.m == nil {
		kv.m = make(map[string][]byte)
	}
	kv.m[key] = slices.Clone(value)
	return nil
}

// DirKV is a KeyValue that stores each key in its own JSON file of a directory.
type DirKV struct {
	dir string
}

// NewDirKV returns a KeyValue rooted at dir. The directory is created on first write.
func NewDirKV(dir string) *DirKV { return &DirKV{dir: dir} }

// Dir returns the directory the files are stored in.
func (kv *DirKV) Dir() string { return kv.dir }

func (kv *DirKV) path(key string) string { return filepath.Join(kv.dir, key+".json") }

func (kv *DirKV) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(kv.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set replaces the file of key atomically: readers see the old or the new
// content, never a partial write.
func (kv *DirKV) Set(key string, value []byte) error {
	if err := os.MkdirAll(kv.dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", kv.dir, err)
	}
	f, err := os.CreateTemp(kv.dir, key+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(value); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, kv.path(key)); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
