package memory

import (
	"context"
	"errors"
	"io"
	"sync"
)

// Files is an in-memory port.FileStorage. References have the form
// memory://<key>.
type Files struct {
	mu      sync.RWMutex
	objects map[string][]byte
	types   map[string]string
}

func NewFiles() *Files {
	return &Files{
		objects: make(map[string][]byte),
		types:   make(map[string]string),
	}
}

func (f *Files) Put(_ context.Context, key, contentType string, body io.Reader) (string, error) {
	if key == "" {
		return "", errors.New("empty key")
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = data
	f.types[key] = contentType
	return "memory://" + key, nil
}

// Get returns a stored object and whether it exists.
func (f *Files) Get(key string) ([]byte, string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	data, ok := f.objects[key]
	return data, f.types[key], ok
}

// Len returns how many objects are stored.
func (f *Files) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.objects)
}
