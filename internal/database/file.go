package database

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persiste chaque clé dans un fichier <clé>.json sous un répertoire
// unique — l'équivalent d'un profil navigateur. Un seul mutex pour tout le
// store : la sémantique est "dernier écrit gagne", pas de verrou par clé.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("création répertoire %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileStore) Read(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

func (f *FileStore) Write(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return os.WriteFile(f.path(key), []byte(value), 0o644)
}

func (f *FileStore) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	err := os.Remove(f.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
