package localstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/jhoicas/facturas-local/internal/domain"
	"github.com/jhoicas/facturas-local/internal/domain/repository"
)

var _ repository.SlotStore = (*FileStore)(nil)

var validKey = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// FileStore guarda cada slot como un archivo <key>.json dentro de un directorio.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// OpenFileStore crea el directorio si no existe.
func OpenFileStore(dir string) (*FileStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("directorio de almacenamiento requerido")
	}
	clean := filepath.Clean(dir)
	if err := os.MkdirAll(clean, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio %s: %w", clean, err)
	}
	return &FileStore{dir: clean}, nil
}

func (s *FileStore) path(key string) (string, error) {
	if !validKey.MatchString(key) || key == "." || key == ".." {
		return "", fmt.Errorf("%w: clave de slot %q", domain.ErrInvalidInput, key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

// Get lee el archivo del slot; found=false si no existe.
func (s *FileStore) Get(key string) (string, bool, error) {
	p, err := s.path(key)
	if err != nil {
		return "", false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: leer %s: %v", domain.ErrSlotUnavailable, p, err)
	}
	return string(b), true, nil
}

// Set escribe el slot completo: archivo temporal + rename, para no dejar contenido a medias.
func (s *FileStore) Set(key, raw string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: crear temporal: %v", domain.ErrSlotUnavailable, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: escribir temporal: %v", domain.ErrSlotUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: cerrar temporal: %v", domain.ErrSlotUnavailable, err)
	}
	if err := os.Rename(tmpName, p); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: reemplazar %s: %v", domain.ErrSlotUnavailable, p, err)
	}
	return nil
}
