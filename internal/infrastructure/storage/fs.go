package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nickmafra/sym-balls/internal/domain"
)

// FS is a level catalog laid out as {dir}/{difficulty}/{id}.{json,yaml,yml},
// with flat {dir}/{id}.* files accepted as well.
type FS struct {
	dir  string // empty for read-only catalogs
	fsys fs.FS
}

// NewFS returns a writable catalog rooted at dir.
func NewFS(dir string) *FS { return &FS{dir: dir, fsys: os.DirFS(dir)} }

// NewReadOnlyFS serves levels from any file system, e.g. an embed.FS.
func NewReadOnlyFS(fsys fs.FS) *FS { return &FS{fsys: fsys} }

var buckets = []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard, domain.Expert}

func (s *FS) Save(ctx context.Context, l *domain.Level) error {
	if s.dir == "" {
		return ErrReadOnly
	}
	if l == nil || strings.TrimSpace(l.ID) == "" {
		return ErrInvalidLevel
	}
	id := strings.TrimSpace(l.ID)
	target := filepath.Join(s.dir, l.Difficulty.String(), id+".json")
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	if err := writeJSON(target, l); err != nil {
		return err
	}
	return s.removeStale(id, target)
}

func writeJSON(target string, l *domain.Level) error {
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// removeStale deletes every other file holding id so a difficulty change
// does not leave the previous version readable.
func (s *FS) removeStale(id, keep string) error {
	dirs := []string{s.dir}
	for _, b := range buckets {
		dirs = append(dirs, filepath.Join(s.dir, b.String()))
	}
	for _, dir := range dirs {
		for _, ext := range levelExts {
			name := filepath.Join(dir, id+ext)
			if name == keep {
				continue
			}
			if err := os.Remove(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
		}
	}
	return nil
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Level, error) {
	id = strings.TrimSpace(id)
	if id == "" || strings.ContainsAny(id, `/\`) {
		return nil, ErrNotFound
	}
	for _, b := range buckets {
		for _, ext := range levelExts {
			l, err := s.read(path.Join(b.String(), id+ext), b, true)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return l, err
		}
	}
	for _, ext := range levelExts {
		l, err := s.read(id+ext, domain.Easy, false)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return l, err
	}
	return nil, ErrNotFound
}

func (s *FS) List(ctx context.Context) ([]domain.LevelMeta, error) {
	var out []domain.LevelMeta
	for _, b := range buckets {
		metas, err := s.scan(b.String(), b, true)
		if err != nil {
			return nil, err
		}
		out = append(out, metas...)
	}
	// legacy flat layout
	metas, err := s.scan(".", domain.Easy, false)
	if err != nil {
		return nil, err
	}
	out = append(out, metas...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *FS) scan(dir string, bucket domain.Difficulty, inBucket bool) ([]domain.LevelMeta, error) {
	ents, err := fs.ReadDir(s.fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var out []domain.LevelMeta
	for _, e := range ents {
		if e.IsDir() || !isLevelFile(e.Name()) {
			continue
		}
		l, err := s.read(path.Join(dir, e.Name()), bucket, inBucket)
		if err != nil {
			continue
		}
		out = append(out, l.Meta())
	}
	return out, nil
}

func (s *FS) read(name string, bucket domain.Difficulty, inBucket bool) (*domain.Level, error) {
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, err
	}
	l, err := decodeLevel(name, data)
	if err != nil {
		return nil, err
	}
	// difficulty missing: infer from the folder we loaded from
	if inBucket && l.Difficulty == domain.Easy {
		l.Difficulty = bucket
	}
	return l, nil
}
