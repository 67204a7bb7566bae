// Package volume supplies raw profile sections looked up by GUID.
package volume

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tarantool/go-knobs/guid"
)

var (
	// ErrNotFound is returned when no section carries the requested GUID.
	ErrNotFound = errors.New("section not found")
	// ErrVerification is returned when a signed section fails its integrity checks.
	ErrVerification = errors.New("section verification failed")
)

// Source returns the raw bytes of the section named by a GUID.
type Source interface {
	Section(ctx context.Context, g guid.GUID) ([]byte, error)
}

// Lister enumerates the sections a Source can serve.
type Lister interface {
	Sections(ctx context.Context) ([]guid.GUID, error)
}

// SectionExt is the file extension of sections in a directory volume.
const SectionExt = ".bin"

// Dir is a volume backed by a directory of "<GUID>.bin" files.
type Dir struct {
	path string
}

var (
	_ Source = Dir{}     //nolint:exhaustruct
	_ Lister = Dir{}     //nolint:exhaustruct
	_ Source = &Memory{} //nolint:exhaustruct
	_ Lister = &Memory{} //nolint:exhaustruct
	_ Source = Chain{}   //nolint:exhaustruct
	_ Source = &Signed{} //nolint:exhaustruct
	_ Lister = &Signed{} //nolint:exhaustruct
)

// NewDir creates a directory volume rooted at path.
func NewDir(path string) Dir {
	return Dir{path: path}
}

// Section implements Source.
func (d Dir) Section(_ context.Context, g guid.GUID) ([]byte, error) {
	blob, err := os.ReadFile(filepath.Join(d.path, g.String()+SectionExt))

	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("%w: %s in %s", ErrNotFound, g, d.path)
	case err != nil:
		return nil, fmt.Errorf("failed to read section %s: %w", g, err)
	}

	return blob, nil
}

// Sections implements Lister. Files with names that are not GUIDs are skipped.
func (d Dir) Sections(_ context.Context) ([]guid.GUID, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", d.path, err)
	}

	var out []guid.GUID

	for _, entry := range entries {
		name, ok := strings.CutSuffix(entry.Name(), SectionExt)
		if !ok || entry.IsDir() {
			continue
		}

		g, err := guid.Parse(name)
		if err != nil {
			continue
		}

		out = append(out, g)
	}

	return out, nil
}

// Memory is an in-memory volume.
type Memory struct {
	sections map[guid.GUID][]byte
}

// NewMemory creates an empty in-memory volume.
func NewMemory() *Memory {
	return &Memory{sections: make(map[guid.GUID][]byte)}
}

// Put stores a copy of blob as section g.
func (m *Memory) Put(g guid.GUID, blob []byte) *Memory {
	m.sections[g] = bytes.Clone(blob)
	return m
}

// Section implements Source.
func (m *Memory) Section(_ context.Context, g guid.GUID) ([]byte, error) {
	blob, ok := m.sections[g]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, g)
	}

	return bytes.Clone(blob), nil
}

// Sections implements Lister.
func (m *Memory) Sections(_ context.Context) ([]guid.GUID, error) {
	out := make([]guid.GUID, 0, len(m.sections))
	for g := range m.sections {
		out = append(out, g)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })

	return out, nil
}

// Chain searches several volumes in order, like firmware volumes are.
type Chain []Source

// Section implements Source. Volumes reporting ErrNotFound are skipped;
// any other error stops the search.
func (c Chain) Section(ctx context.Context, g guid.GUID) ([]byte, error) {
	for _, src := range c {
		blob, err := src.Section(ctx, g)

		switch {
		case err == nil:
			return blob, nil
		case !errors.Is(err, ErrNotFound):
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, g)
}
