// Package store keeps save slots as files in a directory.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"sparse-life/pkg/savefile"
)

// Ext is appended to every slot name on disk.
const Ext = ".life"

// ErrInvalidSlot reports a slot name that cannot be mapped to a file in the
// store directory.
var ErrInvalidSlot = errors.New("invalid save slot")

// Dir is a Store backed by one file per slot.
type Dir struct {
	root string
}

// NewDir returns a store rooted at dir. The directory is created on the first
// write.
func NewDir(dir string) *Dir {
	if dir == "" {
		dir = "."
	}
	return &Dir{root: dir}
}

// Root returns the directory holding the slot files.
func (d *Dir) Root() string { return d.root }

// Path maps slot to its file.
func (d *Dir) Path(slot string) (string, error) {
	if err := validSlot(slot); err != nil {
		return "", err
	}
	return filepath.Join(d.root, slot+Ext), nil
}

// Read returns the slot contents. A slot that was never written reads as the
// empty set.
func (d *Dir) Read(slot string) ([]byte, error) {
	path, err := d.Path(slot)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []byte(savefile.Empty), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read slot %q: %w", slot, err)
	}
	return data, nil
}

// Write replaces the slot contents. The data goes to a temporary file first
// and is renamed into place, so readers never see a partial save.
func (d *Dir) Write(slot string, data []byte) error {
	path, err := d.Path(slot)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(d.root, 0o755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}
	tmp, err := os.CreateTemp(d.root, "."+slot+"-*.tmp")
	if err != nil {
		return fmt.Errorf("write slot %q: %w", slot, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write slot %q: %w", slot, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write slot %q: %w", slot, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write slot %q: %w", slot, err)
	}
	return nil
}

// Slots lists the slot names present in the directory, sorted.
func (d *Dir) Slots() ([]string, error) {
	entries, err := os.ReadDir(d.root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, Ext) {
			continue
		}
		out = append(out, strings.TrimSuffix(name, Ext))
	}
	return out, nil
}

func validSlot(slot string) error {
	switch {
	case slot == "", slot == ".", slot == "..":
		return fmt.Errorf("%w %q", ErrInvalidSlot, slot)
	case strings.ContainsAny(slot, `/\`), strings.ContainsRune(slot, filepath.Separator):
		return fmt.Errorf("%w %q: path separators are not allowed", ErrInvalidSlot, slot)
	case strings.HasPrefix(slot, "."):
		return fmt.Errorf("%w %q: hidden names are reserved", ErrInvalidSlot, slot)
	}
	return nil
}
