package wallet

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Save writes the wallet document to path, fully replacing its content.
//
// The document is written to a temporary file in the same folder and then
// renamed over path, so a failed save never leaves a truncated file behind.
// An existing file keeps its permissions, a new one is created 0644.
// Failures wrap ErrIO. The wallet itself is never modified.
func Save(w *Wallet, path string) error {
	var buf bytes.Buffer
	if err := Encode(&buf, w); err != nil {
		return err
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: cannot create temporary file for %q: %w", ErrIO, path, err)
	}
	// once renamed, the remove is a no-op.
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: cannot write %q: %w", ErrIO, path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: cannot sync %q: %w", ErrIO, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: cannot close %q: %w", ErrIO, path, err)
	}
	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(tmp.Name(), mode); err != nil {
		return fmt.Errorf("%w: cannot set permissions on %q: %w", ErrIO, path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: cannot replace %q: %w", ErrIO, path, err)
	}
	return nil
}

// Load reads the wallet document saved at path.
//
// It returns an error matching ErrNotFound (and fs.ErrNotExist) when nothing
// has been saved at path yet, ErrCorruptData when the content is not a valid
// wallet and ErrIO for any other read failure.
func Load(path string) (*Wallet, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read %q: %w", ErrIO, path, err)
	}
	w, err := Decode(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("wallet file %q: %w", path, err)
	}
	return w, nil
}
