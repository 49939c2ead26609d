package apply

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile replaces path with content atomically: the bytes land in a
// temp file in the same directory and a rename swaps them in. With
// backup set, the previous content is kept next to the file as .bak.
func WriteFile(path string, content []byte, backup bool) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}

	if backup {
		old, err := os.ReadFile(path) // #nosec G304 -- path comes from the caller's file walk
		if err != nil {
			return fmt.Errorf("backup %s: %w", path, err)
		}
		if err := os.WriteFile(path+".bak", old, mode); err != nil {
			return fmt.Errorf("backup %s: %w", path, err)
		}
	}

	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, ".modnorm-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		_ = os.Remove(tmp)
	}()

	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp, mode); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
