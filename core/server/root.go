package server

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveRoot returns the absolute directory to serve. An empty root resolves
// to the directory holding the running executable.
func ResolveRoot(root string) (string, error) {
	if root == "" {
		exe, err := os.Executable()
		if err != nil {
			return "", fmt.Errorf("locate executable: %w", err)
		}
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		root = filepath.Dir(exe)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve root %q: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("root %q is not a directory", abs)
	}

	return abs, nil
}
