package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// commandRunner starts an external program; replaced in tests.
var commandRunner = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// RemoveIfExists deletes path, treating a missing file as success
func RemoveIfExists(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// OpenFolder shows dirPath in the system file manager
func OpenFolder(dirPath string) error {
	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("folder does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a folder: %s", absPath)
	}

	name, err := folderOpener(runtime.GOOS)
	if err != nil {
		return err
	}
	return commandRunner(name, absPath)
}

func folderOpener(goos string) (string, error) {
	switch goos {
	case OSDarwin:
		return OpenCommand, nil
	case OSWindows:
		return ExplorerCommand, nil
	case OSLinux:
		return XDGOpenCommand, nil
	default:
		return "", fmt.Errorf("unsupported operating system: %s", goos)
	}
}
