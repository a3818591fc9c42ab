package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir", "nested")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestRemoveIfExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intermediate.m4a")
	if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if err := RemoveIfExists(path); err != nil {
		t.Fatalf("RemoveIfExists() = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("File should have been removed")
	}

	// Missing file is not an error
	if err := RemoveIfExists(path); err != nil {
		t.Errorf("RemoveIfExists() on missing file = %v", err)
	}
}

func TestOpenFolder(t *testing.T) {
	var gotName string
	var gotArgs []string
	orig := commandRunner
	commandRunner = func(name string, args ...string) error {
		gotName = name
		gotArgs = args
		return nil
	}
	defer func() { commandRunner = orig }()

	dir := t.TempDir()
	if err := OpenFolder(dir); err != nil {
		t.Fatalf("OpenFolder() = %v", err)
	}

	if gotName == "" {
		t.Fatal("Expected a file manager command to be started")
	}
	if len(gotArgs) != 1 || gotArgs[0] != dir {
		t.Errorf("Expected args [%s], got %v", dir, gotArgs)
	}
}

func TestOpenFolder_Errors(t *testing.T) {
	orig := commandRunner
	commandRunner = func(string, ...string) error {
		t.Fatal("command must not run for invalid folders")
		return nil
	}
	defer func() { commandRunner = orig }()

	if err := OpenFolder(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Expected error for missing folder")
	}

	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := OpenFolder(file); err == nil {
		t.Error("Expected error for a regular file")
	}
}

func TestFolderOpener(t *testing.T) {
	tests := map[string]string{
		OSDarwin:  OpenCommand,
		OSWindows: ExplorerCommand,
		OSLinux:   XDGOpenCommand,
	}
	for goos, want := range tests {
		got, err := folderOpener(goos)
		if err != nil || got != want {
			t.Errorf("folderOpener(%s) = %q, %v; want %q", goos, got, err, want)
		}
	}
	if _, err := folderOpener("plan9"); err == nil {
		t.Error("Expected error for unsupported OS")
	}
}
