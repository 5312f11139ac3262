package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRotatingWriter(t *testing.T) {
	t.Run("appends without rotation when disabled", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)
		rw, err := NewRotatingWriter(path, RotationConfig{MaxSizeMB: 0, MaxBackups: 2})
		if err != nil {
			t.Fatalf("NewRotatingWriter() error = %v", err)
		}
		defer rw.Close()

		for i := 0; i < 100; i++ {
			if _, err := rw.Write([]byte("line\n")); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
		}
		if _, err := os.Stat(path + ".1"); !os.IsNotExist(err) {
			t.Error("no backup should exist when rotation is disabled")
		}
	})

	t.Run("rotates and keeps at most MaxBackups", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", FileName)
		rw, err := NewRotatingWriter(path, RotationConfig{MaxSizeMB: 1, MaxBackups: 2})
		if err != nil {
			t.Fatalf("NewRotatingWriter() error = %v", err)
		}
		defer rw.Close()

		chunk := []byte(strings.Repeat("x", 600*1024) + "\n")
		for i := 0; i < 5; i++ {
			if _, err := rw.Write(chunk); err != nil {
				t.Fatalf("Write() #%d error = %v", i, err)
			}
		}

		for _, p := range []string{path, path + ".1", path + ".2"} {
			info, err := os.Stat(p)
			if err != nil {
				t.Fatalf("expected %s to exist: %v", p, err)
			}
			if info.Size() > 1024*1024 {
				t.Errorf("%s is %d bytes, want at most 1 MB", p, info.Size())
			}
		}
		if _, err := os.Stat(path + ".3"); !os.IsNotExist(err) {
			t.Error("backup .3 should have been dropped")
		}
		if got := BackupPaths(path, 2); len(got) != 2 || got[0] != path+".2" {
			t.Errorf("BackupPaths() = %v, want oldest first", got)
		}
	})

	t.Run("zero backups truncates", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)
		rw, err := NewRotatingWriter(path, RotationConfig{MaxSizeMB: 1, MaxBackups: 0})
		if err != nil {
			t.Fatalf("NewRotatingWriter() error = %v", err)
		}
		defer rw.Close()

		chunk := []byte(strings.Repeat("y", 700*1024))
		_, _ = rw.Write(chunk)
		_, _ = rw.Write(chunk)

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Stat() error = %v", err)
		}
		if info.Size() != int64(len(chunk)) {
			t.Errorf("size = %d, want %d", info.Size(), len(chunk))
		}
		if _, err := os.Stat(path + ".1"); !os.IsNotExist(err) {
			t.Error("no backup should be kept with MaxBackups 0")
		}
	})

	t.Run("counts existing file size", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)
		if err := os.WriteFile(path, []byte(strings.Repeat("z", 900*1024)), 0644); err != nil {
			t.Fatal(err)
		}
		rw, err := NewRotatingWriter(path, RotationConfig{MaxSizeMB: 1, MaxBackups: 1})
		if err != nil {
			t.Fatalf("NewRotatingWriter() error = %v", err)
		}
		defer rw.Close()

		if _, err := rw.Write([]byte(strings.Repeat("a", 200*1024))); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		if _, err := os.Stat(path + ".1"); err != nil {
			t.Error("pre-existing content should count toward the limit")
		}
	})

	t.Run("write after close fails", func(t *testing.T) {
		rw, err := NewRotatingWriter(filepath.Join(t.TempDir(), FileName), DefaultRotationConfig())
		if err != nil {
			t.Fatalf("NewRotatingWriter() error = %v", err)
		}
		if err := rw.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
		if err := rw.Close(); err != nil {
			t.Fatalf("second Close() error = %v", err)
		}
		if _, err := rw.Write([]byte("late\n")); !errors.Is(err, ErrWriterClosed) {
			t.Errorf("Write() after Close error = %v, want ErrWriterClosed", err)
		}
	})
}

func TestRotatingLogger(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewRotatingLogger(dir, LevelInfo, RotationConfig{MaxSizeMB: 1, MaxBackups: 1})
	if err != nil {
		t.Fatalf("NewRotatingLogger() error = %v", err)
	}
	defer logger.Close()

	if want := filepath.Join(dir, FileName); logger.Path() != want {
		t.Errorf("Path() = %q, want %q", logger.Path(), want)
	}

	big := strings.Repeat("p", 4096)
	for i := 0; i < 400; i++ {
		logger.Info("padding", "data", big)
	}
	if _, err := os.Stat(filepath.Join(dir, FileName+".1")); err != nil {
		t.Errorf("expected the logger to rotate: %v", err)
	}
}
