package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestExtractTextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("Invoice #1023\nDate: 2023-10-27\n"), 0600); err != nil {
		t.Fatal(err)
	}

	content, err := New().Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content != "Invoice #1023\nDate: 2023-10-27\n" {
		t.Errorf("unexpected content: %q", content)
	}
}

func TestExtractMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := New().Extract(context.Background(), filepath.Join(dir, "gone.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestExtractDirectory(t *testing.T) {
	dir := t.TempDir()
	_, err := New().Extract(context.Background(), dir)
	if err == nil {
		t.Fatal("expected error for directory")
	}
}

func TestExtractRejectsBinary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blob.bin")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x81, 0x83}, 0600); err != nil {
		t.Fatal(err)
	}

	_, err := New().Extract(context.Background(), path)
	if err == nil {
		t.Fatal("expected error for non-UTF-8 content")
	}
}

func TestExtractCancelledContext(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("hello"), 0600); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().Extract(ctx, path); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
