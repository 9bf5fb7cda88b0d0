package upload

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fileHeader(t *testing.T, contentType string, body []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="file"; filename="upload.bin"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(body); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["file"]
	if len(files) != 1 {
		t.Fatalf("got %d file headers", len(files))
	}
	return files[0]
}

func TestSaveAndRemove(t *testing.T) {
	store, err := NewStore(t.TempDir(), 1024)
	if err != nil {
		t.Fatal(err)
	}

	url, err := store.Save(fileHeader(t, "image/png", []byte("png-bytes")))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/") {
		t.Fatalf("url = %q", url)
	}
	if !strings.HasSuffix(url, ".png") {
		t.Fatalf("extension not derived from content type: %q", url)
	}

	onDisk := filepath.Join(store.Dir, filepath.Base(url))
	data, err := os.ReadFile(onDisk)
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("stored content = %q", data)
	}

	if err := store.Remove(url); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(onDisk); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("file still on disk after remove")
	}

	// Already gone is fine.
	if err := store.Remove(url); err != nil {
		t.Fatalf("second remove: %v", err)
	}
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	store, err := NewStore(t.TempDir(), 8)
	if err != nil {
		t.Fatal(err)
	}

	_, err = store.Save(fileHeader(t, "image/png", []byte("more-than-eight-bytes")))
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("got %v, want ErrFileTooLarge", err)
	}
}

func TestSaveRejectsDisallowedType(t *testing.T) {
	store, err := NewStore(t.TempDir(), 1024)
	if err != nil {
		t.Fatal(err)
	}

	_, err = store.Save(fileHeader(t, "application/x-msdownload", []byte("MZ")))
	if !errors.Is(err, ErrDisallowedType) {
		t.Fatalf("got %v, want ErrDisallowedType", err)
	}
}

func TestSaveNormalizesContentType(t *testing.T) {
	store, err := NewStore(t.TempDir(), 1024)
	if err != nil {
		t.Fatal(err)
	}

	url, err := store.Save(fileHeader(t, "Application/PDF; charset=binary", []byte("%PDF-1.4")))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasSuffix(url, ".pdf") {
		t.Fatalf("url = %q", url)
	}
}

func TestRemoveIgnoresPathTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, 1024)
	if err != nil {
		t.Fatal(err)
	}

	outside := filepath.Join(filepath.Dir(dir), "outside.txt")
	if err := os.WriteFile(outside, []byte("keep"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := store.Remove("../outside.txt"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(outside); err != nil {
		t.Fatal("file outside the store was touched")
	}
}
