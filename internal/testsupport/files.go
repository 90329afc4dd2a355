package testsupport

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// mp4Header is an ISO base media "ftyp" box, enough for file(1) and for
// anything that sniffs the first bytes of an input.
var mp4Header = []byte{0x00, 0x00, 0x00, 0x18, 'f', 't', 'y', 'p', 'i', 's', 'o', 'm', 0x00, 0x00, 0x02, 0x00, 'i', 's', 'o', 'm', 'm', 'p', '4', '1'}

// WriteMediaFixture creates a fake MP4 input of size bytes at path, creating
// parent directories. Sizes smaller than the header still get the full header.
// Nothing decodes the payload; it only has to exist and be readable.
func WriteMediaFixture(t testing.TB, path string, size int64) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	data := append([]byte(nil), mp4Header...)
	if pad := size - int64(len(data)); pad > 0 {
		data = append(data, bytes.Repeat([]byte{0}, int(pad))...)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write media fixture %s: %v", path, err)
	}
	return path
}
