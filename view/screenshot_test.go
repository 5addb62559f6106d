package view

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"frame-01.v2", "frame-01.v2"},
		{"a b/c", "a_b_c"},
		{"  trimmed  ", "trimmed"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	px := []byte{
		100, 50, 0, 255, // opaque stays
		64, 32, 0, 128, // half alpha doubles
		0, 0, 0, 0, // transparent stays
	}
	img := unpremultiply(px, 3, 1)
	want := []byte{100, 50, 0, 255, 127, 63, 0, 128, 0, 0, 0, 0}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("Pix = %v, want %v", img.Pix, want)
		}
	}
}

func TestScreenshotsWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := &Screenshots{
		Dir: dir,
		now: func() time.Time { return time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC) },
	}
	s.Queue("first shot")
	s.Queue("")
	if s.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", s.Pending())
	}

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	paths, err := s.write(img)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	want := []string{
		filepath.Join(dir, "20240506_070809_first_shot.png"),
		filepath.Join(dir, "20240506_070809_unlabeled.png"),
	}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for i, p := range paths {
		if p != want[i] {
			t.Errorf("path %d = %q, want %q", i, p, want[i])
		}
		f, err := os.Open(p)
		if err != nil {
			t.Fatal(err)
		}
		decoded, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", p, err)
		}
		if decoded.Bounds().Dx() != 2 {
			t.Errorf("%s: width = %d", p, decoded.Bounds().Dx())
		}
	}
}
