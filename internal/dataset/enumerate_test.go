package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func TestImageID(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"12.jpg", "12"},
		{"img_34.png", "34"},
		{"photo5_of_6.jpeg", "56"},
		{"noid.jpg", ""},
		{"007.jpg", "007"},
	}
	for _, tt := range tests {
		if got := ImageID(tt.filename); got != tt.want {
			t.Errorf("ImageID(%q): expected %q, got %q", tt.filename, tt.want, got)
		}
	}
}

func TestEnumerateSortsNumerically(t *testing.T) {
	dataDir := t.TempDir()
	imgDir := filepath.Join(dataDir, "En", "images")
	if err := os.MkdirAll(imgDir, 0755); err != nil {
		t.Fatal(err)
	}

	// Lexical order would be 1, 10, 2; numeric order must win.
	for _, name := range []string{"10.jpg", "2.jpg", "1.jpg"} {
		if err := os.WriteFile(filepath.Join(imgDir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	items, err := Enumerate(dataDir, "En")
	if err != nil {
		t.Fatalf("Enumerate failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("Expected 3 items, got %d", len(items))
	}
	for i, want := range []string{"1", "2", "10"} {
		if items[i].ID != want {
			t.Errorf("Item %d: expected id %s, got %s", i, want, items[i].ID)
		}
	}
}

func TestEnumerateFiltersNonImages(t *testing.T) {
	dataDir := t.TempDir()
	imgDir := filepath.Join(dataDir, "Jp", "images")
	if err := os.MkdirAll(imgDir, 0755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"1.jpg", "2.PNG", "3.jpeg", "notes.txt", "4.gif", "nodigits.jpg"} {
		if err := os.WriteFile(filepath.Join(imgDir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	items, err := Enumerate(dataDir, "Jp")
	if err != nil {
		t.Fatal(err)
	}
	// .gif is not part of the dataset layout; neither are files without ids.
	if len(items) != 3 {
		ids := make([]string, len(items))
		for i, item := range items {
			ids[i] = item.ID
		}
		t.Errorf("Expected 3 items, got %d (%v)", len(items), ids)
	}
}

func TestEnumerateTextPaths(t *testing.T) {
	dataDir := t.TempDir()
	imgDir := filepath.Join(dataDir, "Sw", "images")
	if err := os.MkdirAll(imgDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(imgDir, "7.jpg"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	items, err := Enumerate(dataDir, "Sw")
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dataDir, "Sw", "text7.txt")
	if items[0].TextPath != want {
		t.Errorf("Expected text path %s, got %s", want, items[0].TextPath)
	}
}

func TestEnumerateMissingDirectory(t *testing.T) {
	if _, err := Enumerate(t.TempDir(), "Ur"); err == nil {
		t.Error("Expected error for missing images directory")
	}
}

func TestReadText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "text1.txt")
	if err := os.WriteFile(path, []byte("  some article text \n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadText(path)
	if err != nil {
		t.Fatalf("ReadText failed: %v", err)
	}
	if got != "some article text" {
		t.Errorf("Expected trimmed content, got %q", got)
	}
}
