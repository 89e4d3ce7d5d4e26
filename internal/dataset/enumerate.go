package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/atamiles/vlures-bench/pkg/models"
)

// imageExtensions are the image file extensions recognized during
// enumeration.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// ImageID extracts the numeric item id from an image filename: every digit
// of the base name, concatenated. "12.jpg" and "img_12.jpg" both yield "12".
func ImageID(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	var b strings.Builder
	for _, r := range base {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ImagesDir returns the image directory for a language code.
func ImagesDir(dataDir, code string) string {
	return filepath.Join(dataDir, code, "images")
}

// TextPath returns the paired text file for an item id.
func TextPath(dataDir, code, id string) string {
	return filepath.Join(dataDir, code, fmt.Sprintf("text%s.txt", id))
}

// Enumerate lists the local work items for a language code, sorted by
// numeric id. Files without any digit in their name are skipped. Existence
// of the paired text file is the caller's concern since only the image-text
// tasks need it.
func Enumerate(dataDir, code string) ([]models.WorkItem, error) {
	dir := ImagesDir(dataDir, code)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list images in %s: %w", dir, err)
	}

	items := make([]models.WorkItem, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !imageExtensions[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		id := ImageID(name)
		if id == "" {
			continue
		}
		items = append(items, models.WorkItem{
			ID:        id,
			ImagePath: filepath.Join(dir, name),
			TextPath:  TextPath(dataDir, code, id),
		})
	}

	sort.Slice(items, func(i, j int) bool {
		a, errA := strconv.Atoi(items[i].ID)
		b, errB := strconv.Atoi(items[j].ID)
		if errA != nil || errB != nil {
			return items[i].ID < items[j].ID
		}
		return a < b
	})

	return items, nil
}

// ReadText reads and trims a paired text file.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read text file %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}
