package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Latest finds the most recent report for a list in dir, comparing the dates
// encoded in the file names. found is false when there is none.
func Latest(dir, prefix, slug, layout string) (path string, found bool, err error) {
	if layout == "" {
		layout = DefaultDateLayout
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, &ReadError{Path: dir, Err: err}
	}

	namePrefix := prefix + "_" + slug + "_"
	var newest time.Time
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, namePrefix) || !strings.HasSuffix(name, ".csv") {
			continue
		}

		stamp := strings.TrimSuffix(strings.TrimPrefix(name, namePrefix), ".csv")
		day, parseErr := time.Parse(layout, stamp)
		if parseErr != nil {
			continue
		}
		if !found || day.After(newest) {
			newest = day
			path = filepath.Join(dir, name)
			found = true
		}
	}

	return path, found, nil
}
