package reader

import (
	"os"
	"path/filepath"
	"testing"
)

const phonesCSV = `name,brand,price,rating
redmi note 12,xiaomi,199,4.6
poco x5 pro,xiaomi,299,4.4
iphone 15 pro,apple,999,4.9
galaxy s23 ultra,samsung,1199,4.8
`

// writeTestFile writes content into dir/name and returns the full path
func writeTestFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}
