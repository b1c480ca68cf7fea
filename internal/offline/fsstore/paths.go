package fsstore

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
)

const manifestFile = "manifest.json"

func digest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// bucketDir names a bucket directory by a short digest so any bucket name is a safe path.
func bucketDir(basePath, name string) string {
	return filepath.Join(basePath, digest(name)[:16])
}

// entryPath builds the file path for a cached key inside a bucket directory.
func entryPath(dir, key string) string {
	return filepath.Join(dir, digest(key)+".json")
}
