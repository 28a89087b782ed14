package util

import (
	"os"
	"path/filepath"

	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

// Check if a file exists and is readable etc
// returns false if not
func CheckFileExists(fpath string) bool {
	_, e := os.Stat(fpath)
	return e == nil
}

// EnsureDir creates dir and any missing parents with the given permissions.
// An existing directory is left as it is.
func EnsureDir(dir string, perm os.FileMode) error {
	cleanPath := filepath.Clean(dir)
	if err := os.MkdirAll(cleanPath, perm); err != nil {
		return err
	}
	log.WithFields(logger.Fields{
		"at":   "EnsureDir",
		"path": cleanPath,
	}).Debug("directory ready")
	return nil
}
