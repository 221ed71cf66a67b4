// Package fs provides file-backed configuration and question sources.
package fs

import (
	"errors"
	"io/fs"
	"os"

	"github.com/fwojciec/siteqa"
)

// LoadConfig reads a key=value configuration file.
// A missing file is reported as ENOTFOUND.
func LoadConfig(path string) (*siteqa.Config, error) {
	f, err := open(path, "config")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return siteqa.ParseConfig(f)
}

// open opens path, mapping a missing file to ENOTFOUND.
func open(path, kind string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, siteqa.Errorf(siteqa.ENOTFOUND, "%s file %q not found", kind, path)
	} else if err != nil {
		return nil, err
	}
	return f, nil
}
