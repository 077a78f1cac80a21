package nodetool

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

var searchPaths = []string{
	"/usr/bin",
	"/usr/sbin",
	"/usr/local/bin",
	"/usr/local/sbin",
	"/opt/cassandra/bin",
	"/usr/share/cassandra/bin",
	"/usr/local/share/cassandra/bin",
	"/usr/local/cassandra/bin",
	"/opt/dse/bin",
	"/usr/share/dse/bin",
}

var errNodetoolNotFound = errors.New("nodetool not found")

// Locate returns the first nodetool binary found in the usual install directories
func Locate(fs afero.Fs) (string, error) {
	for _, p := range searchPaths {
		filename := filepath.Join(p, Binary)
		if info, err := fs.Stat(filename); err == nil && !info.IsDir() {
			return filename, nil
		}
	}
	return "", errNodetoolNotFound
}
