package content

import (
	"embed"
	"io/fs"

	"go.uber.org/zap"
)

//go:embed defaults/*.json
var defaultFiles embed.FS

// DefaultFS returns the embedded default content set.
func DefaultFS() fs.FS {
	sub, err := fs.Sub(defaultFiles, "defaults")
	if err != nil {
		// The subtree is embedded at compile time; this cannot fail at runtime.
		panic(err)
	}
	return sub
}

// LoadDefault builds a Store from the embedded content set. It is used when
// no content directory is configured.
func LoadDefault(logger *zap.Logger) *Store {
	return LoadFS(DefaultFS(), logger)
}
