package provider

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/npillmayer/ufogleaner/core"
)

// Provider is a read-only file system interface for accessing files relative
// to a font package root.
type Provider interface {
	// Root returns the root directory of the provider. It is used for
	// error messages only.
	Root() string

	// Read returns the complete contents of the file at relPath. relPath is
	// slash-separated and relative to the root.
	//
	// A missing file results in an error with code core.EMISSING, any other
	// failure in an error with code core.EIO.
	Read(relPath string) ([]byte, error)
}

// FileProvider reads files from a directory of the local file system.
type FileProvider struct {
	root string
}

var _ Provider = (*FileProvider)(nil)

// NewFileProvider creates a provider reading from directory root.
func NewFileProvider(root string) *FileProvider {
	return &FileProvider{root: root}
}

// Root returns the root directory of the provider.
func (fp *FileProvider) Root() string {
	return fp.root
}

// Read reads a file relative to the root directory and returns its contents.
// Paths which would leave the root directory are rejected.
func (fp *FileProvider) Read(relPath string) ([]byte, error) {
	local := filepath.FromSlash(relPath)
	if !filepath.IsLocal(local) {
		return nil, core.WithPath(core.Error(core.EIO, "path escapes package root: %s", relPath),
			relPath)
	}
	full := filepath.Join(fp.root, local)
	tracer().Debugf("provider reads %s", full)
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, readError(err, relPath, full)
	}
	return data, nil
}

// FSProvider reads files from an fs.FS.
type FSProvider struct {
	fsys fs.FS
	root string
}

var _ Provider = (*FSProvider)(nil)

// NewFSProvider creates a provider reading from fsys. root is reported by
// Root for diagnostics only; it is not prepended to read paths.
func NewFSProvider(fsys fs.FS, root string) *FSProvider {
	return &FSProvider{fsys: fsys, root: root}
}

// Root returns the diagnostic root name of the provider.
func (p *FSProvider) Root() string {
	return p.root
}

// Read reads a file from the underlying fs.FS.
func (p *FSProvider) Read(relPath string) ([]byte, error) {
	name := path.Clean(relPath)
	if !fs.ValidPath(name) {
		return nil, core.WithPath(core.Error(core.EIO, "invalid path: %s", relPath), relPath)
	}
	data, err := fs.ReadFile(p.fsys, name)
	if err != nil {
		return nil, readError(err, relPath, path.Join(p.root, name))
	}
	return data, nil
}

func readError(err error, relPath, full string) error {
	if errors.Is(err, fs.ErrNotExist) {
		return core.WithPath(core.WrapError(err, core.EMISSING, "file not found: %s", relPath), full)
	}
	return core.WithPath(core.WrapError(err, core.EIO, "cannot read %s", relPath), full)
}
