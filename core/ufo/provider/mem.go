package provider

import (
	"path"

	"github.com/npillmayer/ufogleaner/core"
)

// MemProvider keeps files in memory. Files may be added or replaced at any
// time with WithFile.
//
// MemProvider is not safe for concurrent use while files are being added.
type MemProvider struct {
	root  string
	files map[string][]byte
}

var _ Provider = (*MemProvider)(nil)

// NewMemProvider creates an empty in-memory provider. root is used for
// diagnostics only.
func NewMemProvider(root string) *MemProvider {
	return &MemProvider{
		root:  root,
		files: make(map[string][]byte),
	}
}

// WithFile stores content under relPath, replacing any previous content.
// It returns the provider to allow chaining.
func (mp *MemProvider) WithFile(relPath string, content []byte) *MemProvider {
	c := make([]byte, len(content))
	copy(c, content)
	mp.files[path.Clean(relPath)] = c
	return mp
}

// Remove deletes the file at relPath, if present.
func (mp *MemProvider) Remove(relPath string) {
	delete(mp.files, path.Clean(relPath))
}

// Root returns the diagnostic root name of the provider.
func (mp *MemProvider) Root() string {
	return mp.root
}

// Read returns a copy of the file contents stored for relPath.
func (mp *MemProvider) Read(relPath string) ([]byte, error) {
	content, ok := mp.files[path.Clean(relPath)]
	if !ok {
		return nil, core.WithPath(core.Error(core.EMISSING, "file not found: %s", relPath), relPath)
	}
	c := make([]byte, len(content))
	copy(c, content)
	return c, nil
}
