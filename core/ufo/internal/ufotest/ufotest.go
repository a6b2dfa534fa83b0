// Package ufotest provides helpers for setting up UFO packages in tests.
package ufotest

import (
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/npillmayer/ufogleaner/core/ufo/provider"
	hplist "howett.net/plist"
)

// ContentsPlist serializes entries as an XML property list dictionary.
// Values may be of any plist-compatible type, allowing non-string entries.
func ContentsPlist(entries map[string]interface{}) []byte {
	return XMLPlist(entries)
}

// XMLPlist serializes any plist-compatible value as an XML property list.
func XMLPlist(value interface{}) []byte {
	data, err := hplist.MarshalIndent(value, hplist.XMLFormat, "\t")
	if err != nil {
		panic(fmt.Sprintf("cannot serialize plist test data: %v", err))
	}
	return data
}

// Glif creates a minimal format 2 GLIF document for a glyph.
func Glif(name string, unicodes ...rune) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&b, "<glyph name=%q format=\"2\">\n", name)
	fmt.Fprintf(&b, "  <advance width=\"500\"/>\n")
	for _, u := range unicodes {
		fmt.Fprintf(&b, "  <unicode hex=\"%04X\"/>\n", u)
	}
	b.WriteString("  <outline>\n    <contour>\n")
	b.WriteString("      <point x=\"0\" y=\"0\" type=\"line\"/>\n")
	b.WriteString("      <point x=\"0\" y=\"700\" type=\"line\"/>\n")
	b.WriteString("      <point x=\"500\" y=\"0\" type=\"line\"/>\n")
	b.WriteString("    </contour>\n  </outline>\n</glyph>\n")
	return []byte(b.String())
}

// Corrupt is a GLIF document which is not well-formed XML.
var Corrupt = []byte(`<?xml version="1.0"?><glyph name="broken" format="2"><advance width="1"`)

// Package creates an in-memory package with a default layer. contents
// becomes glyphs/contents.plist, glifs maps GLIF file names to documents
// stored in directory glyphs.
func Package(contents map[string]interface{}, glifs map[string][]byte) *provider.MemProvider {
	p := provider.NewMemProvider("/test.ufo")
	p.WithFile("glyphs/contents.plist", ContentsPlist(contents))
	for fileName, doc := range glifs {
		p.WithFile(path.Join("glyphs", fileName), doc)
	}
	return p
}

// CountingProvider counts reads per path.
type CountingProvider struct {
	provider.Provider
	mu    sync.Mutex
	reads map[string]int
}

// Count wraps p into a CountingProvider.
func Count(p provider.Provider) *CountingProvider {
	return &CountingProvider{Provider: p, reads: make(map[string]int)}
}

// Read delegates to the wrapped provider and counts the call.
func (cp *CountingProvider) Read(relPath string) ([]byte, error) {
	cp.mu.Lock()
	cp.reads[relPath]++
	cp.mu.Unlock()
	return cp.Provider.Read(relPath)
}

// Reads returns the number of reads of relPath.
func (cp *CountingProvider) Reads(relPath string) int {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	return cp.reads[relPath]
}

// Total returns the number of reads of all paths.
func (cp *CountingProvider) Total() int {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	n := 0
	for _, c := range cp.reads {
		n += c
	}
	return n
}
