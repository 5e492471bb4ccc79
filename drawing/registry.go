package drawing

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Format describes an output format a drawing can be encoded to.
type Format struct {
	// Name is the lookup key, e.g. "svg".
	Name string
	// Ext is the file extension without the dot.
	Ext string
	// ContentType is the media type of the encoded output.
	ContentType string
	// New returns a backend producing width x height pixel output.
	New func(width, height int) WriterBackend
}

var (
	formatsMu sync.RWMutex
	formats   = make(map[string]Format)
)

// RegisterFormat makes a format available to LookupFormat. Backend
// packages call it from init, so importing one for side effects is enough:
//
//	import _ "github.com/gogpu/figure/drawing/backends/raster"
//
// It panics on an empty name, a nil constructor or a duplicate name.
func RegisterFormat(f Format) {
	formatsMu.Lock()
	defer formatsMu.Unlock()

	if f.Name == "" || f.New == nil {
		panic("drawing: RegisterFormat with empty name or nil constructor")
	}
	if _, dup := formats[f.Name]; dup {
		panic("drawing: format " + f.Name + " registered twice")
	}
	if f.Ext == "" {
		f.Ext = f.Name
	}
	formats[f.Name] = f
}

// LookupFormat returns the format registered under name. Names are
// matched case-insensitively. The error wraps ErrUnknownFormat and lists
// the available names.
func LookupFormat(name string) (Format, error) {
	formatsMu.RLock()
	f, ok := formats[strings.ToLower(name)]
	formatsMu.RUnlock()

	if !ok {
		return Format{}, fmt.Errorf("%w %q (have %s)", ErrUnknownFormat, name, strings.Join(Formats(), ", "))
	}
	return f, nil
}

// Formats returns the registered format names in sorted order.
func Formats() []string {
	formatsMu.RLock()
	defer formatsMu.RUnlock()

	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
