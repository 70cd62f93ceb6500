package parser

import "fmt"

// Registry maps file formats to loaders.
type Registry struct {
	loaders map[string]Loader
}

// NewRegistry returns a Registry with the built-in loaders registered.
func NewRegistry() *Registry {
	r := &Registry{loaders: make(map[string]Loader)}

	text := &TextLoader{}
	pdf := &PDFLoader{}
	xlsx := &XLSXLoader{}

	for _, l := range []Loader{text, pdf, xlsx} {
		for _, f := range l.SupportedFormats() {
			r.loaders[f] = l
		}
	}
	return r
}

// Get returns the loader for a format, or an error if none is registered.
func (r *Registry) Get(format string) (Loader, error) {
	l, ok := r.loaders[format]
	if !ok {
		return nil, fmt.Errorf("no loader for format: %s", format)
	}
	return l, nil
}

// Register adds or replaces the loader for a format.
func (r *Registry) Register(format string, l Loader) {
	r.loaders[format] = l
}
