package format

import (
	"sync"

	"github.com/dhamidi/elfmt/java"
)

// Label caches the text of one element under one formatter, e.g. for a
// tree view. Callers report property changes through PropertyChanged; the
// text is rendered again only if the formatter reads that property.
type Label struct {
	f  *Formatter
	el java.Element

	mu    sync.Mutex
	text  string
	valid bool
}

func NewLabel(f *Formatter, el java.Element) *Label {
	return &Label{f: f, el: el}
}

func (l *Label) Text() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.valid {
		return l.text, nil
	}
	text, err := l.f.Format(l.el)
	if err != nil {
		return "", err
	}
	l.text, l.valid = text, true
	return text, nil
}

// PropertyChanged drops the cached text if it depends on the named
// property, and reports whether it did.
func (l *Label) PropertyChanged(name string) bool {
	if !l.f.DependsOnProperty(name) {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.valid = false
	return true
}
