package dispatcher

import (
	"github.com/dshills/shortcuts/internal/dispatcher/handlers/line"
	"github.com/dshills/shortcuts/internal/dispatcher/handlers/selection"
	"github.com/dshills/shortcuts/internal/dispatcher/handlers/textcase"
)

// RegisterDefaults registers the built-in namespaces: line, select and
// case.
func (d *Dispatcher) RegisterDefaults() {
	d.RegisterNamespace(line.NewHandler())
	d.RegisterNamespace(selection.NewHandler())
	d.RegisterNamespace(textcase.NewHandler())
}
