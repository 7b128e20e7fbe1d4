package gldriver

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrLoader is returned when GL function pointers could not be loaded.
var ErrLoader = errors.New("could not initialise OpenGL")

// Init loads the GL entry points for the current context. A context must
// already be current on the calling thread.
func Init() (*Driver, error) {
	err := loadFunctions()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoader, err)
	}

	d := &Driver{}
	slog.Info(fmt.Sprintf("OpenGL version '%s' / %s / %s", d.Version(), d.Vendor(), d.Renderer()),
		slog.String("module", "renderer"))

	return d, nil
}
