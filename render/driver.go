package render

import (
	"fmt"

	"github.com/galvanized/raymarch/scene"
)

// RunAll iterates every render target in store, in declaration order,
// rendering and encoding each. It stops at the first error, which the
// caller maps to an exit code.
func RunAll(store *scene.Store, opts Options) error {
	for _, target := range store.Targets() {
		pixels, err := RenderTarget(store, target, opts)
		if err != nil {
			return fmt.Errorf("render target %s: %w", targetLabel(target), err)
		}

		switch target.Kind {
		case scene.TargetFile:
			if err := WritePNG(target.Path, pixels); err != nil {
				return fmt.Errorf("write png %s: %w", target.Path, err)
			}
		case scene.TargetASCII:
			rows := ASCIIRows(pixels, opts.AsciiRamp)
			if target.Path != "" {
				if err := WriteASCII(target.Path, rows); err != nil {
					return fmt.Errorf("write ascii %s: %w", target.Path, err)
				}
			} else {
				for _, row := range rows {
					fmt.Println(row)
				}
			}
		}
	}
	return nil
}

func targetLabel(t scene.Target) string {
	if t.Label != "" {
		return t.Label
	}
	return t.Path
}
