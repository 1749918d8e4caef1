// Package translator holds the process-wide shader translator
// instance. Spinning up the ANGLE wasm runtime is expensive, so it
// is created once on first use.
package translator

import (
	"context"

	gst "github.com/richinsley/goshadertranslator"
)

var translator *gst.ShaderTranslator

// Get returns the shared translator, creating it on first call.
func Get() (*gst.ShaderTranslator, error) {
	if translator == nil {
		ctx := context.Background()
		t, err := gst.NewShaderTranslator(ctx)
		if err != nil {
			return nil, err
		}
		translator = t
	}
	return translator, nil
}
