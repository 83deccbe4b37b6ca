// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	fontapi "github.com/go-text/typesetting/opentype/api/font"
	"github.com/go-text/typesetting/opentype/api/metadata"
	"github.com/go-text/typesetting/opentype/loader"
)

// Face is a thread-safe representation of a loaded font. For
// efficiency, applications should construct a face for any given font
// file once, reusing it across different shapers.
type Face struct {
	font    font.Font
	family  string
	variant string
	aspect  metadata.Aspect
}

// Parse constructs a Face from source bytes.
func Parse(src []byte) (Face, error) {
	ld, err := loader.NewLoader(bytes.NewReader(src))
	if err != nil {
		return Face{}, err
	}
	ft, err := fontapi.NewFont(ld)
	if err != nil {
		return Face{}, fmt.Errorf("failed parsing truetype font: %w", err)
	}
	data := metadata.Metadata(ld)
	var variant string
	if data.IsMonospace {
		variant = "Mono"
	}
	return Face{
		font:    ft,
		family:  data.Family,
		variant: variant,
		aspect:  data.Aspect,
	}, nil
}

// Face returns a thread-unsafe wrapper suitable for use by a single
// shaper. Face may be invoked any number of times and is safe so long
// as each return value is only used by one goroutine.
func (f Face) Face() font.Face {
	return &fontapi.Face{Font: f.font}
}

// Family returns the font's family name, as recorded in the font
// metadata.
func (f Face) Family() string {
	return f.family
}
