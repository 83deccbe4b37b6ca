// SPDX-License-Identifier: Unlicense OR MIT

/*
Package text measures shaped text for use as intrinsic element sizes.

It shapes and line-wraps a string against a set of font faces and
reports per-line metrics, without rasterizing anything. Rendering of
the shaped output belongs to the external view layer.
*/
package text

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/exp/slices"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// Parameters configure one shaping call.
type Parameters struct {
	// PxPerEm is the font size in pixels.
	PxPerEm fixed.Int26_6
	// MaxWidth is the width, in pixels, lines are wrapped to.
	MaxWidth int
	// MaxLines, when positive, truncates the text after that many
	// lines, appending an ellipsis to the final line.
	MaxLines int
	// Language is a BCP-47 tag describing the text's language, used to
	// pick shaping rules. Empty means unspecified.
	Language string
	// RTL shapes the text with a right-to-left base direction.
	RTL bool
}

// Line holds the measurements of one wrapped line.
type Line struct {
	// Width is the advance of the line.
	Width fixed.Int26_6
	// Ascent is the height above the baseline.
	Ascent fixed.Int26_6
	// Descent is the height below the baseline, including the line
	// gap.
	Descent fixed.Int26_6
}

// Shaper shapes and line-wraps text. The zero value is ready for use.
// A Shaper holds scratch state across calls and is not safe for
// concurrent use.
type Shaper struct {
	shaper        shaping.HarfbuzzShaper
	wrapper       shaping.LineWrapper
	bidiParagraph bidi.Paragraph

	// Scratch buffers reused between calls.
	splitScratch1, splitScratch2 []shaping.Input
	outScratch                   []shaping.Output
}

// LayoutString shapes txt against faces and wraps it to
// params.MaxWidth, returning the metrics of each resulting line.
// Faces are prioritized in order, with the first face the default and
// the rest used for glyphs the default does not cover.
func (s *Shaper) LayoutString(faces []font.Face, params Parameters, txt string) []Line {
	if len(faces) == 0 || txt == "" {
		return nil
	}
	wc := shaping.WrapConfig{
		TruncateAfterLines: params.MaxLines,
	}
	if wc.TruncateAfterLines > 0 {
		wc.Truncator = s.shapeText(faces, params, []rune("…"))[0]
	}
	runes := []rune(txt)
	ls, _ := s.wrapper.WrapParagraph(wc, params.MaxWidth, runes,
		shaping.NewSliceIterator(s.shapeText(faces, params, runes)))
	lines := make([]Line, len(ls))
	for i, l := range ls {
		lines[i] = toLine(l)
	}
	return lines
}

// Size returns the bounding size of a sequence of lines: the maximum
// line width and the summed line heights, with each baseline advanced
// by the previous line's descent and rounded up to whole pixels.
func Size(lines []Line) (width, height int) {
	var w fixed.Int26_6
	prevDesc := fixed.I(0)
	for _, l := range lines {
		if l.Width > w {
			w = l.Width
		}
		height += (prevDesc + l.Ascent).Ceil()
		prevDesc = l.Descent
	}
	height += prevDesc.Ceil()
	return w.Ceil(), height
}

// shapeText shapes txt without wrapping, splitting it on bidi,
// font-coverage and script boundaries first.
func (s *Shaper) shapeText(faces []font.Face, params Parameters, txt []rune) []shaping.Output {
	input := shaping.Input{
		Text:      txt,
		RunStart:  0,
		RunEnd:    len(txt),
		Direction: di.DirectionLTR,
		Face:      faces[0],
		Size:      params.PxPerEm,
		Language:  language.NewLanguage(params.Language),
	}
	if params.RTL {
		input.Direction = di.DirectionRTL
	}
	inputs := s.splitBidi(input)
	inputs = s.splitByFaces(inputs, faces, s.splitScratch1[:0])
	inputs = splitByScript(inputs, s.splitScratch2[:0])
	if needed := len(inputs) - len(s.outScratch); needed > 0 {
		s.outScratch = slices.Grow(s.outScratch, needed)
	}
	s.outScratch = s.outScratch[:len(inputs)]
	for i := range inputs {
		s.outScratch[i] = s.shaper.Shape(inputs[i])
	}
	return s.outScratch
}

// splitBidi divides the input on bidirectional-text boundaries,
// setting the direction of each returned run.
func (s *Shaper) splitBidi(input shaping.Input) []shaping.Input {
	var splitInputs []shaping.Input
	if input.Direction.Axis() != di.Horizontal || input.RunStart == input.RunEnd {
		return []shaping.Input{input}
	}
	def := bidi.LeftToRight
	if input.Direction.Progression() == di.TowardTopLeft {
		def = bidi.RightToLeft
	}
	s.bidiParagraph.SetString(string(input.Text), bidi.DefaultDirection(def))
	out, err := s.bidiParagraph.Order()
	if err != nil {
		return []shaping.Input{input}
	}
	for i := 0; i < out.NumRuns(); i++ {
		currentInput := input
		run := out.Run(i)
		dir := run.Direction()
		_, endRune := run.Pos()
		currentInput.RunEnd = endRune + 1
		if dir == bidi.RightToLeft {
			currentInput.Direction = di.DirectionRTL
		} else {
			currentInput.Direction = di.DirectionLTR
		}
		splitInputs = append(splitInputs, currentInput)
		input.RunStart = currentInput.RunEnd
	}
	return splitInputs
}

// splitByFaces divides the inputs by font coverage in the provided
// faces. It will use buf as the backing memory for the returned slice
// if buf is non-nil.
func (s *Shaper) splitByFaces(inputs []shaping.Input, faces []font.Face, buf []shaping.Input) []shaping.Input {
	var split []shaping.Input
	if buf == nil {
		split = make([]shaping.Input, 0, len(inputs))
	} else {
		split = buf
	}
	for _, input := range inputs {
		split = append(split, shaping.SplitByFontGlyphs(input, faces)...)
	}
	return split
}

// splitByScript divides the inputs into smaller inputs on script
// boundaries and sets the script of each returned run. It will use buf
// as the backing memory for the returned slice if buf is non-nil.
func splitByScript(inputs []shaping.Input, buf []shaping.Input) []shaping.Input {
	var splitInputs []shaping.Input
	if buf == nil {
		splitInputs = make([]shaping.Input, 0, len(inputs))
	} else {
		splitInputs = buf
	}
	for _, input := range inputs {
		currentInput := input
		if input.RunStart == input.RunEnd {
			return []shaping.Input{input}
		}
		firstNonCommonRune := input.RunStart
		for i := firstNonCommonRune; i < input.RunEnd; i++ {
			if language.LookupScript(input.Text[i]) != language.Common {
				firstNonCommonRune = i
				break
			}
		}
		currentInput.Script = language.LookupScript(input.Text[firstNonCommonRune])
		for i := firstNonCommonRune + 1; i < input.RunEnd; i++ {
			r := input.Text[i]
			runeScript := language.LookupScript(r)

			if runeScript == language.Common || runeScript == currentInput.Script {
				continue
			}

			if i != input.RunStart {
				currentInput.RunEnd = i
				splitInputs = append(splitInputs, currentInput)
			}

			currentInput = input
			currentInput.RunStart = i
			currentInput.Script = runeScript
		}
		// close and add the last input
		currentInput.RunEnd = input.RunEnd
		splitInputs = append(splitInputs, currentInput)
	}

	return splitInputs
}

// toLine reduces one wrapped line to its metrics: the summed advances
// of its runs, the largest ascent and the largest descent (including
// the line gap).
func toLine(o shaping.Line) Line {
	var l Line
	for _, run := range o {
		l.Width += run.Advance
		if l.Ascent < run.LineBounds.Ascent {
			l.Ascent = run.LineBounds.Ascent
		}
		if l.Descent < -run.LineBounds.Descent+run.LineBounds.Gap {
			l.Descent = -run.LineBounds.Descent + run.LineBounds.Gap
		}
	}
	return l
}
