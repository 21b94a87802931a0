// Package path implements the mini-language of the SVG `d` attribute: a
// sequence of drawing commands with numeric parameters. A Data value can be
// built fluently or parsed from text, and renders via String, so it plugs
// directly into Element.Assign as an attribute value.
package path

import (
	"strconv"
	"strings"
)

// Position says whether a command's coordinates are absolute or relative to
// the current point.
type Position int

const (
	Absolute Position = iota
	Relative
)

// Command symbols, in their canonical absolute form.
const (
	Move                 = 'M'
	Line                 = 'L'
	HorizontalLine       = 'H'
	VerticalLine         = 'V'
	QuadraticCurve       = 'Q'
	SmoothQuadraticCurve = 'T'
	CubicCurve           = 'C'
	SmoothCubicCurve     = 'S'
	EllipticalArc        = 'A'
	ClosePath            = 'Z'
)

// A Command is one drawing instruction.
type Command struct {
	Symbol     byte
	Position   Position
	Parameters []float64
}

func (c Command) String() string {
	symbol := c.Symbol
	if c.Position == Relative || c.Symbol == ClosePath {
		symbol += 'a' - 'A'
	}
	parts := make([]string, len(c.Parameters))
	for i, p := range c.Parameters {
		parts[i] = strconv.FormatFloat(p, 'g', -1, 64)
	}
	return string(symbol) + strings.Join(parts, ",")
}

// Data is an ordered sequence of commands.
type Data []Command

// New creates empty path data.
func New() Data {
	return Data{}
}

// String renders the data as the text of a `d` attribute, commands
// separated by spaces and parameters by commas.
func (d Data) String() string {
	parts := make([]string, len(d))
	for i, c := range d {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func (d Data) add(symbol byte, position Position, parameters []float64) Data {
	return append(d, Command{Symbol: symbol, Position: position, Parameters: parameters})
}

// MoveTo appends an absolute move command.
func (d Data) MoveTo(parameters ...float64) Data {
	return d.add(Move, Absolute, parameters)
}

// MoveBy appends a relative move command.
func (d Data) MoveBy(parameters ...float64) Data {
	return d.add(Move, Relative, parameters)
}

// LineTo appends an absolute line command.
func (d Data) LineTo(parameters ...float64) Data {
	return d.add(Line, Absolute, parameters)
}

// LineBy appends a relative line command.
func (d Data) LineBy(parameters ...float64) Data {
	return d.add(Line, Relative, parameters)
}

// HorizontalLineTo appends an absolute horizontal line command.
func (d Data) HorizontalLineTo(parameters ...float64) Data {
	return d.add(HorizontalLine, Absolute, parameters)
}

// HorizontalLineBy appends a relative horizontal line command.
func (d Data) HorizontalLineBy(parameters ...float64) Data {
	return d.add(HorizontalLine, Relative, parameters)
}

// VerticalLineTo appends an absolute vertical line command.
func (d Data) VerticalLineTo(parameters ...float64) Data {
	return d.add(VerticalLine, Absolute, parameters)
}

// VerticalLineBy appends a relative vertical line command.
func (d Data) VerticalLineBy(parameters ...float64) Data {
	return d.add(VerticalLine, Relative, parameters)
}

// QuadraticCurveTo appends an absolute quadratic curve command.
func (d Data) QuadraticCurveTo(parameters ...float64) Data {
	return d.add(QuadraticCurve, Absolute, parameters)
}

// QuadraticCurveBy appends a relative quadratic curve command.
func (d Data) QuadraticCurveBy(parameters ...float64) Data {
	return d.add(QuadraticCurve, Relative, parameters)
}

// SmoothQuadraticCurveTo appends an absolute smooth quadratic curve command.
func (d Data) SmoothQuadraticCurveTo(parameters ...float64) Data {
	return d.add(SmoothQuadraticCurve, Absolute, parameters)
}

// SmoothQuadraticCurveBy appends a relative smooth quadratic curve command.
func (d Data) SmoothQuadraticCurveBy(parameters ...float64) Data {
	return d.add(SmoothQuadraticCurve, Relative, parameters)
}

// CubicCurveTo appends an absolute cubic curve command.
func (d Data) CubicCurveTo(parameters ...float64) Data {
	return d.add(CubicCurve, Absolute, parameters)
}

// CubicCurveBy appends a relative cubic curve command.
func (d Data) CubicCurveBy(parameters ...float64) Data {
	return d.add(CubicCurve, Relative, parameters)
}

// SmoothCubicCurveTo appends an absolute smooth cubic curve command.
func (d Data) SmoothCubicCurveTo(parameters ...float64) Data {
	return d.add(SmoothCubicCurve, Absolute, parameters)
}

// SmoothCubicCurveBy appends a relative smooth cubic curve command.
func (d Data) SmoothCubicCurveBy(parameters ...float64) Data {
	return d.add(SmoothCubicCurve, Relative, parameters)
}

// EllipticalArcTo appends an absolute elliptical arc command.
func (d Data) EllipticalArcTo(parameters ...float64) Data {
	return d.add(EllipticalArc, Absolute, parameters)
}

// EllipticalArcBy appends a relative elliptical arc command.
func (d Data) EllipticalArcBy(parameters ...float64) Data {
	return d.add(EllipticalArc, Relative, parameters)
}

// Close appends a closepath command, rendered as "z".
func (d Data) Close() Data {
	return d.add(ClosePath, Absolute, nil)
}
