package testing

import (
	"fmt"
	"math"

	"github.com/go-drift/switchbutton/pkg/rendering"
)

// DisplayOp is a recorded canvas call flattened to plain values, so it can
// be compared in tests and stored as YAML. Coordinates are rounded to two
// decimals and colours are written as 0xAARRGGBB strings.
type DisplayOp struct {
	Op     string         `yaml:"op"`
	Params map[string]any `yaml:"params,omitempty"`
}

// Param returns the named parameter, or nil.
func (o DisplayOp) Param(name string) any {
	return o.Params[name]
}

// SerializeDisplayList flattens every call in dl.
func SerializeDisplayList(dl *rendering.DisplayList) []DisplayOp {
	ops := dl.Ops()
	out := make([]DisplayOp, 0, len(ops))
	for _, op := range ops {
		out = append(out, serializeOp(op))
	}
	return out
}

func serializeOp(op rendering.DrawOp) DisplayOp {
	params := map[string]any{}
	switch op.Kind {
	case rendering.OpTranslate:
		params["dx"] = round2(op.Delta.X)
		params["dy"] = round2(op.Delta.Y)
	case rendering.OpClear:
		params["color"] = hexColor(op.Color)
	case rendering.OpRRect, rendering.OpRRectShadow:
		r := op.RRect.Rect
		params["rect"] = map[string]any{
			"left":   round2(r.Left),
			"top":    round2(r.Top),
			"right":  round2(r.Right),
			"bottom": round2(r.Bottom),
		}
		params["radius"] = round2(op.RRect.Radius)
	case rendering.OpCircle, rendering.OpCircleShadow:
		params["cx"] = round2(op.Center.X)
		params["cy"] = round2(op.Center.Y)
		params["radius"] = round2(op.Radius)
	case rendering.OpLine:
		params["x1"], params["y1"] = round2(op.Start.X), round2(op.Start.Y)
		params["x2"], params["y2"] = round2(op.End.X), round2(op.End.Y)
	}

	switch op.Kind {
	case rendering.OpRRect, rendering.OpCircle, rendering.OpLine:
		params["color"] = hexColor(op.Paint.EffectiveColor())
		params["style"] = op.Paint.Style.String()
		if op.Paint.Style != rendering.PaintStyleFill {
			params["strokeWidth"] = round2(op.Paint.StrokeWidth)
		}
	case rendering.OpRRectShadow, rendering.OpCircleShadow:
		params["color"] = hexColor(op.Shadow.Color)
		params["blur"] = round2(op.Shadow.BlurRadius)
		params["dx"] = round2(op.Shadow.Offset.X)
		params["dy"] = round2(op.Shadow.Offset.Y)
	}

	if len(params) == 0 {
		params = nil
	}
	return DisplayOp{Op: op.Kind.String(), Params: params}
}

func hexColor(c rendering.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
