package rendering

import "fmt"

// OpKind identifies a recorded canvas call.
type OpKind uint8

const (
	OpSave OpKind = iota
	OpRestore
	OpTranslate
	OpClear
	OpRRect
	OpCircle
	OpLine
	OpRRectShadow
	OpCircleShadow
)

var opNames = [...]string{
	OpSave:         "save",
	OpRestore:      "restore",
	OpTranslate:    "translate",
	OpClear:        "clear",
	OpRRect:        "drawRRect",
	OpCircle:       "drawCircle",
	OpLine:         "drawLine",
	OpRRectShadow:  "drawRRectShadow",
	OpCircleShadow: "drawCircleShadow",
}

func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// DrawOp is one recorded canvas call. Only the fields the Kind uses are set:
// Delta for translate, Color for clear, RRect for the rounded-rect calls,
// Center and Radius for the circle calls, Start and End for lines, Paint for
// draws and Shadow for shadows.
type DrawOp struct {
	Kind   OpKind
	Delta  Offset
	Color  Color
	RRect  RRect
	Center Offset
	Radius float64
	Start  Offset
	End    Offset
	Paint  Paint
	Shadow BoxShadow
}

// Replay issues the call on canvas.
func (op DrawOp) Replay(canvas Canvas) {
	switch op.Kind {
	case OpSave:
		canvas.Save()
	case OpRestore:
		canvas.Restore()
	case OpTranslate:
		canvas.Translate(op.Delta.X, op.Delta.Y)
	case OpClear:
		canvas.Clear(op.Color)
	case OpRRect:
		canvas.DrawRRect(op.RRect, op.Paint)
	case OpCircle:
		canvas.DrawCircle(op.Center, op.Radius, op.Paint)
	case OpLine:
		canvas.DrawLine(op.Start, op.End, op.Paint)
	case OpRRectShadow:
		canvas.DrawRRectShadow(op.RRect, op.Shadow)
	case OpCircleShadow:
		canvas.DrawCircleShadow(op.Center, op.Radius, op.Shadow)
	}
}

// DisplayList is a frozen sequence of canvas calls. Replaying it onto a
// RasterCanvas produces the same pixels as painting there directly.
type DisplayList struct {
	ops  []DrawOp
	size Size
}

// Paint replays every call onto canvas in recording order.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		op.Replay(canvas)
	}
}

// Ops returns a copy of the recorded calls.
func (d *DisplayList) Ops() []DrawOp {
	return append([]DrawOp(nil), d.ops...)
}

// Size returns the canvas size the list was recorded at.
func (d *DisplayList) Size() Size {
	return d.size
}

// Len returns the number of recorded calls.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// PictureRecorder captures the calls made on the canvas returned by
// BeginRecording. A recorder can be reused; each BeginRecording starts over.
type PictureRecorder struct {
	ops       []DrawOp
	recording bool
	size      Size
}

// BeginRecording discards any previous recording and returns a canvas whose
// calls are captured until EndRecording.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r}
}

// EndRecording stops capturing and returns what was recorded. Calls made on
// the canvas afterwards are dropped.
func (r *PictureRecorder) EndRecording() *DisplayList {
	list := &DisplayList{size: r.size}
	if r.recording {
		list.ops = append([]DrawOp(nil), r.ops...)
		r.recording = false
	}
	return list
}

func (r *PictureRecorder) record(op DrawOp) {
	if r.recording {
		r.ops = append(r.ops, op)
	}
}

type recordingCanvas struct {
	recorder *PictureRecorder
}

func (c *recordingCanvas) Save()    { c.recorder.record(DrawOp{Kind: OpSave}) }
func (c *recordingCanvas) Restore() { c.recorder.record(DrawOp{Kind: OpRestore}) }

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.recorder.record(DrawOp{Kind: OpTranslate, Delta: Offset{X: dx, Y: dy}})
}

func (c *recordingCanvas) Clear(color Color) {
	c.recorder.record(DrawOp{Kind: OpClear, Color: color})
}

func (c *recordingCanvas) DrawRRect(rrect RRect, paint Paint) {
	c.recorder.record(DrawOp{Kind: OpRRect, RRect: rrect, Paint: paint})
}

func (c *recordingCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	c.recorder.record(DrawOp{Kind: OpCircle, Center: center, Radius: radius, Paint: paint})
}

func (c *recordingCanvas) DrawLine(start, end Offset, paint Paint) {
	c.recorder.record(DrawOp{Kind: OpLine, Start: start, End: end, Paint: paint})
}

func (c *recordingCanvas) DrawRRectShadow(rrect RRect, shadow BoxShadow) {
	c.recorder.record(DrawOp{Kind: OpRRectShadow, RRect: rrect, Shadow: shadow})
}

func (c *recordingCanvas) DrawCircleShadow(center Offset, radius float64, shadow BoxShadow) {
	c.recorder.record(DrawOp{Kind: OpCircleShadow, Center: center, Radius: radius, Shadow: shadow})
}

func (c *recordingCanvas) Size() Size {
	return c.recorder.size
}
