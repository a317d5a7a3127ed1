package condition

import "github.com/roach88/advkit/pkg/ir"

// Distance matches the distance between two points. It is either per-axis,
// absolute, or horizontal, and the last setter decides. A new Distance is
// absolute with the default range.
type Distance struct {
	span span
}

type span interface {
	render() ir.Value
}

type axes struct {
	x, y, z *Range
}

type absolute struct{ r Range }

type horizontal struct{ r Range }

func (a axes) render() ir.Value {
	obj := ir.NewObject()
	setRange(obj, "x", a.x)
	setRange(obj, "y", a.y)
	setRange(obj, "z", a.z)
	return obj
}

func (a absolute) render() ir.Value {
	return ir.NewObject(ir.O("absolute", a.r.Render()))
}

func (h horizontal) render() ir.Value {
	return ir.NewObject(ir.O("horizontal", h.r.Render()))
}

// NewDistance returns an absolute distance of the default range.
func NewDistance() Distance {
	return Distance{}
}

// Absolute returns a distance matching the euclidean distance.
func Absolute(r Range) Distance {
	return Distance{span: absolute{r: r}}
}

// Horizontal returns a distance ignoring the y axis.
func Horizontal(r Range) Distance {
	return Distance{span: horizontal{r: r}}
}

// X constrains the x axis and switches to per-axis form, keeping axes set
// earlier in that form.
func (d Distance) X(r Range) Distance {
	a := d.axes()
	a.x = &r
	d.span = a
	return d
}

// Y constrains the y axis.
func (d Distance) Y(r Range) Distance {
	a := d.axes()
	a.y = &r
	d.span = a
	return d
}

// Z constrains the z axis.
func (d Distance) Z(r Range) Distance {
	a := d.axes()
	a.z = &r
	d.span = a
	return d
}

// Absolute switches to absolute form.
func (d Distance) Absolute(r Range) Distance {
	d.span = absolute{r: r}
	return d
}

// Horizontal switches to horizontal form.
func (d Distance) Horizontal(r Range) Distance {
	d.span = horizontal{r: r}
	return d
}

func (d Distance) axes() axes {
	if a, ok := d.span.(axes); ok {
		return a
	}
	return axes{}
}

// Render implements Renderer.
func (d Distance) Render() ir.Value {
	if d.span == nil {
		return absolute{}.render()
	}
	return d.span.render()
}
