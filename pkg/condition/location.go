package condition

import "github.com/roach88/advkit/pkg/ir"

// Location matches where something happens. Exactly one of four forms is
// active: a position, a biome, a structure feature, or a dimension. The last
// setter decides the form. A new Location matches the overworld.
type Location struct {
	place place
}

type place interface {
	key() string
	render() ir.Value
}

type position struct {
	x, y, z *Range
}

type biomePlace struct{ biome Biome }

type featurePlace struct{ feature Feature }

type dimensionPlace struct{ dimension Dimension }

func (position) key() string       { return "position" }
func (biomePlace) key() string     { return "biome" }
func (featurePlace) key() string   { return "feature" }
func (dimensionPlace) key() string { return "dimension" }

func (p position) render() ir.Value {
	obj := ir.NewObject()
	setRange(obj, "x", p.x)
	setRange(obj, "y", p.y)
	setRange(obj, "z", p.z)
	return obj
}

func (b biomePlace) render() ir.Value     { return ir.String(b.biome.ID()) }
func (f featurePlace) render() ir.Value   { return ir.String(string(f.feature)) }
func (d dimensionPlace) render() ir.Value { return ir.String(string(d.dimension)) }

// NewLocation returns a location matching the overworld dimension.
func NewLocation() Location {
	return Location{}
}

// InBiome returns a location matching biome.
func InBiome(b Biome) Location {
	return Location{}.Biome(b)
}

// InFeature returns a location matching a generated structure.
func InFeature(f Feature) Location {
	return Location{}.Feature(f)
}

// InDimension returns a location matching dimension.
func InDimension(d Dimension) Location {
	return Location{}.Dimension(d)
}

// X constrains the x coordinate. Axes set while already in position form are
// kept; otherwise a fresh position starts.
func (l Location) X(r Range) Location {
	p := l.position()
	p.x = &r
	l.place = p
	return l
}

// Y constrains the y coordinate.
func (l Location) Y(r Range) Location {
	p := l.position()
	p.y = &r
	l.place = p
	return l
}

// Z constrains the z coordinate.
func (l Location) Z(r Range) Location {
	p := l.position()
	p.z = &r
	l.place = p
	return l
}

// Biome switches to biome form.
func (l Location) Biome(b Biome) Location {
	l.place = biomePlace{biome: b}
	return l
}

// Feature switches to feature form.
func (l Location) Feature(f Feature) Location {
	l.place = featurePlace{feature: f}
	return l
}

// Dimension switches to dimension form.
func (l Location) Dimension(d Dimension) Location {
	l.place = dimensionPlace{dimension: d}
	return l
}

func (l Location) position() position {
	if p, ok := l.place.(position); ok {
		return p
	}
	return position{}
}

func (l Location) active() place {
	if l.place == nil {
		return dimensionPlace{dimension: Overworld}
	}
	return l.place
}

// Key implements Keyed: "position", "biome", "feature" or "dimension".
func (l Location) Key() string {
	return l.active().key()
}

// Render implements Renderer. Positions render as an object of axis ranges;
// the other forms render as a string.
func (l Location) Render() ir.Value {
	return l.active().render()
}
