package condition

import "github.com/roach88/advkit/pkg/ir"

func render(r Renderer) string {
	return string(ir.Marshal(r.Render()))
}

// keyed renders a Keyed descriptor the way a parent object stores it.
func keyed(k Keyed) string {
	return string(ir.Marshal(ir.NewObject(ir.O(k.Key(), k.Render()))))
}
