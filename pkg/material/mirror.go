package material

import "github.com/vini-fda/luz/pkg/core"

// reflectMirror reflects wi about the tangent line of the surface:
// wo = (t·wi)t - (n·wi)n with t = (n.y, -n.x)
func reflectMirror(wi, n core.Vec2) core.Vec2 {
	t := n.Tangent()
	return t.Multiply(t.Dot(wi)).Subtract(n.Multiply(n.Dot(wi)))
}
