package components

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// BodyData ties an entry to its chipmunk body and the shapes attached to it.
type BodyData struct {
	Body     *cp.Body
	Shapes   []*cp.Shape
	Radius   float64 // main shape radius
	Width    float64 // box extents, zero for circles
	Height   float64
	MaxSpeed float64 // 0 = unclamped
}

var Body = donburi.NewComponentType[BodyData]()

func (b *BodyData) Position() dmath.Vec2 {
	p := b.Body.Position()
	return dmath.Vec2{X: p.X, Y: p.Y}
}

func (b *BodyData) SetPosition(p dmath.Vec2) {
	b.Body.SetPosition(cp.Vector{X: p.X, Y: p.Y})
}

func (b *BodyData) Velocity() dmath.Vec2 {
	v := b.Body.Velocity()
	return dmath.Vec2{X: v.X, Y: v.Y}
}

func (b *BodyData) SetVelocity(x, y float64) {
	b.Body.SetVelocity(x, y)
}
