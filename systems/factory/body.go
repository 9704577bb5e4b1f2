package factory

import (
	"math"

	"github.com/automoto/fowlplay/components"
	"github.com/automoto/fowlplay/tags"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// newCircleBody adds a dynamic, non-rotating circle body to the space.
func newCircleBody(space *cp.Space, x, y, radius, mass float64, ct cp.CollisionType, tag components.ContactTag) (*cp.Body, *cp.Shape) {
	body := space.AddBody(cp.NewBody(mass, math.Inf(1)))
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.UserData = tag.Entity

	shape := space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
	shape.SetCollisionType(ct)
	shape.SetFriction(0)
	shape.UserData = tag
	return body, shape
}

// newSensorCircle adds a kinematic sensor circle, used for hitboxes and traps.
func newSensorCircle(space *cp.Space, x, y, radius float64, ct cp.CollisionType, tag components.ContactTag) (*cp.Body, *cp.Shape) {
	body := space.AddBody(cp.NewKinematicBody())
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.UserData = tag.Entity

	shape := space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
	shape.SetSensor(true)
	shape.SetCollisionType(ct)
	shape.UserData = tag
	return body, shape
}

// newSensorBox adds a kinematic sensor box centred on (x, y).
func newSensorBox(space *cp.Space, x, y, w, h float64, ct cp.CollisionType, tag components.ContactTag) (*cp.Body, *cp.Shape) {
	body := space.AddBody(cp.NewKinematicBody())
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.UserData = tag.Entity

	shape := space.AddShape(cp.NewBox(body, w, h, 0))
	shape.SetSensor(true)
	shape.SetCollisionType(ct)
	shape.UserData = tag
	return body, shape
}

// newStaticBox adds a static box centred on (x, y).
func newStaticBox(space *cp.Space, x, y, w, h float64, sensor bool, ct cp.CollisionType, tag components.ContactTag) (*cp.Body, *cp.Shape) {
	body := space.AddBody(cp.NewStaticBody())
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.UserData = tag.Entity

	shape := space.AddShape(cp.NewBox(body, w, h, 0))
	shape.SetSensor(sensor)
	shape.SetCollisionType(ct)
	shape.UserData = tag
	return body, shape
}

func contactTag(kind tags.Kind, sensor tags.Sensor, e *donburi.Entry) components.ContactTag {
	return components.ContactTag{Kind: kind, Sensor: sensor, Entity: e.Entity()}
}
