package factory

import (
	"github.com/automoto/fowlplay/archetypes"
	"github.com/automoto/fowlplay/components"
	"github.com/automoto/fowlplay/tags"
	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall adds a solid wall with its top-left corner at (x, y). It blocks
// bodies in the physics space and marks its cells in the obstacle grid.
func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	space := MustSpace(ecs.World)

	// Grid footprint, inset so an exact tile does not spill into its neighbours
	obj := resolv.NewObject(x+1, y+1, w-2, h-2, tags.ResolvWall)
	obj.SetShape(resolv.NewRectangle(0, 0, w-2, h-2))
	obj.Data = wall.Entity()
	space.Grid.Add(obj)
	components.Object.SetValue(wall, components.ObjectData{Object: obj, Wall: wall.Entity()})

	tag := contactTag(tags.KindWall, tags.SensorNone, wall)
	body, shape := newStaticBox(space.Space, x+w/2, y+h/2, w, h, false, tags.CollisionWall, tag)
	components.Body.SetValue(wall, components.BodyData{Body: body, Shapes: []*cp.Shape{shape}, Width: w, Height: h})

	return wall
}

// CreateStove adds a stove area. The chef can cook while overlapping it.
func CreateStove(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	stove := archetypes.Stove.Spawn(ecs)
	space := MustSpace(ecs.World)

	tag := contactTag(tags.KindStove, tags.SensorStove, stove)
	body, shape := newStaticBox(space.Space, x+w/2, y+h/2, w, h, true, tags.CollisionStove, tag)
	components.Body.SetValue(stove, components.BodyData{Body: body, Shapes: []*cp.Shape{shape}, Width: w, Height: h})

	return stove
}
