package factory

import (
	"github.com/automoto/fowlplay/components"
	"github.com/automoto/fowlplay/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MarkRemoved flags entry for the cleanup pass.
func MarkRemoved(entry *donburi.Entry) {
	if entry == nil || !entry.Valid() || entry.HasComponent(tags.Removed) {
		return
	}
	entry.AddComponent(tags.Removed)
}

// IsRemoved reports whether entry is gone or about to be.
func IsRemoved(entry *donburi.Entry) bool {
	return entry == nil || !entry.Valid() || entry.HasComponent(tags.Removed)
}

// Lookup resolves a weak entity reference. Destroyed entities and entities
// marked removed are not found.
func Lookup(w donburi.World, e donburi.Entity) (*donburi.Entry, bool) {
	if !w.Valid(e) {
		return nil, false
	}
	entry := w.Entry(e)
	if entry.HasComponent(tags.Removed) {
		return nil, false
	}
	return entry, true
}

// Destroy takes entry's shapes and body out of the physics space and
// removes it from the world. Separations caused by the removal are queued
// like any other contact end.
func Destroy(ecs *ecs.ECS, entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Body) {
		if space, ok := GetSpace(ecs.World); ok {
			bd := components.Body.Get(entry)
			for _, shape := range bd.Shapes {
				if space.Space.ContainsShape(shape) {
					space.Space.RemoveShape(shape)
				}
			}
			if bd.Body != nil && space.Space.ContainsBody(bd.Body) {
				space.Space.RemoveBody(bd.Body)
			}
			bd.Shapes = nil
		}
	}
	if entry.HasComponent(components.Object) {
		if space, ok := GetSpace(ecs.World); ok {
			components.Object.Get(entry).Release(space.Grid)
		}
	}
	ecs.World.Remove(entry.Entity())
}
