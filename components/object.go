package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is a wall's cell footprint in the obstacle grid.
type ObjectData struct {
	*resolv.Object
	Wall donburi.Entity
}

var Object = donburi.NewComponentType[ObjectData]()

// Release takes the footprint out of the grid. Safe to call twice.
func (o *ObjectData) Release(grid *resolv.Space) {
	if o.Object == nil || grid == nil {
		return
	}
	grid.Remove(o.Object)
	o.Object = nil
}
