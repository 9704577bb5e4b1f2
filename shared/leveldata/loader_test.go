package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="8" tilewidth="32" tileheight="32" infinite="0">
 <objectgroup id="1" name="Walls">
  <object id="1" x="0" y="0" width="320" height="32"/>
 </objectgroup>
 <objectgroup id="2" name="Stoves">
  <object id="2" x="128" y="96" width="64" height="64"/>
 </objectgroup>
 <objectgroup id="3" name="Spawns">
  <object id="3" x="288" y="200"><point/></object>
  <object id="4" x="32" y="200"><point/></object>
 </objectgroup>
 <objectgroup id="4" name="Chef">
  <object id="5" x="160" y="180"><point/></object>
 </objectgroup>
 <objectgroup id="5" name="Traps">
  <object id="6" x="64" y="64">
   <properties><property name="kind" value="Lure"/></properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="6" name="Level">
  <object id="7" x="0" y="0">
   <properties>
    <property name="name" value="Test Kitchen"/>
    <property name="temperatureMax" type="int" value="600"/>
    <property name="waveGap" type="float" value="2.5"/>
    <property name="spawn.Buffalo" type="float" value="1"/>
    <property name="trapStock.Slow" type="int" value="4"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>`

const noChefTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="32" tileheight="32" infinite="0">
 <objectgroup id="1" name="Stoves">
  <object id="1" x="0" y="0" width="32" height="32"/>
 </objectgroup>
 <objectgroup id="2" name="Spawns">
  <object id="2" x="64" y="64"><point/></object>
 </objectgroup>
</map>`

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(testTMX)}}

	data, err := Load(fsys, "levels/test.tmx")
	require.NoError(t, err)

	assert.Equal(t, 320, data.MapWidth)
	assert.Equal(t, 256, data.MapHeight)
	assert.Equal(t, 32, data.TileSize)
	assert.Equal(t, []Rect{{X: 0, Y: 0, W: 320, H: 32}}, data.Walls)
	assert.Equal(t, []Rect{{X: 128, Y: 96, W: 64, H: 64}}, data.Stoves)
	assert.Equal(t, Point{X: 160, Y: 180}, data.ChefSpawn)
	assert.Equal(t, []Point{{X: 32, Y: 200}, {X: 288, Y: 200}}, data.ChickenSpawns, "spawns are sorted")
	assert.Equal(t, []TrapSpawn{{Kind: "Lure", X: 64, Y: 64}}, data.Traps)

	assert.Equal(t, "Test Kitchen", data.Settings.Name)
	assert.Equal(t, 600, data.Settings.TemperatureMax)
	assert.Equal(t, 2.5, data.Settings.WaveGap)
	assert.Zero(t, data.Settings.WaveSize)
	assert.Equal(t, 1.0, data.Settings.SpawnWeights["Buffalo"])
	assert.Equal(t, 4, data.Settings.TrapStock["Slow"])
}

func TestLoadRejectsIncompleteLevel(t *testing.T) {
	fsys := fstest.MapFS{"levels/bad.tmx": {Data: []byte(noChefTMX)}}

	_, err := Load(fsys, "levels/bad.tmx")
	assert.ErrorIs(t, err, ErrNoChef)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "levels/none.tmx")
	assert.Error(t, err)
}

func TestLoadAll(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": {Data: []byte(testTMX)},
		"levels/a.tmx": {Data: []byte(testTMX)},
	}

	levels, names, err := LoadAll(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Len(t, levels, 2)

	_, _, err = LoadAll(fstest.MapFS{}, "levels")
	assert.Error(t, err)
}
