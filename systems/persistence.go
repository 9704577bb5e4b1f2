package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/fowlplay/components"
	"github.com/automoto/fowlplay/systems/factory"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const resultsKey = "results"

// LevelRecord is the best result stored per level.
type LevelRecord struct {
	Plays       int     `json:"plays"`
	Wins        int     `json:"wins"`
	FastestWin  float64 `json:"fastestWin"` // seconds, 0 = never won
	MostRemoved int     `json:"mostRemoved"`
}

// BestResults maps level names to their records.
type BestResults map[string]LevelRecord

// ItemStore is the part of gdata.Manager used for results.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var resultStore ItemStore

// InitPersistence opens the gdata store for best results.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "fowlplay",
	})
	if err != nil {
		return fmt.Errorf("open results store: %w", err)
	}
	resultStore = m
	return nil
}

// SetResultStore swaps the backing store, for tests and tools.
func SetResultStore(s ItemStore) {
	resultStore = s
}

// LoadResults reads the stored records. A missing save yields an empty set.
func LoadResults() (BestResults, error) {
	results := BestResults{}
	if resultStore == nil {
		return results, nil
	}
	data, err := resultStore.LoadItem(resultsKey)
	if err != nil {
		return results, fmt.Errorf("load results: %w", err)
	}
	if len(data) == 0 {
		return results, nil
	}
	if err := json.Unmarshal(data, &results); err != nil {
		return BestResults{}, fmt.Errorf("parse results: %w", err)
	}
	return results, nil
}

// Record merges one finished level into the set.
func (r BestResults) Record(state *components.LevelStateData) LevelRecord {
	rec := r[state.Name]
	rec.Plays++
	if state.Outcome == components.OutcomeWon {
		rec.Wins++
		if rec.FastestWin == 0 || state.Elapsed < rec.FastestWin {
			rec.FastestWin = state.Elapsed
		}
	}
	if state.ChickensRemoved > rec.MostRemoved {
		rec.MostRemoved = state.ChickensRemoved
	}
	r[state.Name] = rec
	return rec
}

// SaveResults writes the records back.
func SaveResults(r BestResults) error {
	if resultStore == nil {
		return nil
	}
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("serialize results: %w", err)
	}
	if err := resultStore.SaveItem(resultsKey, data); err != nil {
		return fmt.Errorf("save results: %w", err)
	}
	return nil
}

// UpdatePersistence records the level once it has an outcome.
func UpdatePersistence(ecs *ecs.ECS) {
	levelEntry, ok := factory.FindLevel(ecs.World)
	if !ok {
		return
	}
	state := components.LevelState.Get(levelEntry)
	if !state.Over() || state.Recorded {
		return
	}
	state.Recorded = true

	results, err := LoadResults()
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	rec := results.Record(state)
	if err := SaveResults(results); err != nil {
		log.Printf("Warning: %v", err)
		return
	}
	log.Printf("persistence: %s plays=%d wins=%d fastest=%.1fs most=%d",
		state.Name, rec.Plays, rec.Wins, rec.FastestWin, rec.MostRemoved)
}
