package rng

import (
	"fmt"
	"math"
)

// MaxResample caps the resample chain RandChoice walks on the string-id
// path: after the base id it tries "id_resample2", "id_resample3", ...
// through "id_resample<MaxResample-1>" before returning ErrNoUsableItem.
const MaxResample = 1000

// resampleLimit is the number of slots in one integer-id group on the
// legacy integer node path. RandChoiceAt draws from its own id and then
// resamples from slots 2 through resampleLimit-1 of the same group.
const resampleLimit = 10

// idGroupSize is the span of integer ids reserved for one (stream,
// source) group on the legacy integer node path: within a group, id%
// idGroupSize selects the resample slot and id/idGroupSize selects the
// group itself.
const idGroupSize = resampleLimit

// Choice is implemented by anything RandChoice can draw: an item that
// reports whether it should always be re-rolled (Retry) or is currently
// unavailable (Locked). Both conditions trigger a resample.
type Choice interface {
	Retry() bool
	Locked() bool
}

// Engine reproduces one seed's draw sequence. It owns a cache of
// per-id node values and the transient LuaRandom stream used to turn a
// node into a draw. An Engine is not safe for concurrent use — callers
// that need to explore multiple branches concurrently must construct one
// Engine per goroutine.
type Engine struct {
	seed         string
	hashedSeed   float64
	hashedSeedJS float64
	nodes        map[string]float64
	intNodes     map[int]float64
	lua          *LuaRandom
}

// NewEngine constructs an Engine for seed.
func NewEngine(seed string) *Engine {
	e := &Engine{}
	e.ResetSeed(seed)
	return e
}

// ResetSeed reseeds the engine in place, discarding both node caches and
// any in-flight LuaRandom stream. This lets a caller reuse one Engine
// across many seeds without reallocating the cache maps' backing storage
// on every call, matching the reference's "clear, don't rebuild" reset
// semantics.
func (e *Engine) ResetSeed(seed string) {
	e.seed = seed
	e.hashedSeed = PseudohashWords([]byte(seed))
	e.hashedSeedJS = PseudohashString(seed)
	if e.nodes == nil {
		e.nodes = make(map[string]float64)
	} else {
		for k := range e.nodes {
			delete(e.nodes, k)
		}
	}
	if e.intNodes == nil {
		e.intNodes = make(map[int]float64)
	} else {
		for k := range e.intNodes {
			delete(e.intNodes, k)
		}
	}
	e.lua = nil
}

// Seed returns the engine's current seed string.
func (e *Engine) Seed() string {
	return e.seed
}

// GetNode returns the mixed node value for id, advancing that id's cached
// node one step. Node values are the bridge between the id/seed
// pseudohash and the LuaRandom stream that a draw actually samples from:
// each call here produces a fresh stream seed for the same id, which is
// what gives resample chains independent-looking draws while staying
// fully determined by (seed, id, call count).
func (e *Engine) GetNode(id string) float64 {
	current, ok := e.nodes[id]
	if !ok {
		current = Pseudohash([]byte(id), []byte(e.seed))
	}

	t := current*1.72431234 + 2.134453429141
	advanced := Round13(t - math.Floor(t))
	e.nodes[id] = advanced

	mixed := (advanced + e.hashedSeedJS) / 2.0
	assertFinite(mixed)
	return mixed
}

// Random returns a float64 in [0, 1) drawn from id's stream.
func (e *Engine) Random(id string) float64 {
	e.lua = NewLuaRandom(e.GetNode(id))
	return e.lua.Random()
}

// RandInt returns an integer in [min, max], inclusive, drawn from id's
// stream.
func (e *Engine) RandInt(id string, min, max int64) int64 {
	e.lua = NewLuaRandom(e.GetNode(id))
	return e.lua.RandInt(min, max)
}

// RandChoice draws one item from items using id's stream. If the first
// draw is locked or marked retry, it resamples using "id_resample2",
// "id_resample3", ... until it finds a usable item or exhausts the
// resample chain, in which case it returns ErrNoUsableItem.
func RandChoice[T Choice](e *Engine, id string, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyItemSet
	}

	e.lua = NewLuaRandom(e.GetNode(id))
	idx := e.lua.RandInt(0, int64(len(items))-1)
	item := items[idx]

	if item.Locked() || item.Retry() {
		for resample := 2; resample < MaxResample; resample++ {
			resampleID := fmt.Sprintf("%s_resample%d", id, resample)
			e.lua = NewLuaRandom(e.GetNode(resampleID))
			idx = e.lua.RandInt(0, int64(len(items))-1)
			item = items[idx]
			if !item.Retry() && !item.Locked() {
				return item, nil
			}
		}
		return zero, ErrNoUsableItem
	}
	return item, nil
}

// GetNodeAt returns the mixed node value for the legacy integer id,
// advancing that id's cached node one step. Integer ids are organized
// into fixed-size groups of idGroupSize: id%idGroupSize is the resample
// slot within the group (0 is the base draw, >=2 are resamples) and
// id/idGroupSize is the group number. Group 0's hashing is kept distinct
// from every other group for backward compatibility with the node values
// this path originally shipped with.
func (e *Engine) GetNodeAt(id int) float64 {
	current, ok := e.intNodes[id]
	if !ok {
		res := id % idGroupSize
		grp := id / idGroupSize
		seedBytes := []byte(e.seed)
		switch {
		case grp == 0 && res != 0:
			current = PseudohashWords(seedBytes, []byte("_resample"), []byte(fmt.Sprintf("%d", res)), seedBytes)
		case grp == 0:
			current = PseudohashWords(seedBytes, seedBytes)
		case res != 0:
			current = PseudohashWords([]byte("group"), []byte(fmt.Sprintf("%d", grp)), []byte("_resample"), []byte(fmt.Sprintf("%d", res)), seedBytes)
		default:
			current = PseudohashWords([]byte("group"), []byte(fmt.Sprintf("%d", grp)), seedBytes)
		}
	}

	t := current*1.72431234 + 2.134453429141
	advanced := Round13(t - math.Floor(t))
	e.intNodes[id] = advanced

	mixed := (advanced + e.hashedSeed) / 2.0
	assertFinite(mixed)
	return mixed
}

// RandomAt returns a float64 in [0, 1) drawn from the legacy integer id's
// stream.
func (e *Engine) RandomAt(id int) float64 {
	e.lua = NewLuaRandom(e.GetNodeAt(id))
	return e.lua.Random()
}

// RandIntAt returns an integer in [min, max], inclusive, drawn from the
// legacy integer id's stream.
func (e *Engine) RandIntAt(id int, min, max int64) int64 {
	e.lua = NewLuaRandom(e.GetNodeAt(id))
	return e.lua.RandInt(min, max)
}

// RandChoiceAt draws one item from items using the legacy integer id's
// stream, resampling within the same group on a locked/retry pick.
func RandChoiceAt[T Choice](e *Engine, id int, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyItemSet
	}

	e.lua = NewLuaRandom(e.GetNodeAt(id))
	idx := e.lua.RandInt(0, int64(len(items))-1)
	item := items[idx]

	if item.Locked() || item.Retry() {
		groupBase := id - (id % idGroupSize)
		for resample := 2; resample < resampleLimit; resample++ {
			e.lua = NewLuaRandom(e.GetNodeAt(groupBase + resample))
			idx = e.lua.RandInt(0, int64(len(items))-1)
			item = items[idx]
			if !item.Retry() && !item.Locked() {
				return item, nil
			}
		}
		return zero, ErrNoUsableItem
	}
	return item, nil
}
