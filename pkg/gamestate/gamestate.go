// Package gamestate maps the game's logical draw sequence — "the next
// joker offered in the shop", "this run's boss for ante 3" — onto
// concrete RNG streams keyed by seed, ante, and draw source. It is the
// layer a seed-search tool actually calls; pkg/rng and pkg/lock are its
// plumbing.
package gamestate

import (
	"balatro-seed-engine/pkg/balatro"
	"balatro-seed-engine/pkg/lock"
	"balatro-seed-engine/pkg/rng"
)

// SeenLog records every joker, tarot, planet, pack, boss, and voucher
// drawn so far on a GameState, in draw order; tag draws are not recorded.
// It exists for reproducibility and analysis, not for generation — nothing
// reads it back to influence a future draw.
type SeenLog struct {
	Jokers   []JokerDraw
	Tarots   []balatro.Tarot
	Planets  []balatro.Planet
	Packs    []balatro.Pack
	Bosses   []balatro.Boss
	Vouchers []balatro.Voucher
}

// GameState is one playthrough's RNG state: an Engine seeded for this
// run, the current ante, a log of everything drawn so far, and the lock
// registry that gates which items are currently reachable. GameState is
// not safe for concurrent use — a search across many seeds in parallel
// must construct one GameState per worker.
type GameState struct {
	rng  *rng.Engine
	Ante int
	Seen SeenLog
	lock *lock.Registry
}

// New constructs a GameState for seed at ante, with the lock registry
// initialized the way a freshly-started profile's run at that ante is:
// every ante-gated item whose gate lies above ante still locked, plus
// every fresh-profile-gated unlock, plus the sixteen tier-2 vouchers and
// the five finisher bosses.
func New(seed string, ante int) *GameState {
	g := &GameState{
		rng:  rng.NewEngine(seed),
		Ante: ante,
		lock: lock.New(),
	}
	g.lock.InitLocks(ante, true, false)
	g.lock.LockLevelTwoVouchers()
	for _, b := range balatro.AllBosses {
		if b.Locked() {
			g.lock.Lock(b.String())
		}
	}
	return g
}

// ResetSeed reseeds the engine in place and clears the draw log, leaving
// the lock registry untouched — reseeding resumes the same run on a
// different seed, it does not reset progression.
func (g *GameState) ResetSeed(seed string) {
	g.rng.ResetSeed(seed)
	g.ClearSeen()
}

// ClearSeen empties the draw log.
func (g *GameState) ClearSeen() {
	g.Seen = SeenLog{}
}

// LockLevelTwoVouchers (re-)locks the sixteen tier-2 vouchers.
func (g *GameState) LockLevelTwoVouchers() {
	g.lock.LockLevelTwoVouchers()
}

// ApplyUnlocks unlocks every name in names, e.g. from a player profile's
// save-file unlock list.
func (g *GameState) ApplyUnlocks(names []string) {
	g.lock.HandleSelectedUnlocks(names)
}

// ActivateVoucher marks v as owned (locking it against being offered
// again) and unlocks the next voucher in declaration order, mirroring a
// tier-1 voucher purchase unlocking its tier-2 successor.
func (g *GameState) ActivateVoucher(v balatro.Voucher) {
	name := v.String()
	g.lock.Lock(name)
	all := balatro.AllVouchers
	for i, candidate := range all {
		if candidate.String() == name && i+1 < len(all) {
			g.lock.Unlock(all[i+1].String())
			return
		}
	}
}
