// Package lock implements the lock/unlock registry that gates which
// jokers, tags, bosses, and vouchers a draw is allowed to resolve to at a
// given point in profile/run progression.
package lock

// Registry tracks locked and unlocked item names. Unlocking always wins
// over locking: an item present in both lists is treated as unlocked.
type Registry struct {
	locked   []string
	unlocked []string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

func pushUnique(list []string, name string) []string {
	for _, s := range list {
		if s == name {
			return list
		}
	}
	return append(list, name)
}

// Lock adds name to the locked set.
func (r *Registry) Lock(name string) {
	r.locked = pushUnique(r.locked, name)
}

// LockMany locks every name in names.
func (r *Registry) LockMany(names []string) {
	for _, n := range names {
		r.Lock(n)
	}
}

// Unlock adds name to the unlocked set.
func (r *Registry) Unlock(name string) {
	r.unlocked = pushUnique(r.unlocked, name)
}

// UnlockMany unlocks every name in names.
func (r *Registry) UnlockMany(names []string) {
	for _, n := range names {
		r.Unlock(n)
	}
}

// IsLocked reports whether name is currently locked. An explicit unlock
// overrides any lock.
func (r *Registry) IsLocked(name string) bool {
	for _, s := range r.unlocked {
		if s == name {
			return false
		}
	}
	for _, s := range r.locked {
		if s == name {
			return true
		}
	}
	return false
}

// HandleSelectedUnlocks unlocks every name the caller reports as already
// unlocked on the player's profile (e.g. from save-file options).
func (r *Registry) HandleSelectedUnlocks(selected []string) {
	r.UnlockMany(selected)
}

// InitLocks seeds the registry for a fresh game at the given ante,
// matching the ante-gated progression of the base game: items unlock at
// fixed antes regardless of profile state, while fresh_profile and
// fresh_run add additional locks for content that is gated behind
// meta-progression rather than ante.
func (r *Registry) InitLocks(ante int, freshProfile, freshRun bool) {
	if ante < 2 {
		r.LockMany(ordinaryBosses)
		r.LockMany(ordinaryTags)
	}
	if ante < 3 {
		r.LockMany([]string{"The Tooth", "The Eye"})
	}
	if ante < 4 {
		r.Lock("The Plant")
	}
	if ante < 5 {
		r.Lock("The Serpent")
	}
	if ante < 6 {
		r.Lock("The Ox")
	}

	if freshProfile {
		r.LockMany(freshProfileLocks)
	}
	if freshRun {
		r.LockMany(freshRunLocks)
	}
}

// InitUnlocks unlocks the items that become available at exactly this
// ante. Unlike InitLocks this is called every time the ante advances, not
// just at game start.
func (r *Registry) InitUnlocks(ante int, freshProfile bool) {
	switch ante {
	case 2:
		r.UnlockMany(ordinaryBosses)
		r.UnlockMany(ordinaryTags)
		if !freshProfile {
			r.Unlock("Negative Tag")
		}
	case 3:
		r.UnlockMany([]string{"The Tooth", "The Eye"})
	case 4:
		r.Unlock("The Plant")
	case 5:
		r.Unlock("The Serpent")
	case 6:
		r.Unlock("The Ox")
	}
}

// LockLevelTwoVouchers locks the sixteen tier-2 vouchers that require
// their tier-1 prerequisite to be bought first.
func (r *Registry) LockLevelTwoVouchers() {
	r.LockMany(levelTwoVouchers)
}

var ordinaryBosses = []string{
	"The Mouth", "The Fish", "The Wall", "The House", "The Mark",
	"The Wheel", "The Arm", "The Water", "The Needle", "The Flint",
}

var ordinaryTags = []string{
	"Standard Tag", "Meteor Tag", "Buffoon Tag", "Handy Tag",
	"Garbage Tag", "Ethereal Tag", "Top-up Tag", "Orbital Tag",
}

var levelTwoVouchers = []string{
	"Overstock Plus", "Liquidation", "Glow Up", "Reroll Glut", "Omen Globe",
	"Observatory", "Nacho Tong", "Recyclomancy", "Tarot Tycoon", "Planet Tycoon",
	"Money Tree", "Antimatter", "Illusion", "Petroglyph", "Retcon", "Palette",
}

var freshProfileLocks = []string{
	"Negative Tag", "Foil Tag", "Holographic Tag", "Polychrome Tag", "Rare Tag",
	"Golden Ticket", "Mr. Bones", "Acrobat", "Sock and Buskin", "Swashbuckler", "Troubadour",
	"Certificate", "Smeared Joker", "Throwback", "Hanging Chad", "Rough Gem", "Bloodstone",
	"Arrowhead", "Onyx Agate", "Glass Joker",
	"Showman", "Flower Pot", "Blueprint", "Wee Joker", "Merry Andy", "Oops! All 6s", "The Idol",
	"Seeing Double", "Matador", "Hit the Road", "The Duo", "The Trio", "The Family", "The Order", "The Tribe",
	"Stuntman", "Invisible Joker", "Brainstorm", "Satellite", "Shoot the Moon", "Driver's License",
	"Cartomancer", "Astronomer", "Burnt Joker", "Bootstraps",
	"Overstock Plus", "Liquidation", "Glow Up", "Reroll Glut", "Omen Globe", "Observatory",
	"Nacho Tong", "Recyclomancy", "Tarot Tycoon", "Planet Tycoon", "Money Tree", "Antimatter",
	"Illusion", "Petroglyph", "Retcon", "Palette",
}

var freshRunLocks = []string{
	"Planet X", "Ceres", "Eris",
	"Stone Joker", "Steel Joker", "Glass Joker", "Golden Ticket", "Lucky Cat",
	"Cavendish", "Overstock Plus", "Liquidation", "Glow Up", "Reroll Glut", "Omen Globe",
	"Observatory", "Nacho Tong", "Recyclomancy", "Tarot Tycoon", "Planet Tycoon", "Money Tree",
	"Antimatter", "Illusion", "Petroglyph", "Retcon", "Palette",
}
