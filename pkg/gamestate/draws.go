package gamestate

import (
	"fmt"

	"balatro-seed-engine/pkg/balatro"
	"balatro-seed-engine/pkg/rng"
)

func maxAnte(ante int) int {
	if ante < 1 {
		return 1
	}
	return ante
}

// JokerDraw is one resolved joker offer: the joker itself plus the
// rarity pool and edition it was rolled from.
type JokerDraw struct {
	Joker   balatro.Joker
	Rarity  balatro.Rarity
	Edition balatro.Edition
}

// NextJokerFromAtAnte resolves a full joker offer the way the shop does:
// rarity and edition are rolled first from the draw context, then the
// joker itself is drawn from the matching rarity pool. Soul and Wraith
// packs, and rare/uncommon tags, force a fixed rarity instead of rolling
// one.
func (g *GameState) NextJokerFromAtAnte(source balatro.Source, ante int) (JokerDraw, error) {
	ante = maxAnte(ante)

	var rarity balatro.Rarity
	switch source {
	case balatro.SourceSoul:
		rarity = balatro.RarityLegendary
	case balatro.SourceWraith, balatro.SourceRareTag:
		rarity = balatro.RarityRare
	case balatro.SourceUncommonTag:
		rarity = balatro.RarityUncommon
	default:
		x := g.rng.Random(fmt.Sprintf("rarity%d%s", ante, source.Code()))
		switch {
		case x > 0.95:
			rarity = balatro.RarityRare
		case x > 0.7:
			rarity = balatro.RarityUncommon
		default:
			rarity = balatro.RarityCommon
		}
	}

	edition := resolveEdition(g.rng.Random(fmt.Sprintf("edi%s%d", source.Code(), ante)))

	var id string
	switch rarity {
	case balatro.RarityLegendary:
		id = "Joker4"
	case balatro.RarityRare:
		id = fmt.Sprintf("Joker3%s%d", source.Code(), ante)
	case balatro.RarityUncommon:
		id = fmt.Sprintf("Joker2%s%d", source.Code(), ante)
	default:
		id = fmt.Sprintf("Joker1%s%d", source.Code(), ante)
	}

	joker, err := rng.RandChoice(g.rng, id, balatro.JokersOfRarity(rarity))
	if err != nil {
		return JokerDraw{}, err
	}

	draw := JokerDraw{Joker: joker, Rarity: rarity, Edition: edition}
	g.Seen.Jokers = append(g.Seen.Jokers, draw)
	return draw, nil
}

func resolveEdition(x float64) balatro.Edition {
	switch {
	case x > 0.997:
		return balatro.EditionNegative
	case x > 1.0-0.006:
		return balatro.EditionPolychrome
	case x > 1.0-0.02:
		return balatro.EditionHolographic
	case x > 1.0-0.04:
		return balatro.EditionFoil
	default:
		return balatro.EditionNone
	}
}

// NextTarotFromAtAnte draws the next tarot card offered from source at
// ante.
func (g *GameState) NextTarotFromAtAnte(source balatro.Source, ante int) (balatro.Tarot, error) {
	ante = maxAnte(ante)
	id := fmt.Sprintf("Tarot%s%d", source.Code(), ante)
	choice, err := rng.RandChoice(g.rng, id, balatro.AllTarots)
	if err != nil {
		return 0, err
	}
	g.Seen.Tarots = append(g.Seen.Tarots, choice)
	return choice, nil
}

// NextPlanetFromAtAnte draws the next planet card offered from source at
// ante.
func (g *GameState) NextPlanetFromAtAnte(source balatro.Source, ante int) (balatro.Planet, error) {
	ante = maxAnte(ante)
	id := fmt.Sprintf("Planet%s%d", source.Code(), ante)
	choice, err := rng.RandChoice(g.rng, id, balatro.AllPlanets)
	if err != nil {
		return 0, err
	}
	g.Seen.Planets = append(g.Seen.Planets, choice)
	return choice, nil
}

// NextPackFrom draws the next booster pack offered from source.
func (g *GameState) NextPackFrom(source balatro.Source) (balatro.Pack, error) {
	id := fmt.Sprintf("Pack%s", source.Code())
	choice, err := rng.RandChoice(g.rng, id, balatro.AllPacks)
	if err != nil {
		return 0, err
	}
	g.Seen.Packs = append(g.Seen.Packs, choice)
	return choice, nil
}

// NextBoss draws this run's boss for the current ante, applying and then
// resolving this ante's unlocks first. Unlike NextTarotFromAtAnte /
// NextPlanetFromAtAnte, boss resolution cannot use the generic
// RandChoice resample loop: whether a boss is drawable depends on the
// run's lock registry, not on a static property of the Boss type, so the
// resample condition is checked against g.lock directly.
func (g *GameState) NextBoss() (balatro.Boss, error) {
	g.lock.InitUnlocks(g.Ante, false)
	return resampleLocked(g, "boss", balatro.AllBosses, func(b balatro.Boss) bool {
		return g.lock.IsLocked(b.String())
	}, &g.Seen.Bosses)
}

// NextVoucher draws the shop's first voucher offer (ante 1), applying
// this ante's unlocks first.
func (g *GameState) NextVoucher() (balatro.Voucher, error) {
	g.lock.InitUnlocks(g.Ante, false)
	return resampleLocked(g, "Voucher1", balatro.AllVouchers, func(v balatro.Voucher) bool {
		return g.lock.IsLocked(v.String())
	}, &g.Seen.Vouchers)
}

// NextVoucherFromAtAnte draws the voucher offer for ante, applying that
// ante's unlocks first.
func (g *GameState) NextVoucherFromAtAnte(ante int) (balatro.Voucher, error) {
	ante = maxAnte(ante)
	g.lock.InitUnlocks(ante, false)
	id := fmt.Sprintf("Voucher%d", ante)
	return resampleLocked(g, id, balatro.AllVouchers, func(v balatro.Voucher) bool {
		return g.lock.IsLocked(v.String())
	}, &g.Seen.Vouchers)
}

// resampleLocked implements the hand-rolled resample loop shared by boss
// and voucher draws: unlike RandChoice, "locked" here is a predicate over
// external registry state rather than the Choice interface, so it can't
// reuse rng.RandChoice directly. It is a standalone generic function, not
// a method, because Go methods cannot carry their own type parameters.
func resampleLocked[T fmt.Stringer](g *GameState, baseID string, items []T, isLocked func(T) bool, seen *[]T) (T, error) {
	var zero T
	id := baseID
	for resample := 2; ; resample++ {
		node := g.rng.GetNode(id)
		lua := rng.NewLuaRandom(node)
		idx := int(lua.Random() * float64(len(items)))
		if idx >= len(items) {
			idx = len(items) - 1
		}
		choice := items[idx]
		if !isLocked(choice) {
			*seen = append(*seen, choice)
			return choice, nil
		}
		if resample >= rng.MaxResample {
			return zero, rng.ErrNoUsableItem
		}
		id = fmt.Sprintf("%s_resample%d", baseID, resample)
	}
}

// NextTagFromAtAnte draws the tag offered at ante. Tag draws are never
// filtered by lock state.
func (g *GameState) NextTagFromAtAnte(ante int) (balatro.Tag, error) {
	ante = maxAnte(ante)
	id := fmt.Sprintf("Tag%d", ante)
	return rng.RandChoice(g.rng, id, balatro.AllTags)
}

// NextTagKFromAtAnte draws k tags for ante in sequence and returns the
// last one, advancing the stream exactly as if NextTagFromAtAnte had
// been called k times.
func (g *GameState) NextTagKFromAtAnte(ante int, k int) (balatro.Tag, error) {
	var last balatro.Tag
	var err error
	for i := 0; i < k; i++ {
		last, err = g.NextTagFromAtAnte(ante)
		if err != nil {
			return 0, err
		}
	}
	return last, nil
}

// DebugTagOnce draws the tag for ante and returns the intermediate values
// behind the draw (the composed id, the mixed node value, the raw
// LuaRandom sample, the resolved index, and the tag's name) for
// diagnosing a mismatch against a reference trace.
func (g *GameState) DebugTagOnce(ante int) (id string, mixed float64, sample float64, idx int, name string) {
	ante = maxAnte(ante)
	id = fmt.Sprintf("Tag%d", ante)
	mixed = g.rng.GetNode(id)
	lua := rng.NewLuaRandom(mixed)
	sample = lua.Random()
	idx = int(sample * float64(len(balatro.AllTags)))
	if idx >= len(balatro.AllTags) {
		idx = len(balatro.AllTags) - 1
	}
	name = balatro.AllTags[idx].String()
	return id, mixed, sample, idx, name
}
