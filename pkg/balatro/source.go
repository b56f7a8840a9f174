// Package balatro holds the closed enumerations a draw can resolve to —
// tags, bosses, vouchers, tarots, planets, packs, and jokers — along with
// the id-string codes used to key an RNG stream by the context a draw
// happened in.
package balatro

// Source identifies which shop/pack context a draw is happening in. It
// feeds into id-string composition, not into the draw itself.
type Source int

const (
	SourceShop Source = iota
	SourceSoul
	SourceBuffoonPack
	SourceWraith
	SourceRareTag
	SourceUncommonTag
	SourceArcana
	SourceCelestial
)

// Code returns the short id fragment this source contributes to a
// composed node id, e.g. "Joker1sho2" for a common joker drawn in the
// shop at ante 2.
func (s Source) Code() string {
	switch s {
	case SourceShop:
		return "sho"
	case SourceBuffoonPack:
		return "buf"
	case SourceWraith:
		return "wra"
	case SourceRareTag:
		return "rta"
	case SourceUncommonTag:
		return "uta"
	case SourceSoul:
		return "sou"
	case SourceArcana:
		return "ar1"
	case SourceCelestial:
		return "pl1"
	default:
		return ""
	}
}

func (s Source) String() string {
	return s.Code()
}
