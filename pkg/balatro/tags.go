package balatro

// Tag is a small-blind/big-blind reward tag.
type Tag int

const (
	TagUncommon Tag = iota
	TagRare
	TagNegative
	TagFoil
	TagHolographic
	TagPolychrome
	TagInvestment
	TagVoucher
	TagBoss
	TagStandard
	TagCharm
	TagMeteor
	TagBuffoon
	TagHandy
	TagGarbage
	TagEthereal
	TagCoupon
	TagDouble
	TagJuggle
	TagD6
	TagTopUp
	TagSpeed
	TagOrbital
	TagEconomy
)

var tagNames = []string{
	"Uncommon Tag", "Rare Tag", "Negative Tag", "Foil Tag", "Holographic Tag",
	"Polychrome Tag", "Investment Tag", "Voucher Tag", "Boss Tag", "Standard Tag",
	"Charm Tag", "Meteor Tag", "Buffoon Tag", "Handy Tag", "Garbage Tag",
	"Ethereal Tag", "Coupon Tag", "Double Tag", "Juggle Tag", "D6 Tag",
	"Top-up Tag", "Speed Tag", "Orbital Tag", "Economy Tag",
}

func (t Tag) String() string { return tagNames[t] }

// Retry and Locked always report false: tag draws are never filtered by
// lock state, unlike bosses and vouchers.
func (t Tag) Retry() bool  { return false }
func (t Tag) Locked() bool { return false }

// AllTags lists every tag in declaration order, the draw pool order used
// by RandChoice.
var AllTags = func() []Tag {
	all := make([]Tag, len(tagNames))
	for i := range all {
		all[i] = Tag(i)
	}
	return all
}()
