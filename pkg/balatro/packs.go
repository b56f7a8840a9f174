package balatro

// Pack is a booster pack kind.
type Pack int

const (
	PackBuffoon Pack = iota
	PackArcana
	PackSpectral
	PackPlanet
)

var packNames = []string{"Buffoon", "Arcana", "Spectral", "Planet"}

func (p Pack) String() string { return packNames[p] }
func (p Pack) Retry() bool     { return false }
func (p Pack) Locked() bool    { return false }

// AllPacks lists every pack kind in declaration order.
var AllPacks = []Pack{PackBuffoon, PackArcana, PackSpectral, PackPlanet}
