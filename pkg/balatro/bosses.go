package balatro

// Boss is a boss blind.
type Boss int

const (
	BossTheArm Boss = iota
	BossTheClub
	BossTheEye
	BossAmberAcorn
	BossCeruleanBell
	BossCrimsonHeart
	BossVerdantLeaf
	BossVioletVessel
	BossTheFish
	BossTheFlint
	BossTheGoad
	BossTheHead
	BossTheHook
	BossTheHouse
	BossTheManacle
	BossTheMark
	BossTheMouth
	BossTheNeedle
	BossTheOx
	BossThePillar
	BossThePlant
	BossThePsychic
	BossTheSerpent
	BossTheTooth
	BossTheWall
	BossTheWater
	BossTheWheel
	BossTheWindow
)

var bossNames = []string{
	"The Arm", "The Club", "The Eye", "Amber Acorn", "Cerulean Bell",
	"Crimson Heart", "Verdant Leaf", "Violet Vessel", "The Fish", "The Flint",
	"The Goad", "The Head", "The Hook", "The House", "The Manacle",
	"The Mark", "The Mouth", "The Needle", "The Ox", "The Pillar",
	"The Plant", "The Psychic", "The Serpent", "The Tooth", "The Wall",
	"The Water", "The Wheel", "The Window",
}

func (b Boss) String() string { return bossNames[b] }

func (b Boss) Retry() bool { return false }

// Locked reports whether b is one of the five "finisher" bosses gated
// behind defeating every ordinary boss first.
func (b Boss) Locked() bool {
	switch b {
	case BossAmberAcorn, BossCeruleanBell, BossCrimsonHeart, BossVerdantLeaf, BossVioletVessel:
		return true
	default:
		return false
	}
}

// AllBosses lists every boss in declaration order.
var AllBosses = func() []Boss {
	all := make([]Boss, len(bossNames))
	for i := range all {
		all[i] = Boss(i)
	}
	return all
}()
