package balatro

// Rarity classifies a joker's pool.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityLegendary
)

// Edition is a card/joker cosmetic-and-mechanical modifier.
type Edition int

const (
	EditionNone Edition = iota
	EditionFoil
	EditionHolographic
	EditionPolychrome
	EditionNegative
)

// Joker identifies a joker card. The declaration order below matches the
// reference pool order exactly, split into four contiguous rarity bands —
// RarityOf relies on that contiguity instead of a lookup table.
type Joker int

const (
	// Common
	JokerJoker Joker = iota
	JokerGreedyJoker
	JokerLustyJoker
	JokerWrathfulJoker
	JokerGluttonousJoker
	JokerJollyJoker
	JokerZanyJoker
	JokerMadJoker
	JokerCrazyJoker
	JokerDrollJoker
	JokerSlyJoker
	JokerWilyJoker
	JokerCleverJoker
	JokerDeviousJoker
	JokerCraftyJoker
	JokerHalfJoker
	JokerCreditCard
	JokerBanner
	JokerMysticSummit
	JokerEightBall
	JokerMisprint
	JokerRaisedFist
	JokerChaosTheClown
	JokerScaryFace
	JokerAbstractJoker
	JokerDelayedGratification
	JokerGrosMichel
	JokerEvenSteven
	JokerOddTodd
	JokerScholar
	JokerBusinessCard
	JokerSupernova
	JokerRideTheBus
	JokerEgg
	JokerRunner
	JokerIceCream
	JokerSplash
	JokerBlueJoker
	JokerFacelessJoker
	JokerGreenJoker
	JokerSuperposition
	JokerToDoList
	JokerCavendish
	JokerRedCard
	JokerSquareJoker
	JokerRiffRaff
	JokerPhotograph
	JokerReservedParking
	JokerMailInRebate
	JokerHallucination
	JokerFortuneTeller
	JokerJuggler
	JokerDrunkard
	JokerGoldenJoker
	JokerPopcorn
	JokerWalkieTalkie
	JokerSmileyFace
	JokerGoldenTicket
	JokerSwashbuckler
	JokerHangingChad
	JokerShootTheMoon

	// Uncommon
	JokerJokerStencil
	JokerFourFingers
	JokerMime
	JokerCeremonialDagger
	JokerMarbleJoker
	JokerLoyaltyCard
	JokerDusk
	JokerFibonacci
	JokerSteelJoker
	JokerHack
	JokerPareidolia
	JokerSpaceJoker
	JokerBurglar
	JokerBlackboard
	JokerSixthSense
	JokerConstellation
	JokerHiker
	JokerCardSharp
	JokerMadness
	JokerSeance
	JokerVampire
	JokerShortcut
	JokerHologram
	JokerCloud9
	JokerRocket
	JokerMidasMask
	JokerLuchador
	JokerGiftCard
	JokerTurtleBean
	JokerErosion
	JokerToTheMoon
	JokerStoneJoker
	JokerLuckyCat
	JokerBull
	JokerDietCola
	JokerTradingCard
	JokerFlashCard
	JokerSpareTrousers
	JokerRamen
	JokerSeltzer
	JokerCastle
	JokerMrBones
	JokerAcrobat
	JokerSockAndBuskin
	JokerTroubadour
	JokerCertificate
	JokerSmearedJoker
	JokerThrowback
	JokerRoughGem
	JokerBloodstone
	JokerArrowhead
	JokerOnyxAgate
	JokerGlassJoker
	JokerShowman
	JokerFlowerPot
	JokerMerryAndy
	JokerOopsAllSixes
	JokerTheIdol
	JokerSeeingDouble
	JokerMatador
	JokerSatellite
	JokerCartomancer
	JokerAstronomer
	JokerBootstraps

	// Rare
	JokerDNA
	JokerVagabond
	JokerBaron
	JokerObelisk
	JokerBaseballCard
	JokerAncientJoker
	JokerCampfire
	JokerBlueprint
	JokerWeeJoker
	JokerHitTheRoad
	JokerTheDuo
	JokerTheTrio
	JokerTheFamily
	JokerTheOrder
	JokerTheTribe
	JokerStuntman
	JokerInvisibleJoker
	JokerBrainstorm
	JokerDriversLicense
	JokerBurntJoker

	// Legendary
	JokerCanio
	JokerTriboulet
	JokerYorick
	JokerChicot
	JokerPerkeo
)

const (
	commonStart     = JokerJoker
	uncommonStart   = JokerJokerStencil
	rareStart       = JokerDNA
	legendaryStart  = JokerCanio
	jokerCount      = JokerPerkeo + 1
)

var jokerNames = []string{
	"Joker", "Greedy Joker", "Lusty Joker", "Wrathful Joker", "Gluttonous Joker",
	"Jolly Joker", "Zany Joker", "Mad Joker", "Crazy Joker", "Droll Joker",
	"Sly Joker", "Wily Joker", "Clever Joker", "Devious Joker", "Crafty Joker",
	"Half Joker", "Credit Card", "Banner", "Mystic Summit", "8 Ball",
	"Misprint", "Raised Fist", "Chaos the Clown", "Scary Face", "Abstract Joker",
	"Delayed Gratification", "Gros Michel", "Even Steven", "Odd Todd", "Scholar",
	"Business Card", "Supernova", "Ride the Bus", "Egg", "Runner",
	"Ice Cream", "Splash", "Blue Joker", "Faceless Joker", "Green Joker",
	"Superposition", "To Do List", "Cavendish", "Red Card", "Square Joker",
	"Riff-Raff", "Photograph", "Reserved Parking", "Mail-In Rebate", "Hallucination",
	"Fortune Teller", "Juggler", "Drunkard", "Golden Joker", "Popcorn",
	"Walkie Talkie", "Smiley Face", "Golden Ticket", "Swashbuckler", "Hanging Chad",
	"Shoot the Moon",
	"Joker Stencil", "Four Fingers", "Mime", "Ceremonial Dagger", "Marble Joker",
	"Loyalty Card", "Dusk", "Fibonacci", "Steel Joker", "Hack",
	"Pareidolia", "Space Joker", "Burglar", "Blackboard", "Sixth Sense",
	"Constellation", "Hiker", "Card Sharp", "Madness", "Seance",
	"Vampire", "Shortcut", "Hologram", "Cloud 9", "Rocket",
	"Midas Mask", "Luchador", "Gift Card", "Turtle Bean", "Erosion",
	"To the Moon", "Stone Joker", "Lucky Cat", "Bull", "Diet Cola",
	"Trading Card", "Flash Card", "Spare Trousers", "Ramen", "Seltzer",
	"Castle", "Mr. Bones", "Acrobat", "Sock and Buskin", "Troubadour",
	"Certificate", "Smeared Joker", "Throwback", "Rough Gem", "Bloodstone",
	"Arrowhead", "Onyx Agate", "Glass Joker", "Showman", "Flower Pot",
	"Merry Andy", "Oops! All 6s", "The Idol", "Seeing Double", "Matador",
	"Satellite", "Cartomancer", "Astronomer", "Bootstraps",
	"DNA", "Vagabond", "Baron", "Obelisk", "Baseball Card",
	"Ancient Joker", "Campfire", "Blueprint", "Wee Joker", "Hit the Road",
	"The Duo", "The Trio", "The Family", "The Order", "The Tribe",
	"Stuntman", "Invisible Joker", "Brainstorm", "Driver's License", "Burnt Joker",
	"Canio", "Triboulet", "Yorick", "Chicot", "Perkeo",
}

func (j Joker) String() string { return jokerNames[j] }
func (j Joker) Retry() bool     { return false }
func (j Joker) Locked() bool    { return false }

// RarityOf reports the pool a joker is drawn from.
func (j Joker) RarityOf() Rarity {
	switch {
	case j >= legendaryStart:
		return RarityLegendary
	case j >= rareStart:
		return RarityRare
	case j >= uncommonStart:
		return RarityUncommon
	default:
		return RarityCommon
	}
}

// AllJokers lists every joker in declaration order.
var AllJokers = func() []Joker {
	all := make([]Joker, jokerCount)
	for i := range all {
		all[i] = Joker(i)
	}
	return all
}()

// JokersOfRarity returns every joker belonging to r, in declaration order.
func JokersOfRarity(r Rarity) []Joker {
	var out []Joker
	for _, j := range AllJokers {
		if j.RarityOf() == r {
			out = append(out, j)
		}
	}
	return out
}
