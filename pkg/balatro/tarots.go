package balatro

// Tarot is a tarot card.
type Tarot int

const (
	TarotTheFool Tarot = iota
	TarotTheMagician
	TarotTheHighPriestess
	TarotTheEmpress
	TarotTheEmperor
	TarotTheHierophant
	TarotTheLovers
	TarotTheChariot
	TarotJustice
	TarotTheHermit
	TarotTheWheelOfFortune
	TarotStrength
	TarotTheHangedMan
	TarotDeath
	TarotTemperance
	TarotTheDevil
	TarotTheTower
	TarotTheStar
	TarotTheMoon
	TarotTheSun
	TarotJudgement
	TarotTheWorld
)

var tarotNames = []string{
	"The Fool", "The Magician", "The High Priestess", "The Empress", "The Emperor",
	"The Hierophant", "The Lovers", "The Chariot", "Justice", "The Hermit",
	"The Wheel Of Fortune", "Strength", "The Hanged Man", "Death", "Temperance",
	"The Devil", "The Tower", "The Star", "The Moon", "The Sun",
	"Judgement", "The World",
}

func (t Tarot) String() string { return tarotNames[t] }
func (t Tarot) Retry() bool     { return false }
func (t Tarot) Locked() bool    { return false }

// AllTarots lists every tarot card in declaration order.
var AllTarots = func() []Tarot {
	all := make([]Tarot, len(tarotNames))
	for i := range all {
		all[i] = Tarot(i)
	}
	return all
}()
