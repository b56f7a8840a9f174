package balatro

// Planet is a planet card.
type Planet int

const (
	PlanetMercury Planet = iota
	PlanetVenus
	PlanetEarth
	PlanetMars
	PlanetJupiter
	PlanetSaturn
	PlanetUranus
	PlanetNeptune
	PlanetPluto
	PlanetPlanetX
	PlanetCeres
	PlanetEris
)

var planetNames = []string{
	"Mercury", "Venus", "Earth", "Mars", "Jupiter",
	"Saturn", "Uranus", "Neptune", "Pluto", "Planet X",
	"Ceres", "Eris",
}

func (p Planet) String() string { return planetNames[p] }
func (p Planet) Retry() bool     { return false }
func (p Planet) Locked() bool    { return false }

// AllPlanets lists every planet card in declaration order.
var AllPlanets = func() []Planet {
	all := make([]Planet, len(planetNames))
	for i := range all {
		all[i] = Planet(i)
	}
	return all
}()
