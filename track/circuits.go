package track

// Builtin circuits. Lengths are world units; a lap on the default circuit
// takes roughly a minute at top speed.

// Circuits maps circuit names to constructors so the binary can offer a
// -track flag without any file loading.
var Circuits = map[string]func() *Road{
	"sunrise-loop": SunriseLoop,
	"hairpin-run":  HairpinRun,
	"oval":         Oval,
}

// SunriseLoop is the default circuit: long straights with sweeping esses.
func SunriseLoop() *Road {
	return NewRoad("Sunrise Loop", []Section{
		{Length: 2000, Curve: 0},
		{Length: 1200, Curve: 0.4},
		{Length: 800, Curve: 0},
		{Length: 1000, Curve: -0.6},
		{Length: 600, Curve: 0},
		{Length: 900, Curve: 0.3},
		{Length: 1400, Curve: 0},
		{Length: 700, Curve: -0.3},
		{Length: 1100, Curve: 0.5},
		{Length: 1300, Curve: 0},
	})
}

// HairpinRun alternates tight corners with short straights.
func HairpinRun() *Road {
	return NewRoad("Hairpin Run", []Section{
		{Length: 1200, Curve: 0},
		{Length: 500, Curve: 1.0},
		{Length: 400, Curve: 0},
		{Length: 500, Curve: -1.0},
		{Length: 800, Curve: 0},
		{Length: 600, Curve: 0.8},
		{Length: 300, Curve: 0},
		{Length: 600, Curve: -0.8},
		{Length: 1000, Curve: 0},
	})
}

// Oval is two straights joined by two long constant corners.
func Oval() *Road {
	return NewRoad("Oval", []Section{
		{Length: 2200, Curve: 0},
		{Length: 1400, Curve: 0.5},
		{Length: 2200, Curve: 0},
		{Length: 1400, Curve: 0.5},
	})
}
