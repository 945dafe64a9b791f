package mandel

import (
	"maps"
	"slices"
	"strings"
)

// Classic regions / landmarks in the Mandelbrot set
var (
	// Full view of the set
	FullSet = Plane{
		UpperLeft:  complex(-2.5, 1.25),
		LowerRight: complex(1.0, -1.25),
	}

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Plane{
		UpperLeft:  complex(-0.8, 0.15),
		LowerRight: complex(-0.7, 0.05),
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Plane{
		UpperLeft:  complex(-1.85, -0.02),
		LowerRight: complex(-1.75, -0.10),
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Plane{
		UpperLeft:  complex(-0.7435, 0.1325),
		LowerRight: complex(-0.7420, 0.1310),
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Plane{
		UpperLeft:  complex(-0.7480, 0.0980),
		LowerRight: complex(-0.7450, 0.0950),
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Plane{
		UpperLeft:  complex(-0.7400, 0.1850),
		LowerRight: complex(-0.7350, 0.1800),
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Plane{
		UpperLeft:  complex(-1.7390, -0.0220),
		LowerRight: complex(-1.7375, -0.0235),
	}
)

var presets = map[string]Plane{
	"full-set":                FullSet,
	"seahorse-valley":         SeahorseValley,
	"elephant-valley":         ElephantValley,
	"spiral-minibrot":         SpiralMinibrot,
	"triple-spiral":           TripleSpiral,
	"valley-of-the-dragon":    ValleyOfTheDragon,
	"minibrot-in-mini-spiral": MinibrotInMiniSpiral,
}

// LookupPreset finds a named region. Case, '_' and ' ' versus '-' are ignored,
// so "Seahorse_Valley" finds "seahorse-valley".
func LookupPreset(name string) (Plane, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	pl, ok := presets[key]
	return pl, ok
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(presets))
}
