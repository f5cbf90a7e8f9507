package sprite

// artSpec is the colorless source of a sprite: one rune grid per tier with
// ' ' transparent, plus the set of runes rendered in the accent color.
type artSpec struct {
	tiers   [TierCount][]string
	accents map[rune]bool
}

// Scenery art. Tier 0 is the horizon-adjacent dot, tier 4 the nearest.
var sceneryArt = map[string]artSpec{
	"palm": {
		tiers: [TierCount][]string{
			{"."},
			{"¥"},
			{
				`\!/`,
				` | `,
			},
			{
				` \=/ `,
				`~ | ~`,
				`  |  `,
			},
			{
				` \\!// `,
				`~~ | ~~`,
				`   |   `,
				`   |   `,
			},
		},
		accents: map[rune]bool{'~': true},
	},
	"cactus": {
		tiers: [TierCount][]string{
			{"."},
			{"+"},
			{
				`|/`,
				`|`,
			},
			{
				`\|/`,
				` | `,
				` | `,
			},
			{
				`\ | /`,
				` \|/ `,
				`  |  `,
				`  |  `,
			},
		},
	},
	"pine": {
		tiers: [TierCount][]string{
			{"."},
			{"^"},
			{
				`^`,
				`|`,
			},
			{
				` ^ `,
				`/|\`,
				` | `,
			},
			{
				`  ^  `,
				` /|\ `,
				`//|\\`,
				`  |  `,
			},
		},
	},
	"rock": {
		tiers: [TierCount][]string{
			{"."},
			{"o"},
			{`(@)`},
			{
				` __ `,
				`(@@)`,
			},
			{
				`  ___  `,
				` /@@@\ `,
				`(@@@@@)`,
			},
		},
		accents: map[rune]bool{'@': true},
	},
	"streetlight": {
		tiers: [TierCount][]string{
			{"."},
			{"!"},
			{
				`*`,
				`|`,
			},
			{
				`,*`,
				` |`,
				` |`,
			},
			{
				`,--*`,
				`|   `,
				`|   `,
				`|   `,
			},
		},
		accents: map[rune]bool{'*': true},
	},
	"billboard": {
		tiers: [TierCount][]string{
			{"."},
			{"#"},
			{
				`[#]`,
				` | `,
			},
			{
				`[###]`,
				`  |  `,
				`  |  `,
			},
			{
				`[#####]`,
				`[#####]`,
				`   |   `,
				`   |   `,
			},
		},
		accents: map[rune]bool{'#': true},
	},
	"sign": {
		tiers: [TierCount][]string{
			{"."},
			{"▫"},
			{
				`<>`,
				`| `,
			},
			{
				`<=>`,
				` | `,
			},
			{
				`<===>`,
				`  |  `,
				`  |  `,
			},
		},
		accents: map[rune]bool{'=': true},
	},
}

// Vehicle art, viewed from behind. Body cells get recolored with the
// vehicle's livery at draw time; accent cells (wheels, glass) keep theirs.
var vehicleArt = map[string]artSpec{
	"sedan": {
		tiers: [TierCount][]string{
			{"."},
			{"▪"},
			{
				`███`,
				`o o`,
			},
			{
				`▄███▄`,
				`█████`,
				` o o `,
			},
			{
				` _____ `,
				`|█████|`,
				`|█████|`,
				` o   o `,
			},
		},
		accents: map[rune]bool{'o': true, '_': true, '|': true},
	},
	"truck": {
		tiers: [TierCount][]string{
			{"."},
			{"▪"},
			{
				`███`,
				`o o`,
			},
			{
				`█████`,
				`█████`,
				`o   o`,
			},
			{
				`┌─────┐`,
				`│█████│`,
				`│█████│`,
				` o   o `,
			},
		},
		accents: map[rune]bool{'o': true, '┌': true, '┐': true, '│': true, '─': true},
	},
	"racer": {
		tiers: [TierCount][]string{
			{"."},
			{"▪"},
			{
				`▟█▙`,
				`o o`,
			},
			{
				` ▄█▄ `,
				`▟███▙`,
				`o   o`,
			},
			{
				`  ▄█▄  `,
				` ▟███▙ `,
				`▟█████▙`,
				`o     o`,
			},
		},
		accents: map[rune]bool{'o': true},
	},
}

// VehicleTypeNames maps an NPC type index to its art name.
var VehicleTypeNames = []string{"sedan", "truck", "racer"}

// PlayerVehicle is the art used for the player's car.
const PlayerVehicle = "racer"
