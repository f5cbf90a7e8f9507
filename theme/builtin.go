package theme

import "github.com/gdamore/tcell/v2"

func rgb(r, g, b int32) tcell.Color { return tcell.NewRGBColor(r, g, b) }

// NewDefaultRegistry registers the builtin themes. neon-night is first and
// therefore the startup default.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NeonNight())
	r.Register(SunsetCoast())
	r.Register(SandyDesert())
	r.Register(PineForest())
	r.Register(MidnightCity())
	return r
}

// NeonNight is the synthwave look: converging sky grid, holodeck ground
// grid, skyscraper skyline, dual moons.
func NeonNight() *Theme {
	bg := rgb(16, 8, 32)
	return &Theme{
		Name: "neon-night",
		Colors: Palette{
			Sky:           Style{rgb(120, 80, 200), bg},
			SkyAccent:     Style{rgb(255, 60, 180), bg},
			Stars:         Style{rgb(240, 240, 255), bg},
			Horizon:       Style{rgb(255, 60, 180), rgb(40, 12, 60)},
			Celestial:     Style{rgb(255, 220, 240), bg},
			CelestialGlow: Style{rgb(200, 90, 220), bg},
			Background:    Style{rgb(60, 30, 110), bg},
			BackgroundAlt: Style{rgb(255, 230, 120), bg},
			Road:          Style{rgb(90, 90, 120), rgb(24, 24, 40)},
			RoadAlt:       Style{rgb(110, 110, 140), rgb(32, 32, 52)},
			RoadGrid:      Style{rgb(70, 70, 110), rgb(24, 24, 40)},
			Edge:          Style{rgb(255, 60, 180), rgb(24, 24, 40)},
			Stripe:        Style{rgb(0, 255, 220), rgb(24, 24, 40)},
			Finish:        Style{rgb(255, 255, 255), rgb(0, 0, 0)},
			Ground:        Style{rgb(40, 20, 70), bg},
			GroundAlt:     Style{rgb(0, 255, 220), bg},
			Shoulder:      Style{rgb(120, 60, 180), bg},
			Sprite:        Style{rgb(0, 255, 220), bg},
			SpriteAlt:     Style{rgb(255, 60, 180), bg},
			HUDText:       Style{rgb(240, 240, 255), rgb(30, 14, 52)},
			HUDBar:        Style{rgb(0, 255, 220), rgb(30, 14, 52)},
			HUDBarHot:     Style{rgb(255, 60, 180), rgb(30, 14, 52)},
			FlashA:        Style{rgb(255, 255, 255), rgb(255, 60, 180)},
			FlashB:        Style{rgb(255, 60, 180), rgb(24, 24, 40)},
		},
		Sky:        SkyConfig{Type: SkyGrid, Converging: true, Horizontal: true},
		Background: BackgroundConfig{Type: BackgroundSkyscrapers},
		Celestial:  CelestialConfig{Type: CelestialDualMoons, Size: 3, X: 0.72, Y: 0.30},
		Stars:      StarsConfig{Enabled: true, Density: 0.02, Twinkle: true},
		Ground:     GroundConfig{Type: GroundGrid},
		Roadside: RoadsideConfig{
			Pool: []PoolEntry{
				{Sprite: "streetlight", Weight: 4, Side: SideBoth},
				{Sprite: "billboard", Weight: 2, Side: SideRight},
				{Sprite: "palm", Weight: 3, Side: SideBoth},
			},
			Spacing: 60,
			Density: 1,
		},
	}
}

// SunsetCoast is a warm gradient sky over an animated ocean.
func SunsetCoast() *Theme {
	bg := rgb(60, 20, 40)
	return &Theme{
		Name: "sunset-coast",
		Colors: Palette{
			Sky:           Style{rgb(255, 150, 90), bg},
			SkyAccent:     Style{rgb(255, 200, 120), bg},
			Stars:         Style{rgb(255, 240, 220), bg},
			Horizon:       Style{rgb(255, 120, 60), rgb(90, 30, 50)},
			Celestial:     Style{rgb(255, 230, 120), bg},
			CelestialGlow: Style{rgb(255, 150, 70), bg},
			Background:    Style{rgb(30, 60, 110), rgb(20, 30, 70)},
			BackgroundAlt: Style{rgb(220, 240, 255), rgb(20, 30, 70)},
			Road:          Style{rgb(110, 100, 100), rgb(44, 38, 42)},
			RoadAlt:       Style{rgb(130, 120, 120), rgb(54, 46, 50)},
			RoadGrid:      Style{rgb(90, 80, 84), rgb(44, 38, 42)},
			Edge:          Style{rgb(255, 255, 255), rgb(200, 60, 50)},
			Stripe:        Style{rgb(255, 230, 120), rgb(44, 38, 42)},
			Finish:        Style{rgb(255, 255, 255), rgb(0, 0, 0)},
			Ground:        Style{rgb(220, 190, 130), rgb(120, 95, 60)},
			GroundAlt:     Style{rgb(180, 150, 100), rgb(120, 95, 60)},
			Shoulder:      Style{rgb(240, 220, 170), rgb(120, 95, 60)},
			Sprite:        Style{rgb(40, 140, 70), bg},
			SpriteAlt:     Style{rgb(255, 200, 60), bg},
			HUDText:       Style{rgb(255, 245, 230), rgb(70, 25, 45)},
			HUDBar:        Style{rgb(255, 200, 120), rgb(70, 25, 45)},
			HUDBarHot:     Style{rgb(255, 80, 60), rgb(70, 25, 45)},
			FlashA:        Style{rgb(255, 255, 255), rgb(255, 120, 60)},
			FlashB:        Style{rgb(255, 120, 60), rgb(44, 38, 42)},
		},
		Sky:        SkyConfig{Type: SkyGradient},
		Background: BackgroundConfig{Type: BackgroundOcean, Waves: true},
		Celestial:  CelestialConfig{Type: CelestialSun, Size: 4, X: 0.28, Y: 0.42},
		Stars:      StarsConfig{},
		Ground:     GroundConfig{Type: GroundSolid},
		Roadside: RoadsideConfig{
			Pool: []PoolEntry{
				{Sprite: "palm", Weight: 5, Side: SideBoth},
				{Sprite: "rock", Weight: 2, Side: SideLeft},
				{Sprite: "sign", Weight: 1, Side: SideRight},
			},
			Spacing: 50,
			Density: 1.5,
		},
	}
}

// SandyDesert is a dry plain-sky theme with sand ripples and mountains.
func SandyDesert() *Theme {
	bg := rgb(150, 190, 230)
	return &Theme{
		Name: "sandy-desert",
		Colors: Palette{
			Sky:           Style{rgb(210, 230, 250), bg},
			SkyAccent:     Style{rgb(240, 245, 255), bg},
			Stars:         Style{rgb(255, 255, 255), bg},
			Horizon:       Style{rgb(180, 140, 90), rgb(170, 130, 85)},
			Celestial:     Style{rgb(255, 240, 160), bg},
			CelestialGlow: Style{rgb(255, 210, 110), bg},
			Background:    Style{rgb(160, 110, 80), bg},
			BackgroundAlt: Style{rgb(230, 200, 160), bg},
			Road:          Style{rgb(130, 115, 100), rgb(70, 60, 52)},
			RoadAlt:       Style{rgb(145, 130, 115), rgb(82, 70, 60)},
			RoadGrid:      Style{rgb(104, 92, 80), rgb(70, 60, 52)},
			Edge:          Style{rgb(250, 250, 250), rgb(190, 70, 50)},
			Stripe:        Style{rgb(250, 230, 140), rgb(70, 60, 52)},
			Finish:        Style{rgb(255, 255, 255), rgb(0, 0, 0)},
			Ground:        Style{rgb(225, 195, 130), rgb(205, 170, 105)},
			GroundAlt:     Style{rgb(185, 150, 95), rgb(205, 170, 105)},
			Shoulder:      Style{rgb(240, 215, 150), rgb(205, 170, 105)},
			Sprite:        Style{rgb(60, 130, 60), bg},
			SpriteAlt:     Style{rgb(230, 120, 60), bg},
			HUDText:       Style{rgb(40, 30, 20), rgb(235, 210, 150)},
			HUDBar:        Style{rgb(180, 90, 40), rgb(235, 210, 150)},
			HUDBarHot:     Style{rgb(210, 40, 30), rgb(235, 210, 150)},
			FlashA:        Style{rgb(255, 255, 255), rgb(210, 40, 30)},
			FlashB:        Style{rgb(210, 40, 30), rgb(70, 60, 52)},
		},
		Sky:        SkyConfig{Type: SkyPlain},
		Background: BackgroundConfig{Type: BackgroundMountains},
		Celestial:  CelestialConfig{Type: CelestialSun, Size: 3, X: 0.78, Y: 0.22},
		Stars:      StarsConfig{},
		Ground: GroundConfig{
			Type: GroundSand,
			Sand: &SandParams{Ripples: []rune{'~', '≈', '-'}},
		},
		Roadside: RoadsideConfig{
			Pool: []PoolEntry{
				{Sprite: "cactus", Weight: 4, Side: SideBoth},
				{Sprite: "rock", Weight: 4, Side: SideBoth},
				{Sprite: "sign", Weight: 2, Side: SideRight},
			},
			Spacing: 70,
			Density: 1,
		},
	}
}

// PineForest is a cool night drive through a treeline under stars.
func PineForest() *Theme {
	bg := rgb(8, 16, 28)
	return &Theme{
		Name: "pine-forest",
		Colors: Palette{
			Sky:           Style{rgb(90, 110, 150), bg},
			SkyAccent:     Style{rgb(130, 150, 190), bg},
			Stars:         Style{rgb(235, 240, 255), bg},
			Horizon:       Style{rgb(30, 60, 40), rgb(14, 30, 22)},
			Celestial:     Style{rgb(230, 230, 210), bg},
			CelestialGlow: Style{rgb(150, 160, 170), bg},
			Background:    Style{rgb(20, 70, 45), bg},
			BackgroundAlt: Style{rgb(40, 110, 70), bg},
			Road:          Style{rgb(85, 90, 95), rgb(30, 32, 36)},
			RoadAlt:       Style{rgb(100, 105, 110), rgb(38, 40, 45)},
			RoadGrid:      Style{rgb(66, 70, 76), rgb(30, 32, 36)},
			Edge:          Style{rgb(220, 220, 220), rgb(30, 32, 36)},
			Stripe:        Style{rgb(230, 210, 110), rgb(30, 32, 36)},
			Finish:        Style{rgb(255, 255, 255), rgb(0, 0, 0)},
			Ground:        Style{rgb(30, 70, 35), rgb(16, 40, 22)},
			GroundAlt:     Style{rgb(60, 110, 55), rgb(16, 40, 22)},
			Shoulder:      Style{rgb(90, 80, 55), rgb(16, 40, 22)},
			Sprite:        Style{rgb(35, 110, 55), bg},
			SpriteAlt:     Style{rgb(130, 90, 50), bg},
			HUDText:       Style{rgb(220, 235, 225), rgb(14, 32, 24)},
			HUDBar:        Style{rgb(90, 200, 120), rgb(14, 32, 24)},
			HUDBarHot:     Style{rgb(240, 120, 60), rgb(14, 32, 24)},
			FlashA:        Style{rgb(255, 255, 255), rgb(240, 120, 60)},
			FlashB:        Style{rgb(240, 120, 60), rgb(30, 32, 36)},
		},
		Sky:        SkyConfig{Type: SkyStars},
		Background: BackgroundConfig{Type: BackgroundForest},
		Celestial:  CelestialConfig{Type: CelestialMoon, Size: 2, X: 0.22, Y: 0.25},
		Stars:      StarsConfig{Enabled: true, Density: 0.035, Twinkle: true},
		Ground: GroundConfig{
			Type:  GroundGrass,
			Grass: &GrassParams{Glyphs: []rune{'\'', '"', ',', '`'}, Density: 0.3},
		},
		Roadside: RoadsideConfig{
			Pool: []PoolEntry{
				{Sprite: "pine", Weight: 6, Side: SideBoth},
				{Sprite: "rock", Weight: 2, Side: SideBoth},
			},
			Spacing: 45,
			Density: 2,
		},
	}
}

// MidnightCity is a muted urban night with dithered pavement.
func MidnightCity() *Theme {
	bg := rgb(10, 12, 20)
	return &Theme{
		Name: "midnight-city",
		Colors: Palette{
			Sky:           Style{rgb(70, 80, 110), bg},
			SkyAccent:     Style{rgb(100, 110, 140), bg},
			Stars:         Style{rgb(225, 230, 245), bg},
			Horizon:       Style{rgb(50, 55, 75), rgb(22, 25, 38)},
			Celestial:     Style{rgb(235, 235, 225), bg},
			CelestialGlow: Style{rgb(140, 145, 160), bg},
			Background:    Style{rgb(35, 40, 60), bg},
			BackgroundAlt: Style{rgb(250, 230, 140), bg},
			Road:          Style{rgb(95, 95, 105), rgb(34, 34, 42)},
			RoadAlt:       Style{rgb(110, 110, 120), rgb(42, 42, 52)},
			RoadGrid:      Style{rgb(74, 74, 84), rgb(34, 34, 42)},
			Edge:          Style{rgb(240, 240, 240), rgb(34, 34, 42)},
			Stripe:        Style{rgb(240, 220, 120), rgb(34, 34, 42)},
			Finish:        Style{rgb(255, 255, 255), rgb(0, 0, 0)},
			Ground:        Style{rgb(45, 48, 60), rgb(24, 26, 34)},
			GroundAlt:     Style{rgb(70, 74, 90), rgb(24, 26, 34)},
			Shoulder:      Style{rgb(90, 94, 110), rgb(24, 26, 34)},
			Sprite:        Style{rgb(120, 130, 150), bg},
			SpriteAlt:     Style{rgb(250, 230, 140), bg},
			HUDText:       Style{rgb(230, 235, 245), rgb(20, 22, 34)},
			HUDBar:        Style{rgb(120, 180, 250), rgb(20, 22, 34)},
			HUDBarHot:     Style{rgb(250, 110, 90), rgb(20, 22, 34)},
			FlashA:        Style{rgb(255, 255, 255), rgb(250, 110, 90)},
			FlashB:        Style{rgb(250, 110, 90), rgb(34, 34, 42)},
		},
		Sky:        SkyConfig{Type: SkyStars},
		Background: BackgroundConfig{Type: BackgroundSkyscrapers},
		Celestial:  CelestialConfig{Type: CelestialMoon, Size: 2, X: 0.68, Y: 0.2},
		Stars:      StarsConfig{Enabled: true, Density: 0.015, Twinkle: false},
		Ground: GroundConfig{
			Type:   GroundDither,
			Dither: &DitherParams{Glyphs: []rune{'░', '▒', '.'}, Density: 0.22},
		},
		Roadside: RoadsideConfig{
			Pool: []PoolEntry{
				{Sprite: "streetlight", Weight: 5, Side: SideBoth},
				{Sprite: "sign", Weight: 2, Side: SideRight},
				{Sprite: "billboard", Weight: 2, Side: SideLeft},
			},
			Spacing: 55,
			Density: 1,
		},
	}
}
