package renderers

import (
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/render"
	"github.com/lixenwraith/road-fighter/theme"
)

func TestOrdinalSuffixes(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "1st"},
		{2, "2nd"},
		{3, "3rd"},
		{4, "4th"},
		{7, "7th"},
		{11, "11th"},
		{12, "12th"},
		{13, "13th"},
		{21, "21st"},
		{22, "22nd"},
		{23, "23rd"},
		{111, "111th"},
		{101, "101st"},
	}
	for _, tt := range tests {
		if got := Ordinal(tt.n); got != tt.want {
			t.Errorf("Ordinal(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatLapTime(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"Zero", 0, "0:00.0"},
		{"Under a second", 700 * time.Millisecond, "0:00.7"},
		{"Seconds and tenths", 42*time.Second + 300*time.Millisecond, "0:42.3"},
		{"Over a minute", 95 * time.Second, "1:35.0"},
		{"Many minutes", 10*time.Minute + 5*time.Second, "10:05.0"},
		{"Negative clamps to zero", -3 * time.Second, "0:00.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLapTime(tt.d); got != tt.want {
				t.Errorf("FormatLapTime(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func hudContext() render.RenderContext {
	ctx := testContext(80, 24)
	ctx.HUD = render.HUDData{
		Lap:         2,
		TotalLaps:   3,
		Position:    1,
		LapTime:     42 * time.Second,
		Speed:       150,
		MaxSpeed:    300,
		LapProgress: 0.5,
	}
	return ctx
}

func hudRowString(buf *render.RenderBuffer, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		c := buf.Get(x, 0)
		if c.Rune == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

func fullBar(width int) string {
	return "[" + strings.Repeat("▮", width) + "]"
}

func emptyBar(width int) string {
	return "[" + strings.Repeat("·", width) + "]"
}

func TestHUDRenderShowsRaceState(t *testing.T) {
	h := NewHUDRenderer(theme.NewDefaultRegistry())
	buf := render.NewRenderBuffer(80, 24)
	ctx := hudContext()

	h.Render(ctx, buf)
	row := hudRowString(buf, 80)

	for _, want := range []string{"LAP 2/3", "POS 1st", "TIME 0:42.0", "SPD", "TRK"} {
		if !strings.Contains(row, want) {
			t.Errorf("HUD row missing %q: %q", want, row)
		}
	}
}

func TestHUDBarFillProportions(t *testing.T) {
	h := NewHUDRenderer(theme.NewDefaultRegistry())
	buf := render.NewRenderBuffer(80, 24)

	ctx := hudContext()
	ctx.HUD.Speed = 300 // full
	ctx.HUD.LapProgress = 0
	h.Render(ctx, buf)
	row := hudRowString(buf, 80)

	if !strings.Contains(row, fullBar(constants.SpeedBarWidth)) {
		t.Errorf("full speed bar not fully filled: %q", row)
	}
	if !strings.Contains(row, emptyBar(constants.ProgressBarWidth)) {
		t.Errorf("zero progress bar not empty: %q", row)
	}
}

func TestHUDBarClampsRatio(t *testing.T) {
	h := NewHUDRenderer(theme.NewDefaultRegistry())
	buf := render.NewRenderBuffer(80, 24)

	ctx := hudContext()
	ctx.HUD.Speed = 900 // past max
	ctx.HUD.LapProgress = -0.4
	h.Render(ctx, buf)
	row := hudRowString(buf, 80)

	if !strings.Contains(row, fullBar(constants.SpeedBarWidth)) {
		t.Errorf("overspeed bar not clamped full: %q", row)
	}
	if !strings.Contains(row, emptyBar(constants.ProgressBarWidth)) {
		t.Errorf("negative progress bar not clamped empty: %q", row)
	}
}

func TestHUDOnlyTouchesTopRows(t *testing.T) {
	h := NewHUDRenderer(theme.NewDefaultRegistry())
	buf := render.NewRenderBuffer(80, 24)
	ctx := hudContext()

	h.Render(ctx, buf)
	for y := constants.HUDHeight; y < 24; y++ {
		for x := 0; x < 80; x++ {
			if buf.Touched(x, y) {
				t.Fatalf("HUD wrote outside its band at (%d,%d)", x, y)
			}
		}
	}
}
