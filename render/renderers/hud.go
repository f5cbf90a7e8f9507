package renderers

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/render"
	"github.com/lixenwraith/road-fighter/theme"
)

// HUDRenderer draws the textual overlay on the top row: lap, position, lap
// time, speed and progress bars. Pure formatting of precomputed HUDData;
// no projection math, no race logic.
type HUDRenderer struct {
	themes *theme.Registry
}

// NewHUDRenderer creates the HUD renderer.
func NewHUDRenderer(themes *theme.Registry) *HUDRenderer {
	return &HUDRenderer{themes: themes}
}

// Ordinal renders a 1-based race position with its English suffix.
func Ordinal(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return fmt.Sprintf("%dth", n)
	}
	switch n % 10 {
	case 1:
		return fmt.Sprintf("%dst", n)
	case 2:
		return fmt.Sprintf("%dnd", n)
	case 3:
		return fmt.Sprintf("%drd", n)
	default:
		return fmt.Sprintf("%dth", n)
	}
}

// FormatLapTime renders a lap duration as m:ss.t.
func FormatLapTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	tenths := int(d.Milliseconds()/100) % 10
	return fmt.Sprintf("%d:%02d.%d", m, s, tenths)
}

// Render implements render.SystemRenderer.
func (h *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	th := h.themes.Current()
	if th == nil {
		return
	}
	textStyle := th.Colors.HUDText.Tcell()
	barStyle := th.Colors.HUDBar.Tcell()
	hotStyle := th.Colors.HUDBarHot.Tcell()

	for y := 0; y < constants.HUDHeight; y++ {
		for x := 0; x < ctx.Width; x++ {
			buf.Set(x, y, ' ', textStyle)
		}
	}

	hud := ctx.HUD
	x := 1
	x = h.drawText(buf, x, 0, fmt.Sprintf("LAP %d/%d", hud.Lap, hud.TotalLaps), textStyle)
	x = h.drawText(buf, x+2, 0, fmt.Sprintf("POS %s", Ordinal(hud.Position)), textStyle)
	x = h.drawText(buf, x+2, 0, fmt.Sprintf("TIME %s", FormatLapTime(hud.LapTime)), textStyle)

	speedRatio := 0.0
	if hud.MaxSpeed > 0 {
		speedRatio = hud.Speed / hud.MaxSpeed
	}
	speedStyle := barStyle
	if speedRatio > constants.HotSpeedRatio {
		speedStyle = hotStyle
	}
	x = h.drawText(buf, x+2, 0, "SPD", textStyle)
	x = h.drawBar(buf, x+1, 0, constants.SpeedBarWidth, speedRatio, speedStyle, textStyle)

	x = h.drawText(buf, x+2, 0, "TRK", textStyle)
	h.drawBar(buf, x+1, 0, constants.ProgressBarWidth, hud.LapProgress, barStyle, textStyle)
}

// drawText writes a string and returns the next free column.
func (h *HUDRenderer) drawText(buf *render.RenderBuffer, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		buf.Set(x, y, r, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

// drawBar writes a bracketed run of filled vs empty glyphs proportional to
// ratio and returns the next free column.
func (h *HUDRenderer) drawBar(buf *render.RenderBuffer, x, y, width int, ratio float64, fillStyle, frameStyle tcell.Style) int {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(width))

	buf.Set(x, y, '[', frameStyle)
	x++
	for i := 0; i < width; i++ {
		if i < filled {
			buf.Set(x, y, '▮', fillStyle)
		} else {
			buf.Set(x, y, '·', frameStyle)
		}
		x++
	}
	buf.Set(x, y, ']', frameStyle)
	return x + 1
}
