package cards

import (
	"fmt"
	"image"
	"image/color"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/qusai-Kagalwala/repo-vista/pkg/logger"
)

// cardPalette defines the fixed colors the renderer paints with; language
// segments use each entry's own color token.
type cardPalette struct {
	Background color.RGBA // page background
	Surface    color.RGBA // card body
	BarTrack   color.RGBA // empty language bar
	Text       color.RGBA // headline text
	Subtext    color.RGBA // description, stats, legend
	Accent     color.RGBA // owner prefix
}

var darkPalette = cardPalette{
	Background: color.RGBA{10, 22, 40, 255},    // deep navy
	Surface:    color.RGBA{17, 32, 54, 255},    // raised navy
	BarTrack:   color.RGBA{26, 42, 63, 255},    // muted blue-gray
	Text:       color.RGBA{226, 232, 240, 255}, // off-white
	Subtext:    color.RGBA{148, 163, 184, 255}, // slate
	Accent:     color.RGBA{197, 160, 78, 255},  // gold
}

const (
	cardW = 1000
	cardH = 500

	cardMargin = 28.0
	barX       = 64.0
	barY       = 330.0
	barH       = 20.0
	qrSize     = 120
)

// candidate font files; the first one that loads wins, otherwise gg's
// built-in face is used
var fontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/Library/Fonts/Arial.ttf",
}

func loadFace(dc *gg.Context, points float64) {
	for _, p := range fontPaths {
		if err := dc.LoadFontFace(p, points); err == nil {
			return
		}
	}
}

// RenderCard draws the preview card PNG for a cached repository at destPath.
// The avatar and QR code are best-effort; a card renders fine without them.
func RenderCard(c *Card, destPath string) error {
	pal := darkPalette

	dc := gg.NewContext(cardW, cardH)
	dc.SetColor(pal.Background)
	dc.Clear()

	dc.SetColor(pal.Surface)
	dc.DrawRoundedRectangle(cardMargin, cardMargin, cardW-2*cardMargin, cardH-2*cardMargin, 16)
	dc.Fill()

	// avatar top-left, falling back to a plain header when unavailable
	textX := barX
	if c.AvatarURL != nil {
		if avatar, err := fetchAvatar(*c.AvatarURL); err == nil {
			dc.DrawImage(avatar, int(barX), 64)
			textX = barX + 64 + 20
		} else {
			logger.Debug("image: avatar unavailable", logger.Fields{"card": c.FullName()}, logger.WithError(err))
		}
	}

	loadFace(dc, 30)
	dc.SetColor(pal.Accent)
	ownerW, _ := dc.MeasureString(c.Owner + "/")
	dc.DrawStringAnchored(c.Owner+"/", textX, 88, 0, 0.5)
	dc.SetColor(pal.Text)
	dc.DrawStringAnchored(c.Repo, textX+ownerW, 88, 0, 0.5)

	loadFace(dc, 18)
	dc.SetColor(pal.Subtext)
	if c.Description != nil {
		dc.DrawStringAnchored(truncate(*c.Description, 84), barX, 180, 0, 0.5)
	}
	dc.DrawStringAnchored(fmt.Sprintf("Stars %d    Forks %d", c.Stars, c.Forks), barX, 224, 0, 0.5)

	drawLanguageBar(dc, c, pal)
	drawQR(dc, c)

	dir := filepath.Dir(destPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return dc.SavePNG(destPath)
}

// drawLanguageBar paints the proportional segments and their legend; segment
// width is percentage/100 of the full track.
func drawLanguageBar(dc *gg.Context, c *Card, pal cardPalette) {
	barW := float64(cardW) - 2*barX

	dc.SetColor(pal.BarTrack)
	dc.DrawRoundedRectangle(barX, barY, barW, barH, barH/2)
	dc.Fill()

	x := barX
	for _, e := range c.Languages {
		segW := float64(e.Percentage) / 100 * barW
		if segW <= 0 {
			continue
		}
		dc.SetHexColor(e.ColorToken)
		dc.DrawRectangle(x, barY, segW, barH)
		dc.Fill()
		x += segW
	}

	// legend: colored dot, name, share
	loadFace(dc, 16)
	lx := barX
	ly := barY + 48
	for _, e := range c.Languages {
		dc.SetHexColor(e.ColorToken)
		dc.DrawCircle(lx+6, ly, 6)
		dc.Fill()

		label := fmt.Sprintf("%s %d%%", e.Name, e.Percentage)
		dc.SetColor(pal.Subtext)
		dc.DrawStringAnchored(label, lx+20, ly, 0, 0.35)
		w, _ := dc.MeasureString(label)

		lx += 20 + w + 28
		if lx > float64(cardW)-220 {
			lx = barX
			ly += 32
		}
	}
}

// drawQR puts a QR code for the repository URL in the lower right corner.
func drawQR(dc *gg.Context, c *Card) {
	q, err := qrcode.New(c.HTMLURL(), qrcode.Medium)
	if err != nil {
		logger.Debug("image: qr generation failed", logger.Fields{"card": c.FullName()}, logger.WithError(err))
		return
	}
	dc.DrawImage(q.Image(qrSize), cardW-cardMargin-qrSize-24, 64)
}

// fetchAvatar downloads and resizes the owner avatar for the card header.
func fetchAvatar(url string) (image.Image, error) {
	client := http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("avatar fetch returned %d", resp.StatusCode)
	}
	img, err := imaging.Decode(resp.Body)
	if err != nil {
		return nil, err
	}
	return imaging.Resize(img, 64, 64, imaging.Lanczos), nil
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
