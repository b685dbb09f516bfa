package ogimage

import (
	"fmt"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// Standard Open Graph card size.
const (
	CardWidth  = 1200
	CardHeight = 630
)

// Brand gradient endpoints.
var (
	gradTop    = color.RGBA{R: 0x1e, G: 0x1b, B: 0x4b, A: 0xff}
	gradBottom = color.RGBA{R: 0x43, G: 0x38, B: 0xca, A: 0xff}
)

// PageInfo describes one page's social card.
type PageInfo struct {
	Title    string
	Tagline  string
	SiteName string
}

// GenerateOGImage renders a social sharing card for a page. The background is
// drawn rather than loaded so generation never depends on asset files.
func GenerateOGImage(page PageInfo, outputPath string) error {
	dc := gg.NewContext(CardWidth, CardHeight)

	grad := gg.NewLinearGradient(0, 0, CardWidth, CardHeight)
	grad.AddColorStop(0, gradTop)
	grad.AddColorStop(1, gradBottom)
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, CardWidth, CardHeight)
	dc.Fill()

	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		slog.Error("failed to parse font", "error", err)
		return fmt.Errorf("parse font: %w", err)
	}

	// Site name, small, top left
	dc.SetRGB(1, 1, 1)
	face := truetype.NewFace(font, &truetype.Options{Size: 34})
	dc.SetFontFace(face)
	dc.DrawString(page.SiteName, 80, 110)

	// Accent rule under the site name
	dc.SetRGBA(1, 1, 1, 0.35)
	dc.DrawRectangle(80, 132, 220, 4)
	dc.Fill()

	// Page title, large, centered
	dc.SetRGB(1, 1, 1)
	face = truetype.NewFace(font, &truetype.Options{Size: 72})
	dc.SetFontFace(face)
	title := truncateText(page.Title, 34)
	dc.DrawStringAnchored(title, CardWidth/2, CardHeight/2, 0.5, 0.5)

	// Tagline beneath the title
	if page.Tagline != "" {
		face = truetype.NewFace(font, &truetype.Options{Size: 36})
		dc.SetFontFace(face)
		dc.SetRGBA(1, 1, 1, 0.85)
		tagline := truncateText(page.Tagline, 60)
		dc.DrawStringAnchored(tagline, CardWidth/2, CardHeight/2+80, 0.5, 0.5)
	}

	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		slog.Error("failed to create output directory", "error", err, "dir", outputDir)
		return fmt.Errorf("create output dir: %w", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		slog.Error("failed to create output file", "error", err, "path", outputPath)
		return fmt.Errorf("create output file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, dc.Image()); err != nil {
		slog.Error("failed to encode PNG", "error", err)
		return fmt.Errorf("encode PNG: %w", err)
	}

	slog.Debug("generated OG image", "title", page.Title, "output", outputPath)
	return nil
}

// truncateText truncates text to maxLength characters
func truncateText(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}
	return text[:maxLength-3] + "..."
}
