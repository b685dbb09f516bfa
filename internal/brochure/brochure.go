// Package brochure renders the one-page PDF handout for a service. The QR
// code in the corner links back to the service page.
package brochure

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// Letter size in mm.
const (
	pageWidth  = 215.9
	marginLeft = 20.0
	qrSizeMM   = 32.0
	qrPixels   = 256
)

// Feature is one capability bullet on the handout.
type Feature struct {
	Title  string
	Detail string
}

// Info is everything the handout shows.
type Info struct {
	Name        string
	Tagline     string
	Description string
	ComingSoon  bool
	Features    []Feature
	PageURL     string
	SiteName    string
	ContactLine string
}

// Generate writes the PDF to w.
func Generate(info Info, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetTitle(fmt.Sprintf("%s - %s", info.SiteName, info.Name), false)
	pdf.AddPage()

	// Header band
	pdf.SetFillColor(49, 46, 129)
	pdf.Rect(0, 0, pageWidth, 42, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetXY(marginLeft, 10)
	pdf.CellFormat(0, 6, info.SiteName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetXY(marginLeft, 20)
	pdf.CellFormat(0, 10, info.Name, "", 1, "L", false, 0, "")

	// Tagline
	pdf.SetTextColor(55, 65, 81)
	pdf.SetFont("Helvetica", "I", 14)
	pdf.SetXY(marginLeft, 52)
	pdf.CellFormat(0, 8, info.Tagline, "", 1, "L", false, 0, "")

	if info.ComingSoon {
		pdf.SetTextColor(180, 83, 9)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetXY(marginLeft, 62)
		pdf.CellFormat(0, 6, "Coming soon - join the waitlist on our site", "", 1, "L", false, 0, "")
	}

	// Description
	pdf.SetTextColor(31, 41, 55)
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetXY(marginLeft, 72)
	pdf.MultiCell(pageWidth-2*marginLeft, 6, info.Description, "", "L", false)

	// Feature bullets
	y := pdf.GetY() + 8
	pdf.SetXY(marginLeft, y)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "What it does", "", 1, "L", false, 0, "")
	for _, f := range info.Features {
		pdf.SetX(marginLeft)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 6, "- "+f.Title, "", 1, "L", false, 0, "")
		pdf.SetX(marginLeft + 5)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(pageWidth-2*marginLeft-5, 5, f.Detail, "", "L", false)
		pdf.Ln(2)
	}

	// QR code linking to the page, bottom right
	if info.PageURL != "" {
		qrPNG, err := qrcode.Encode(info.PageURL, qrcode.Medium, qrPixels)
		if err != nil {
			return fmt.Errorf("failed to generate QR code: %w", err)
		}

		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("page-qr", opts, bytes.NewReader(qrPNG))
		qrX := pageWidth - marginLeft - qrSizeMM
		qrY := 230.0
		pdf.ImageOptions("page-qr", qrX, qrY, qrSizeMM, qrSizeMM, false, opts, 0, "")

		pdf.SetTextColor(107, 114, 128)
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetXY(qrX-4, qrY+qrSizeMM+2)
		pdf.CellFormat(qrSizeMM+8, 5, "Scan to learn more", "", 0, "C", false, 0, "")
	}

	// Footer contact line
	if info.ContactLine != "" {
		pdf.SetTextColor(107, 114, 128)
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetXY(marginLeft, 262)
		pdf.CellFormat(0, 5, info.ContactLine, "", 0, "L", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}
