// Package pdf renders a fetched page of player records as the downloadable
// roster document. Rendering is a pure function of the already-validated
// data: it performs no datastore access.
package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/tsimard/playerdex/internal/model"
)

// column layout, in page units (mm)
var (
	colWidths  = []float64{15, 30, 60, 20, 60}
	colHeaders = []string{"#", "Avatar", "Username", "Level", "Last Connection"}
)

const rowHeight = 18

// Render writes the roster document for one page of players
func Render(w io.Writer, players []model.Player) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 12, fmt.Sprintf("Players (%d)", len(players)), "", 1, "L", false, 0, "")
	doc.Ln(2)

	doc.SetFont("Helvetica", "B", 13)
	for i, header := range colHeaders {
		doc.CellFormat(colWidths[i], 9, header, "1", 0, "C", false, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 11)
	for _, p := range players {
		renderRow(doc, &p)
	}

	return doc.Output(w)
}

func renderRow(doc *fpdf.Fpdf, p *model.Player) {
	x, y := doc.GetXY()

	doc.CellFormat(colWidths[0], rowHeight, fmt.Sprintf("%d", p.ID), "1", 0, "C", false, 0, "")
	doc.CellFormat(colWidths[1], rowHeight, "", "1", 0, "C", false, 0, "")
	placeAvatar(doc, p, x+colWidths[0], y)
	doc.CellFormat(colWidths[2], rowHeight, p.Username, "1", 0, "L", false, 0, "")
	doc.CellFormat(colWidths[3], rowHeight, fmt.Sprintf("%d", p.Level), "1", 0, "C", false, 0, "")

	lastConn := ""
	if p.LastConnection != nil {
		lastConn = p.LastConnection.Format("1/2/2006, 3:04:05 PM")
	}
	doc.CellFormat(colWidths[4], rowHeight, lastConn, "1", 1, "L", false, 0, "")
}

// placeAvatar draws the embedded profile picture inside the avatar cell.
// Players without a decodable picture keep an empty cell.
func placeAvatar(doc *fpdf.Fpdf, p *model.Player, x, y float64) {
	imageType := ""
	switch p.ProfilePicMIME() {
	case "image/png":
		imageType = "PNG"
	case "image/jpeg":
		imageType = "JPG"
	default:
		return
	}

	data, err := base64.StdEncoding.DecodeString(p.ProfilePicPayload())
	if err != nil {
		return
	}

	name := fmt.Sprintf("avatar-%d", p.ID)
	opts := fpdf.ImageOptions{ImageType: imageType}
	doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	doc.ImageOptions(name, x+2, y+2, colWidths[1]-4, rowHeight-4, false, opts, 0, "")
}
