// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package recipedoc

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/thisisashwinraj/agent-after-dark/internal/imageio"
)

// Metadata is the document-level metadata embedded in composed PDFs.
type Metadata struct {
	// Title is the PDF title field.
	Title string `koanf:"title"`

	// Author is the PDF author field.
	Author string `koanf:"author"`

	// Subject is the PDF subject field.
	Subject string `koanf:"subject"`
}

// DefaultMetadata returns the metadata embedded when none is configured.
func DefaultMetadata() Metadata {
	return Metadata{
		Title:   "AI Generated Recipe",
		Author:  "agent-after-dark",
		Subject: "Recipe generated from uploaded image",
	}
}

const (
	pageMargin = 1.5 // cm

	fontFamily = "Helvetica"

	bodySize   = 10.5
	bodyLineH  = 0.5 // cm, ~14pt leading
	titleSize  = 24
	titleLineH = 1.0
	metaSize   = 11

	sectionSize  = 16
	sectionLineH = 0.7

	disclaimerSize  = 9.5
	disclaimerLineH = 0.46
	disclaimerPad   = 0.4

	ingredientColShare = 0.55
	sideImageColShare  = 0.40
)

const disclaimerText = "This recipe is generated by an AI system for educational " +
	"purposes only. Please use your own judgment while cooking. Always follow " +
	"proper safety practices, check ingredient suitability and ensure correct " +
	"procedures. The authors/developers are not responsible for any outcome " +
	"resulting from the use of this recipe."

// composeEpoch pins the PDF creation and modification dates so identical
// inputs produce byte-identical documents.
var composeEpoch = time.Unix(0, 0).UTC()

// Composer deterministically lays recipe records out as A4 PDF documents.
type Composer struct {
	meta Metadata
}

// NewComposer returns a Composer embedding meta in every document.
func NewComposer(meta Metadata) *Composer {
	return &Composer{meta: meta}
}

// Compose renders record into a PDF with heroImage at the top and beside
// the ingredient list. It returns a MissingAssetError when heroImage is
// empty or not decodable as JPEG or PNG. Output is byte-identical across
// calls with identical inputs.
func (c *Composer) Compose(record Record, heroImage []byte) ([]byte, error) {
	if len(heroImage) == 0 {
		return nil, &MissingAssetError{Reason: "recipe image is empty"}
	}
	hero, err := imageio.EncodeJPEG(heroImage)
	if err != nil {
		return nil, &MissingAssetError{Reason: "recipe image is not a decodable image", Cause: err}
	}
	info, err := imageio.Probe(hero)
	if err != nil {
		return nil, &MissingAssetError{Reason: "recipe image is not a decodable image", Cause: err}
	}
	aspect := float64(info.Height) / float64(info.Width)

	pdf := fpdf.New("P", "cm", "A4", "")
	pdf.SetTitle(c.meta.Title, true)
	pdf.SetAuthor(c.meta.Author, true)
	pdf.SetSubject(c.meta.Subject, true)
	pdf.SetCreationDate(composeEpoch)
	pdf.SetModificationDate(composeEpoch)
	// Resource dictionaries are built from maps; sort them so identical
	// inputs serialize identically.
	pdf.SetCatalogSort(true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 2*pageMargin

	heroOpts := fpdf.ImageOptions{ImageType: "JPEG"}
	pdf.RegisterImageOptionsReader("hero", heroOpts, bytes.NewReader(hero))
	pdf.ImageOptions("hero", pageMargin, pdf.GetY(), contentW, contentW*aspect, true, heroOpts, 0, "")
	pdf.Ln(0.75)

	pdf.SetFont(fontFamily, "B", titleSize)
	pdf.CellFormat(contentW, titleLineH, tr(record.Name), "", 1, "C", false, 0, "")
	pdf.Ln(0.5)

	metaY := pdf.GetY()
	metaW := contentW / 3
	c.metaCell(pdf, tr, pageMargin, metaY, metaW, "Preparation Time:", record.PrepTime)
	c.metaCell(pdf, tr, pageMargin+metaW, metaY, metaW, "Serves:", record.Serves)
	c.metaCell(pdf, tr, pageMargin+2*metaW, metaY, metaW, "Cooking Time:", record.CookTime)
	pdf.SetXY(pageMargin, metaY+bodyLineH)
	pdf.Ln(0.6)

	c.sectionTitle(pdf, contentW, "Description")
	pdf.SetFont(fontFamily, "", bodySize)
	pdf.MultiCell(contentW, bodyLineH, tr(record.Description), "", "L", false)
	pdf.Ln(0.6)

	c.sectionTitle(pdf, contentW, "Ingredients")
	listY := pdf.GetY()
	pdf.SetFont(fontFamily, "", bodySize)
	for _, item := range record.Ingredients {
		pdf.SetX(pageMargin)
		pdf.MultiCell(contentW*ingredientColShare, bodyLineH, tr("• "+item), "", "L", false)
	}
	listBottom := pdf.GetY()
	sideW := contentW * sideImageColShare
	pdf.ImageOptions("hero", pageMargin+contentW*ingredientColShare, listY, sideW, sideW*aspect, false, heroOpts, 0, "")
	pdf.SetY(math.Max(listBottom, listY+sideW*aspect))
	pdf.Ln(0.6)

	c.sectionTitle(pdf, contentW, "Preparation Steps")
	for i, step := range record.Steps {
		pdf.SetX(pageMargin)
		pdf.SetFont(fontFamily, "B", bodySize)
		pdf.Write(bodyLineH, stepLabel(i+1))
		pdf.SetFont(fontFamily, "", bodySize)
		pdf.Write(bodyLineH, tr(" "+step))
		pdf.Ln(bodyLineH + 0.1)
	}
	pdf.Ln(0.6)

	c.disclaimer(pdf, tr, contentW)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("recipedoc: writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// stepLabel is the bold prefix of the nth preparation step, 1-indexed.
func stepLabel(n int) string {
	return fmt.Sprintf("Step %d.", n)
}

// metaCell centers a bold label and its value inside one cell of the
// metadata row.
func (c *Composer) metaCell(pdf *fpdf.Fpdf, tr func(string) string, x, y, w float64, label, value string) {
	pdf.SetFont(fontFamily, "B", metaSize)
	labelW := pdf.GetStringWidth(tr(label))
	pdf.SetFont(fontFamily, "", metaSize)
	valueW := pdf.GetStringWidth(tr(" " + value))

	pdf.SetXY(x+centerOffset(w, labelW+valueW), y)
	pdf.SetFont(fontFamily, "B", metaSize)
	pdf.Write(bodyLineH, tr(label))
	pdf.SetFont(fontFamily, "", metaSize)
	pdf.Write(bodyLineH, tr(" "+value))
}

// centerOffset returns the x offset centering content of width textW inside
// a cell of width w. Content wider than the cell starts at the cell origin
// instead of bleeding into the neighboring cell.
func centerOffset(w, textW float64) float64 {
	return math.Max(0, (w-textW)/2)
}

func (c *Composer) sectionTitle(pdf *fpdf.Fpdf, contentW float64, title string) {
	pdf.SetX(pageMargin)
	pdf.SetFont(fontFamily, "B", sectionSize)
	pdf.CellFormat(contentW, sectionLineH, title, "", 1, "L", false, 0, "")
	pdf.Ln(0.2)
}

// disclaimer renders the fixed safety boilerplate inside a tinted, bordered
// box spanning the full content width.
func (c *Composer) disclaimer(pdf *fpdf.Fpdf, tr func(string) string, contentW float64) {
	textW := contentW - 2*disclaimerPad

	// Measure with the bold font so the box never undershoots the text.
	pdf.SetFont(fontFamily, "B", disclaimerSize)
	lines := pdf.SplitText(tr("Disclaimer: "+disclaimerText), textW)
	boxH := float64(len(lines))*disclaimerLineH + 2*disclaimerPad

	y := pdf.GetY()
	pdf.SetFillColor(255, 247, 204)
	pdf.SetDrawColor(211, 211, 211)
	pdf.Rect(pageMargin, y, contentW, boxH, "FD")

	pdf.SetLeftMargin(pageMargin + disclaimerPad)
	pdf.SetRightMargin(pageMargin + disclaimerPad)
	pdf.SetXY(pageMargin+disclaimerPad, y+disclaimerPad)
	pdf.SetFont(fontFamily, "B", disclaimerSize)
	pdf.Write(disclaimerLineH, "Disclaimer: ")
	pdf.SetFont(fontFamily, "", disclaimerSize)
	pdf.Write(disclaimerLineH, tr(disclaimerText))
	pdf.SetLeftMargin(pageMargin)
	pdf.SetRightMargin(pageMargin)
}
