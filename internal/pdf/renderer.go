package pdf

import (
	"bytes"
	"fmt"
	"time"

	"resume-api/internal/domain"

	"github.com/go-pdf/fpdf"
)

// Renderer turns a resume into a parchment-styled, paginated PDF. It only
// ever reads the snapshot it is given, so it is safe to call concurrently.
type Renderer struct{}

func NewRenderer() *Renderer { return &Renderer{} }

// Document metadata dates are pinned so identical resumes produce
// byte-identical output.
var pinnedDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Render produces the PDF bytes for the given resume snapshot.
func (rd *Renderer) Render(r *domain.Resume) ([]byte, error) {
	return layout(buildStory(r))
}

// layout flows the story onto letter-sized pages. Every page, including
// pages created by automatic breaks, gets the parchment decoration first.
func layout(story []flowable) ([]byte, error) {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetCreationDate(pinnedDate)
	doc.SetModificationDate(pinnedDate)
	doc.SetMargins(72, 72, 72)
	doc.SetAutoPageBreak(true, 72)
	doc.SetHeaderFunc(func() { drawParchment(doc) })

	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	for _, f := range story {
		switch f.kind {
		case flowSpacer:
			doc.SetY(doc.GetY() + f.gap)
		case flowParagraph:
			st := f.sty
			if st.before > 0 {
				doc.SetY(doc.GetY() + st.before)
			}
			doc.SetFont("Times", st.variant, st.size)
			doc.SetTextColor(st.color[0], st.color[1], st.color[2])
			doc.MultiCell(0, st.size*1.3, tr(f.text), "", st.align, false)
			if st.after > 0 {
				doc.SetY(doc.GetY() + st.after)
			}
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("build pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// drawParchment fills the page with a warm cream background and draws the
// two-layer decorative border.
func drawParchment(doc *fpdf.Fpdf) {
	w, h := doc.GetPageSize()

	doc.SetFillColor(244, 241, 232)
	doc.Rect(0, 0, w, h, "F")

	doc.SetLineWidth(2)
	doc.SetDrawColor(139, 69, 19) // saddle brown
	doc.Rect(50, 50, w-100, h-100, "D")

	doc.SetLineWidth(1)
	doc.SetDrawColor(160, 82, 45) // sienna
	doc.Rect(60, 60, w-120, h-120, "D")
}
