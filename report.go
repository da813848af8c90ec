package warp

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"github.com/akeil/warp/internal/fs"
	"github.com/akeil/warp/internal/imaging"
	"github.com/akeil/warp/internal/logging"
)

const tsFormat = "2006-01-02 15:04:05"

// reportMaxSize limits the size of images embedded in a report.
const reportMaxSize = 1200

// Report collects before/after pairs and renders them as a PDF contact
// sheet, one page per image. Each page is captioned with the file name and
// the report title, which usually names the transformation.
//
// Report is a Previewer and can be passed to a Pipeline.
type Report struct {
	Title   string
	Created time.Time
	mx      sync.Mutex
	entries []reportEntry
}

type reportEntry struct {
	path        string
	original    []byte
	transformed []byte
	size        image.Point
}

// NewReport creates an empty report.
func NewReport(title string) *Report {
	return &Report{
		Title:   title,
		Created: time.Now(),
	}
}

// Preview adds a page for the given image.
// The images are encoded right away, so the caller may discard them.
func (r *Report) Preview(path string, original, transformed image.Image) {
	var a, b bytes.Buffer
	err := png.Encode(&a, imaging.Fit(original, reportMaxSize))
	if err == nil {
		err = png.Encode(&b, imaging.Fit(transformed, reportMaxSize))
	}
	if err != nil {
		logging.Warning("Failed to add %q to report: %v", path, err)
		return
	}

	r.mx.Lock()
	defer r.mx.Unlock()
	r.entries = append(r.entries, reportEntry{
		path:        path,
		original:    a.Bytes(),
		transformed: b.Bytes(),
		size:        original.Bounds().Size(),
	})
}

// Len is the number of pages in the report.
func (r *Report) Len() int {
	r.mx.Lock()
	defer r.mx.Unlock()
	return len(r.entries)
}

// WriteTo renders the PDF document and writes it to w.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	r.mx.Lock()
	defer r.mx.Unlock()

	logging.Debug("Render PDF report with %d pages", len(r.entries))
	pdf := r.setupPDF()
	for _, e := range r.entries {
		renderReportPage(pdf, r.Title, e)
	}

	var buf bytes.Buffer
	err := pdf.Output(&buf)
	if err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}

// Save writes the PDF document to the given path.
func (r *Report) Save(path string) error {
	dir := filepath.Dir(path)
	err := fs.MkdirAll(dir)
	if err != nil {
		return err
	}
	_, err = fs.WriteFile(path, func(w io.Writer) error {
		_, err := r.WriteTo(w)
		return err
	})
	return err
}

func (r *Report) setupPDF() *gofpdf.Fpdf {
	orientation := "L" // [P]ortrait or [L]andscape
	sizeUnit := "pt"
	fontDir := ""
	pdf := gofpdf.New(orientation, sizeUnit, "A4", fontDir)

	pdf.SetMargins(24, 24, 24) // left, top, right
	pdf.AliasNbPages("{totalPages}")
	pdf.SetFont("helvetica", "", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.SetProducer("warp", true)
	pdf.SetTitle(r.Title, true)
	pdf.SetCreationDate(r.Created.UTC())

	pdf.SetFooterFunc(func() {
		pdf.SetY(-20)
		pdf.SetX(24)
		pdf.Cellf(0, 10, "%d / {totalPages}  |  %v  |  %v",
			pdf.PageNo(),
			r.Title,
			r.Created.Local().Format(tsFormat))
	})

	return pdf
}

func renderReportPage(pdf *gofpdf.Fpdf, title string, e reportEntry) {
	pdf.AddPage()

	wPage, hPage := pdf.GetPageSize()
	left, top, right, _ := pdf.GetMargins()
	gap := 12.0
	captionH := 14.0

	pdf.SetXY(left, top)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.CellFormat(0, captionH, tr(e.path+"  |  "+title), "", 1, "L", false, 0, "")

	// both images get half of the usable width, keeping the aspect ratio
	w := (wPage - left - right - gap) / 2
	h := 0.0
	if e.size.X > 0 {
		h = w * float64(e.size.Y) / float64(e.size.X)
	}
	maxH := hPage - top - captionH*2 - 40
	if h > maxH {
		w = w * maxH / h
		h = maxH
	}

	y := top + captionH
	placeImage(pdf, e.original, left, y, w, h)
	placeImage(pdf, e.transformed, left+w+gap, y, w, h)

	pdf.SetXY(left, y+h+4)
	pdf.CellFormat(w, captionH, "Original", "", 0, "C", false, 0, "")
	pdf.SetXY(left+w+gap, y+h+4)
	pdf.CellFormat(w, captionH, "Transformed", "", 0, "C", false, 0, "")
}

func placeImage(pdf *gofpdf.Fpdf, data []byte, x, y, w, h float64) {
	name := uuid.New().String()
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))

	flow := false
	link := 0
	linkStr := ""
	pdf.ImageOptions(name, x, y, w, h, flow, opts, link, linkStr)
}
