package render

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/nikolayk812/indukitchen/internal/domain"
	"github.com/nikolayk812/indukitchen/internal/port"
)

const (
	logoName = "logo"

	lineHeight = 8.0
	rowHeight  = 10.0
)

var (
	tableHeaders = []string{"Producto", "Cantidad", "Precio Unitario", "Precio Total"}
	columnWidths = []float64{80, 25, 40, 40}
)

type Config struct {
	// LogoPath is optional; an unreadable or undecodable logo is skipped.
	LogoPath string
	Timeout  time.Duration
	// Compress deflates page content streams.
	Compress bool
}

type PDFRenderer struct {
	logo     []byte
	logoType string
	timeout  time.Duration
	compress bool
}

func NewPDFRenderer(cfg Config) *PDFRenderer {
	r := &PDFRenderer{
		timeout:  cfg.Timeout,
		compress: cfg.Compress,
	}

	if cfg.LogoPath == "" {
		return r
	}

	data, err := os.ReadFile(cfg.LogoPath)
	if err != nil {
		slog.Warn("logo is not readable, rendering without it",
			"method", "render.NewPDFRenderer",
			"path", cfg.LogoPath,
			"error", err)
		return r
	}

	return r.WithLogo(data, strings.TrimPrefix(filepath.Ext(cfg.LogoPath), "."))
}

// WithLogo sets the logo image; imageType is one of png, jpg, jpeg or gif.
func (r *PDFRenderer) WithLogo(data []byte, imageType string) *PDFRenderer {
	r.logo = data
	r.logoType = strings.ToLower(imageType)
	return r
}

var _ port.InvoiceRenderer = (*PDFRenderer)(nil)

func (r *PDFRenderer) Render(ctx context.Context, invoice domain.ResolvedInvoice) ([]byte, error) {
	if invoice.Cart == nil {
		return nil, nil
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	if err := ctx.Err(); err != nil {
		return nil, &domain.RenderError{Err: err}
	}

	type result struct {
		data []byte
		err  error
	}

	// buffered, the goroutine never blocks after a timeout
	done := make(chan result, 1)

	go func() {
		data, err := r.render(invoice)
		done <- result{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, &domain.RenderError{Err: ctx.Err()}
	case res := <-done:
		if res.err != nil {
			return nil, &domain.RenderError{Err: res.err}
		}
		return res.data, nil
	}
}

func (r *PDFRenderer) render(invoice domain.ResolvedInvoice) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	r.drawLogo(pdf)

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, lineHeight+2, tr("Factura"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, lineHeight, tr(fmt.Sprintf("Factura ID: %d", invoice.Invoice.ID)), "", 1, "L", false, 0, "")

	if c := invoice.Customer; c != nil {
		pdf.CellFormat(0, lineHeight, tr("Cliente: "+c.Name), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, lineHeight, tr("Correo: "+c.Email), "", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	drawTableHeader(pdf, tr)

	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottomMargin := pdf.GetMargins()

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range invoice.Lines() {
		if pdf.GetY()+rowHeight > pageHeight-bottomMargin {
			pdf.AddPage()
			drawTableHeader(pdf, tr)
			pdf.SetFont("Helvetica", "", 10)
		}

		cells := []string{
			line.Name,
			fmt.Sprint(line.Quantity),
			domain.FormatAmount(line.UnitPrice),
			domain.FormatAmount(line.Total),
		}
		for i, cell := range cells {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(columnWidths[i], rowHeight, tr(cell), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	totals := invoice.Totals()

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	for _, summary := range []string{
		"Total: " + domain.FormatAmount(totals.Subtotal),
		"IVA (19%): " + domain.FormatAmount(totals.Tax),
		"Total + IVA: " + domain.FormatAmount(totals.Total),
	} {
		pdf.CellFormat(0, lineHeight, tr(summary), "", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf.Output: %w", err)
	}

	return buf.Bytes(), nil
}

func (r *PDFRenderer) drawLogo(pdf *fpdf.Fpdf) {
	if len(r.logo) == 0 {
		return
	}

	opts := fpdf.ImageOptions{ImageType: r.logoType, ReadDpi: true}

	pdf.RegisterImageOptionsReader(logoName, opts, bytes.NewReader(r.logo))
	if pdf.Err() {
		slog.Warn("logo is not decodable, rendering without it",
			"method", "PDFRenderer.drawLogo",
			"error", pdf.Error())
		pdf.ClearError()
		return
	}

	pdf.ImageOptions(logoName, 10, 10, 30, 0, true, opts, 0, "")
	pdf.Ln(2)
}

func drawTableHeader(pdf *fpdf.Fpdf, tr func(string) string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)

	for i, header := range tableHeaders {
		pdf.CellFormat(columnWidths[i], rowHeight, tr(header), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}
