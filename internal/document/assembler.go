package document

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/saharshred/renu-biome/internal/entity"
	"github.com/saharshred/renu-biome/pkg/logger"
	"github.com/saharshred/renu-biome/pkg/metric"

	"github.com/go-pdf/fpdf"
)

const (
	_pageCenterX   = 105
	_lineLeftX     = 15
	_lineRightX    = 195
	_totalsRightX  = 180
	_defaultLogoW  = 50
	_defaultLogoH  = 18
	_maxLogoBytes  = 2 << 20
	_defaultLogoTO = 3 * time.Second
)

// Assembler renders a submitted purchase order into a PDF document.
type Assembler struct {
	log     logger.Logger
	metrics metric.Document

	logoRef     string
	logoTimeout time.Duration
	httpClient  *http.Client
}

type Option func(*Assembler)

func WithLogo(ref string) Option {
	return func(a *Assembler) {
		a.logoRef = ref
	}
}

func WithLogoFetchTimeout(timeout time.Duration) Option {
	return func(a *Assembler) {
		a.logoTimeout = timeout
	}
}

func NewAssembler(log logger.Logger, metrics metric.Document, opts ...Option) *Assembler {
	a := &Assembler{
		log:         log,
		metrics:     metrics,
		logoTimeout: _defaultLogoTO,
	}

	for _, opt := range opts {
		opt(a)
	}

	a.httpClient = &http.Client{Timeout: a.logoTimeout}

	return a
}

// Filename returns the download filename for a purchase order document.
func Filename(poNumber string) string {
	if poNumber == "" {
		poNumber = "unnamed"
	}
	return fmt.Sprintf("PurchaseOrder_%s.pdf", poNumber)
}

// Assemble renders the order snapshot. The document's creation date is pinned
// to the order's submission time so repeated renders of the same order produce
// identical bytes.
func (a *Assembler) Assemble(ctx context.Context, order *entity.PurchaseOrder) ([]byte, error) {
	const op = "document.Assembler.Assemble"

	start := time.Now()
	defer func() {
		a.metrics.ObserveDuration(time.Since(start))
	}()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(order.SubmittedAt)
	pdf.SetModificationDate(order.SubmittedAt)
	pdf.AddPage()

	y := 20.0
	if logo, imageType, err := a.loadLogo(ctx); err != nil {
		if a.logoRef != "" {
			a.metrics.AssetFailure("logo")
			a.log.Warnw("logo unavailable, rendering without it",
				"operation", op,
				"logo", a.logoRef,
				"error", err,
			)
		}
	} else {
		opt := fpdf.ImageOptions{ImageType: imageType, ReadDpi: false}
		pdf.RegisterImageOptionsReader("logo", opt, bytes.NewReader(logo))
		pdf.ImageOptions("logo", 80, 8, _defaultLogoW, _defaultLogoH, false, opt, 0, "")
		y = 32.0
	}

	pdf.SetFont("Helvetica", "B", 20)
	centerText(pdf, _pageCenterX, y, "Purchase Order")
	y += 10

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetDrawColor(46, 204, 113)
	pdf.Line(_lineLeftX, y, _lineRightX, y)
	y += 6

	labelValue(pdf, y, "PO Number:", 45, order.PONumber)
	y += 7
	labelValue(pdf, y, "Site Number:", 45, order.SiteNumber)
	y += 10

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(_lineLeftX, y, "Delivery Address:")
	pdf.SetFont("Helvetica", "", 12)
	y += 6
	pdf.Text(20, y, order.Address.Street)
	y += 6
	pdf.Text(20, y, fmt.Sprintf("%s, %s %s", order.Address.City, order.Address.State, order.Address.Zip))
	y += 6
	pdf.Text(20, y, "Phone: "+order.Address.Phone)
	y += 10

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(_lineLeftX, y, "Order Items:")
	y += 7

	for i, line := range order.Lines {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Text(20, y, fmt.Sprintf("%d. %s (%s)", i+1, line.Name, line.Size))
		y += 6
		pdf.SetFont("Helvetica", "", 12)
		pdf.Text(25, y, fmt.Sprintf("Gallons: %d    Price: $%s/gallon    Total: $%s",
			line.Quantity,
			line.UnitPrice.StringFixed(2),
			line.LineTotal.StringFixed(2),
		))
		y += 7
	}
	y += 5

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(_lineLeftX, y, "Delivery Method:")
	pdf.SetFont("Helvetica", "", 12)
	deliveryName := ""
	if order.Delivery != nil {
		deliveryName = order.Delivery.Name
	}
	pdf.Text(55, y, deliveryName)
	y += 7

	notes := order.Notes
	if notes == "" {
		notes = "-"
	}
	labelValue(pdf, y, "Order Notes:", 45, notes)
	y += 10

	pdf.SetDrawColor(46, 204, 113)
	pdf.Line(_lineLeftX, y, _lineRightX, y)
	y += 7

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(_lineLeftX, y, "Subtotal:")
	pdf.SetFont("Helvetica", "", 12)
	rightText(pdf, _totalsRightX, y, "$"+order.Subtotal.StringFixed(2))
	y += 6

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(_lineLeftX, y, "Delivery:")
	pdf.SetFont("Helvetica", "", 12)
	rightText(pdf, _totalsRightX, y, "$"+order.DeliveryFee.StringFixed(2))
	y += 6

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(_lineLeftX, y, "Total:")
	rightText(pdf, _totalsRightX, y, "$"+order.Total.StringFixed(2))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		a.metrics.Generated("error")
		return nil, fmt.Errorf("%s: render: %w", op, err)
	}

	a.metrics.Generated("ok")

	return buf.Bytes(), nil
}

func labelValue(pdf *fpdf.Fpdf, y float64, label string, valueX float64, value string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(_lineLeftX, y, label)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(valueX, y, value)
}

func centerText(pdf *fpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s)/2, y, s)
}

func rightText(pdf *fpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s), y, s)
}

func (a *Assembler) loadLogo(ctx context.Context) ([]byte, string, error) {
	const op = "document.Assembler.loadLogo"

	if a.logoRef == "" {
		return nil, "", fmt.Errorf("%s: no logo configured", op)
	}

	imageType := "PNG"
	switch strings.ToLower(path.Ext(a.logoRef)) {
	case ".jpg", ".jpeg":
		imageType = "JPG"
	case ".gif":
		imageType = "GIF"
	}

	if strings.HasPrefix(a.logoRef, "http://") || strings.HasPrefix(a.logoRef, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.logoRef, nil)
		if err != nil {
			return nil, "", fmt.Errorf("%s: build request: %w", op, err)
		}

		resp, err := a.httpClient.Do(req)
		if err != nil {
			return nil, "", fmt.Errorf("%s: fetch: %w", op, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, "", fmt.Errorf("%s: fetch: unexpected status %d", op, resp.StatusCode)
		}

		data, err := io.ReadAll(io.LimitReader(resp.Body, _maxLogoBytes))
		if err != nil {
			return nil, "", fmt.Errorf("%s: read body: %w", op, err)
		}
		return data, imageType, nil
	}

	data, err := os.ReadFile(a.logoRef)
	if err != nil {
		return nil, "", fmt.Errorf("%s: read file: %w", op, err)
	}
	return data, imageType, nil
}
