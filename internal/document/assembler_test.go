package document_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/saharshred/renu-biome/internal/document"
	"github.com/saharshred/renu-biome/internal/entity"
	"github.com/saharshred/renu-biome/pkg/logger"
	mock_metric "github.com/saharshred/renu-biome/pkg/metric/mock"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func testOrder() *entity.PurchaseOrder {
	submittedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	return &entity.PurchaseOrder{
		OrderUID:   uuid.MustParse("a3f1c2d4-0000-4000-8000-000000000001"),
		PONumber:   "PO-483921-557",
		SiteNumber: "SITE-014",
		Address: &entity.Address{
			Street: "1200 County Road 12",
			City:   "Ames",
			State:  "IA",
			Zip:    "50010",
			Phone:  "515-555-0142",
		},
		Lines: []*entity.PurchaseOrderLine{
			{
				ItemID:    1,
				Name:      "N-CARE",
				Size:      "55-gallon drum",
				Quantity:  75,
				UnitPrice: decimal.RequireFromString("14.75"),
				LineTotal: decimal.RequireFromString("1106.25"),
			},
		},
		Delivery: &entity.DeliveryOption{
			ID:       "standard",
			Name:     "Standard Delivery",
			Price:    decimal.NewFromInt(150),
			LeadTime: "3-5 business days",
		},
		Subtotal:    decimal.RequireFromString("1106.25"),
		DeliveryFee: decimal.NewFromInt(150),
		Total:       decimal.RequireFromString("1256.25"),
		SubmittedAt: submittedAt,
	}
}

func newAssembler(t *testing.T, opts ...document.Option) *document.Assembler {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	metrics := mock_metric.NewMockDocument(ctrl)
	metrics.EXPECT().Generated(gomock.Any()).AnyTimes()
	metrics.EXPECT().ObserveDuration(gomock.Any()).AnyTimes()
	metrics.EXPECT().AssetFailure(gomock.Any()).AnyTimes()

	return document.NewAssembler(logger.NewNop(), metrics, opts...)
}

func TestAssembler_Assemble(t *testing.T) {
	asm := newAssembler(t)

	data, err := asm.Assemble(context.Background(), testOrder())
	if err != nil {
		t.Fatalf("expected document, got error %v", err)
	}

	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected PDF header, got %q", data[:min(8, len(data))])
	}
	if len(data) < 1000 {
		t.Fatalf("document suspiciously small: %d bytes", len(data))
	}
}

// The creation date is pinned to the submission time, so rendering the same
// order twice yields identical bytes.
func TestAssembler_AssembleDeterministic(t *testing.T) {
	asm := newAssembler(t)
	order := testOrder()

	first, err := asm.Assemble(context.Background(), order)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := asm.Assemble(context.Background(), order)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatal("expected identical bytes for repeated renders")
	}
}

// A missing logo must not fail document generation.
func TestAssembler_AssembleLogoLoadFailure(t *testing.T) {
	asm := newAssembler(t, document.WithLogo("/nonexistent/logo.png"))

	data, err := asm.Assemble(context.Background(), testOrder())
	if err != nil {
		t.Fatalf("expected document despite missing logo, got error %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("expected PDF header")
	}
}

func TestAssembler_AssembleEmptyNotes(t *testing.T) {
	asm := newAssembler(t)
	order := testOrder()
	order.Notes = ""

	if _, err := asm.Assemble(context.Background(), order); err != nil {
		t.Fatalf("expected document with empty notes, got error %v", err)
	}
}

func TestFilename(t *testing.T) {
	testCases := []struct {
		desc     string
		poNumber string
		expect   string
	}{
		{
			desc:     "WithPONumber",
			poNumber: "PO-483921-557",
			expect:   "PurchaseOrder_PO-483921-557.pdf",
		},
		{
			desc:     "EmptyPONumber",
			poNumber: "",
			expect:   "PurchaseOrder_unnamed.pdf",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			if got := document.Filename(tc.poNumber); got != tc.expect {
				t.Fatalf("expected %q, got %q", tc.expect, got)
			}
		})
	}
}
