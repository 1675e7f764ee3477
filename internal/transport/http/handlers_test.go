package httpt_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/saharshred/renu-biome/internal/catalog"
	"github.com/saharshred/renu-biome/internal/entity"
	"github.com/saharshred/renu-biome/internal/service"
	mock_service "github.com/saharshred/renu-biome/internal/service/mock"
	httpt "github.com/saharshred/renu-biome/internal/transport/http"
	"github.com/saharshred/renu-biome/pkg/cache"
	"github.com/saharshred/renu-biome/pkg/logger"
	mock_metric "github.com/saharshred/renu-biome/pkg/metric/mock"
	"github.com/saharshred/renu-biome/pkg/storage/postgres"
	mock_transaction "github.com/saharshred/renu-biome/pkg/storage/postgres/transaction/mock"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type handlerFixture struct {
	engine      *gin.Engine
	orderRepo   *mock_service.MockOrderRepository
	lineRepo    *mock_service.MockLineRepository
	addressRepo *mock_service.MockAddressRepository
	assembler   *mock_service.MockAssembler
	txManager   *mock_transaction.MockManager
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cacheMetrics := mock_metric.NewMockCache(ctrl)
	cacheMetrics.EXPECT().Hit(gomock.Any()).AnyTimes()
	cacheMetrics.EXPECT().Miss(gomock.Any()).AnyTimes()
	cacheMetrics.EXPECT().Eviction(gomock.Any(), gomock.Any()).AnyTimes()
	cacheMetrics.EXPECT().Size(gomock.Any(), gomock.Any()).AnyTimes()

	httpMetrics := mock_metric.NewMockHTTP(ctrl)
	httpMetrics.EXPECT().Request(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	httpMetrics.EXPECT().SlowRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	log := logger.NewNop()

	drafts, err := cache.NewLRUCache[uuid.UUID, *entity.OrderDraft]("draft", 100, log, cacheMetrics)
	if err != nil {
		t.Fatalf("failed to build draft cache: %v", err)
	}
	orders, err := cache.NewLRUCache[uuid.UUID, *entity.PurchaseOrder]("order", 100, log, cacheMetrics)
	if err != nil {
		t.Fatalf("failed to build order cache: %v", err)
	}

	f := &handlerFixture{
		orderRepo:   mock_service.NewMockOrderRepository(ctrl),
		lineRepo:    mock_service.NewMockLineRepository(ctrl),
		addressRepo: mock_service.NewMockAddressRepository(ctrl),
		assembler:   mock_service.NewMockAssembler(ctrl),
		txManager:   mock_transaction.NewMockManager(ctrl),
	}

	svc := service.NewOrderService(
		catalog.Default(),
		f.orderRepo,
		f.lineRepo,
		f.addressRepo,
		f.txManager,
		nil,
		f.assembler,
		log,
		drafts,
		orders,
		time.Hour,
		5*time.Minute,
	)

	f.engine = httpt.NewOrderHandler(svc, log, httpMetrics).Engine()

	return f
}

func (f *handlerFixture) request(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	f.engine.ServeHTTP(rec, req)
	return rec
}

func decodeDraft(t *testing.T, rec *httptest.ResponseRecorder) *entity.OrderDraft {
	t.Helper()

	var resp struct {
		Draft  *entity.OrderDraft `json:"draft"`
		Status string             `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode draft response: %v (body %s)", err, rec.Body.String())
	}
	if resp.Draft == nil {
		t.Fatalf("missing draft in response: %s", rec.Body.String())
	}
	return resp.Draft
}

func (f *handlerFixture) createDraft(t *testing.T) *entity.OrderDraft {
	t.Helper()

	rec := f.request(t, http.MethodPost, "/api/v1/drafts", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create draft: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	return decodeDraft(t, rec)
}

func TestHealthEndpoint(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.request(t, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGetCatalog(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.request(t, http.MethodGet, "/api/v1/catalog", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var items []*entity.CatalogItem
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode catalog: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("expected catalog items")
	}
}

func TestGetDeliveryOptions(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.request(t, http.MethodGet, "/api/v1/delivery-options", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var options []*entity.DeliveryOption
	if err := json.Unmarshal(rec.Body.Bytes(), &options); err != nil {
		t.Fatalf("decode delivery options: %v", err)
	}
	if len(options) == 0 {
		t.Fatal("expected delivery options")
	}
}

func TestDraftEndpoints(t *testing.T) {
	t.Run("CreateAndGet", func(t *testing.T) {
		f := newHandlerFixture(t)
		draft := f.createDraft(t)

		rec := f.request(t, http.MethodGet, "/api/v1/drafts/"+draft.DraftID.String(), nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got := decodeDraft(t, rec); got.DraftID != draft.DraftID {
			t.Fatal("returned a different draft")
		}
	})

	t.Run("GetUnknownDraft", func(t *testing.T) {
		f := newHandlerFixture(t)

		rec := f.request(t, http.MethodGet, "/api/v1/drafts/"+uuid.NewString(), nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("MalformedDraftID", func(t *testing.T) {
		f := newHandlerFixture(t)

		rec := f.request(t, http.MethodGet, "/api/v1/drafts/not-a-uuid", nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("AddItem", func(t *testing.T) {
		f := newHandlerFixture(t)
		draft := f.createDraft(t)

		rec := f.request(t, http.MethodPost, "/api/v1/drafts/"+draft.DraftID.String()+"/lines",
			map[string]any{"item_id": 1, "quantity": 55})
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		updated := decodeDraft(t, rec)
		if len(updated.Lines) != 1 || updated.Lines[0].Quantity != 55 {
			t.Fatalf("unexpected lines: %+v", updated.Lines)
		}
	})

	t.Run("AddItemBelowMinimum", func(t *testing.T) {
		f := newHandlerFixture(t)
		draft := f.createDraft(t)

		rec := f.request(t, http.MethodPost, "/api/v1/drafts/"+draft.DraftID.String()+"/lines",
			map[string]any{"item_id": 1, "quantity": 5})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("AddUnknownItem", func(t *testing.T) {
		f := newHandlerFixture(t)
		draft := f.createDraft(t)

		rec := f.request(t, http.MethodPost, "/api/v1/drafts/"+draft.DraftID.String()+"/lines",
			map[string]any{"item_id": 99, "quantity": 55})
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("UpdateLineQuantity", func(t *testing.T) {
		f := newHandlerFixture(t)
		draft := f.createDraft(t)
		path := "/api/v1/drafts/" + draft.DraftID.String()

		f.request(t, http.MethodPost, path+"/lines", map[string]any{"item_id": 1, "quantity": 55})

		rec := f.request(t, http.MethodPatch, path+"/lines/1", map[string]any{"quantity": 110})
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if updated := decodeDraft(t, rec); updated.Lines[0].Quantity != 110 {
			t.Fatalf("expected quantity 110, got %d", updated.Lines[0].Quantity)
		}
	})

	t.Run("UpdateLineInvalidSize", func(t *testing.T) {
		f := newHandlerFixture(t)
		draft := f.createDraft(t)
		path := "/api/v1/drafts/" + draft.DraftID.String()

		f.request(t, http.MethodPost, path+"/lines", map[string]any{"item_id": 1, "quantity": 55})

		rec := f.request(t, http.MethodPatch, path+"/lines/1", map[string]any{"size": "tanker truck"})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("RemoveLine", func(t *testing.T) {
		f := newHandlerFixture(t)
		draft := f.createDraft(t)
		path := "/api/v1/drafts/" + draft.DraftID.String()

		f.request(t, http.MethodPost, path+"/lines", map[string]any{"item_id": 1, "quantity": 55})

		rec := f.request(t, http.MethodDelete, path+"/lines/1", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if updated := decodeDraft(t, rec); len(updated.Lines) != 0 {
			t.Fatalf("expected empty lines, got %+v", updated.Lines)
		}
	})

	t.Run("SetDelivery", func(t *testing.T) {
		f := newHandlerFixture(t)
		draft := f.createDraft(t)

		rec := f.request(t, http.MethodPut, "/api/v1/drafts/"+draft.DraftID.String()+"/delivery",
			map[string]any{"delivery_id": "express"})
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if updated := decodeDraft(t, rec); updated.DeliveryID != "express" {
			t.Fatalf("expected express, got %q", updated.DeliveryID)
		}
	})

	t.Run("SetUnknownDelivery", func(t *testing.T) {
		f := newHandlerFixture(t)
		draft := f.createDraft(t)

		rec := f.request(t, http.MethodPut, "/api/v1/drafts/"+draft.DraftID.String()+"/delivery",
			map[string]any{"delivery_id": "drone"})
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("SetAddressValidation", func(t *testing.T) {
		f := newHandlerFixture(t)
		draft := f.createDraft(t)

		rec := f.request(t, http.MethodPut, "/api/v1/drafts/"+draft.DraftID.String()+"/address",
			map[string]any{"street": "1200 County Road 12"})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for incomplete address, got %d", rec.Code)
		}
	})

	t.Run("GetTotals", func(t *testing.T) {
		f := newHandlerFixture(t)
		draft := f.createDraft(t)
		path := "/api/v1/drafts/" + draft.DraftID.String()

		f.request(t, http.MethodPost, path+"/lines", map[string]any{"item_id": 1, "quantity": 75})

		rec := f.request(t, http.MethodGet, path+"/totals", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var totals struct {
			Subtotal    decimal.Decimal `json:"subtotal"`
			DeliveryFee decimal.Decimal `json:"delivery_fee"`
			Total       decimal.Decimal `json:"total"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &totals); err != nil {
			t.Fatalf("decode totals: %v", err)
		}
		if !totals.Total.Equal(decimal.RequireFromString("1256.25")) {
			t.Fatalf("expected total 1256.25, got %s", totals.Total)
		}
	})
}

func (f *handlerFixture) buildReadyDraft(t *testing.T) *entity.OrderDraft {
	t.Helper()

	draft := f.createDraft(t)
	path := "/api/v1/drafts/" + draft.DraftID.String()

	steps := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodPost, path + "/lines", map[string]any{"item_id": 1, "quantity": 55}},
		{http.MethodPut, path + "/address", map[string]any{
			"street": "1200 County Road 12",
			"city":   "Ames",
			"state":  "IA",
			"zip":    "50010",
			"phone":  "515-555-0142",
		}},
		{http.MethodPut, path + "/details", map[string]any{
			"po_number":   "PO-TEST-001",
			"site_number": "SITE-001",
		}},
	}

	for _, step := range steps {
		rec := f.request(t, step.method, step.path, step.body)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s %s: expected 200, got %d: %s", step.method, step.path, rec.Code, rec.Body.String())
		}
	}

	return draft
}

func (f *handlerFixture) expectPersist() {
	f.txManager.EXPECT().ExecuteInTransaction(
		gomock.Any(), "SubmitOrder", gomock.Any(),
	).DoAndReturn(func(
		ctx context.Context,
		operation string,
		txFunc func(postgres.QueryExecuter) error,
	) error {
		return txFunc(nil)
	}).Times(1)

	f.orderRepo.EXPECT().Create(gomock.Any(), nil, gomock.Any()).
		DoAndReturn(func(
			ctx context.Context,
			qe postgres.QueryExecuter,
			order *entity.PurchaseOrder,
		) (*entity.PurchaseOrder, error) {
			return order, nil
		}).Times(1)

	f.lineRepo.EXPECT().Create(gomock.Any(), nil, gomock.Any(), gomock.Any()).
		Return(nil).Times(1)

	f.addressRepo.EXPECT().Create(gomock.Any(), nil, gomock.Any(), gomock.Any()).
		DoAndReturn(func(
			ctx context.Context,
			qe postgres.QueryExecuter,
			orderUID uuid.UUID,
			address *entity.Address,
		) (*entity.Address, error) {
			return address, nil
		}).Times(1)
}

func TestSubmitEndpoint(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newHandlerFixture(t)
		draft := f.buildReadyDraft(t)
		f.expectPersist()

		rec := f.request(t, http.MethodPost, "/api/v1/drafts/"+draft.DraftID.String()+"/submit", nil)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}

		var order entity.PurchaseOrder
		if err := json.Unmarshal(rec.Body.Bytes(), &order); err != nil {
			t.Fatalf("decode order: %v", err)
		}
		if order.PONumber != "PO-TEST-001" {
			t.Fatalf("expected PO number carried over, got %q", order.PONumber)
		}

		// Resubmission conflicts.
		rec = f.request(t, http.MethodPost, "/api/v1/drafts/"+draft.DraftID.String()+"/submit", nil)
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409 on resubmit, got %d", rec.Code)
		}
	})

	t.Run("IncompleteDraft", func(t *testing.T) {
		f := newHandlerFixture(t)
		draft := f.createDraft(t)

		rec := f.request(t, http.MethodPost, "/api/v1/drafts/"+draft.DraftID.String()+"/submit", nil)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("UnknownDraft", func(t *testing.T) {
		f := newHandlerFixture(t)

		rec := f.request(t, http.MethodPost, "/api/v1/drafts/"+uuid.NewString()+"/submit", nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestOrderEndpoints(t *testing.T) {
	t.Run("GetSubmittedOrder", func(t *testing.T) {
		f := newHandlerFixture(t)
		draft := f.buildReadyDraft(t)
		f.expectPersist()

		rec := f.request(t, http.MethodPost, "/api/v1/drafts/"+draft.DraftID.String()+"/submit", nil)
		if rec.Code != http.StatusCreated {
			t.Fatalf("submit: expected 201, got %d", rec.Code)
		}

		var order entity.PurchaseOrder
		if err := json.Unmarshal(rec.Body.Bytes(), &order); err != nil {
			t.Fatalf("decode order: %v", err)
		}

		rec = f.request(t, http.MethodGet, "/api/v1/orders/"+order.OrderUID.String(), nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("GetUnknownOrder", func(t *testing.T) {
		f := newHandlerFixture(t)
		orderUID := uuid.New()

		f.orderRepo.EXPECT().GetByOrderUID(gomock.Any(), orderUID).
			Return(nil, entity.ErrDataNotFound).Times(1)

		rec := f.request(t, http.MethodGet, "/api/v1/orders/"+orderUID.String(), nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("DownloadDocument", func(t *testing.T) {
		f := newHandlerFixture(t)
		draft := f.buildReadyDraft(t)
		f.expectPersist()

		rec := f.request(t, http.MethodPost, "/api/v1/drafts/"+draft.DraftID.String()+"/submit", nil)
		if rec.Code != http.StatusCreated {
			t.Fatalf("submit: expected 201, got %d", rec.Code)
		}

		var order entity.PurchaseOrder
		if err := json.Unmarshal(rec.Body.Bytes(), &order); err != nil {
			t.Fatalf("decode order: %v", err)
		}

		pdf := []byte("%PDF-1.4 rendered")
		f.assembler.EXPECT().Assemble(gomock.Any(), gomock.Any()).
			Return(pdf, nil).Times(1)

		rec = f.request(t, http.MethodGet, "/api/v1/orders/"+order.OrderUID.String()+"/document", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
			t.Fatalf("expected application/pdf, got %q", got)
		}
		wantDisposition := fmt.Sprintf("attachment; filename=%q", "PurchaseOrder_PO-TEST-001.pdf")
		if got := rec.Header().Get("Content-Disposition"); got != wantDisposition {
			t.Fatalf("expected %q, got %q", wantDisposition, got)
		}
		if !bytes.Equal(rec.Body.Bytes(), pdf) {
			t.Fatal("document bytes differ")
		}
	})
}
