package main

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/saharshred/renu-biome/internal/catalog"
	"github.com/saharshred/renu-biome/internal/config"
	"github.com/saharshred/renu-biome/internal/document"
	"github.com/saharshred/renu-biome/internal/entity"
	"github.com/saharshred/renu-biome/internal/repository"
	"github.com/saharshred/renu-biome/internal/service"
	"github.com/saharshred/renu-biome/pkg/cache"
	"github.com/saharshred/renu-biome/pkg/logger"
	"github.com/saharshred/renu-biome/pkg/metric"
	"github.com/saharshred/renu-biome/pkg/storage/postgres"
	"github.com/saharshred/renu-biome/pkg/storage/postgres/transaction"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type IntegrationTestSuite struct {
	suite.Suite

	db           *postgres.Postgres
	orderService *service.OrderService
	cfg          *config.Config
}

func (s *IntegrationTestSuite) SetupSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cfg, err := config.Load()
	s.Require().NoError(err, "Failed to load configuration")
	s.cfg = cfg

	testLogger, err := logger.NewAdapter(cfg)
	s.Require().NoError(err)

	maxRetries := 10
	var db *postgres.Postgres

	for i := range maxRetries {
		db, err = postgres.NewPostgres(&cfg.Postgres, testLogger)
		if err == nil {
			break
		}
		testLogger.Info("Waiting for database to be ready...", "attempt", i+1, "error", err.Error())
		time.Sleep(5 * time.Second)
	}
	s.Require().NoError(err, "Failed to connect to postgres after retries")
	s.db = db

	err = db.Pool.Ping(ctx)
	s.Require().NoError(err, "Failed to ping database")

	txManager, err := transaction.NewManager(db, testLogger, metric.NewFactory().Transaction())
	s.Require().NoError(err)

	cat, err := catalog.Load(cfg.Catalog.Path)
	s.Require().NoError(err)

	orderRepo := repository.NewPurchaseOrderRepository(db)
	lineRepo := repository.NewOrderLineRepository(db)
	addressRepo := repository.NewAddressRepository(db)

	drafts, err := cache.NewLRUCache[uuid.UUID, *entity.OrderDraft](
		"draft",
		cfg.Drafts.Capacity,
		testLogger,
		metric.NewFactory().Cache(),
	)
	s.Require().NoError(err)

	orders, err := cache.NewLRUCache[uuid.UUID, *entity.PurchaseOrder](
		"order",
		cfg.Cache.Capacity,
		testLogger,
		metric.NewFactory().Cache(),
	)
	s.Require().NoError(err)

	assembler := document.NewAssembler(testLogger, metric.NewFactory().Document())

	s.orderService = service.NewOrderService(
		cat,
		orderRepo,
		lineRepo,
		addressRepo,
		txManager,
		nil,
		assembler,
		testLogger,
		drafts,
		orders,
		cfg.Drafts.SessionTTL,
		cfg.Cache.TTL,
	)
}

func (s *IntegrationTestSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Pool.Close()
	}
}

func (s *IntegrationTestSuite) TearDownTest() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := s.db.Pool.Exec(
		ctx,
		"TRUNCATE TABLE order_lines, order_addresses, purchase_orders RESTART IDENTITY CASCADE;",
	)
	s.Require().NoError(err)
}

func (s *IntegrationTestSuite) buildReadyDraft(ctx context.Context) uuid.UUID {
	draft, err := s.orderService.CreateDraft(ctx)
	s.Require().NoError(err)

	_, err = s.orderService.AddItem(ctx, draft.DraftID, 1, 55)
	s.Require().NoError(err)

	_, err = s.orderService.SetAddress(ctx, draft.DraftID, entity.Address{
		Street: gofakeit.Street(),
		City:   gofakeit.City(),
		State:  gofakeit.StateAbr(),
		Zip:    gofakeit.Zip(),
		Phone:  gofakeit.Phone(),
	})
	s.Require().NoError(err)

	_, err = s.orderService.SetDetails(ctx, draft.DraftID, "", "SITE-001", gofakeit.Sentence(5))
	s.Require().NoError(err)

	return draft.DraftID
}

func (s *IntegrationTestSuite) TestSubmitAndGetOrder() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	draftID := s.buildReadyDraft(ctx)

	submitted, err := s.orderService.Submit(ctx, draftID)
	s.Require().NoError(err)
	s.Require().NotNil(submitted)
	s.Require().NotEqual(uuid.Nil, submitted.OrderUID)
	s.Require().NotEmpty(submitted.PONumber)

	retrieved, err := s.orderService.GetOrder(ctx, submitted.OrderUID)
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Require().Equal(submitted.OrderUID, retrieved.OrderUID)
	s.Require().Equal(submitted.PONumber, retrieved.PONumber)
	s.Require().Equal(submitted.SiteNumber, retrieved.SiteNumber)

	s.Require().NotNil(retrieved.Delivery)
	s.Require().Equal(submitted.Delivery.ID, retrieved.Delivery.ID)
	s.Require().True(submitted.Total.Equal(retrieved.Total))

	s.Require().Len(retrieved.Lines, 1)
	s.Require().Equal(55, retrieved.Lines[0].Quantity)
	s.Require().True(retrieved.Lines[0].LineTotal.Equal(decimal.RequireFromString("811.25")))

	s.Require().NotNil(retrieved.Address)
}

func (s *IntegrationTestSuite) TestSubmittedDraftIsFrozen() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	draftID := s.buildReadyDraft(ctx)

	_, err := s.orderService.Submit(ctx, draftID)
	s.Require().NoError(err)

	_, err = s.orderService.Submit(ctx, draftID)
	s.Require().ErrorIs(err, entity.ErrDraftSubmitted)

	_, err = s.orderService.AddItem(ctx, draftID, 2, 55)
	s.Require().ErrorIs(err, entity.ErrDraftSubmitted)
}

func (s *IntegrationTestSuite) TestDocumentGeneration() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	draftID := s.buildReadyDraft(ctx)

	submitted, err := s.orderService.Submit(ctx, draftID)
	s.Require().NoError(err)

	data, filename, err := s.orderService.Document(ctx, submitted.OrderUID)
	s.Require().NoError(err)
	s.Require().NotEmpty(data)
	s.Require().Equal([]byte("%PDF"), data[:4])
	s.Require().Equal("PurchaseOrder_"+submitted.PONumber+".pdf", filename)
}

func TestIntegration(t *testing.T) {
	t.Parallel()
	if os.Getenv("INTEGRATION_TEST") == "" {
		t.Skip("Skipping integration test; set INTEGRATION_TEST to run.")
	}
	suite.Run(t, new(IntegrationTestSuite))
}
