package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/saharshred/renu-biome/internal/entity"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type E2ETestSuite struct {
	suite.Suite

	httpClient *http.Client
	baseURL    string
}

func (s *E2ETestSuite) SetupSuite() {
	appHost := getEnvOrDefault("APP_HOST", "localhost")
	appPort := getEnvOrDefault("APP_PORT", "8080")

	s.baseURL = fmt.Sprintf("http://%s", net.JoinHostPort(appHost, appPort))
	s.httpClient = &http.Client{
		Timeout: 10 * time.Second,
	}

	s.waitForApp()
}

func (s *E2ETestSuite) waitForApp() {
	const maxRetries = 30
	const retryDelay = 2 * time.Second
	healthURL := s.baseURL + "/healthz"

	for i := range maxRetries {
		req, err := http.NewRequestWithContext(context.Background(), "GET", healthURL, nil)
		if err != nil {
			s.T().Logf("Failed to create health check request: %v", err)
			time.Sleep(retryDelay)
			continue
		}

		resp, err := s.httpClient.Do(req)
		if err != nil {
			s.T().Logf("Health check failed (attempt %d/%d): %v", i+1, maxRetries, err)
			time.Sleep(retryDelay)
			continue
		}
		resp.Body.Close()

		if resp.StatusCode == http.StatusOK {
			s.T().Log("App is healthy")
			return
		}
		s.T().Logf("App health check status %d (attempt %d/%d)", resp.StatusCode, i+1, maxRetries)
		time.Sleep(retryDelay)
	}
	s.T().Fatalf("App did not become healthy after %d attempts", maxRetries)
}

func (s *E2ETestSuite) doJSON(method, path string, body any, out any) *http.Response {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, s.baseURL+path, reader)
	require.NoError(s.T(), err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)

	if out != nil {
		defer resp.Body.Close()
		require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(out))
	}

	return resp
}

type draftEnvelope struct {
	Draft  *entity.OrderDraft `json:"draft"`
	Status string             `json:"status"`
}

func (s *E2ETestSuite) TestOrderFlow() {
	// Create a draft.
	var created draftEnvelope
	resp := s.doJSON("POST", "/api/v1/drafts", nil, &created)
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)
	require.NotNil(s.T(), created.Draft)
	require.Equal(s.T(), "empty", created.Status)

	draftPath := "/api/v1/drafts/" + created.Draft.DraftID.String()

	// Add a line at the minimum order quantity.
	var withLine draftEnvelope
	resp = s.doJSON("POST", draftPath+"/lines", map[string]any{
		"item_id":  1,
		"quantity": 55,
	}, &withLine)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	require.Len(s.T(), withLine.Draft.Lines, 1)

	// Below-minimum adds are rejected.
	resp = s.doJSON("POST", draftPath+"/lines", map[string]any{
		"item_id":  2,
		"quantity": 5,
	}, nil)
	require.Equal(s.T(), http.StatusBadRequest, resp.StatusCode)

	// Fill in the delivery address and header details.
	resp = s.doJSON("PUT", draftPath+"/address", map[string]any{
		"street": gofakeit.Street(),
		"city":   gofakeit.City(),
		"state":  gofakeit.StateAbr(),
		"zip":    gofakeit.Zip(),
		"phone":  gofakeit.Phone(),
	}, nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var ready draftEnvelope
	resp = s.doJSON("PUT", draftPath+"/details", map[string]any{
		"site_number": "SITE-E2E-01",
		"notes":       gofakeit.Sentence(5),
	}, &ready)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	require.Equal(s.T(), "ready_to_submit", ready.Status)
	require.NotEmpty(s.T(), ready.Draft.PONumber)

	// Totals reflect the cart and the preselected standard delivery.
	var totals struct {
		Subtotal    string `json:"subtotal"`
		DeliveryFee string `json:"delivery_fee"`
		Total       string `json:"total"`
	}
	resp = s.doJSON("GET", draftPath+"/totals", nil, &totals)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	require.Equal(s.T(), "811.25", totals.Subtotal)
	require.Equal(s.T(), "150", totals.DeliveryFee)
	require.Equal(s.T(), "961.25", totals.Total)

	// Submit.
	var order entity.PurchaseOrder
	resp = s.doJSON("POST", draftPath+"/submit", nil, &order)
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)
	require.Equal(s.T(), ready.Draft.PONumber, order.PONumber)
	require.Len(s.T(), order.Lines, 1)

	// Resubmission conflicts.
	resp = s.doJSON("POST", draftPath+"/submit", nil, nil)
	require.Equal(s.T(), http.StatusConflict, resp.StatusCode)

	// The submitted order is readable.
	var fetched entity.PurchaseOrder
	resp = s.doJSON("GET", "/api/v1/orders/"+order.OrderUID.String(), nil, &fetched)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	require.Equal(s.T(), order.OrderUID, fetched.OrderUID)
	require.NotNil(s.T(), fetched.Address)

	// And its document downloads as a PDF.
	req, err := http.NewRequestWithContext(
		context.Background(),
		"GET",
		s.baseURL+"/api/v1/orders/"+order.OrderUID.String()+"/document",
		nil,
	)
	require.NoError(s.T(), err)

	docResp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer docResp.Body.Close()

	require.Equal(s.T(), http.StatusOK, docResp.StatusCode)
	require.Equal(s.T(), "application/pdf", docResp.Header.Get("Content-Type"))
	require.Contains(s.T(), docResp.Header.Get("Content-Disposition"), "PurchaseOrder_")

	pdf, err := io.ReadAll(docResp.Body)
	require.NoError(s.T(), err)
	require.True(s.T(), bytes.HasPrefix(pdf, []byte("%PDF")), "expected PDF payload")
}

func (s *E2ETestSuite) TestUnknownDraft() {
	resp := s.doJSON("GET", "/api/v1/drafts/00000000-0000-0000-0000-000000000000", nil, nil)
	require.Equal(s.T(), http.StatusNotFound, resp.StatusCode)
}

func TestE2E(t *testing.T) {
	t.Parallel()
	if os.Getenv("E2E_TEST") == "" {
		t.Skip("Skipping E2E test; set E2E_TEST to run.")
	}
	suite.Run(t, new(E2ETestSuite))
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
