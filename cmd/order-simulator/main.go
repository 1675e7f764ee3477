// order-simulator drives the order service HTTP API with randomized but valid
// purchase orders: create a draft, add lines, fill in delivery and site
// details, then submit.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

const requestTimeout = 10 * time.Second

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "Order service base URL")
	numOrders := flag.Int("count", 1, "Number of orders to submit")
	interval := flag.Duration("interval", 1*time.Second, "Interval between orders")

	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sim := &simulator{
		baseURL: *baseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}

	log.Printf(
		"Starting order simulator. Will submit %d orders to '%s' every %v\n",
		*numOrders,
		*baseURL,
		*interval,
	)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	submitted := 0

	submitOne(ctx, sim)

	submitted++
	if submitted >= *numOrders {
		log.Printf("Submitted all %d orders. Exiting.\n", *numOrders)
		return
	}

	for {
		select {
		case <-ctx.Done():
			log.Println("Shutting down simulator...")
			return
		case <-ticker.C:
			submitOne(ctx, sim)
			submitted++
			if submitted >= *numOrders {
				log.Printf("Submitted all %d orders. Exiting.\n", *numOrders)
				return
			}
		}
	}
}

func submitOne(ctx context.Context, sim *simulator) {
	orderUID, err := sim.submitOrder(ctx)
	if err != nil {
		log.Printf("Failed to submit order: %v\n", err)
		return
	}
	log.Printf("Submitted order %s\n", orderUID)
}

type simulator struct {
	baseURL string
	client  *http.Client
}

type catalogItem struct {
	ID       int      `json:"id"`
	MinOrder int      `json:"min_order"`
	Sizes    []string `json:"sizes"`
	InStock  bool     `json:"in_stock"`
}

type deliveryOption struct {
	ID string `json:"id"`
}

type draftResponse struct {
	Draft struct {
		DraftID string `json:"draft_id"`
	} `json:"draft"`
}

type submitResponse struct {
	OrderUID string `json:"order_uid"`
}

// submitOrder walks the whole draft lifecycle against the API and returns the
// submitted order UID.
func (s *simulator) submitOrder(ctx context.Context) (string, error) {
	var items []catalogItem
	if err := s.do(ctx, http.MethodGet, "/api/v1/catalog", nil, &items); err != nil {
		return "", fmt.Errorf("fetch catalog: %w", err)
	}

	var options []deliveryOption
	if err := s.do(ctx, http.MethodGet, "/api/v1/delivery-options", nil, &options); err != nil {
		return "", fmt.Errorf("fetch delivery options: %w", err)
	}

	var draft draftResponse
	if err := s.do(ctx, http.MethodPost, "/api/v1/drafts", nil, &draft); err != nil {
		return "", fmt.Errorf("create draft: %w", err)
	}
	draftID := draft.Draft.DraftID
	draftPath := "/api/v1/drafts/" + draftID

	lines := rand.IntN(3) + 1
	for i := 0; i < lines && i < len(items); i++ {
		item := items[i]
		if !item.InStock {
			continue
		}
		body := map[string]any{
			"item_id":  item.ID,
			"quantity": item.MinOrder + rand.IntN(4)*item.MinOrder,
		}
		if err := s.do(ctx, http.MethodPost, draftPath+"/lines", body, nil); err != nil {
			return "", fmt.Errorf("add line for item %d: %w", item.ID, err)
		}
	}

	if len(options) > 0 {
		option := options[rand.IntN(len(options))]
		body := map[string]any{"delivery_id": option.ID}
		if err := s.do(ctx, http.MethodPut, draftPath+"/delivery", body, nil); err != nil {
			return "", fmt.Errorf("set delivery: %w", err)
		}
	}

	address := map[string]any{
		"street": gofakeit.Street(),
		"city":   gofakeit.City(),
		"state":  gofakeit.StateAbr(),
		"zip":    gofakeit.Zip(),
		"phone":  gofakeit.Phone(),
	}
	if err := s.do(ctx, http.MethodPut, draftPath+"/address", address, nil); err != nil {
		return "", fmt.Errorf("set address: %w", err)
	}

	details := map[string]any{
		"site_number": fmt.Sprintf("SITE-%03d", rand.IntN(900)+100),
		"notes":       gofakeit.Sentence(6),
	}
	if err := s.do(ctx, http.MethodPut, draftPath+"/details", details, nil); err != nil {
		return "", fmt.Errorf("set details: %w", err)
	}

	var submitted submitResponse
	if err := s.do(ctx, http.MethodPost, draftPath+"/submit", nil, &submitted); err != nil {
		return "", fmt.Errorf("submit draft: %w", err)
	}

	return submitted.OrderUID, nil
}

func (s *simulator) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%s %s: unexpected status %d: %s", method, path, resp.StatusCode, data)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}
