package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/availability"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/catalog"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/selection"
)

type fakeCatalog struct {
	products map[string]catalog.Product
	zones    map[string]catalog.Zone
}

func (f *fakeCatalog) GetProduct(_ context.Context, id string) (catalog.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return catalog.Product{}, pgx.ErrNoRows
	}
	return p, nil
}

func (f *fakeCatalog) GetZone(_ context.Context, id string) (catalog.Zone, error) {
	z, ok := f.zones[id]
	if !ok {
		return catalog.Zone{}, pgx.ErrNoRows
	}
	return z, nil
}

type fakeSessions struct {
	snaps map[string]selection.Snapshot
}

func (f *fakeSessions) Get(_ context.Context, sessionID, productID string) (selection.Snapshot, error) {
	snap, ok := f.snaps[sessionID+"/"+productID]
	if !ok {
		return selection.Snapshot{State: selection.StateEmpty}, nil
	}
	return snap, nil
}

func (f *fakeSessions) Put(_ context.Context, sessionID, productID string, snap selection.Snapshot) error {
	f.snaps[sessionID+"/"+productID] = snap
	return nil
}

func (f *fakeSessions) Clear(_ context.Context, sessionID, productID string) error {
	delete(f.snaps, sessionID+"/"+productID)
	return nil
}

func intervals(ivs ...availability.Interval) IntervalSource {
	return IntervalSourceFunc(func(context.Context, string, time.Time, time.Time) ([]availability.Interval, error) {
		return ivs, nil
	})
}

func testHandler(t *testing.T, rentals, maintenance IntervalSource, cat *fakeCatalog) (*AvailabilityHandler, *fakeSessions) {
	t.Helper()
	if cat == nil {
		cat = &fakeCatalog{
			products: map[string]catalog.Product{"prod-1": {ID: "prod-1", Name: "Scaffold Tower", DailyPriceCents: 1000}},
			zones:    map[string]catalog.Zone{},
		}
	}
	sessions := &fakeSessions{snaps: map[string]selection.Snapshot{}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewAvailabilityHandler(rentals, maintenance, cat, sessions, nil, logger)
	h.now = func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) }
	return h, sessions
}

func iv(startDay, endDay string) availability.Interval {
	start, err := time.Parse("2006-01-02", startDay)
	if err != nil {
		panic(err)
	}
	end, err := time.Parse("2006-01-02", endDay)
	if err != nil {
		panic(err)
	}
	return availability.Interval{Start: start, End: end}
}

func TestBlockedDates_UnionOfSources(t *testing.T) {
	h, _ := testHandler(t, intervals(iv("2024-03-03", "2024-03-04")), intervals(iv("2024-03-10", "2024-03-10")), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/blocked-dates?product_id=prod-1&from=2024-03-01&to=2024-03-31", nil)
	rec := httptest.NewRecorder()
	h.BlockedDates(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp blockedDatesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	want := []string{"2024-03-03", "2024-03-04", "2024-03-10"}
	if len(resp.BlockedDates) != len(want) {
		t.Fatalf("expected %v, got %v", want, resp.BlockedDates)
	}
	for i, d := range want {
		if resp.BlockedDates[i] != d {
			t.Fatalf("expected %v, got %v", want, resp.BlockedDates)
		}
	}
}

func TestBlockedDates_RequiresProduct(t *testing.T) {
	h, _ := testHandler(t, intervals(), intervals(), nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/blocked-dates", nil)
	rec := httptest.NewRecorder()
	h.BlockedDates(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestBlockedDates_RejectsInvertedWindow(t *testing.T) {
	h, _ := testHandler(t, intervals(), intervals(), nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/blocked-dates?product_id=prod-1&from=2024-03-10&to=2024-03-01", nil)
	rec := httptest.NewRecorder()
	h.BlockedDates(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func postSelect(t *testing.T, h *AvailabilityHandler, body string) selectResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/public/selection", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Select(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp selectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	return resp
}

func TestSelect_TwoClicksCompleteRange(t *testing.T) {
	h, sessions := testHandler(t, intervals(), intervals(), nil)

	resp := postSelect(t, h, `{"session_id":"s1","product_id":"prod-1","date":"2024-03-01"}`)
	if !resp.Accepted || resp.State != "start_only" || resp.StartDate != "2024-03-01" {
		t.Fatalf("unexpected first click result: %+v", resp)
	}

	resp = postSelect(t, h, `{"session_id":"s1","product_id":"prod-1","date":"2024-03-05"}`)
	if !resp.Accepted || resp.State != "range" || resp.StartDate != "2024-03-01" || resp.EndDate != "2024-03-05" {
		t.Fatalf("unexpected second click result: %+v", resp)
	}

	snap := sessions.snaps["s1/prod-1"]
	if snap.State != selection.StateRange {
		t.Fatalf("expected stored range state, got %+v", snap)
	}
}

func TestSelect_BlockedRangeLeavesStoredStateUntouched(t *testing.T) {
	h, sessions := testHandler(t, intervals(iv("2024-03-03", "2024-03-03")), intervals(), nil)

	resp := postSelect(t, h, `{"session_id":"s1","product_id":"prod-1","date":"2024-03-01"}`)
	if !resp.Accepted {
		t.Fatalf("anchor click must be accepted: %+v", resp)
	}

	resp = postSelect(t, h, `{"session_id":"s1","product_id":"prod-1","date":"2024-03-05"}`)
	if resp.Accepted {
		t.Fatalf("range over a blocked day must be rejected: %+v", resp)
	}
	if resp.Reason != "range_blocked" {
		t.Fatalf("expected range_blocked, got %q", resp.Reason)
	}

	snap := sessions.snaps["s1/prod-1"]
	if snap.State != selection.StateStartOnly || snap.Start.Format("2006-01-02") != "2024-03-01" {
		t.Fatalf("rejected click must not disturb the stored anchor: %+v", snap)
	}
}

func TestSelect_Reset(t *testing.T) {
	h, sessions := testHandler(t, intervals(), intervals(), nil)
	postSelect(t, h, `{"session_id":"s1","product_id":"prod-1","date":"2024-03-01"}`)

	resp := postSelect(t, h, `{"session_id":"s1","product_id":"prod-1","reset":true}`)
	if !resp.Accepted || resp.State != "empty" {
		t.Fatalf("unexpected reset result: %+v", resp)
	}
	if _, ok := sessions.snaps["s1/prod-1"]; ok {
		t.Fatalf("reset must clear the stored selection")
	}
}

func postQuote(t *testing.T, h *AvailabilityHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/public/quote", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Quote(rec, req)
	return rec
}

func TestQuote_BasePricing(t *testing.T) {
	h, _ := testHandler(t, intervals(), intervals(), nil)

	rec := postQuote(t, h, `{"product_id":"prod-1","start_date":"2024-03-01","end_date":"2024-03-03"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp quoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if resp.TotalDays != 3 || resp.FinalTotalCents != 3000 {
		t.Fatalf("expected 3 days at 3000, got %+v", resp.Breakdown)
	}
}

func TestQuote_SameDayFeeFromZone(t *testing.T) {
	cat := &fakeCatalog{
		products: map[string]catalog.Product{"prod-1": {ID: "prod-1", DailyPriceCents: 1000}},
		zones: map[string]catalog.Zone{
			"zone-a": {ID: "zone-a", SameDayAvailable: true, SameDayFeeCents: 500, CutoffTime: "14:00"},
		},
	}
	h, _ := testHandler(t, intervals(), intervals(), cat)

	rec := postQuote(t, h, `{"product_id":"prod-1","start_date":"2024-03-01","end_date":"2024-03-03","same_day":true,"delivery_zone_id":"zone-a"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp quoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if resp.SameDayFeeCents != 500 || resp.FinalTotalCents != 3500 {
		t.Fatalf("expected fee 500 and total 3500, got %+v", resp.Breakdown)
	}
}

func TestQuote_UnknownZoneOmitsFee(t *testing.T) {
	h, _ := testHandler(t, intervals(), intervals(), nil)

	rec := postQuote(t, h, `{"product_id":"prod-1","start_date":"2024-03-01","end_date":"2024-03-03","same_day":true,"delivery_zone_id":"zone-missing"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("missing zone data must not fail the quote, got %d", rec.Code)
	}
	var resp quoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if resp.SameDayFeeCents != 0 || resp.FinalTotalCents != 3000 {
		t.Fatalf("expected fee omitted, got %+v", resp.Breakdown)
	}
}

func TestQuote_UnknownProduct(t *testing.T) {
	h, _ := testHandler(t, intervals(), intervals(), nil)
	rec := postQuote(t, h, `{"product_id":"prod-missing","start_date":"2024-03-01","end_date":"2024-03-03"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestQuote_InvertedDates(t *testing.T) {
	h, _ := testHandler(t, intervals(), intervals(), nil)
	rec := postQuote(t, h, `{"product_id":"prod-1","start_date":"2024-03-05","end_date":"2024-03-01"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
