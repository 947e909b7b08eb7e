package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/availability"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/catalog"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/pricing"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/selection"
)

const dateLayout = "2006-01-02"

// Default and maximum width of the blocked-dates window, in days.
const (
	defaultWindowDays = 90
	maxWindowDays     = 366
)

// IntervalSource yields the date intervals that block a product within a
// window. Both rental orders and maintenance blackouts satisfy it.
type IntervalSource interface {
	Intervals(ctx context.Context, productID string, from, to time.Time) ([]availability.Interval, error)
}

// IntervalSourceFunc adapts a repository method to an IntervalSource.
type IntervalSourceFunc func(ctx context.Context, productID string, from, to time.Time) ([]availability.Interval, error)

func (f IntervalSourceFunc) Intervals(ctx context.Context, productID string, from, to time.Time) ([]availability.Interval, error) {
	return f(ctx, productID, from, to)
}

// CatalogStore reads the locally cached catalog copies. Lookups that miss
// return an error satisfying storage.IsNotFound.
type CatalogStore interface {
	GetProduct(ctx context.Context, productID string) (catalog.Product, error)
	GetZone(ctx context.Context, zoneID string) (catalog.Zone, error)
}

// SelectionStore persists per-session range selections.
type SelectionStore interface {
	Get(ctx context.Context, sessionID, productID string) (selection.Snapshot, error)
	Put(ctx context.Context, sessionID, productID string, snap selection.Snapshot) error
	Clear(ctx context.Context, sessionID, productID string) error
}

// AvailabilityHandler serves the public storefront endpoints: blocked
// dates, the date-range picker clicks and price quotes. It never writes
// rental orders.
type AvailabilityHandler struct {
	rentals     IntervalSource
	maintenance IntervalSource
	sessions    SelectionStore
	catalog     catalogResolver
	logger      *slog.Logger
	now         func() time.Time
}

func NewAvailabilityHandler(rentals, maintenance IntervalSource, cache CatalogStore, sessions SelectionStore, provider catalog.Provider, logger *slog.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		rentals:     rentals,
		maintenance: maintenance,
		sessions:    sessions,
		catalog:     catalogResolver{cache: cache, provider: provider, logger: logger},
		logger:      logger,
		now:         time.Now,
	}
}

type blockedDatesResponse struct {
	ProductID    string   `json:"product_id"`
	From         string   `json:"from"`
	To           string   `json:"to"`
	BlockedDates []string `json:"blocked_dates"`
}

// BlockedDates returns the union of rental and maintenance blocked days
// for a product, as calendar dates.
func (h *AvailabilityHandler) BlockedDates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	productID := strings.TrimSpace(r.URL.Query().Get("product_id"))
	if productID == "" {
		http.Error(w, "product_id required", http.StatusBadRequest)
		return
	}

	from := availability.DayOf(h.now().UTC())
	to := from.AddDate(0, 0, defaultWindowDays)
	if raw := strings.TrimSpace(r.URL.Query().Get("from")); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			http.Error(w, "invalid from date", http.StatusBadRequest)
			return
		}
		from = t
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("to")); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			http.Error(w, "invalid to date", http.StatusBadRequest)
			return
		}
		to = t
	}
	if to.Before(from) || to.Sub(from) > maxWindowDays*24*time.Hour {
		http.Error(w, "invalid date window", http.StatusBadRequest)
		return
	}

	blocked, err := h.blockedSet(r.Context(), productID, from, to)
	if err != nil {
		http.Error(w, "failed to load availability", http.StatusInternalServerError)
		return
	}

	days := blocked.Days()
	dates := make([]string, 0, len(days))
	for _, d := range days {
		dates = append(dates, d.Format(dateLayout))
	}
	writeJSON(w, http.StatusOK, blockedDatesResponse{
		ProductID:    productID,
		From:         from.Format(dateLayout),
		To:           to.Format(dateLayout),
		BlockedDates: dates,
	})
}

type selectRequest struct {
	SessionID string `json:"session_id"`
	ProductID string `json:"product_id"`
	Date      string `json:"date"`
	Reset     bool   `json:"reset"`
}

type selectResponse struct {
	Accepted  bool   `json:"accepted"`
	State     string `json:"state"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// Select applies one calendar click to the session's range selection and
// stores the resulting state. Rejected clicks leave the stored selection
// untouched.
func (h *AvailabilityHandler) Select(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.SessionID = strings.TrimSpace(req.SessionID)
	req.ProductID = strings.TrimSpace(req.ProductID)
	if req.SessionID == "" || req.ProductID == "" {
		http.Error(w, "session_id and product_id required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if req.Reset {
		if err := h.sessions.Clear(ctx, req.SessionID, req.ProductID); err != nil {
			h.logger.Warn("selection clear failed", "err", err)
		}
		writeJSON(w, http.StatusOK, selectResponse{Accepted: true, State: string(selection.StateEmpty)})
		return
	}

	date, err := time.Parse(dateLayout, strings.TrimSpace(req.Date))
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	snap, err := h.sessions.Get(ctx, req.SessionID, req.ProductID)
	if err != nil {
		http.Error(w, "failed to load selection", http.StatusInternalServerError)
		return
	}

	from, to := selectionWindow(snap, date)
	blocked, err := h.blockedSet(ctx, req.ProductID, from, to)
	if err != nil {
		http.Error(w, "failed to load availability", http.StatusInternalServerError)
		return
	}

	sel := selection.Restore(blocked, snap)
	result := sel.Select(date)
	if result.Accepted {
		if err := h.sessions.Put(ctx, req.SessionID, req.ProductID, sel.Snapshot()); err != nil {
			http.Error(w, "failed to store selection", http.StatusInternalServerError)
			return
		}
	}

	resp := selectResponse{
		Accepted: result.Accepted,
		State:    string(result.State),
		Reason:   string(result.Reason),
	}
	if !result.Start.IsZero() {
		resp.StartDate = result.Start.Format(dateLayout)
	}
	if !result.End.IsZero() {
		resp.EndDate = result.End.Format(dateLayout)
	}
	writeJSON(w, http.StatusOK, resp)
}

type quoteRequest struct {
	ProductID      string `json:"product_id"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Quantity       int    `json:"quantity"`
	BundleID       string `json:"bundle_id"`
	SameDay        bool   `json:"same_day"`
	DeliveryZoneID string `json:"delivery_zone_id"`
}

type quoteResponse struct {
	ProductID string `json:"product_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	BundleID  string `json:"bundle_id,omitempty"`
	pricing.Breakdown
}

// Quote prices a date range. Modifier data that cannot be resolved is
// omitted from the quote rather than failing the request.
func (h *AvailabilityHandler) Quote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.ProductID = strings.TrimSpace(req.ProductID)
	if req.ProductID == "" {
		http.Error(w, "product_id required", http.StatusBadRequest)
		return
	}
	start, err := time.Parse(dateLayout, strings.TrimSpace(req.StartDate))
	if err != nil {
		http.Error(w, "invalid start_date", http.StatusBadRequest)
		return
	}
	end, err := time.Parse(dateLayout, strings.TrimSpace(req.EndDate))
	if err != nil {
		http.Error(w, "invalid end_date", http.StatusBadRequest)
		return
	}
	if end.Before(start) {
		http.Error(w, "end_date must not be before start_date", http.StatusBadRequest)
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	ctx := r.Context()
	product, found, err := h.catalog.product(ctx, req.ProductID)
	if err != nil {
		http.Error(w, "failed to load product", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "unknown product", http.StatusNotFound)
		return
	}

	mods := pricing.Modifiers{
		Bundle:  h.catalog.bundle(ctx, strings.TrimSpace(req.BundleID), start, end),
		SameDay: h.catalog.sameDay(ctx, req.SameDay, req.DeliveryZoneID),
	}

	bd := pricing.Quote(start, end, product.DailyPriceCents, req.Quantity, mods)
	writeJSON(w, http.StatusOK, quoteResponse{
		ProductID: req.ProductID,
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
		BundleID:  req.BundleID,
		Breakdown: bd,
	})
}

func (h *AvailabilityHandler) blockedSet(ctx context.Context, productID string, from, to time.Time) (availability.BlockedDates, error) {
	rentalIvs, err := h.rentals.Intervals(ctx, productID, from, to)
	if err != nil {
		return nil, err
	}
	maintIvs, err := h.maintenance.Intervals(ctx, productID, from, to)
	if err != nil {
		return nil, err
	}
	return availability.Build(rentalIvs, maintIvs), nil
}

// selectionWindow widens the blocked-date window to cover both the stored
// anchor and the incoming click.
func selectionWindow(snap selection.Snapshot, date time.Time) (time.Time, time.Time) {
	from := availability.DayOf(date)
	to := from
	for _, t := range []time.Time{snap.Start, snap.End} {
		if t.IsZero() {
			continue
		}
		d := availability.DayOf(t)
		if d.Before(from) {
			from = d
		}
		if d.After(to) {
			to = d
		}
	}
	return from, to
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
