package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mehedi-hasan-dev/rentora/services/catalog-service/internal/bundles"
	"github.com/mehedi-hasan-dev/rentora/services/catalog-service/internal/model"
	"github.com/mehedi-hasan-dev/rentora/services/catalog-service/internal/outbox"
	"github.com/mehedi-hasan-dev/rentora/services/catalog-service/internal/storage"
)

const dateLayout = "2006-01-02"

type CatalogHandler struct {
	repo       *storage.Repository
	outboxRepo *outbox.Repository
	logger     *slog.Logger
}

func NewCatalogHandler(repo *storage.Repository, outboxRepo *outbox.Repository, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{repo: repo, outboxRepo: outboxRepo, logger: logger}
}

type upsertProductRequest struct {
	ProductID       string `json:"product_id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	DailyPriceCents int64  `json:"daily_price_cents"`
	Active          *bool  `json:"active"`
}

type productItem struct {
	ProductID       string `json:"product_id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	DailyPriceCents int64  `json:"daily_price_cents"`
	Active          bool   `json:"active"`
}

type upsertZoneRequest struct {
	ZoneID           string `json:"zone_id"`
	Name             string `json:"name"`
	SameDayAvailable bool   `json:"same_day_available"`
	SameDayFeeCents  int64  `json:"same_day_fee_cents"`
	CutoffTime       string `json:"cutoff_time"`
}

type zoneItem struct {
	ZoneID           string `json:"zone_id"`
	Name             string `json:"name"`
	SameDayAvailable bool   `json:"same_day_available"`
	SameDayFeeCents  int64  `json:"same_day_fee_cents"`
	CutoffTime       string `json:"cutoff_time,omitempty"`
}

type upsertBundleRequest struct {
	BundleID        string  `json:"bundle_id"`
	Name            string  `json:"name"`
	DiscountPercent float64 `json:"discount_percent"`
	Active          *bool   `json:"active"`
	Items           []struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	} `json:"items"`
}

// UpsertProduct writes the product and emits catalog.product.updated.v1
// in the same transaction so downstream caches converge.
func (h *CatalogHandler) UpsertProduct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req upsertProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		http.Error(w, "name required", http.StatusBadRequest)
		return
	}
	if req.DailyPriceCents < 0 {
		http.Error(w, "daily_price_cents must not be negative", http.StatusBadRequest)
		return
	}

	product := &model.Product{
		ID:              strings.TrimSpace(req.ProductID),
		Name:            req.Name,
		Description:     strings.TrimSpace(req.Description),
		DailyPriceCents: req.DailyPriceCents,
		Active:          true,
	}
	if req.Active != nil {
		product.Active = *req.Active
	}

	ctx := r.Context()
	tx, err := h.repo.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id, err := h.repo.UpsertProduct(ctx, tx, product)
	if err != nil {
		http.Error(w, "failed to upsert product", http.StatusInternalServerError)
		return
	}

	evtPayload, err := json.Marshal(map[string]any{
		"product_id":        id,
		"name":              product.Name,
		"daily_price_cents": product.DailyPriceCents,
		"active":            product.Active,
	})
	if err != nil {
		http.Error(w, "failed to build event payload", http.StatusInternalServerError)
		return
	}
	if err := h.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: outbox.AggregateProduct,
		AggregateID:   id,
		EventType:     outbox.EventProductUpdated,
		Payload:       evtPayload,
	}); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"product_id": id})
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	products, err := h.repo.ListProducts(r.Context())
	if err != nil {
		http.Error(w, "failed to list products", http.StatusInternalServerError)
		return
	}

	items := make([]productItem, 0, len(products))
	for _, p := range products {
		items = append(items, productItem{
			ProductID:       p.ID,
			Name:            p.Name,
			Description:     p.Description,
			DailyPriceCents: p.DailyPriceCents,
			Active:          p.Active,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": items})
}

func (h *CatalogHandler) UpsertZone(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req upsertZoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		http.Error(w, "name required", http.StatusBadRequest)
		return
	}
	if req.CutoffTime != "" {
		if _, err := time.Parse("15:04", req.CutoffTime); err != nil {
			http.Error(w, "invalid cutoff_time, expected HH:MM", http.StatusBadRequest)
			return
		}
	}

	zone := &model.DeliveryZone{
		ID:               strings.TrimSpace(req.ZoneID),
		Name:             req.Name,
		SameDayAvailable: req.SameDayAvailable,
		SameDayFeeCents:  req.SameDayFeeCents,
		CutoffTime:       req.CutoffTime,
	}

	ctx := r.Context()
	tx, err := h.repo.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id, err := h.repo.UpsertZone(ctx, tx, zone)
	if err != nil {
		http.Error(w, "failed to upsert zone", http.StatusInternalServerError)
		return
	}

	evtPayload, err := json.Marshal(map[string]any{
		"zone_id":            id,
		"name":               zone.Name,
		"same_day_available": zone.SameDayAvailable,
		"same_day_fee_cents": zone.SameDayFeeCents,
		"cutoff_time":        zone.CutoffTime,
	})
	if err != nil {
		http.Error(w, "failed to build event payload", http.StatusInternalServerError)
		return
	}
	if err := h.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: outbox.AggregateZone,
		AggregateID:   id,
		EventType:     outbox.EventZoneUpdated,
		Payload:       evtPayload,
	}); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"zone_id": id})
}

func (h *CatalogHandler) ListZones(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	zones, err := h.repo.ListZones(r.Context())
	if err != nil {
		http.Error(w, "failed to list zones", http.StatusInternalServerError)
		return
	}

	items := make([]zoneItem, 0, len(zones))
	for _, z := range zones {
		items = append(items, zoneItem{
			ZoneID:           z.ID,
			Name:             z.Name,
			SameDayAvailable: z.SameDayAvailable,
			SameDayFeeCents:  z.SameDayFeeCents,
			CutoffTime:       z.CutoffTime,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"zones": items})
}

// SameDay answers whether a zone currently offers same-day delivery and
// at what fee.
func (h *CatalogHandler) SameDay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	zoneID := strings.TrimSpace(r.URL.Query().Get("zone_id"))
	if zoneID == "" {
		http.Error(w, "zone_id required", http.StatusBadRequest)
		return
	}

	zone, err := h.repo.GetZone(r.Context(), zoneID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "zone not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load zone", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, zoneItem{
		ZoneID:           zone.ID,
		Name:             zone.Name,
		SameDayAvailable: zone.SameDayAvailable,
		SameDayFeeCents:  zone.SameDayFeeCents,
		CutoffTime:       zone.CutoffTime,
	})
}

func (h *CatalogHandler) UpsertBundle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req upsertBundleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || len(req.Items) == 0 {
		http.Error(w, "name and items required", http.StatusBadRequest)
		return
	}
	if req.DiscountPercent < 0 || req.DiscountPercent > 100 {
		http.Error(w, "discount_percent must be between 0 and 100", http.StatusBadRequest)
		return
	}

	bundle := &model.Bundle{
		ID:              strings.TrimSpace(req.BundleID),
		Name:            req.Name,
		DiscountPercent: req.DiscountPercent,
		Active:          true,
	}
	if req.Active != nil {
		bundle.Active = *req.Active
	}
	for _, item := range req.Items {
		productID := strings.TrimSpace(item.ProductID)
		if productID == "" {
			http.Error(w, "item product_id required", http.StatusBadRequest)
			return
		}
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		bundle.Items = append(bundle.Items, model.BundleItem{ProductID: productID, Quantity: qty})
	}

	ctx := r.Context()
	tx, err := h.repo.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id, err := h.repo.UpsertBundle(ctx, tx, bundle)
	if err != nil {
		http.Error(w, "failed to upsert bundle", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"bundle_id": id})
}

func (h *CatalogHandler) ListBundles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	items, err := h.repo.ListBundles(r.Context())
	if err != nil {
		http.Error(w, "failed to list bundles", http.StatusInternalServerError)
		return
	}

	type bundleItem struct {
		BundleID        string  `json:"bundle_id"`
		Name            string  `json:"name"`
		DiscountPercent float64 `json:"discount_percent"`
	}
	out := make([]bundleItem, 0, len(items))
	for _, b := range items {
		out = append(out, bundleItem{BundleID: b.ID, Name: b.Name, DiscountPercent: b.DiscountPercent})
	}
	writeJSON(w, http.StatusOK, map[string]any{"bundles": out})
}

// QuoteBundle prices a bundle over a date range using the members' current
// daily rates.
func (h *CatalogHandler) QuoteBundle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	bundleID := strings.TrimSpace(q.Get("bundle_id"))
	if bundleID == "" {
		http.Error(w, "bundle_id required", http.StatusBadRequest)
		return
	}
	start, err := time.Parse(dateLayout, strings.TrimSpace(q.Get("start_date")))
	if err != nil {
		http.Error(w, "invalid start_date", http.StatusBadRequest)
		return
	}
	end, err := time.Parse(dateLayout, strings.TrimSpace(q.Get("end_date")))
	if err != nil {
		http.Error(w, "invalid end_date", http.StatusBadRequest)
		return
	}
	if end.Before(start) {
		http.Error(w, "end_date must not be before start_date", http.StatusBadRequest)
		return
	}

	bundle, err := h.repo.GetBundle(r.Context(), bundleID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "bundle not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load bundle", http.StatusInternalServerError)
		return
	}
	if !bundle.Active {
		http.Error(w, "bundle not found", http.StatusNotFound)
		return
	}

	quote := bundles.Compute(bundle, start, end)
	writeJSON(w, http.StatusOK, map[string]any{
		"bundle_id":          quote.BundleID,
		"start_date":         start.Format(dateLayout),
		"end_date":           end.Format(dateLayout),
		"total_days":         quote.TotalDays,
		"base_price_cents":   quote.BasePriceCents,
		"bundle_price_cents": quote.BundlePriceCents,
		"savings_cents":      quote.SavingsCents,
		"discount_percent":   quote.DiscountPercent,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
