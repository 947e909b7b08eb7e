package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/availability"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/catalog"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/model"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/outbox"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/pricing"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/storage"
)

type OrderHandler struct {
	repo        *storage.RentalRepository
	maintenance *storage.MaintenanceRepository
	outboxRepo  *outbox.Repository
	catalog     catalogResolver
	logger      *slog.Logger
}

func NewOrderHandler(repo *storage.RentalRepository, maintenance *storage.MaintenanceRepository, outboxRepo *outbox.Repository, cache CatalogStore, provider catalog.Provider, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		repo:        repo,
		maintenance: maintenance,
		outboxRepo:  outboxRepo,
		catalog:     catalogResolver{cache: cache, provider: provider, logger: logger},
		logger:      logger,
	}
}

type createRentalRequest struct {
	ProductID      string `json:"product_id"`
	CustomerName   string `json:"customer_name"`
	CustomerEmail  string `json:"customer_email"`
	CustomerPhone  string `json:"customer_phone"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Quantity       int    `json:"quantity"`
	BundleID       string `json:"bundle_id"`
	SameDay        bool   `json:"same_day"`
	DeliveryZoneID string `json:"delivery_zone_id"`
}

type createRentalResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
	pricing.Breakdown
}

type cancelRentalRequest struct {
	OrderID string `json:"order_id"`
	Reason  string `json:"reason"`
}

type cancelRentalResponse struct {
	OrderID     string `json:"order_id"`
	Status      string `json:"status"`
	CancelledAt string `json:"cancelled_at"`
}

type listRentalItem struct {
	OrderID         string `json:"order_id"`
	ProductID       string `json:"product_id"`
	CustomerName    string `json:"customer_name"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	Quantity        int    `json:"quantity"`
	Status          string `json:"status"`
	TotalCents      int64  `json:"total_cents"`
	BundleID        string `json:"bundle_id,omitempty"`
	SameDay         bool   `json:"same_day"`
	SameDayFeeCents int64  `json:"same_day_fee_cents,omitempty"`
	CancelledAt     string `json:"cancelled_at,omitempty"`
	CreatedAt       string `json:"created_at"`
}

// Create books a rental order. The requested dates are re-validated
// against current availability inside the transaction, and the database's
// exclusion constraint is the final arbiter under concurrency.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req createRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.ProductID = strings.TrimSpace(req.ProductID)
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	if req.ProductID == "" || req.CustomerName == "" {
		http.Error(w, "product_id and customer_name required", http.StatusBadRequest)
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
	tx, err := h.repo.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	idempotencyKey := strings.TrimSpace(r.Header.Get("Idempotency-Key"))
	if idempotencyKey != "" {
		rec, exists, err := h.repo.LockIdempotencyKey(ctx, tx, req.ProductID, idempotencyKey)
		if err != nil {
			http.Error(w, "failed to lock idempotency key", http.StatusInternalServerError)
			return
		}
		if exists && rec.StatusCode > 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(rec.StatusCode)
			_, _ = w.Write(rec.ResponsePayload)
			return
		}
	}

	product, found, err := h.catalog.product(ctx, req.ProductID)
	if err != nil {
		http.Error(w, "failed to load product", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "unknown product", http.StatusNotFound)
		return
	}

	clear, err := h.datesClear(ctx, req.ProductID, start, end)
	if err != nil {
		http.Error(w, "failed to check availability", http.StatusInternalServerError)
		return
	}
	if !clear {
		if idempotencyKey != "" && h.finalizeIdempotencyError(ctx, tx, req.ProductID, idempotencyKey, http.StatusConflict, "requested dates are unavailable") {
			_ = tx.Commit(ctx)
		}
		writeJSONError(w, http.StatusConflict, "requested dates are unavailable")
		return
	}

	mods := pricing.Modifiers{
		Bundle:  h.catalog.bundle(ctx, strings.TrimSpace(req.BundleID), start, end),
		SameDay: h.catalog.sameDay(ctx, req.SameDay, req.DeliveryZoneID),
	}
	bd := pricing.Quote(start, end, product.DailyPriceCents, req.Quantity, mods)

	order := &model.RentalOrder{
		ProductID:       req.ProductID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   strings.TrimSpace(req.CustomerEmail),
		CustomerPhone:   strings.TrimSpace(req.CustomerPhone),
		StartDate:       availability.DayOf(start),
		EndDate:         availability.DayOf(end),
		Quantity:        req.Quantity,
		Status:          model.StatusConfirmed,
		UnitPriceCents:  product.DailyPriceCents,
		TotalCents:      bd.FinalTotalCents,
		BundleID:        strings.TrimSpace(req.BundleID),
		SameDay:         mods.SameDay.OptedIn && mods.SameDay.Zone != nil && mods.SameDay.Zone.Available,
		SameDayFeeCents: bd.SameDayFeeCents,
		DeliveryZoneID:  strings.TrimSpace(req.DeliveryZoneID),
	}

	id, err := h.repo.Create(ctx, tx, order)
	if err != nil {
		if storage.IsConflict(err) {
			http.Error(w, "requested dates are unavailable", http.StatusConflict)
			return
		}
		http.Error(w, "failed to create rental order", http.StatusInternalServerError)
		return
	}

	evtPayload, err := json.Marshal(map[string]any{
		"order_id":           id,
		"product_id":         order.ProductID,
		"start_date":         order.StartDate.Format(dateLayout),
		"end_date":           order.EndDate.Format(dateLayout),
		"quantity":           order.Quantity,
		"total_cents":        order.TotalCents,
		"same_day":           order.SameDay,
		"bundle_id":          order.BundleID,
		"customer_email":     order.CustomerEmail,
		"same_day_fee_cents": order.SameDayFeeCents,
	})
	if err != nil {
		http.Error(w, "failed to build event payload", http.StatusInternalServerError)
		return
	}
	if err := h.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: outbox.AggregateRentalOrder,
		AggregateID:   id,
		EventType:     outbox.EventOrderBooked,
		Payload:       evtPayload,
	}); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}

	respBody, err := json.Marshal(createRentalResponse{OrderID: id, Status: order.Status, Breakdown: bd})
	if err != nil {
		http.Error(w, "failed to build response", http.StatusInternalServerError)
		return
	}
	if idempotencyKey != "" {
		if err := h.repo.FinalizeIdempotency(ctx, tx, req.ProductID, idempotencyKey, id, http.StatusCreated, respBody); err != nil {
			http.Error(w, "failed to finalize idempotency key", http.StatusInternalServerError)
			return
		}
	}

	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write(respBody)
}

func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req cancelRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.OrderID = strings.TrimSpace(req.OrderID)
	req.Reason = strings.TrimSpace(req.Reason)
	if req.OrderID == "" {
		http.Error(w, "order_id required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	tx, err := h.repo.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	order, err := h.repo.GetOrderForUpdate(ctx, tx, req.OrderID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "rental order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load rental order", http.StatusInternalServerError)
		return
	}

	if order.Status == model.StatusCancelled && order.CancelledAt != nil {
		writeJSON(w, http.StatusOK, cancelRentalResponse{
			OrderID:     order.ID,
			Status:      model.StatusCancelled,
			CancelledAt: order.CancelledAt.UTC().Format(time.RFC3339),
		})
		return
	}
	if order.Status == model.StatusCompleted {
		http.Error(w, "rental order cannot be cancelled", http.StatusConflict)
		return
	}

	cancelledAt, err := h.repo.CancelOrder(ctx, tx, order.ID, req.Reason)
	if err != nil {
		http.Error(w, "failed to cancel rental order", http.StatusInternalServerError)
		return
	}

	evtPayload, err := json.Marshal(map[string]any{
		"order_id":     order.ID,
		"product_id":   order.ProductID,
		"start_date":   order.StartDate.Format(dateLayout),
		"end_date":     order.EndDate.Format(dateLayout),
		"quantity":     order.Quantity,
		"cancelled_at": cancelledAt.UTC().Format(time.RFC3339),
		"reason":       req.Reason,
	})
	if err != nil {
		http.Error(w, "failed to build cancellation event", http.StatusInternalServerError)
		return
	}
	if err := h.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: outbox.AggregateRentalOrder,
		AggregateID:   order.ID,
		EventType:     outbox.EventOrderCancelled,
		Payload:       evtPayload,
	}); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, cancelRentalResponse{
		OrderID:     order.ID,
		Status:      model.StatusCancelled,
		CancelledAt: cancelledAt.UTC().Format(time.RFC3339),
	})
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	productID := strings.TrimSpace(r.URL.Query().Get("product_id"))
	if productID == "" {
		http.Error(w, "product_id required", http.StatusBadRequest)
		return
	}

	limit := 50
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	orders, err := h.repo.ListByProduct(r.Context(), productID, limit)
	if err != nil {
		http.Error(w, "failed to list rental orders", http.StatusInternalServerError)
		return
	}

	items := make([]listRentalItem, 0, len(orders))
	for _, order := range orders {
		item := listRentalItem{
			OrderID:         order.ID,
			ProductID:       order.ProductID,
			CustomerName:    order.CustomerName,
			StartDate:       order.StartDate.Format(dateLayout),
			EndDate:         order.EndDate.Format(dateLayout),
			Quantity:        order.Quantity,
			Status:          order.Status,
			TotalCents:      order.TotalCents,
			BundleID:        order.BundleID,
			SameDay:         order.SameDay,
			SameDayFeeCents: order.SameDayFeeCents,
			CreatedAt:       order.CreatedAt.UTC().Format(time.RFC3339),
		}
		if order.CancelledAt != nil {
			item.CancelledAt = order.CancelledAt.UTC().Format(time.RFC3339)
		}
		items = append(items, item)
	}
	writeJSON(w, http.StatusOK, map[string]any{"rentals": items})
}

func (h *OrderHandler) datesClear(ctx context.Context, productID string, start, end time.Time) (bool, error) {
	occupied, err := h.repo.ListOccupiedIntervals(ctx, productID, start, end)
	if err != nil {
		return false, err
	}
	blackouts, err := h.maintenance.ListBlockingIntervals(ctx, productID, start, end)
	if err != nil {
		return false, err
	}
	blocked := availability.Build(occupied, blackouts)
	return blocked.RangeClear(start, end), nil
}

func (h *OrderHandler) finalizeIdempotencyError(ctx context.Context, tx pgx.Tx, productID, key string, status int, msg string) bool {
	body, err := json.Marshal(map[string]string{"error": msg})
	if err != nil {
		return false
	}
	if err := h.repo.FinalizeIdempotency(ctx, tx, productID, key, "", status, body); err != nil {
		h.logger.Warn("idempotency finalize failed", "err", err)
		return false
	}
	return true
}
