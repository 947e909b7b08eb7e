package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/model"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/storage"
)

type MaintenanceHandler struct {
	repo   *storage.MaintenanceRepository
	logger *slog.Logger
}

func NewMaintenanceHandler(repo *storage.MaintenanceRepository, logger *slog.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{repo: repo, logger: logger}
}

type createMaintenanceRequest struct {
	ProductID      string `json:"product_id"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Reason         string `json:"reason"`
	BlocksBookings *bool  `json:"blocks_bookings"`
}

type maintenanceItem struct {
	WindowID       string `json:"window_id"`
	ProductID      string `json:"product_id"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Reason         string `json:"reason,omitempty"`
	BlocksBookings bool   `json:"blocks_bookings"`
	CreatedAt      string `json:"created_at"`
}

// Create schedules a maintenance blackout. Windows block bookings unless
// blocks_bookings is explicitly false.
func (h *MaintenanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req createMaintenanceRequest
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

	window := &model.MaintenanceWindow{
		ProductID:      req.ProductID,
		StartAt:        start,
		EndAt:          end,
		Reason:         strings.TrimSpace(req.Reason),
		BlocksBookings: true,
	}
	if req.BlocksBookings != nil {
		window.BlocksBookings = *req.BlocksBookings
	}

	id, err := h.repo.Create(r.Context(), window)
	if err != nil {
		http.Error(w, "failed to create maintenance window", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"window_id": id})
}

func (h *MaintenanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		WindowID string `json:"window_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.WindowID = strings.TrimSpace(req.WindowID)
	if req.WindowID == "" {
		http.Error(w, "window_id required", http.StatusBadRequest)
		return
	}

	deleted, err := h.repo.Delete(r.Context(), req.WindowID)
	if err != nil {
		http.Error(w, "failed to delete maintenance window", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "maintenance window not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"window_id": req.WindowID, "status": "deleted"})
}

func (h *MaintenanceHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	productID := strings.TrimSpace(r.URL.Query().Get("product_id"))
	if productID == "" {
		http.Error(w, "product_id required", http.StatusBadRequest)
		return
	}

	windows, err := h.repo.ListByProduct(r.Context(), productID)
	if err != nil {
		http.Error(w, "failed to list maintenance windows", http.StatusInternalServerError)
		return
	}

	items := make([]maintenanceItem, 0, len(windows))
	for _, win := range windows {
		items = append(items, maintenanceItem{
			WindowID:       win.ID,
			ProductID:      win.ProductID,
			StartDate:      win.StartAt.Format(dateLayout),
			EndDate:        win.EndAt.Format(dateLayout),
			Reason:         win.Reason,
			BlocksBookings: win.BlocksBookings,
			CreatedAt:      win.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"windows": items})
}
