package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/MaysJava/HappyShop/internal/catalogue"
	"github.com/MaysJava/HappyShop/internal/checkout"
	"github.com/MaysJava/HappyShop/internal/inventory"
	"github.com/MaysJava/HappyShop/internal/receipt"
	"github.com/MaysJava/HappyShop/internal/trolley"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// ProductLookup is the slice of the catalogue the handlers need.
type ProductLookup interface {
	Lookup(ctx context.Context, id string) (*catalogue.Product, error)
}

type ShopHandler struct {
	catalogue ProductLookup
	checkout  *checkout.Service
	sessions  *SessionRegistry
	log       *zap.Logger
}

func NewShopHandler(cat ProductLookup, co *checkout.Service, log *zap.Logger) *ShopHandler {
	return &ShopHandler{
		catalogue: cat,
		checkout:  co,
		sessions:  NewSessionRegistry(),
		log:       log,
	}
}

func NewRouter(h *ShopHandler, requestTimeout time.Duration) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products/{id}", h.GetProduct)
		r.Route("/trolley", func(r chi.Router) {
			r.Get("/", h.GetTrolley)
			r.Post("/items", h.AddTrolleyItem)
			r.Delete("/", h.ClearTrolley)
		})
		r.Post("/checkout", h.Checkout)
	})

	return r
}

type ProductDTO struct {
	ProductID   string  `json:"product_id"`
	Description string  `json:"description"`
	ImageRef    string  `json:"image_ref"`
	UnitPrice   float64 `json:"unit_price"`
	Stock       int     `json:"stock"`
}

type TrolleyLineDTO struct {
	ProductID   string  `json:"product_id"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
}

type TrolleyDTO struct {
	Lines    []TrolleyLineDTO `json:"lines"`
	Rendered string           `json:"rendered"`
}

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
}

type ShortfallDTO struct {
	ProductID   string `json:"product_id"`
	Description string `json:"description"`
	Available   int    `json:"available"`
	Requested   int    `json:"requested"`
}

type CheckoutResponseDTO struct {
	Status     string           `json:"status"`
	OrderID    string           `json:"order_id,omitempty"`
	OrderedAt  string           `json:"ordered_at,omitempty"`
	Lines      []TrolleyLineDTO `json:"lines,omitempty"`
	Shortfalls []ShortfallDTO   `json:"shortfalls,omitempty"`
	Rendered   string           `json:"rendered"`
}

// GET /api/v1/products/{id}
func (h *ShopHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.catalogue.Lookup(r.Context(), id)
	if errors.Is(err, catalogue.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "product_not_found", "No Product was found with ID "+id)
		return
	}
	if err != nil {
		h.log.Error("product lookup failed", zap.String("product_id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to look up product")
		return
	}

	respondJSON(w, http.StatusOK, ProductDTO{
		ProductID:   product.ID,
		Description: product.Description,
		ImageRef:    product.ImageRef,
		UnitPrice:   product.UnitPrice,
		Stock:       product.StockQuantity,
	})
}

// POST /api/v1/trolley/items
//
// A product that does not exist in the catalogue is refused; nothing enters
// the trolley.
func (h *ShopHandler) AddTrolleyItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "missing_product_id", "product_id is required")
		return
	}

	product, err := h.catalogue.Lookup(r.Context(), req.ProductID)
	if errors.Is(err, catalogue.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "product_not_found", "No Product was found with ID "+req.ProductID)
		return
	}
	if err != nil {
		h.log.Error("product lookup failed", zap.String("product_id", req.ProductID), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to look up product")
		return
	}

	t := h.sessions.Trolley(sessionID(r))
	t.AddOrMerge(*product)
	t.SortByID()

	respondJSON(w, http.StatusOK, trolleyDTO(t.Lines()))
}

// GET /api/v1/trolley
func (h *ShopHandler) GetTrolley(w http.ResponseWriter, r *http.Request) {
	t := h.sessions.Trolley(sessionID(r))
	respondJSON(w, http.StatusOK, trolleyDTO(t.Lines()))
}

// DELETE /api/v1/trolley
func (h *ShopHandler) ClearTrolley(w http.ResponseWriter, r *http.Request) {
	t := h.sessions.Trolley(sessionID(r))
	t.Clear()
	w.WriteHeader(http.StatusNoContent)
}

// POST /api/v1/checkout
func (h *ShopHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	t := h.sessions.Trolley(sessionID(r))

	result, err := h.checkout.Checkout(r.Context(), t)
	if err != nil {
		h.log.Error("checkout failed", zap.Error(err))
		respondError(w, http.StatusServiceUnavailable, "reservation_unavailable",
			"stock reservation failed, please retry")
		return
	}

	switch result.Status {
	case checkout.StatusCommitted:
		o := *result.Order
		respondJSON(w, http.StatusCreated, CheckoutResponseDTO{
			Status:    result.Status.String(),
			OrderID:   o.ID,
			OrderedAt: o.OrderedAt.Format(time.RFC3339),
			Lines:     lineDTOs(o.Lines),
			Rendered:  receipt.FormatOrder(o),
		})
	case checkout.StatusRejected:
		respondJSON(w, http.StatusConflict, CheckoutResponseDTO{
			Status:     result.Status.String(),
			Shortfalls: shortfallDTOs(result.Shortfalls),
			Rendered:   receipt.FormatShortfalls(result.Shortfalls),
		})
	case checkout.StatusEmptyTrolley:
		respondJSON(w, http.StatusUnprocessableEntity, CheckoutResponseDTO{
			Status:   result.Status.String(),
			Rendered: receipt.EmptyTrolleyMessage,
		})
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "unexpected checkout status")
	}
}

func trolleyDTO(lines []trolley.Line) TrolleyDTO {
	rendered := receipt.EmptyTrolleyMessage
	if len(lines) > 0 {
		rendered = receipt.FormatLines(lines)
	}
	return TrolleyDTO{
		Lines:    lineDTOs(lines),
		Rendered: rendered,
	}
}

func lineDTOs(lines []trolley.Line) []TrolleyLineDTO {
	dtos := make([]TrolleyLineDTO, len(lines))
	for i, line := range lines {
		dtos[i] = TrolleyLineDTO{
			ProductID:   line.ProductID,
			Description: line.Description,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
		}
	}
	return dtos
}

func shortfallDTOs(shortfalls []inventory.StockShortfall) []ShortfallDTO {
	dtos := make([]ShortfallDTO, len(shortfalls))
	for i, sf := range shortfalls {
		dtos[i] = ShortfallDTO{
			ProductID:   sf.ProductID,
			Description: sf.Description,
			Available:   sf.Available,
			Requested:   sf.Requested,
		}
	}
	return dtos
}
