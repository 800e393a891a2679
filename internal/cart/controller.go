package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"breadlab/internal/domain"
	apperrors "breadlab/internal/errors"
)

type Repository interface {
	Load(ctx context.Context, cartID string) (domain.Cart, error)
	Save(ctx context.Context, cartID string, cart domain.Cart) error
	Clear(ctx context.Context, cartID string) error
}

type Controller struct {
	repo   Repository
	logger *zap.Logger
}

func NewController(repo Repository, logger *zap.Logger) *Controller {
	return &Controller{
		repo:   repo,
		logger: logger,
	}
}

type AddItemRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type CartView struct {
	CartID string                 `json:"cartId"`
	Items  []domain.CartItem      `json:"items"`
	Lines  []domain.AggregateLine `json:"lines"`
	Total  float64                `json:"total"`
}

func (c *Controller) HandleGetCart(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartID")

	cart := c.loadCart(r.Context(), cartID)
	c.writeJSON(w, http.StatusOK, newCartView(cartID, cart))
}

func (c *Controller) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartID")

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if validationErr := validateAddItemRequest(req); validationErr != nil {
		ve, _ := apperrors.IsValidationError(validationErr)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	cart := c.loadCart(r.Context(), cartID)
	cart.Add(strings.TrimSpace(req.Name), req.Price)
	c.saveCart(r.Context(), cartID, cart)

	c.writeJSON(w, http.StatusOK, newCartView(cartID, cart))
}

func (c *Controller) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartID")

	indexStr := chi.URLParam(r, "index")
	index, err := strconv.Atoi(indexStr)
	if err != nil {
		c.writeValidationError(w, "invalid index", apperrors.ValidationDetail{
			Field:   "index",
			Message: "index must be an integer",
		})
		return
	}

	cart := c.loadCart(r.Context(), cartID)
	if cart.RemoveAt(index) {
		c.saveCart(r.Context(), cartID, cart)
	}

	c.writeJSON(w, http.StatusOK, newCartView(cartID, cart))
}

func (c *Controller) HandleClearCart(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartID")

	if err := c.repo.Clear(r.Context(), cartID); err != nil {
		c.logger.Warn("cart clear failed", zap.String("cartId", cartID), zap.Error(err))
	}

	c.writeJSON(w, http.StatusOK, newCartView(cartID, domain.Cart{}))
}

// loadCart reads the persisted cart. A store failure degrades to an empty
// cart so the storefront keeps working.
func (c *Controller) loadCart(ctx context.Context, cartID string) domain.Cart {
	cart, err := c.repo.Load(ctx, cartID)
	if err != nil {
		c.logger.Warn("cart load failed", zap.String("cartId", cartID), zap.Error(err))
	}
	return cart
}

// saveCart persists best-effort. A failure is logged and swallowed; the
// caller still responds with the mutated in-memory view, which may then
// drift from the persisted one until the next successful write.
func (c *Controller) saveCart(ctx context.Context, cartID string, cart domain.Cart) {
	if err := c.repo.Save(ctx, cartID, cart); err != nil {
		c.logger.Warn("cart persist failed", zap.String("cartId", cartID), zap.Error(err))
	}
}

func validateAddItemRequest(req AddItemRequest) error {
	var details []apperrors.ValidationDetail

	if strings.TrimSpace(req.Name) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Message: "name is required",
		})
	}

	if req.Price < 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "price",
			Message: "price must be non-negative",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func newCartView(cartID string, cart domain.Cart) CartView {
	items := cart.Items
	if items == nil {
		items = []domain.CartItem{}
	}

	return CartView{
		CartID: cartID,
		Items:  items,
		Lines:  cart.Aggregate(),
		Total:  cart.Total(),
	}
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *Controller) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
