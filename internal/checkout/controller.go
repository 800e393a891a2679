package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "breadlab/internal/errors"
)

type SessionService interface {
	CreateSession(ctx context.Context, req CreateCheckoutRequest, origin string) (string, error)
}

type Controller struct {
	service SessionService
	logger  *zap.Logger
}

func NewController(service SessionService, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

// HandleCreateCheckout creates a hosted payment session for the posted cart.
// Success and cancel redirects land back on the requesting origin.
func (c *Controller) HandleCreateCheckout(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req CreateCheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	if msg := validateCreateCheckoutRequest(req); msg != "" {
		logger.Warn("invalid checkout request", zap.String("reason", msg))
		c.writeError(w, http.StatusBadRequest, msg)
		return
	}

	origin := requestOrigin(r)

	url, err := c.service.CreateSession(r.Context(), req, origin)
	if err != nil {
		if ue, ok := apperrors.IsUpstreamError(err); ok {
			// The provider message travels in the body; the client shows a
			// generic notice regardless.
			c.writeError(w, http.StatusInternalServerError, ue.Error())
			return
		}
		logger.Error("unexpected error", zap.Error(err))
		c.writeError(w, http.StatusInternalServerError, "an unexpected error occurred")
		return
	}

	logger.Info("checkout session created",
		zap.Int("itemCount", len(req.Items)),
		zap.String("origin", origin),
	)

	c.writeJSON(w, http.StatusOK, CreateCheckoutResponse{URL: url})
}

func validateCreateCheckoutRequest(req CreateCheckoutRequest) string {
	if len(req.Items) == 0 {
		return "items must not be empty"
	}
	for _, item := range req.Items {
		if strings.TrimSpace(item.Name) == "" {
			return "each item needs a name"
		}
		if item.Price < 0 {
			return "item prices must be non-negative"
		}
	}
	if strings.TrimSpace(req.Email) == "" {
		return "email is required"
	}
	return ""
}

// requestOrigin derives the redirect base from the Origin header, falling
// back to the host the request arrived on.
func requestOrigin(r *http.Request) string {
	if origin := r.Header.Get("Origin"); origin != "" {
		return origin
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

func (c *Controller) writeError(w http.ResponseWriter, status int, message string) {
	c.writeJSON(w, status, ErrorResponse{Error: ErrorBody{Message: message}})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
