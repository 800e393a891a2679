package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "breadlab/internal/errors"
)

type fakeSessionService struct {
	CreateSessionFunc func(ctx context.Context, req CreateCheckoutRequest, origin string) (string, error)
	calls             int
}

func (f *fakeSessionService) CreateSession(ctx context.Context, req CreateCheckoutRequest, origin string) (string, error) {
	f.calls++
	return f.CreateSessionFunc(ctx, req, origin)
}

func postCheckout(t *testing.T, ctrl *Controller, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/create-checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ctrl.HandleCreateCheckout(rec, req)
	return rec
}

func TestHandleCreateCheckout_Success(t *testing.T) {
	svc := &fakeSessionService{
		CreateSessionFunc: func(ctx context.Context, req CreateCheckoutRequest, origin string) (string, error) {
			assert.Equal(t, "https://bread.example", origin)
			assert.Equal(t, "a@b.com", req.Email)
			return "https://checkout.stripe.com/pay/cs_test_123", nil
		},
	}
	ctrl := NewController(svc, zap.NewNop())

	rec := postCheckout(t, ctrl,
		`{"items":[{"name":"Sourdough","price":8}],"email":"a@b.com"}`,
		map[string]string{"Origin": "https://bread.example"},
	)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp CreateCheckoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test_123", resp.URL)
}

func TestHandleCreateCheckout_ProviderFailure(t *testing.T) {
	svc := &fakeSessionService{
		CreateSessionFunc: func(ctx context.Context, req CreateCheckoutRequest, origin string) (string, error) {
			return "", apperrors.NewUpstreamError("creating checkout session", assert.AnError)
		},
	}
	ctrl := NewController(svc, zap.NewNop())

	rec := postCheckout(t, ctrl, `{"items":[{"name":"Rye","price":9.5}],"email":"a@b.com"}`, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, assert.AnError.Error(), resp.Error.Message)
}

func TestHandleCreateCheckout_EmptyItems(t *testing.T) {
	svc := &fakeSessionService{
		CreateSessionFunc: func(ctx context.Context, req CreateCheckoutRequest, origin string) (string, error) {
			return "https://example", nil
		},
	}
	ctrl := NewController(svc, zap.NewNop())

	rec := postCheckout(t, ctrl, `{"items":[],"email":"a@b.com"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.calls)
	assert.Contains(t, rec.Body.String(), "items must not be empty")
}

func TestHandleCreateCheckout_MissingEmail(t *testing.T) {
	svc := &fakeSessionService{
		CreateSessionFunc: func(ctx context.Context, req CreateCheckoutRequest, origin string) (string, error) {
			return "https://example", nil
		},
	}
	ctrl := NewController(svc, zap.NewNop())

	rec := postCheckout(t, ctrl, `{"items":[{"name":"Rye","price":9.5}],"email":"  "}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.calls)
}

func TestHandleCreateCheckout_NegativePrice(t *testing.T) {
	svc := &fakeSessionService{
		CreateSessionFunc: func(ctx context.Context, req CreateCheckoutRequest, origin string) (string, error) {
			return "https://example", nil
		},
	}
	ctrl := NewController(svc, zap.NewNop())

	rec := postCheckout(t, ctrl, `{"items":[{"name":"Rye","price":-1}],"email":"a@b.com"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.calls)
}

func TestHandleCreateCheckout_InvalidJSON(t *testing.T) {
	svc := &fakeSessionService{
		CreateSessionFunc: func(ctx context.Context, req CreateCheckoutRequest, origin string) (string, error) {
			return "https://example", nil
		},
	}
	ctrl := NewController(svc, zap.NewNop())

	rec := postCheckout(t, ctrl, `{broken`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.calls)
}

func TestHandleCreateCheckout_FallsBackToRequestHost(t *testing.T) {
	svc := &fakeSessionService{
		CreateSessionFunc: func(ctx context.Context, req CreateCheckoutRequest, origin string) (string, error) {
			assert.Equal(t, "http://example.com", origin)
			return "https://example", nil
		},
	}
	ctrl := NewController(svc, zap.NewNop())

	rec := postCheckout(t, ctrl, `{"items":[{"name":"Rye","price":9.5}],"email":"a@b.com"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.calls)
}
