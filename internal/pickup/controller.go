package pickup

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"breadlab/internal/domain"
)

type Controller struct {
	logger *zap.Logger
}

func NewController(logger *zap.Logger) *Controller {
	return &Controller{logger: logger}
}

type WindowDTO struct {
	Code      string `json:"code"`
	Label     string `json:"label"`
	TimeRange string `json:"timeRange"`
	OrderBy   string `json:"orderBy"`
	Summary   string `json:"summary"`
}

type ListWindowsResponse struct {
	Windows []WindowDTO `json:"windows"`
	Default string      `json:"default"`
}

func (c *Controller) HandleListWindows(w http.ResponseWriter, r *http.Request) {
	windows := domain.PickupWindows()

	dtos := make([]WindowDTO, 0, len(windows))
	for _, win := range windows {
		dtos = append(dtos, WindowDTO{
			Code:      win.Code,
			Label:     win.Label,
			TimeRange: win.TimeRange,
			OrderBy:   win.OrderBy,
			Summary:   win.Summary(),
		})
	}

	c.writeJSON(w, http.StatusOK, ListWindowsResponse{
		Windows: dtos,
		Default: domain.PickupAfternoon,
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
