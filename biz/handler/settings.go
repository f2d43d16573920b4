package handler

import (
	"context"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/commercegrid/mediabridge/biz/service"
)

// SettingsHandler exposes the grouped settings store.
type SettingsHandler struct {
	service *service.Service
}

func NewSettingsHandler(svc *service.Service) *SettingsHandler {
	return &SettingsHandler{service: svc}
}

// ListGroup returns all settings in a group.
func (h *SettingsHandler) ListGroup(ctx context.Context, c *app.RequestContext) {
	group := c.Param("group")
	settings, err := h.service.ListSettings(ctx, group)
	if err != nil {
		writeInternalError(c, err)
		return
	}
	writeOK(c, map[string]any{"settings": settings})
}

// GetSetting returns one setting with default fallback.
func (h *SettingsHandler) GetSetting(ctx context.Context, c *app.RequestContext) {
	setting, err := h.service.GetSetting(ctx, c.Param("group"), c.Param("key"))
	if err != nil {
		if errors.Is(err, service.ErrSettingNotFound) {
			writeNotFound(c, err)
			return
		}
		writeInternalError(c, err)
		return
	}
	writeOK(c, setting)
}

type updateSettingRequest struct {
	Value string `json:"value"`
}

// UpdateSetting updates one setting value, creating the row when absent.
func (h *SettingsHandler) UpdateSetting(ctx context.Context, c *app.RequestContext) {
	var req updateSettingRequest
	if err := c.BindJSON(&req); err != nil {
		writeBadRequest(c, err)
		return
	}

	if err := h.service.UpdateSetting(ctx, c.Param("group"), c.Param("key"), req.Value); err != nil {
		writeInternalError(c, err)
		return
	}
	writeOK(c, nil)
}
