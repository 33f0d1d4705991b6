// Package securitydelivery manages delivery layer of the security monitor.
package securitydelivery

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/engineering-bank/backend/internal/domain"
	"github.com/engineering-bank/backend/pkg/errorspkg"
	"github.com/engineering-bank/backend/pkg/web"
)

// Service provides service layer interface needed by security delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package securitydelivery
type Service interface {
	List(ctx context.Context) ([]domain.SecurityEvent, error)
	ProtocolActive(ctx context.Context) (bool, error)
	ActivateProtocol(ctx context.Context, userID string) error
	SimulateThreat(ctx context.Context, userID, kind string) (domain.SecurityEvent, error)
}

// Sessions provides the session lookup needed to attribute security events.
type Sessions interface {
	Current(ctx context.Context) (domain.Profile, error)
}

// Handler facilitates security delivery layer logic.
type Handler struct {
	service  Service
	sessions Sessions
}

// NewHandler returns security handler.
func NewHandler(ss Service, sessions Sessions) *Handler {
	return &Handler{
		service:  ss,
		sessions: sessions,
	}
}

// userID attributes the request to the session account, falling back to the
// system user when no session is active.
func (h *Handler) userID(ctx context.Context) string {
	profile, err := h.sessions.Current(ctx)
	if err != nil {
		return domain.SystemUserID
	}

	return profile.ID
}

// List handles http request to return the security log, newest first.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	events, err := h.service.List(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	active, err := h.service.ProtocolActive(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	res := web.Response{
		Data: struct {
			Events         []domain.SecurityEvent `json:"events"`
			ProtocolActive bool                   `json:"protocolActive"`
		}{
			Events:         events,
			ProtocolActive: active,
		},
	}

	gctx.JSON(http.StatusOK, res)
}

// ActivateProtocol handles http request to switch the one-way protocol flag on.
func (h *Handler) ActivateProtocol(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	if err := h.service.ActivateProtocol(ctx, h.userID(ctx)); err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	res := web.Response{
		Data: struct {
			ProtocolActive bool   `json:"protocolActive"`
			Message        string `json:"message"`
		}{
			ProtocolActive: true,
			Message:        "Your account is now protected against hacking attempts",
		},
	}

	gctx.JSON(http.StatusOK, res)
}

type threatRequest struct {
	Kind string `json:"kind" binding:"required"`
}

// SimulateThreat handles http request to simulate a hack attempt. The
// operation only logs and never touches account or transaction data.
func (h *Handler) SimulateThreat(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req threatRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})

			return
		}

		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	event, err := h.service.SimulateThreat(ctx, h.userID(ctx), req.Kind)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	// A blocked attempt is recorded with Success=false.
	message := fmt.Sprintf("Simulated %s hack detected in your account", req.Kind)
	if !event.Success {
		message = "You can't hack this account as it is protected"
	}

	res := web.Response{
		Data: struct {
			Event   domain.SecurityEvent `json:"event"`
			Blocked bool                 `json:"blocked"`
			Message string               `json:"message"`
		}{
			Event:   event,
			Blocked: !event.Success,
			Message: message,
		},
	}

	gctx.JSON(http.StatusOK, res)
}
