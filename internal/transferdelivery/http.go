// Package transferdelivery manages delivery layer of transfers.
package transferdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/engineering-bank/backend/internal/domain"
	"github.com/engineering-bank/backend/pkg/errorspkg"
	"github.com/engineering-bank/backend/pkg/web"
)

// Service provides service layer interface needed by transfer delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transferdelivery
type Service interface {
	Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.Transaction, error)
	History(ctx context.Context) ([]domain.Transaction, error)
}

// Handler facilitates transfer delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transfer handler.
func NewHandler(ts Service) *Handler {
	return &Handler{
		service: ts,
	}
}

type createRequest struct {
	ReceiverID  string `json:"receiverId" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description"`
}

// Create handles http request to transfer funds from the session account.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
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

	arg := domain.CreateTransferParams{
		ReceiverID:  req.ReceiverID,
		Amount:      req.Amount,
		Description: req.Description,
	}

	transaction, err := h.service.Transfer(ctx, arg)
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case domain.ErrSessionNotFound:
			gctx.JSON(http.StatusUnauthorized, web.Error(err))

			return
		case
			domain.ErrInvalidAmount,
			domain.ErrNegativeAmount,
			domain.ErrSelfTransfer,
			domain.ErrInsufficientFunds:
			gctx.JSON(http.StatusBadRequest, web.Error(err))

			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := web.Response{
		Data: struct {
			Transaction domain.Transaction `json:"transaction"`
		}{
			Transaction: transaction,
		},
	}

	gctx.JSON(http.StatusOK, res)
}

// History handles http request to list the session account's transactions.
func (h *Handler) History(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	transactions, err := h.service.History(ctx)
	if err != nil {
		if err == domain.ErrSessionNotFound {
			gctx.JSON(http.StatusUnauthorized, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := web.Response{
		Data: struct {
			Transactions []domain.Transaction `json:"transactions"`
		}{
			Transactions: transactions,
		},
	}

	gctx.JSON(http.StatusOK, res)
}
