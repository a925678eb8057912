package handlers

import (
	"net/http"

	request "pixgate/internal/adapter/http/dto/request"
	response "pixgate/internal/adapter/http/dto/response"
	"pixgate/internal/usecase"
	"pixgate/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler exposes PIX charge creation, status polling and status
// streaming.

type PaymentHandler struct {
	usecase  usecase.IPaymentUseCase
	streamer usecase.IPaymentStreamer
	logger   *zap.Logger
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, streamer usecase.IPaymentStreamer, logger *zap.Logger) *PaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentHandler{usecase: uc, streamer: streamer, logger: logger.Named("handler")}
}

// CreatePayment godoc
// @Summary      Create a PIX charge
// @Description  Opens a PIX charge on the default provider, or on the one named in the path.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        provider  path      string                        false  "Provider name (gateway_a, gateway_b, gateway_c, mercadopago)"
// @Param        payload   body      request.PaymentCreateRequest  true   "Customer and amount"
// @Success      200       {object}  response.PixPaymentResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      500       {object}  pkg.HTTPError
// @Router       /create-payment [post]
// @Router       /providers/{provider}/create-payment [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	provider := c.Param("provider")

	var payload request.PaymentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Info("[payment][handler] invalid payload", zap.Error(err))
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.CreatePixPayment(c.Request.Context(), provider, payload.ToEntity())
	if err != nil {
		appErr := mapError(err)
		h.logger.Warn("[payment][handler] create failed", zap.String("provider", provider), zap.String("code", appErr.Code), zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPixResult(result))
}

// GetPaymentStatus godoc
// @Summary      Check a PIX charge
// @Tags         payments
// @Produce      json
// @Param        id        path      string  true   "Transaction id"
// @Param        provider  path      string  false  "Provider name"
// @Success      200       {object}  response.PaymentStatusResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      500       {object}  pkg.HTTPError
// @Router       /payment-status/{id} [get]
// @Router       /providers/{provider}/payment-status/{id} [get]
func (h *PaymentHandler) GetPaymentStatus(c *gin.Context) {
	provider := c.Param("provider")
	id := c.Param("id")

	result, err := h.usecase.GetPaymentStatus(c.Request.Context(), provider, id)
	if err != nil {
		appErr := mapError(err)
		h.logger.Warn("[payment][handler] status failed", zap.String("provider", provider), zap.String("transaction_id", id), zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStatusResult(result))
}

// StreamPaymentStatus godoc
// @Summary      Stream PIX charge status
// @Description  Server-sent events named status, approved and error. The stream ends shortly after approval or after ten minutes.
// @Tags         payments
// @Produce      text/event-stream
// @Param        id        path   string  true   "Transaction id"
// @Param        provider  query  string  false  "Provider name"
// @Success      200
// @Failure      400  {object}  pkg.HTTPError
// @Router       /payments/{id}/stream [get]
func (h *PaymentHandler) StreamPaymentStatus(c *gin.Context) {
	id := c.Param("id")
	provider := c.Query("provider")
	if id == "" {
		appErr := mapError(errMissingTransactionID)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ctx := c.Request.Context()
	emit := func(ev usecase.StreamEvent) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.SSEvent(string(ev.Type), ev)
		if last := c.Errors.Last(); last != nil {
			return last
		}
		c.Writer.Flush()
		return nil
	}

	outcome, err := h.streamer.Stream(ctx, provider, id, emit)
	if err != nil {
		h.logger.Warn("[payment][handler] stream aborted", zap.String("transaction_id", id), zap.Error(err))
		return
	}
	h.logger.Debug("[payment][handler] stream finished", zap.String("transaction_id", id), zap.String("outcome", string(outcome)))
}
