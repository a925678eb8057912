package handlers

import (
	"net/http"

	response "pixgate/internal/adapter/http/dto/response"
	"pixgate/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VehicleHandler struct {
	usecase usecase.IVehicleUseCase
	logger  *zap.Logger
}

func NewVehicleHandler(uc usecase.IVehicleUseCase, logger *zap.Logger) *VehicleHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VehicleHandler{usecase: uc, logger: logger.Named("handler")}
}

// GetVehicleInfo godoc
// @Summary      Look up a vehicle by plate
// @Description  Upstream failures return a validated placeholder instead of an error.
// @Tags         vehicles
// @Produce      json
// @Param        plate  path      string  true  "Plate, 6 to 8 letters or digits"
// @Success      200    {object}  response.VehicleInfoResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      500    {object}  pkg.HTTPError
// @Router       /vehicle-info/{plate} [get]
func (h *VehicleHandler) GetVehicleInfo(c *gin.Context) {
	info, err := h.usecase.GetVehicleInfo(c.Request.Context(), c.Param("plate"))
	if err != nil {
		appErr := mapError(err)
		h.logger.Warn("[vehicle][handler] lookup failed", zap.String("plate", c.Param("plate")), zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromVehicleInfo(info))
}
