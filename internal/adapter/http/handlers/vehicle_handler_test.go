package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pixgate/internal/adapter/http/handlers/mocks"
	"pixgate/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestVehicleHandler_GetVehicleInfo(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		info       entities.VehicleInfo
		err        error
		wantStatus int
	}{
		{name: "found", info: entities.VehicleInfo{Plate: "ABC1D23", Brand: "VW", Validated: true}, wantStatus: http.StatusOK},
		{name: "placeholder", info: entities.VehicleInfo{Plate: "ABC1D23", Validated: true, Placeholder: true}, wantStatus: http.StatusOK},
		{name: "malformed plate", err: entities.NewValidationError("plate", "plate must have 6 to 8 letters or digits"), wantStatus: http.StatusBadRequest},
		{name: "missing credentials", err: entities.NewConfigurationError("vehicle_api", "VEHICLE_API_TOKEN"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIVehicleUseCase(ctrl)
			h := NewVehicleHandler(uc, nil)

			r := gin.New()
			r.GET("/api/vehicle-info/:plate", h.GetVehicleInfo)

			uc.EXPECT().GetVehicleInfo(gomock.Any(), "abc1d23").Return(tc.info, tc.err)

			req := httptest.NewRequest(http.MethodGet, "/api/vehicle-info/abc1d23", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, w.Code)
			}
			if tc.err != nil {
				return
			}
			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid body: %v", err)
			}
			if body["plate"] != "ABC1D23" || body["validated"] != true {
				t.Fatalf("unexpected body: %v", body)
			}
		})
	}
}
