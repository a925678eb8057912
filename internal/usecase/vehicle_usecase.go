package usecase

import (
	"context"
	"strings"
	"unicode"

	"pixgate/internal/domain/entities"
	"pixgate/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	minPlateLen = 6
	maxPlateLen = 8
)

type IVehicleUseCase interface {
	GetVehicleInfo(ctx context.Context, plate string) (entities.VehicleInfo, error)
}

type cacheCounter interface {
	ObserveVehicleCache(result string)
}

// VehicleUseCase memoizes plate lookups.
//
// Upstream failures never reach the caller: the lookup degrades to a
// validated placeholder, which is not cached so the next request retries.
type VehicleUseCase struct {
	api     interfaces.IVehicleAPI
	store   interfaces.IVehicleStore
	metrics cacheCounter
	logger  *zap.Logger
	// apiErr is why api is nil, when known.
	apiErr error
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

// NewVehicleUseCase accepts a nil api when the lookup service has no
// credentials; lookups then fail with a configuration error.
func NewVehicleUseCase(api interfaces.IVehicleAPI, store interfaces.IVehicleStore, metrics cacheCounter, logger *zap.Logger) *VehicleUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VehicleUseCase{api: api, store: store, metrics: metrics, logger: logger.Named("vehicle")}
}

// WithAPIError records why the lookup client could not be built, so lookups
// report the missing setting instead of a generic one.
func (u *VehicleUseCase) WithAPIError(err error) *VehicleUseCase {
	u.apiErr = err
	return u
}

func (u *VehicleUseCase) GetVehicleInfo(ctx context.Context, plate string) (entities.VehicleInfo, error) {
	plate, err := NormalizePlate(plate)
	if err != nil {
		return entities.VehicleInfo{}, err
	}
	if u.api == nil {
		if u.apiErr != nil {
			return entities.VehicleInfo{}, u.apiErr
		}
		return entities.VehicleInfo{}, entities.NewConfigurationError("vehicle_api", "VEHICLE_API_TOKEN")
	}

	if u.store != nil {
		info, ok, err := u.store.Get(ctx, plate)
		switch {
		case err != nil:
			u.logger.Warn("[vehicle][usecase] cache read failed", zap.String("plate", plate), zap.Error(err))
		case ok:
			u.observe("hit")
			return info, nil
		}
	}
	u.observe("miss")

	info, err := u.api.Lookup(ctx, plate)
	if err != nil {
		u.logger.Warn("[vehicle][usecase] lookup failed, returning placeholder",
			zap.String("plate", plate), zap.Bool("timeout", entities.IsTimeout(err)), zap.Error(err))
		return entities.VehicleInfo{Plate: plate, Validated: true, Placeholder: true}, nil
	}
	info.Plate = plate

	if u.store != nil {
		if err := u.store.Set(ctx, plate, info); err != nil {
			u.logger.Warn("[vehicle][usecase] cache write failed", zap.String("plate", plate), zap.Error(err))
		}
	}
	return info, nil
}

func (u *VehicleUseCase) observe(result string) {
	if u.metrics != nil {
		u.metrics.ObserveVehicleCache(result)
	}
}

// NormalizePlate upper-cases plate and drops anything that is not a letter
// or digit. Old (ABC1234) and Mercosul (ABC1D23) formats both pass.
func NormalizePlate(plate string) (string, error) {
	var b strings.Builder
	for _, r := range strings.ToUpper(plate) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if len(out) < minPlateLen || len(out) > maxPlateLen {
		return "", entities.NewValidationError("plate", "plate must have 6 to 8 letters or digits")
	}
	return out, nil
}
