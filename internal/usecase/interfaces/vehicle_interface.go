package interfaces

import (
	"context"
	"pixgate/internal/domain/entities"
)

//go:generate mockgen -source=vehicle_interface.go -destination=mocks/vehicle_interface_mock.go -package=mock_interfaces

// IVehicleAPI performs a single upstream plate lookup.
type IVehicleAPI interface {
	Lookup(ctx context.Context, plate string) (entities.VehicleInfo, error)
}

// IVehicleStore caches normalized vehicle records keyed by normalized plate.
type IVehicleStore interface {
	Get(ctx context.Context, plate string) (entities.VehicleInfo, bool, error)
	Set(ctx context.Context, plate string, info entities.VehicleInfo) error
}
