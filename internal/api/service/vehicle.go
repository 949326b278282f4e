package service

import (
	"context"

	"github.com/aussiebroadwan/myvehicles/internal/api/domain"
	"github.com/aussiebroadwan/myvehicles/internal/api/validation"
)

// IDField carries the vehicle identifier in update bodies.
const IDField = "_id"

type VehicleService struct {
	Gateway Connector
}

func (s *VehicleService) List(ctx context.Context) ([]domain.Vehicle, error) {
	st, err := s.Gateway.Connect(ctx)
	if err != nil {
		return nil, err
	}
	vs, err := st.Vehicles().List(ctx)
	return vs, mapStoreError("list vehicles", err, nil)
}

func (s *VehicleService) Get(ctx context.Context, id string) (domain.Vehicle, error) {
	st, err := s.Gateway.Connect(ctx)
	if err != nil {
		return domain.Vehicle{}, err
	}
	v, err := st.Vehicles().GetByID(ctx, id)
	return v, mapStoreError("get vehicle", err, ErrVehicleNotFound)
}

// SearchByBusinessName matches filter against the owning company's name.
func (s *VehicleService) SearchByBusinessName(ctx context.Context, filter string) ([]domain.Vehicle, error) {
	st, err := s.Gateway.Connect(ctx)
	if err != nil {
		return nil, err
	}
	vs, err := st.Vehicles().SearchByBusinessName(ctx, filter)
	return vs, mapStoreError("search vehicles", err, nil)
}

func (s *VehicleService) Create(ctx context.Context, in validation.Input) (string, error) {
	st, err := s.Gateway.Connect(ctx)
	if err != nil {
		return "", err
	}

	delete(in, IDField)
	if err := validate(ctx, validation.VehicleRules(), in); err != nil {
		return "", err
	}

	id, err := st.Vehicles().Create(ctx, vehicleFromInput(in))
	return id, mapStoreError("create vehicle", err, nil)
}

// Update takes the identifier from the body's _id field and removes it
// before the remaining fields are validated and stored.
func (s *VehicleService) Update(ctx context.Context, in validation.Input) (domain.UpdateResult, error) {
	st, err := s.Gateway.Connect(ctx)
	if err != nil {
		return domain.UpdateResult{}, err
	}

	rawID := in.Text(IDField)
	delete(in, IDField)

	if err := validate(ctx, validation.VehicleRules(), in); err != nil {
		return domain.UpdateResult{}, err
	}

	id, err := st.ParseID(rawID)
	if err != nil {
		return domain.UpdateResult{}, ErrInvalidID
	}

	res, err := st.Vehicles().Update(ctx, id, vehicleFromInput(in))
	return res, mapStoreError("update vehicle", err, nil)
}

func (s *VehicleService) Delete(ctx context.Context, id string) (int64, error) {
	st, err := s.Gateway.Connect(ctx)
	if err != nil {
		return 0, err
	}
	n, err := st.Vehicles().Delete(ctx, id)
	return n, mapStoreError("delete vehicle", err, nil)
}

func vehicleFromInput(in validation.Input) domain.Vehicle {
	return domain.Vehicle{
		Brand:        in.Text("marca"),
		Model:        in.Text("modelo"),
		Color:        in.Text("cor"),
		Plate:        in.Text("placa"),
		Renavam:      in.Text("renavam"),
		BusinessName: in.Text("razao_social"),
	}
}
