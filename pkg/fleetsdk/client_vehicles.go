package fleetsdk

import (
	"context"
	"net/http"
	"net/url"
)

const vehiclesPath = "/api/veiculos"

func (c *Client) ListVehicles(ctx context.Context) ([]Vehicle, error) {
	var vs []Vehicle
	if err := c.do(ctx, http.MethodGet, vehiclesPath+"/", nil, "", http.StatusOK, &vs); err != nil {
		return nil, err
	}
	return vs, nil
}

func (c *Client) GetVehicle(ctx context.Context, id string) (*Vehicle, error) {
	var v Vehicle
	if err := c.do(ctx, http.MethodGet, vehiclesPath+"/id/"+url.PathEscape(id), nil, "", http.StatusOK, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// SearchVehicles matches filter against the business name, case-insensitively.
func (c *Client) SearchVehicles(ctx context.Context, filter string) ([]Vehicle, error) {
	var vs []Vehicle
	if err := c.do(ctx, http.MethodGet, vehiclesPath+"/razao/"+url.PathEscape(filter), nil, "", http.StatusOK, &vs); err != nil {
		return nil, err
	}
	return vs, nil
}

func (c *Client) CreateVehicle(ctx context.Context, req VehicleRequest) (*InsertResult, error) {
	req.ID = ""

	var res InsertResult
	if err := c.do(ctx, http.MethodPost, vehiclesPath+"/", req, "", http.StatusCreated, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateVehicle replaces the vehicle identified by req.ID.
func (c *Client) UpdateVehicle(ctx context.Context, req VehicleRequest) (*UpdateResult, error) {
	var res UpdateResult
	if err := c.do(ctx, http.MethodPut, vehiclesPath+"/", req, "", http.StatusAccepted, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteVehicle(ctx context.Context, id string) (*DeleteResult, error) {
	var res DeleteResult
	if err := c.do(ctx, http.MethodDelete, vehiclesPath+"/"+url.PathEscape(id), nil, "", http.StatusAccepted, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
