package fleetsdk

import (
	"context"
	"net/http"
	"net/url"
)

const usersPath = "/api/usuarios"

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, usersPath+"/", nil, "", http.StatusOK, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, usersPath+"/id/"+url.PathEscape(id), nil, "", http.StatusOK, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// SearchUsers matches filter against name and email, case-insensitively.
func (c *Client) SearchUsers(ctx context.Context, filter string) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, usersPath+"/nome/"+url.PathEscape(filter), nil, "", http.StatusOK, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) CreateUser(ctx context.Context, req UserRequest) (*InsertResult, error) {
	var res InsertResult
	if err := c.do(ctx, http.MethodPost, usersPath+"/", req, "", http.StatusCreated, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, req UserRequest) (*UpdateResult, error) {
	var res UpdateResult
	if err := c.do(ctx, http.MethodPut, usersPath+"/"+url.PathEscape(id), req, "", http.StatusAccepted, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) (*DeleteResult, error) {
	var res DeleteResult
	if err := c.do(ctx, http.MethodDelete, usersPath+"/"+url.PathEscape(id), nil, "", http.StatusAccepted, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
