package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/myvehicles/internal/api/domain"
	"github.com/aussiebroadwan/myvehicles/internal/api/store"
	"github.com/aussiebroadwan/myvehicles/internal/api/validation"
	"github.com/aussiebroadwan/myvehicles/pkg/cryptox"
)

// DefaultSearchLimit caps user search results.
const DefaultSearchLimit = 10

type UserService struct {
	Gateway     Connector
	Hasher      *cryptox.Hasher
	SearchLimit int
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	st, err := s.Gateway.Connect(ctx)
	if err != nil {
		return nil, err
	}
	users, err := st.Users().List(ctx)
	return users, mapStoreError("list users", err, nil)
}

func (s *UserService) Get(ctx context.Context, id string) (domain.User, error) {
	st, err := s.Gateway.Connect(ctx)
	if err != nil {
		return domain.User{}, err
	}
	u, err := st.Users().GetByID(ctx, id)
	return u, mapStoreError("get user", err, ErrUserNotFound)
}

// Search matches filter against name or email.
func (s *UserService) Search(ctx context.Context, filter string) ([]domain.User, error) {
	st, err := s.Gateway.Connect(ctx)
	if err != nil {
		return nil, err
	}

	limit := s.SearchLimit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	users, err := st.Users().Search(ctx, filter, limit)
	return users, mapStoreError("search users", err, nil)
}

// Create validates a registration, hashes the password and stores the user.
func (s *UserService) Create(ctx context.Context, in validation.Input) (string, error) {
	st, err := s.Gateway.Connect(ctx)
	if err != nil {
		return "", err
	}

	if err := validate(ctx, validation.UserRules(emailFree(st, "")), in); err != nil {
		return "", err
	}

	u, err := s.userFromInput(in)
	if err != nil {
		return "", err
	}

	id, err := st.Users().Create(ctx, u)
	if errors.Is(err, store.ErrDuplicate) {
		return "", emailTaken(u.Email)
	}
	return id, mapStoreError("create user", err, nil)
}

// Update validates the body and replaces the user's fields. The user's own
// email does not count as taken.
func (s *UserService) Update(ctx context.Context, id string, in validation.Input) (domain.UpdateResult, error) {
	st, err := s.Gateway.Connect(ctx)
	if err != nil {
		return domain.UpdateResult{}, err
	}

	ownerID, idErr := st.ParseID(id)
	if err := validate(ctx, validation.UserRules(emailFree(st, ownerID)), in); err != nil {
		return domain.UpdateResult{}, err
	}
	if idErr != nil {
		return domain.UpdateResult{}, ErrInvalidID
	}

	u, err := s.userFromInput(in)
	if err != nil {
		return domain.UpdateResult{}, err
	}

	res, err := st.Users().Update(ctx, ownerID, u)
	if errors.Is(err, store.ErrDuplicate) {
		return domain.UpdateResult{}, emailTaken(u.Email)
	}
	return res, mapStoreError("update user", err, nil)
}

// Delete removes the user and reports how many documents were deleted.
func (s *UserService) Delete(ctx context.Context, id string) (int64, error) {
	st, err := s.Gateway.Connect(ctx)
	if err != nil {
		return 0, err
	}
	n, err := st.Users().Delete(ctx, id)
	return n, mapStoreError("delete user", err, nil)
}

func (s *UserService) userFromInput(in validation.Input) (domain.User, error) {
	hash, err := s.Hasher.Hash(in.String("senha"))
	if err != nil {
		return domain.User{}, err
	}

	u := domain.User{
		Name:         in.String("nome"),
		Email:        in.String("email"),
		PasswordHash: hash,
		Active:       in.Bool("ativo", true),
		Role:         domain.Role(in.String("tipo")),
		Avatar:       in.String("avatar"),
	}
	if u.Avatar == "" {
		u.Avatar = domain.AvatarURL(u.Name)
	}
	return u, nil
}

// emailFree reports whether an email is unused, or used by ownerID itself.
func emailFree(st store.Store, ownerID string) validation.Predicate {
	return func(ctx context.Context, v any) (bool, error) {
		email, _ := v.(string)
		if email == "" {
			return true, nil
		}

		u, err := st.Users().GetByEmail(ctx, email)
		if errors.Is(err, store.ErrNotFound) {
			return true, nil
		}
		if err != nil {
			return false, fmt.Errorf("check email: %w", err)
		}
		return ownerID != "" && u.ID == ownerID, nil
	}
}

// emailTaken is the rejection reported when the unique index wins a race
// the pre-check lost.
func emailTaken(email string) error {
	return &ValidationError{Errors: []validation.FieldError{{
		Value: email,
		Msg:   fmt.Sprintf("O email %s já está informado em outro usuário", email),
		Param: "email",
	}}}
}
