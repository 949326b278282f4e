package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aussiebroadwan/myvehicles/internal/api/domain"
	"github.com/aussiebroadwan/myvehicles/internal/api/store"
	"github.com/aussiebroadwan/myvehicles/pkg/idx"
)

const userColumns = `id, nome, email, ativo, tipo, avatar`

type usersRepo struct {
	db    *sql.DB
	parse func(string) (string, error)
}

func scanUser(row scanner, extra ...any) (domain.User, error) {
	var (
		u    domain.User
		role string
	)
	dest := append([]any{&u.ID, &u.Name, &u.Email, &u.Active, &role, &u.Avatar}, extra...)
	if err := row.Scan(dest...); err != nil {
		return domain.User{}, err
	}
	u.Role = domain.Role(role)
	return u, nil
}

func (r *usersRepo) queryUsers(ctx context.Context, query string, args ...any) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) List(ctx context.Context) ([]domain.User, error) {
	return r.queryUsers(ctx, `SELECT `+userColumns+` FROM usuarios ORDER BY nome, id`)
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	id, err := r.parse(id)
	if err != nil {
		return domain.User{}, err
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM usuarios WHERE id = ?`, id)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+`, senha FROM usuarios WHERE email = ?`, email)

	var hash string
	u, err := scanUser(row, &hash)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.PasswordHash = hash
	return u, nil
}

func (r *usersRepo) Search(ctx context.Context, filter string, limit int) ([]domain.User, error) {
	pattern := containsPattern(filter)
	return r.queryUsers(ctx,
		`SELECT `+userColumns+` FROM usuarios
		 WHERE nome LIKE ? ESCAPE '\' OR email LIKE ? ESCAPE '\'
		 ORDER BY nome, id
		 LIMIT ?`,
		pattern, pattern, limit,
	)
}

func (r *usersRepo) Create(ctx context.Context, u domain.User) (string, error) {
	id := idx.New().String()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO usuarios (id, nome, email, senha, ativo, tipo, avatar) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, u.Name, u.Email, u.PasswordHash, u.Active, string(u.Role), u.Avatar,
	)
	if err != nil {
		return "", mapWriteError(err)
	}
	return id, nil
}

func (r *usersRepo) Update(ctx context.Context, id string, u domain.User) (domain.UpdateResult, error) {
	id, err := r.parse(id)
	if err != nil {
		return domain.UpdateResult{}, err
	}

	var res domain.UpdateResult
	err = withTx(ctx, r.db, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `SELECT `+userColumns+`, senha FROM usuarios WHERE id = ?`, id)

		var hash string
		cur, err := scanUser(row, &hash)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		cur.PasswordHash = hash
		res.Matched = 1

		if u.PasswordHash == "" {
			u.PasswordHash = cur.PasswordHash
		}
		u.ID = cur.ID
		if u == cur {
			return nil
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE usuarios SET nome = ?, email = ?, senha = ?, ativo = ?, tipo = ?, avatar = ? WHERE id = ?`,
			u.Name, u.Email, u.PasswordHash, u.Active, string(u.Role), u.Avatar, id,
		)
		if err != nil {
			return mapWriteError(err)
		}
		res.Modified = 1
		return nil
	})
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return res, nil
}

func (r *usersRepo) SetPasswordHash(ctx context.Context, id, hash string) error {
	id, err := r.parse(id)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `UPDATE usuarios SET senha = ? WHERE id = ?`, hash, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) Delete(ctx context.Context, id string) (int64, error) {
	id, err := r.parse(id)
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM usuarios WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

var _ store.Users = (*usersRepo)(nil)
