package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aussiebroadwan/myvehicles/internal/api/domain"
	"github.com/aussiebroadwan/myvehicles/internal/api/store"
	"github.com/aussiebroadwan/myvehicles/pkg/idx"
)

const vehicleColumns = `id, marca, modelo, cor, placa, renavam, razao_social`

type vehiclesRepo struct {
	db    *sql.DB
	parse func(string) (string, error)
}

func scanVehicle(row scanner) (domain.Vehicle, error) {
	var v domain.Vehicle
	err := row.Scan(&v.ID, &v.Brand, &v.Model, &v.Color, &v.Plate, &v.Renavam, &v.BusinessName)
	return v, err
}

func (r *vehiclesRepo) queryVehicles(ctx context.Context, query string, args ...any) ([]domain.Vehicle, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	vehicles := []domain.Vehicle{}
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *vehiclesRepo) List(ctx context.Context) ([]domain.Vehicle, error) {
	return r.queryVehicles(ctx, `SELECT `+vehicleColumns+` FROM veiculos ORDER BY marca, modelo, id`)
}

func (r *vehiclesRepo) GetByID(ctx context.Context, id string) (domain.Vehicle, error) {
	id, err := r.parse(id)
	if err != nil {
		return domain.Vehicle{}, err
	}

	v, err := scanVehicle(r.db.QueryRowContext(ctx, `SELECT `+vehicleColumns+` FROM veiculos WHERE id = ?`, id))
	if err != nil {
		return domain.Vehicle{}, mapNotFound(err)
	}
	return v, nil
}

func (r *vehiclesRepo) SearchByBusinessName(ctx context.Context, filter string) ([]domain.Vehicle, error) {
	return r.queryVehicles(ctx,
		`SELECT `+vehicleColumns+` FROM veiculos
		 WHERE razao_social LIKE ? ESCAPE '\'
		 ORDER BY marca, modelo, id`,
		containsPattern(filter),
	)
}

func (r *vehiclesRepo) Create(ctx context.Context, v domain.Vehicle) (string, error) {
	id := idx.New().String()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO veiculos (id, marca, modelo, cor, placa, renavam, razao_social) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, v.Brand, v.Model, v.Color, v.Plate, v.Renavam, v.BusinessName,
	)
	if err != nil {
		return "", mapWriteError(err)
	}
	return id, nil
}

func (r *vehiclesRepo) Update(ctx context.Context, id string, v domain.Vehicle) (domain.UpdateResult, error) {
	id, err := r.parse(id)
	if err != nil {
		return domain.UpdateResult{}, err
	}

	var res domain.UpdateResult
	err = withTx(ctx, r.db, func(tx *sql.Tx) error {
		cur, err := scanVehicle(tx.QueryRowContext(ctx, `SELECT `+vehicleColumns+` FROM veiculos WHERE id = ?`, id))
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		res.Matched = 1

		v.ID = cur.ID
		if v.BusinessName == "" {
			v.BusinessName = cur.BusinessName
		}
		if v == cur {
			return nil
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE veiculos SET marca = ?, modelo = ?, cor = ?, placa = ?, renavam = ?, razao_social = ? WHERE id = ?`,
			v.Brand, v.Model, v.Color, v.Plate, v.Renavam, v.BusinessName, id,
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

func (r *vehiclesRepo) Delete(ctx context.Context, id string) (int64, error) {
	id, err := r.parse(id)
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM veiculos WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

var _ store.Vehicles = (*vehiclesRepo)(nil)
