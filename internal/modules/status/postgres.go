package status

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/eduolivag5/backmarket-api/internal/apperr"
)

// postgresRepo serves one of the two status tables. The table name is
// fixed at construction, never caller input.
type postgresRepo struct {
	db    *sqlx.DB
	table string
	label string
}

// NewPhoneStatusRepository creates a repository over phone_status.
func NewPhoneStatusRepository(db *sqlx.DB) Repository {
	return &postgresRepo{db: db, table: "phone_status", label: "phone status"}
}

// NewBatteryStatusRepository creates a repository over battery_status.
func NewBatteryStatusRepository(db *sqlx.DB) Repository {
	return &postgresRepo{db: db, table: "battery_status", label: "battery status"}
}

func (r *postgresRepo) List(ctx context.Context) ([]*Status, error) {
	statuses := []*Status{}
	query := fmt.Sprintf(`SELECT id, state, description FROM %s`, r.table)
	err := r.db.SelectContext(ctx, &statuses, query)
	return statuses, err
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*Status, error) {
	var s Status
	query := fmt.Sprintf(`SELECT id, state, description FROM %s WHERE id = $1`, r.table)
	err := r.db.GetContext(ctx, &s, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound(r.label + " not found")
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
