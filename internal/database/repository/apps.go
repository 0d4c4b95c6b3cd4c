package repository

import (
	"context"
	"database/sql"
	"errors"
)

// AppRepo handles the app catalog.
type AppRepo struct {
	db DBTX
}

func NewAppRepo(db DBTX) *AppRepo {
	return &AppRepo{db: db}
}

func (r *AppRepo) Upsert(ctx context.Context, a App) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO apps(id, name, description, url, icon, accent, sort_order)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 description=excluded.description,
	 url=excluded.url,
	 icon=excluded.icon,
	 accent=excluded.accent,
	 sort_order=excluded.sort_order;
	`, a.ID, a.Name, a.Description, a.URL, a.Icon, a.Accent, a.SortOrder)
	return err
}

func (r *AppRepo) List(ctx context.Context) ([]App, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, description, url, icon, accent, sort_order FROM apps ORDER BY sort_order, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []App
	for rows.Next() {
		var a App
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.URL, &a.Icon, &a.Accent, &a.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// ByName returns nil when no app has that name.
func (r *AppRepo) ByName(ctx context.Context, name string) (*App, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, description, url, icon, accent, sort_order FROM apps WHERE name = ?`, name)
	var a App
	if err := row.Scan(&a.ID, &a.Name, &a.Description, &a.URL, &a.Icon, &a.Accent, &a.SortOrder); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *AppRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM apps`).Scan(&n)
	return n, err
}
