package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Design is a stored plant design: the request that produced it and the
// computed result, both kept as raw JSON.
type Design struct {
	ID         uuid.UUID       `json:"id"`
	UserID     int             `json:"-"`
	Name       string          `json:"name"`
	Technology string          `json:"technology"`
	Compliant  bool            `json:"cumple_normatividad"`
	Input      json.RawMessage `json:"input"`
	Result     json.RawMessage `json:"result"`
	CreatedAt  time.Time       `json:"created_at"`
}

type DesignSummary struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Technology string    `json:"technology"`
	Compliant  bool      `json:"cumple_normatividad"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateDesign stores d, assigning an id when it has none.
func (r *PostgresRepository) CreateDesign(ctx context.Context, d Design) (Design, error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	query := `INSERT INTO designs (id, user_id, name, technology, compliant, input, result)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query,
		d.ID, d.UserID, d.Name, d.Technology, d.Compliant, []byte(d.Input), []byte(d.Result),
	).Scan(&d.CreatedAt)
	if err != nil {
		return Design{}, fmt.Errorf("insert design: %w", err)
	}
	return d, nil
}

func (r *PostgresRepository) ListDesigns(ctx context.Context, userID int) ([]DesignSummary, error) {
	query := `SELECT id, name, technology, compliant, created_at FROM designs
		WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list designs: %w", err)
	}
	defer rows.Close()

	out := []DesignSummary{}
	for rows.Next() {
		var s DesignSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Technology, &s.Compliant, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan design: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetDesign only returns designs owned by userID; anything else is
// ErrNotFound.
func (r *PostgresRepository) GetDesign(ctx context.Context, userID int, id uuid.UUID) (Design, error) {
	query := `SELECT id, user_id, name, technology, compliant, input, result, created_at
		FROM designs WHERE id=$1 AND user_id=$2`
	var d Design
	var input, result []byte
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&d.ID, &d.UserID, &d.Name, &d.Technology, &d.Compliant, &input, &result, &d.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Design{}, ErrNotFound
	}
	if err != nil {
		return Design{}, fmt.Errorf("get design: %w", err)
	}
	d.Input = input
	d.Result = result
	return d, nil
}

func (r *PostgresRepository) DeleteDesign(ctx context.Context, userID int, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM designs WHERE id=$1 AND user_id=$2", id, userID)
	if err != nil {
		return fmt.Errorf("delete design: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete design: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
