package checkin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/strengthside/journal/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrCheckInNotFound = errors.New("check-in not found")

type ListParams struct {
	From *time.Time
	To   *time.Time
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, checkIn CheckIn) (_ *CheckIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.checkin.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO checkin
				(physical_strength, recovered, energy, soreness, readiness,
				mental_strength, confidence, sleep, stress, body_connection, focus, excitement,
				goal, concerns, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			RETURNING id;`,
		checkIn.PhysicalStrength, checkIn.Recovered, checkIn.Energy, checkIn.Soreness, checkIn.Readiness,
		checkIn.MentalStrength, checkIn.Confidence, checkIn.Sleep, checkIn.Stress, checkIn.BodyConnection,
		checkIn.Focus, checkIn.Excitement,
		checkIn.Goal, checkIn.Concerns, checkIn.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("checkin.id", id))

	checkIn.ID = id
	return &checkIn, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *CheckIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.checkin.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT
				id, physical_strength, recovered, energy, soreness, readiness,
				mental_strength, confidence, sleep, stress, body_connection, focus, excitement,
				goal, concerns, created_at
			FROM checkin WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrCheckInNotFound
	}

	var c CheckIn
	if err := scanCheckIn(rows.Scan, &c); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	return &c, nil
}

func (r *Repo) ListAll(ctx context.Context, params ListParams) (_ []CheckIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.checkin.listAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := `SELECT
				id, physical_strength, recovered, energy, soreness, readiness,
				mental_strength, confidence, sleep, stress, body_connection, focus, excitement,
				goal, concerns, created_at
			FROM checkin WHERE TRUE`
	var args []interface{}
	if params.From != nil {
		args = append(args, *params.From)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if params.To != nil {
		args = append(args, *params.To)
		query += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}
	query += " ORDER BY created_at DESC;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checkIns []CheckIn
	for rows.Next() {
		var c CheckIn
		if err := scanCheckIn(rows.Scan, &c); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		checkIns = append(checkIns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return checkIns, nil
}

// ListDays returns the distinct calendar days (YYYY-MM-DD) with at
// least one check-in, used by the streak calculator.
func (r *Repo) ListDays(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.checkin.listDays")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT DISTINCT to_char(created_at, 'YYYY-MM-DD') FROM checkin;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []string
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return days, nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.checkin.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM checkin WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCheckInNotFound
	}
	return nil
}

func scanCheckIn(scan func(dest ...any) error, c *CheckIn) error {
	return scan(
		&c.ID, &c.PhysicalStrength, &c.Recovered, &c.Energy, &c.Soreness, &c.Readiness,
		&c.MentalStrength, &c.Confidence, &c.Sleep, &c.Stress, &c.BodyConnection, &c.Focus, &c.Excitement,
		&c.Goal, &c.Concerns, &c.CreatedAt,
	)
}
