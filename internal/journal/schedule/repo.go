package schedule

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/strengthside/journal/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// single-athlete deployment, settings live in one row
const settingsRowID = 1

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context) (_ *Settings, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT training_days, meet_date, meet_name, notifications_enabled
			FROM athlete_settings WHERE id = $1;`,
		settingsRowID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		// no settings saved yet - empty schedule, reminders off
		return &Settings{TrainingDays: TrainingDays{}}, nil
	}

	var (
		trainingDaysJson []byte
		settings         Settings
	)
	if err := rows.Scan(
		&trainingDaysJson,
		&settings.MeetDate,
		&settings.MeetName,
		&settings.NotificationsEnabled,
	); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	settings.TrainingDays = TrainingDays{}
	if len(trainingDaysJson) > 0 {
		if err := json.Unmarshal(trainingDaysJson, &settings.TrainingDays); err != nil {
			return nil, fmt.Errorf("unmarshal training days: %w", err)
		}
	}

	return &settings, nil
}

func (r *Repo) Save(ctx context.Context, settings Settings) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	trainingDaysJson, err := json.Marshal(settings.TrainingDays)
	if err != nil {
		return fmt.Errorf("marshal training days: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO athlete_settings (id, training_days, meet_date, meet_name, notifications_enabled)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO UPDATE SET
				training_days = EXCLUDED.training_days,
				meet_date = EXCLUDED.meet_date,
				meet_name = EXCLUDED.meet_name,
				notifications_enabled = EXCLUDED.notifications_enabled;`,
		settingsRowID,
		trainingDaysJson,
		settings.MeetDate,
		settings.MeetName,
		settings.NotificationsEnabled,
	)
	return err
}

func (r *Repo) SetTrainingDays(ctx context.Context, trainingDays TrainingDays) error {
	settings, err := r.Get(ctx)
	if err != nil {
		return err
	}
	settings.TrainingDays = trainingDays
	return r.Save(ctx, *settings)
}

func (r *Repo) SetMeet(ctx context.Context, meetDate, meetName string) error {
	settings, err := r.Get(ctx)
	if err != nil {
		return err
	}
	settings.MeetDate = meetDate
	settings.MeetName = meetName
	return r.Save(ctx, *settings)
}

func (r *Repo) SetNotificationsEnabled(ctx context.Context, enabled bool) error {
	settings, err := r.Get(ctx)
	if err != nil {
		return err
	}
	settings.NotificationsEnabled = enabled
	return r.Save(ctx, *settings)
}
