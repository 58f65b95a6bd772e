package database

import (
	"context"
	"database/sql"
	"fmt"

	"scanoverlay/internal/models"
)

type ProfileRepo struct {
	db *DB
}

func NewProfileRepo(db *DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) Insert(ctx context.Context, profile *models.DisplayProfile) error {
	query := `
		INSERT INTO display_profiles (
			id, name, screen_width, screen_height, pixel_ratio, created_at
		) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.conn.ExecContext(ctx, query,
		profile.ID,
		profile.Name,
		profile.Metrics.ScreenWidth,
		profile.Metrics.ScreenHeight,
		profile.Metrics.PixelRatio,
		profile.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert display profile: %w", err)
	}

	return nil
}

func (r *ProfileRepo) GetByID(ctx context.Context, id string) (*models.DisplayProfile, error) {
	query := `
		SELECT id, name, screen_width, screen_height, pixel_ratio, created_at
		FROM display_profiles
		WHERE id = ?`

	profile := &models.DisplayProfile{}
	err := r.db.conn.QueryRowContext(ctx, query, id).Scan(
		&profile.ID,
		&profile.Name,
		&profile.Metrics.ScreenWidth,
		&profile.Metrics.ScreenHeight,
		&profile.Metrics.PixelRatio,
		&profile.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get display profile: %w", err)
	}

	return profile, nil
}

func (r *ProfileRepo) List(ctx context.Context) ([]models.DisplayProfile, error) {
	query := `
		SELECT id, name, screen_width, screen_height, pixel_ratio, created_at
		FROM display_profiles
		ORDER BY created_at DESC`

	rows, err := r.db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query display profiles: %w", err)
	}
	defer rows.Close()

	var profiles []models.DisplayProfile
	for rows.Next() {
		var profile models.DisplayProfile
		err := rows.Scan(
			&profile.ID,
			&profile.Name,
			&profile.Metrics.ScreenWidth,
			&profile.Metrics.ScreenHeight,
			&profile.Metrics.PixelRatio,
			&profile.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan display profile: %w", err)
		}
		profiles = append(profiles, profile)
	}

	return profiles, rows.Err()
}

func (r *ProfileRepo) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.conn.ExecContext(ctx, `DELETE FROM display_profiles WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete display profile: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
