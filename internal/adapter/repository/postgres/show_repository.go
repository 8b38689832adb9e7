package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/srgjo27/movie_booking/internal/core/domain"
)

type ShowRepository struct {
	db *sql.DB
}

func NewShowRepository(db *sql.DB) *ShowRepository {
	return &ShowRepository{db: db}
}

func (r *ShowRepository) GetByID(ctx context.Context, showID int64) (*domain.Show, error) {
	query := `
	SELECT id, movie_id, screen_id, starts_at
	FROM shows
	WHERE id = $1
	`

	var show domain.Show
	err := r.db.QueryRowContext(ctx, query, showID).Scan(&show.ID, &show.MovieID, &show.ScreenID, &show.StartsAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound(domain.ResourceShow, showID)
		}

		return nil, err
	}

	return &show, nil
}
