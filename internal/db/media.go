package db

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/markaz-app/markaz/internal/model"
)

func (s *pgStore) CreateMedia(title, typ, url string, caption, location *string) (model.Media, error) {
	var m model.Media
	query := `
	INSERT INTO media (title, type, url, caption, location, created_at)
	VALUES ($1, $2, $3, $4, $5, now())
	RETURNING id, title, type, url, caption, location, created_at;`

	if err := s.db.Get(&m, query, title, typ, url, caption, location); err != nil {
		log.Error().Err(err).Msg("failed to create media")
		return model.Media{}, err
	}
	return m, nil
}

func (s *pgStore) GetMediaByID(id int) (model.Media, error) {
	var m model.Media
	query := `
	SELECT id, title, type, url, caption, location, created_at
	FROM media
	WHERE id = $1;`

	err := s.db.Get(&m, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Media{}, sql.ErrNoRows
	}
	return m, err
}

// ListMedia returns gallery assets, optionally restricted to the given
// types ("image", "video"). An empty filter returns everything.
func (s *pgStore) ListMedia(types []string) ([]model.Media, error) {
	all := []model.Media{}
	query := `
	SELECT id, title, type, url, caption, location, created_at
	FROM media
	WHERE 1=1`

	args := []interface{}{}
	argCount := 0

	if len(types) > 0 {
		typeConditions := []string{}
		for _, typ := range types {
			if typ != "" {
				argCount++
				typeConditions = append(typeConditions, "type = $"+strconv.Itoa(argCount))
				args = append(args, typ)
			}
		}
		if len(typeConditions) > 0 {
			query += " AND (" + strings.Join(typeConditions, " OR ") + ")"
		}
	}

	query += ` ORDER BY id;`

	if err := s.db.Select(&all, query, args...); err != nil {
		log.Error().Err(err).Msg("failed to list media")
		return nil, err
	}
	return all, nil
}

func (s *pgStore) DeleteMedia(id int) error {
	_, err := s.db.Exec(`DELETE FROM media WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete media")
	}
	return err
}
