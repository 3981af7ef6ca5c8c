package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/markaz-app/markaz/internal/model"
)

func (s *pgStore) ListStories() ([]model.Story, error) {
	var all []model.Story
	query := `SELECT id, title, body, created_at FROM stories ORDER BY id;`

	if err := s.db.Select(&all, query); err != nil {
		log.Error().Err(err).Msg("failed to list stories")
		return nil, err
	}
	return all, nil
}

func (s *pgStore) GetStoryByID(id int) (model.Story, error) {
	var st model.Story
	query := `SELECT id, title, body, created_at FROM stories WHERE id = $1;`

	err := s.db.Get(&st, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Story{}, sql.ErrNoRows
	}
	return st, err
}

func (s *pgStore) CreateStory(title, body string) (model.Story, error) {
	var st model.Story
	query := `
	INSERT INTO stories (title, body, created_at)
	VALUES ($1, $2, now())
	RETURNING id, title, body, created_at;`

	if err := s.db.Get(&st, query, title, body); err != nil {
		log.Error().Err(err).Msg("failed to create story")
		return model.Story{}, err
	}
	return st, nil
}

func (s *pgStore) DeleteStory(id int) error {
	_, err := s.db.Exec(`DELETE FROM stories WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete story")
	}
	return err
}

func (s *pgStore) ListDuas() ([]model.Dua, error) {
	var all []model.Dua
	query := `SELECT id, arabic, urdu, source FROM duas ORDER BY id;`

	if err := s.db.Select(&all, query); err != nil {
		log.Error().Err(err).Msg("failed to list duas")
		return nil, err
	}
	return all, nil
}

func (s *pgStore) CreateDua(arabic, urdu, source string) (model.Dua, error) {
	var d model.Dua
	query := `
	INSERT INTO duas (arabic, urdu, source)
	VALUES ($1, $2, $3)
	RETURNING id, arabic, urdu, source;`

	if err := s.db.Get(&d, query, arabic, urdu, source); err != nil {
		log.Error().Err(err).Msg("failed to create dua")
		return model.Dua{}, err
	}
	return d, nil
}

func (s *pgStore) ListActivities() ([]model.Activity, error) {
	var all []model.Activity
	query := `SELECT id, text, position FROM activities ORDER BY position;`

	if err := s.db.Select(&all, query); err != nil {
		log.Error().Err(err).Msg("failed to list activities")
		return nil, err
	}
	return all, nil
}
