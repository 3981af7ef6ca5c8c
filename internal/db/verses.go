package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/markaz-app/markaz/internal/model"
)

func (s *pgStore) CreateVerse(arabic, urdu, surah string, ayah int) (model.Verse, error) {
	var v model.Verse
	query := `
	INSERT INTO verses (arabic, urdu, surah, ayah, created_at)
	VALUES ($1, $2, $3, $4, now())
	RETURNING id, arabic, urdu, surah, ayah, created_at;`

	if err := s.db.Get(&v, query, arabic, urdu, surah, ayah); err != nil {
		log.Error().Err(err).Msg("failed to create verse")
		return model.Verse{}, err
	}
	return v, nil
}

func (s *pgStore) GetVerseByID(id int) (model.Verse, error) {
	var v model.Verse
	query := `
	SELECT id, arabic, urdu, surah, ayah, created_at
	FROM verses
	WHERE id = $1;`

	err := s.db.Get(&v, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Verse{}, sql.ErrNoRows
	}
	return v, err
}

func (s *pgStore) ListVerses() ([]model.Verse, error) {
	var all []model.Verse
	query := `
	SELECT id, arabic, urdu, surah, ayah, created_at
	FROM verses
	ORDER BY id;`

	if err := s.db.Select(&all, query); err != nil {
		log.Error().Err(err).Msg("failed to list verses")
		return nil, err
	}
	return all, nil
}

func (s *pgStore) UpdateVerse(id int, arabic, urdu, surah *string, ayah *int) error {
	res, err := s.db.Exec(`
		UPDATE verses
		SET
		arabic = COALESCE($2, arabic),
		urdu   = COALESCE($3, urdu),
		surah  = COALESCE($4, surah),
		ayah   = COALESCE($5, ayah)
		WHERE id = $1;`,
		id, arabic, urdu, surah, ayah,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to update verse")
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *pgStore) DeleteVerse(id int) error {
	_, err := s.db.Exec(`DELETE FROM verses WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete verse")
	}
	return err
}

// SearchVerses matches the query as a case-insensitive substring of the
// Arabic text, Urdu translation or surah name.
func (s *pgStore) SearchVerses(query string) ([]model.Verse, error) {
	all := []model.Verse{}
	q := `
	SELECT id, arabic, urdu, surah, ayah, created_at
	FROM verses
	WHERE arabic ILIKE $1 OR urdu ILIKE $1 OR surah ILIKE $1
	ORDER BY id;`

	if err := s.db.Select(&all, q, "%"+query+"%"); err != nil {
		log.Error().Err(err).Msg("failed to search verses")
		return nil, err
	}
	return all, nil
}

// ListVersesForTopic returns the verses linked to a teaching topic, in the
// order they were linked.
func (s *pgStore) ListVersesForTopic(topicID int) ([]model.Verse, error) {
	var all []model.Verse
	query := `
	SELECT v.id, v.arabic, v.urdu, v.surah, v.ayah, v.created_at
	FROM verses v
	JOIN topic_verses tv ON tv.verse_id = v.id
	WHERE tv.topic_id = $1
	ORDER BY tv.position;`

	if err := s.db.Select(&all, query, topicID); err != nil {
		log.Error().Err(err).Msg("failed to list verses for topic")
		return nil, err
	}
	return all, nil
}
