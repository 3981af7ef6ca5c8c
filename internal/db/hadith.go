package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/markaz-app/markaz/internal/model"
)

func (s *pgStore) CreateHadith(arabic, urdu, reference string) (model.Hadith, error) {
	var h model.Hadith
	query := `
	INSERT INTO hadiths (arabic, urdu, reference, created_at)
	VALUES ($1, $2, $3, now())
	RETURNING id, arabic, urdu, reference, created_at;`

	if err := s.db.Get(&h, query, arabic, urdu, reference); err != nil {
		log.Error().Err(err).Msg("failed to create hadith")
		return model.Hadith{}, err
	}
	return h, nil
}

func (s *pgStore) GetHadithByID(id int) (model.Hadith, error) {
	var h model.Hadith
	query := `
	SELECT id, arabic, urdu, reference, created_at
	FROM hadiths
	WHERE id = $1;`

	err := s.db.Get(&h, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Hadith{}, sql.ErrNoRows
	}
	return h, err
}

func (s *pgStore) ListHadiths() ([]model.Hadith, error) {
	var all []model.Hadith
	query := `
	SELECT id, arabic, urdu, reference, created_at
	FROM hadiths
	ORDER BY id;`

	if err := s.db.Select(&all, query); err != nil {
		log.Error().Err(err).Msg("failed to list hadiths")
		return nil, err
	}
	return all, nil
}

func (s *pgStore) UpdateHadith(id int, arabic, urdu, reference *string) error {
	res, err := s.db.Exec(`
		UPDATE hadiths
		SET
		arabic    = COALESCE($2, arabic),
		urdu      = COALESCE($3, urdu),
		reference = COALESCE($4, reference)
		WHERE id = $1;`,
		id, arabic, urdu, reference,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to update hadith")
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

func (s *pgStore) DeleteHadith(id int) error {
	_, err := s.db.Exec(`DELETE FROM hadiths WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete hadith")
	}
	return err
}

// SearchHadiths matches the query as a case-insensitive substring of the
// Arabic text, Urdu translation or the reference. No match returns an
// empty slice, never an error.
func (s *pgStore) SearchHadiths(query string) ([]model.Hadith, error) {
	all := []model.Hadith{}
	q := `
	SELECT id, arabic, urdu, reference, created_at
	FROM hadiths
	WHERE arabic ILIKE $1 OR urdu ILIKE $1 OR reference ILIKE $1
	ORDER BY id;`

	if err := s.db.Select(&all, q, "%"+query+"%"); err != nil {
		log.Error().Err(err).Msg("failed to search hadiths")
		return nil, err
	}
	return all, nil
}
