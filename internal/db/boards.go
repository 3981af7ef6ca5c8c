package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/markaz-app/markaz/internal/model"
)

func (s *pgStore) CreateBoard(name, city string, location *string) (model.Board, error) {
	var b model.Board
	query := `
	INSERT INTO boards (name, city, location, paired, created_at, updated_at)
	VALUES ($1, $2, $3, false, now(), now())
	RETURNING id, device_id, name, city, location, paired, created_at, updated_at;`

	if err := s.db.Get(&b, query, name, city, location); err != nil {
		log.Error().Err(err).Msg("failed to create board")
		return model.Board{}, err
	}
	return b, nil
}

func (s *pgStore) GetBoardByID(id int) (model.Board, error) {
	var b model.Board
	query := `
	SELECT id, device_id, name, city, location, paired, created_at, updated_at
	FROM boards
	WHERE id = $1;`

	err := s.db.Get(&b, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Board{}, sql.ErrNoRows
	}
	return b, err
}

func (s *pgStore) GetBoardByDeviceID(deviceID string) (*model.Board, error) {
	var b model.Board
	query := `
	SELECT id, device_id, name, city, location, paired, created_at, updated_at
	FROM boards
	WHERE device_id = $1;`

	err := s.db.Get(&b, query, deviceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// unpaired devices look themselves up before pairing
			return nil, nil
		}
		log.Error().Err(err).Msg("failed to get board by device id")
		return nil, err
	}
	return &b, nil
}

func (s *pgStore) ListBoards() ([]model.Board, error) {
	var all []model.Board
	query := `
	SELECT id, device_id, name, city, location, paired, created_at, updated_at
	FROM boards
	ORDER BY id;`

	if err := s.db.Select(&all, query); err != nil {
		log.Error().Err(err).Msg("failed to list boards")
		return nil, err
	}
	return all, nil
}

func (s *pgStore) PairBoard(id int, deviceID string) error {
	res, err := s.db.Exec(`
		UPDATE boards
		SET device_id = $2, paired = true, updated_at = now()
		WHERE id = $1;`,
		id, deviceID,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to pair board")
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

func (s *pgStore) DeleteBoard(id int) error {
	_, err := s.db.Exec(`DELETE FROM boards WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete board")
	}
	return err
}
