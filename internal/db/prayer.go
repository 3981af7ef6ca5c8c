package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/markaz-app/markaz/internal/model"
)

func (s *pgStore) ListCities() ([]model.City, error) {
	var all []model.City
	query := `SELECT id, name FROM cities ORDER BY id;`

	if err := s.db.Select(&all, query); err != nil {
		log.Error().Err(err).Msg("failed to list cities")
		return nil, err
	}
	return all, nil
}

// GetCityByName resolves a city case-insensitively. Returns nil, nil when
// the city is not supported.
func (s *pgStore) GetCityByName(name string) (*model.City, error) {
	var c model.City
	query := `SELECT id, name FROM cities WHERE lower(name) = lower($1);`

	err := s.db.Get(&c, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Error().Err(err).Msg("failed to get city by name")
		return nil, err
	}
	return &c, nil
}

func (s *pgStore) GetPrayerTimes(cityID int) (model.PrayerTimes, error) {
	var pt model.PrayerTimes
	query := `
	SELECT city_id, fajr, sunrise, dhuhr, asr, maghrib, isha
	FROM prayer_times
	WHERE city_id = $1;`

	err := s.db.Get(&pt, query, cityID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.PrayerTimes{}, sql.ErrNoRows
	}
	return pt, err
}

func (s *pgStore) UpdatePrayerTimes(cityID int, times model.PrayerTimes) error {
	res, err := s.db.Exec(`
		UPDATE prayer_times
		SET fajr = $2, sunrise = $3, dhuhr = $4, asr = $5, maghrib = $6, isha = $7
		WHERE city_id = $1;`,
		cityID, times.Fajr, times.Sunrise, times.Dhuhr, times.Asr, times.Maghrib, times.Isha,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to update prayer times")
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
