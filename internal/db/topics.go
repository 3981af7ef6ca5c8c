package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/markaz-app/markaz/internal/model"
)

func (s *pgStore) ListTopics() ([]model.Topic, error) {
	var all []model.Topic
	query := `SELECT id, slug, title, description FROM topics ORDER BY id;`

	if err := s.db.Select(&all, query); err != nil {
		log.Error().Err(err).Msg("failed to list topics")
		return nil, err
	}
	return all, nil
}

func (s *pgStore) GetTopicBySlug(slug string) (*model.Topic, error) {
	var t model.Topic
	query := `SELECT id, slug, title, description FROM topics WHERE slug = $1;`

	err := s.db.Get(&t, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// unknown slug is not an error, callers 404 on nil
			return nil, nil
		}
		log.Error().Err(err).Msg("failed to get topic by slug")
		return nil, err
	}
	return &t, nil
}

func (s *pgStore) ListTopicSections(topicID int) ([]model.TopicSection, error) {
	var all []model.TopicSection
	query := `
	SELECT id, topic_id, slug, heading, kind, position
	FROM topic_sections
	WHERE topic_id = $1
	ORDER BY position;`

	if err := s.db.Select(&all, query, topicID); err != nil {
		log.Error().Err(err).Msg("failed to list topic sections")
		return nil, err
	}
	return all, nil
}

func (s *pgStore) ListSectionItems(sectionID int) ([]model.TopicItem, error) {
	var all []model.TopicItem
	query := `
	SELECT id, section_id, text, position
	FROM topic_items
	WHERE section_id = $1
	ORDER BY position;`

	if err := s.db.Select(&all, query, sectionID); err != nil {
		log.Error().Err(err).Msg("failed to list section items")
		return nil, err
	}
	return all, nil
}
