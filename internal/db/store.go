// exposes a Store interface that is passed to API modules; handlers never
// touch the sqlx handle directly, which also lets tests swap in a memory
// implementation.
package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/markaz-app/markaz/internal/model"
)

type Store interface {
	// user functions
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name *string) error

	// hadith library
	CreateHadith(arabic, urdu, reference string) (model.Hadith, error)
	GetHadithByID(id int) (model.Hadith, error)
	ListHadiths() ([]model.Hadith, error)
	UpdateHadith(id int, arabic, urdu, reference *string) error
	DeleteHadith(id int) error
	SearchHadiths(query string) ([]model.Hadith, error)

	// quran verses
	CreateVerse(arabic, urdu, surah string, ayah int) (model.Verse, error)
	GetVerseByID(id int) (model.Verse, error)
	ListVerses() ([]model.Verse, error)
	UpdateVerse(id int, arabic, urdu, surah *string, ayah *int) error
	DeleteVerse(id int) error
	SearchVerses(query string) ([]model.Verse, error)
	ListVersesForTopic(topicID int) ([]model.Verse, error)

	// prayer times
	ListCities() ([]model.City, error)
	GetCityByName(name string) (*model.City, error)
	GetPrayerTimes(cityID int) (model.PrayerTimes, error)
	UpdatePrayerTimes(cityID int, times model.PrayerTimes) error

	// topics
	ListTopics() ([]model.Topic, error)
	GetTopicBySlug(slug string) (*model.Topic, error)
	ListTopicSections(topicID int) ([]model.TopicSection, error)
	ListSectionItems(sectionID int) ([]model.TopicItem, error)

	// kids corner
	ListStories() ([]model.Story, error)
	GetStoryByID(id int) (model.Story, error)
	CreateStory(title, body string) (model.Story, error)
	DeleteStory(id int) error
	ListDuas() ([]model.Dua, error)
	CreateDua(arabic, urdu, source string) (model.Dua, error)
	ListActivities() ([]model.Activity, error)

	// media gallery
	CreateMedia(title, typ, url string, caption, location *string) (model.Media, error)
	GetMediaByID(id int) (model.Media, error)
	ListMedia(types []string) ([]model.Media, error)
	DeleteMedia(id int) error

	// display boards
	CreateBoard(name, city string, location *string) (model.Board, error)
	GetBoardByID(id int) (model.Board, error)
	GetBoardByDeviceID(deviceID string) (*model.Board, error)
	ListBoards() ([]model.Board, error)
	PairBoard(id int, deviceID string) error
	DeleteBoard(id int) error
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(db *sqlx.DB) Store {
	return &pgStore{db: db}
}
