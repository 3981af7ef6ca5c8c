package model

import "time"

// Story is a kids-corner story.
type Story struct {
	ID        int       `db:"id"         json:"id"`
	Title     string    `db:"title"      json:"title"`
	Body      string    `db:"body"       json:"body"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Dua is a short everyday supplication with its source.
type Dua struct {
	ID     int    `db:"id"     json:"id"`
	Arabic string `db:"arabic" json:"arabic"`
	Urdu   string `db:"urdu"   json:"urdu"`
	Source string `db:"source" json:"source"`
}

// Activity is a suggested kids activity line.
type Activity struct {
	ID       int    `db:"id"       json:"id"`
	Text     string `db:"text"     json:"text"`
	Position int    `db:"position" json:"position"`
}
