package model

import "time"

// Verse is a Quran verse with its surah/ayah address and Urdu translation.
type Verse struct {
	ID        int       `db:"id"         json:"id"`
	Arabic    string    `db:"arabic"     json:"arabic"`
	Urdu      string    `db:"urdu"       json:"urdu"`
	Surah     string    `db:"surah"      json:"surah"`
	Ayah      int       `db:"ayah"       json:"ayah"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
