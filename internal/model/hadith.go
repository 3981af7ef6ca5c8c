package model

import "time"

// Hadith is one record of the hadith corpus. Arabic is the original text,
// Urdu the translation, Reference the collection it is attributed to
// (e.g. بخاری, مسلم, ترمذی).
type Hadith struct {
	ID        int       `db:"id"         json:"id"`
	Arabic    string    `db:"arabic"     json:"arabic"`
	Urdu      string    `db:"urdu"       json:"urdu"`
	Reference string    `db:"reference"  json:"reference"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
