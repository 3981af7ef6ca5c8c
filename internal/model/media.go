package model

import "time"

// Media is one gallery asset. Type is "image" or "video"; URL is either a
// local /uploads path or a CDN URL depending on the storage backend.
type Media struct {
	ID        int       `db:"id"         json:"id"`
	Title     string    `db:"title"      json:"title"`
	Type      string    `db:"type"       json:"type"`
	URL       string    `db:"url"        json:"url"`
	Caption   *string   `db:"caption"    json:"caption"`
	Location  *string   `db:"location"   json:"location"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
