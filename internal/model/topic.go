package model

// Topic is a teaching page (tauheed, one of the pillars, taharat chapters).
type Topic struct {
	ID          int    `db:"id"          json:"id"`
	Slug        string `db:"slug"        json:"slug"`
	Title       string `db:"title"       json:"title"`
	Description string `db:"description" json:"description"`
}

// TopicSection is one labelled list inside a topic, e.g. the farz of wudu
// or the benefits of fasting. Kind distinguishes list flavors the clients
// render differently (points, conditions, benefits, practice, misconception).
type TopicSection struct {
	ID       int    `db:"id"       json:"id"`
	TopicID  int    `db:"topic_id" json:"-"`
	Slug     string `db:"slug"     json:"slug"`
	Heading  string `db:"heading"  json:"heading"`
	Kind     string `db:"kind"     json:"kind"`
	Position int    `db:"position" json:"position"`
}

// TopicItem is one line of a section's list.
type TopicItem struct {
	ID        int    `db:"id"         json:"id"`
	SectionID int    `db:"section_id" json:"-"`
	Text      string `db:"text"       json:"text"`
	Position  int    `db:"position"   json:"position"`
}
