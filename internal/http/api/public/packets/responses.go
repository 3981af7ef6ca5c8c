package packets

import "github.com/markaz-app/markaz/internal/model"

// SectionResponse is one entry of the top-level navigation the clients render.
type SectionResponse struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

type AboutResponse struct {
	Title       string   `json:"title"`
	Tagline     string   `json:"tagline"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// PrayerTimesResponse is the full prayer-times page for one city. City echoes
// the city actually served, which may differ from the query when an unknown
// city falls back to the default.
type PrayerTimesResponse struct {
	City          string         `json:"city"`
	GregorianDate string         `json:"gregorian_date"`
	HijriDate     string         `json:"hijri_date"`
	IslamicMonth  string         `json:"islamic_month"`
	Prayers       []model.Prayer `json:"prayers"`
	Zawal         string         `json:"zawal"`
	Note          string         `json:"note"`
}

type SearchResponse struct {
	Query   string         `json:"query"`
	Hadiths []model.Hadith `json:"hadiths"`
	Verses  []model.Verse  `json:"verses"`
}

// TopicSectionResponse is a section with its list items resolved.
type TopicSectionResponse struct {
	Slug    string   `json:"slug"`
	Heading string   `json:"heading"`
	Kind    string   `json:"kind"`
	Items   []string `json:"items"`
}

// TopicResponse is a fully assembled teaching page.
type TopicResponse struct {
	Slug        string                 `json:"slug"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Sections    []TopicSectionResponse `json:"sections"`
	Verses      []model.Verse          `json:"verses"`
}

// PairingResponse is what a board device shows on screen while it waits for
// an admin to type the code in.
type PairingResponse struct {
	DeviceID  string `json:"device_id"`
	Code      string `json:"code"`
	ExpiresIn int    `json:"expires_in"` // seconds
}

// BoardConfigResponse tells a paired device which city it serves and where
// to listen for refresh commands.
type BoardConfigResponse struct {
	Name         string `json:"name"`
	City         string `json:"city"`
	CommandTopic string `json:"command_topic"`
}
