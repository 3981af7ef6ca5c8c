package model

// City is a supported prayer-times location.
type City struct {
	ID   int    `db:"id"   json:"id"`
	Name string `db:"name" json:"name"`
}

// PrayerTimes holds the six daily rows for one city as stored,
// each in "03:04 PM" clock format.
type PrayerTimes struct {
	CityID  int    `db:"city_id" json:"-"`
	Fajr    string `db:"fajr"    json:"fajr"`
	Sunrise string `db:"sunrise" json:"sunrise"`
	Dhuhr   string `db:"dhuhr"   json:"dhuhr"`
	Asr     string `db:"asr"     json:"asr"`
	Maghrib string `db:"maghrib" json:"maghrib"`
	Isha    string `db:"isha"    json:"isha"`
}

// Prayer is one labelled row of a city's day, ready for display.
type Prayer struct {
	Name string `json:"name"`
	Time string `json:"time"`
}

// BoardPageData feeds the athan HTML page rendered for display boards.
type BoardPageData struct {
	City    string
	Date    string
	Hijri   string
	Zawal   string
	Next    Prayer
	Prayers []Prayer
}
