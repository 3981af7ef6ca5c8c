package prayer

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/markaz-app/markaz/internal/model"
)

// Timetable is the result of parsing an HTML prayer timetable: one ordered
// set of rows per city name as printed in the table.
type Timetable map[string]model.PrayerTimes

// FetchTimetable downloads a timetable page. Sources publish these as plain
// HTML tables; a short timeout keeps a dead mirror from stalling the admin
// request.
func FetchTimetable(url string) (string, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("timetable source returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// ParseTimetable extracts city rows from the first table with a
// “timetable” class. Expected columns: city, fajr, sunrise, dhuhr, asr,
// maghrib, isha. Header rows (th cells) are skipped; a row with the wrong
// column count is an error rather than a silent skip.
func ParseTimetable(html string) (Timetable, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	table := doc.Find("table.timetable").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("no table with class 'timetable' found")
	}

	out := Timetable{}
	var parseErr error
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if parseErr != nil || row.Find("th").Length() > 0 {
			return
		}
		cells := row.Find("td")
		if cells.Length() == 0 {
			return
		}
		if cells.Length() != 7 {
			parseErr = fmt.Errorf("row %d: expected 7 columns, got %d", i, cells.Length())
			return
		}

		var cols [7]string
		cells.Each(func(j int, cell *goquery.Selection) {
			cols[j] = strings.TrimSpace(cell.Text())
		})

		pt := model.PrayerTimes{
			Fajr:    cols[1],
			Sunrise: cols[2],
			Dhuhr:   cols[3],
			Asr:     cols[4],
			Maghrib: cols[5],
			Isha:    cols[6],
		}
		if !Ordered(pt) {
			parseErr = fmt.Errorf("row %d (%s): rows are not chronologically ordered", i, cols[0])
			return
		}
		out[cols[0]] = pt
	})
	if parseErr != nil {
		return nil, parseErr
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("timetable contains no city rows")
	}
	return out, nil
}
