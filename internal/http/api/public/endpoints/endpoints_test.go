package endpoints

import (
	"database/sql"
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markaz-app/markaz/internal/db"
	"github.com/markaz-app/markaz/internal/http/api"
	"github.com/markaz-app/markaz/internal/http/api/public/packets"
	"github.com/markaz-app/markaz/internal/model"
	"github.com/markaz-app/markaz/internal/redis"
)

// memStore is an in-memory db.Store with just enough behavior for the
// public handlers under test.
type memStore struct {
	hadiths  []model.Hadith
	verses   []model.Verse
	cities   []model.City
	times    map[int]model.PrayerTimes
	topics   []model.Topic
	sections map[int][]model.TopicSection
	items    map[int][]model.TopicItem
	topicVs  map[int][]model.Verse
	stories  []model.Story
	duas     []model.Dua
	acts     []model.Activity
	media    []model.Media
	boards   []model.Board
}

func (m *memStore) CreateUser(email, hashedPassword string, name *string) (int, error) {
	return 0, sql.ErrNoRows
}
func (m *memStore) GetUserByEmail(email string) (*model.User, error) { return nil, nil }
func (m *memStore) GetUserByID(id int) (*model.User, error)          { return nil, sql.ErrNoRows }
func (m *memStore) UpdateUserProfile(id int, email string, name *string) error {
	return sql.ErrNoRows
}

func (m *memStore) CreateHadith(arabic, urdu, reference string) (model.Hadith, error) {
	h := model.Hadith{ID: len(m.hadiths) + 1, Arabic: arabic, Urdu: urdu, Reference: reference}
	m.hadiths = append(m.hadiths, h)
	return h, nil
}
func (m *memStore) GetHadithByID(id int) (model.Hadith, error) {
	for _, h := range m.hadiths {
		if h.ID == id {
			return h, nil
		}
	}
	return model.Hadith{}, sql.ErrNoRows
}
func (m *memStore) ListHadiths() ([]model.Hadith, error)              { return m.hadiths, nil }
func (m *memStore) UpdateHadith(int, *string, *string, *string) error { return sql.ErrNoRows }
func (m *memStore) DeleteHadith(int) error                            { return sql.ErrNoRows }
func (m *memStore) SearchHadiths(query string) ([]model.Hadith, error) {
	var out []model.Hadith
	q := strings.ToLower(query)
	for _, h := range m.hadiths {
		if strings.Contains(strings.ToLower(h.Arabic), q) ||
			strings.Contains(strings.ToLower(h.Urdu), q) ||
			strings.Contains(strings.ToLower(h.Reference), q) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *memStore) CreateVerse(arabic, urdu, surah string, ayah int) (model.Verse, error) {
	v := model.Verse{ID: len(m.verses) + 1, Arabic: arabic, Urdu: urdu, Surah: surah, Ayah: ayah}
	m.verses = append(m.verses, v)
	return v, nil
}
func (m *memStore) GetVerseByID(id int) (model.Verse, error) {
	for _, v := range m.verses {
		if v.ID == id {
			return v, nil
		}
	}
	return model.Verse{}, sql.ErrNoRows
}
func (m *memStore) ListVerses() ([]model.Verse, error)                       { return m.verses, nil }
func (m *memStore) UpdateVerse(int, *string, *string, *string, *int) error   { return sql.ErrNoRows }
func (m *memStore) DeleteVerse(int) error                                    { return sql.ErrNoRows }
func (m *memStore) SearchVerses(query string) ([]model.Verse, error) {
	var out []model.Verse
	q := strings.ToLower(query)
	for _, v := range m.verses {
		if strings.Contains(strings.ToLower(v.Arabic), q) ||
			strings.Contains(strings.ToLower(v.Urdu), q) ||
			strings.Contains(strings.ToLower(v.Surah), q) {
			out = append(out, v)
		}
	}
	return out, nil
}
func (m *memStore) ListVersesForTopic(topicID int) ([]model.Verse, error) {
	return m.topicVs[topicID], nil
}

func (m *memStore) ListCities() ([]model.City, error) { return m.cities, nil }
func (m *memStore) GetCityByName(name string) (*model.City, error) {
	for _, c := range m.cities {
		if strings.EqualFold(c.Name, name) {
			city := c
			return &city, nil
		}
	}
	return nil, nil
}
func (m *memStore) GetPrayerTimes(cityID int) (model.PrayerTimes, error) {
	pt, ok := m.times[cityID]
	if !ok {
		return model.PrayerTimes{}, sql.ErrNoRows
	}
	return pt, nil
}
func (m *memStore) UpdatePrayerTimes(cityID int, times model.PrayerTimes) error {
	m.times[cityID] = times
	return nil
}

func (m *memStore) ListTopics() ([]model.Topic, error) { return m.topics, nil }
func (m *memStore) GetTopicBySlug(slug string) (*model.Topic, error) {
	for _, t := range m.topics {
		if t.Slug == slug {
			topic := t
			return &topic, nil
		}
	}
	return nil, nil
}
func (m *memStore) ListTopicSections(topicID int) ([]model.TopicSection, error) {
	return m.sections[topicID], nil
}
func (m *memStore) ListSectionItems(sectionID int) ([]model.TopicItem, error) {
	return m.items[sectionID], nil
}

func (m *memStore) ListStories() ([]model.Story, error) { return m.stories, nil }
func (m *memStore) GetStoryByID(id int) (model.Story, error) {
	for _, s := range m.stories {
		if s.ID == id {
			return s, nil
		}
	}
	return model.Story{}, sql.ErrNoRows
}
func (m *memStore) CreateStory(title, body string) (model.Story, error) {
	s := model.Story{ID: len(m.stories) + 1, Title: title, Body: body}
	m.stories = append(m.stories, s)
	return s, nil
}
func (m *memStore) DeleteStory(int) error { return sql.ErrNoRows }
func (m *memStore) ListDuas() ([]model.Dua, error) { return m.duas, nil }
func (m *memStore) CreateDua(arabic, urdu, source string) (model.Dua, error) {
	d := model.Dua{ID: len(m.duas) + 1, Arabic: arabic, Urdu: urdu, Source: source}
	m.duas = append(m.duas, d)
	return d, nil
}
func (m *memStore) ListActivities() ([]model.Activity, error) { return m.acts, nil }

func (m *memStore) CreateMedia(title, typ, url string, caption, location *string) (model.Media, error) {
	md := model.Media{ID: len(m.media) + 1, Title: title, Type: typ, URL: url, Caption: caption, Location: location}
	m.media = append(m.media, md)
	return md, nil
}
func (m *memStore) GetMediaByID(id int) (model.Media, error) { return model.Media{}, sql.ErrNoRows }
func (m *memStore) ListMedia(types []string) ([]model.Media, error) {
	if len(types) == 0 {
		return m.media, nil
	}
	var out []model.Media
	for _, md := range m.media {
		for _, t := range types {
			if md.Type == t {
				out = append(out, md)
				break
			}
		}
	}
	return out, nil
}
func (m *memStore) DeleteMedia(int) error { return sql.ErrNoRows }

func (m *memStore) CreateBoard(name, city string, location *string) (model.Board, error) {
	b := model.Board{ID: len(m.boards) + 1, Name: name, City: city, Location: location}
	m.boards = append(m.boards, b)
	return b, nil
}
func (m *memStore) GetBoardByID(id int) (model.Board, error) {
	for _, b := range m.boards {
		if b.ID == id {
			return b, nil
		}
	}
	return model.Board{}, sql.ErrNoRows
}
func (m *memStore) GetBoardByDeviceID(deviceID string) (*model.Board, error) {
	for _, b := range m.boards {
		if b.DeviceID != nil && *b.DeviceID == deviceID {
			board := b
			return &board, nil
		}
	}
	return nil, nil
}
func (m *memStore) ListBoards() ([]model.Board, error) { return m.boards, nil }
func (m *memStore) PairBoard(id int, deviceID string) error {
	for i := range m.boards {
		if m.boards[i].ID == id {
			m.boards[i].DeviceID = &deviceID
			m.boards[i].Paired = true
			return nil
		}
	}
	return sql.ErrNoRows
}
func (m *memStore) DeleteBoard(int) error { return sql.ErrNoRows }

var _ db.Store = (*memStore)(nil)

func newFixtureStore() *memStore {
	return &memStore{
		hadiths: []model.Hadith{
			{ID: 1, Arabic: "إنما الأعمال بالنيات", Urdu: "اعمال کا دارومدار نیتوں پر ہے", Reference: "بخاری"},
			{ID: 2, Arabic: "اتق الله حيثما كنت", Urdu: "جہاں کہیں بھی ہو اللہ سے ڈرو", Reference: "ترمذی"},
			{ID: 3, Arabic: "الطهور شطر الإيمان", Urdu: "پاکیزگی آدھا ایمان ہے", Reference: "مسلم"},
		},
		verses: []model.Verse{
			{ID: 1, Arabic: "إِنَّ مَعَ الْعُسْرِ يُسْرًا", Urdu: "بے شک مشکل کے ساتھ آسانی ہے", Surah: "الشرح", Ayah: 6},
			{ID: 2, Arabic: "قُلْ هُوَ اللَّهُ أَحَدٌ", Urdu: "کہو وہ اللہ ایک ہے", Surah: "الاخلاص", Ayah: 1},
		},
		cities: []model.City{
			{ID: 1, Name: "Karachi"},
			{ID: 2, Name: "Lahore"},
		},
		times: map[int]model.PrayerTimes{
			1: {CityID: 1, Fajr: "05:15 AM", Sunrise: "06:45 AM", Dhuhr: "12:30 PM", Asr: "04:00 PM", Maghrib: "06:45 PM", Isha: "08:15 PM"},
			2: {CityID: 2, Fajr: "04:45 AM", Sunrise: "06:15 AM", Dhuhr: "12:15 PM", Asr: "03:45 PM", Maghrib: "06:30 PM", Isha: "08:00 PM"},
		},
		topics: []model.Topic{
			{ID: 1, Slug: "tauheed", Title: "توحید - اسلام کی بنیاد", Description: "توحید کا مطلب ہے اللہ تعالیٰ کو ایک ماننا"},
		},
		sections: map[int][]model.TopicSection{
			1: {
				{ID: 10, TopicID: 1, Slug: "rububiyyah", Heading: "توحید الربوبیت", Kind: "points", Position: 1},
				{ID: 11, TopicID: 1, Slug: "benefits", Heading: "توحید کے فوائد", Kind: "benefits", Position: 2},
			},
		},
		items: map[int][]model.TopicItem{
			10: {
				{ID: 100, SectionID: 10, Text: "اللہ ہی خالق ہے", Position: 1},
				{ID: 101, SectionID: 10, Text: "اللہ ہی رازق ہے", Position: 2},
			},
			11: {
				{ID: 102, SectionID: 11, Text: "اللہ کی محبت حاصل ہوتی ہے", Position: 1},
			},
		},
		topicVs: map[int][]model.Verse{
			1: {{ID: 2, Arabic: "قُلْ هُوَ اللَّهُ أَحَدٌ", Urdu: "کہو وہ اللہ ایک ہے", Surah: "الاخلاص", Ayah: 1}},
		},
		stories: []model.Story{
			{ID: 1, Title: "ہاتھی والوں کی کہانی", Body: "ایک بادشاہ جس کا نام ابرہہ تھا"},
		},
		duas: []model.Dua{
			{ID: 1, Arabic: "رَبِّ زِدْنِي عِلْمًا", Urdu: "اے میرے رب، میرے علم میں اضافہ فرما", Source: "سورۃ طہ - آیت 114"},
		},
		acts: []model.Activity{
			{ID: 1, Text: "نماز کا چارٹ بنائیں", Position: 1},
		},
		media: []model.Media{
			{ID: 1, Title: "مسجد الحرام، مکہ", Type: "image", URL: "/uploads/masjid_haram.jpg"},
			{ID: 2, Title: "وضو کا صحیح طریقہ", Type: "video", URL: "https://youtu.be/3ecRdD9HqZY"},
		},
	}
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T, store db.Store) *gin.Engine {
	t.Helper()

	mr := miniredis.RunT(t)
	redis.InitRedis(mr.Addr(), "", "")

	r := gin.New()
	api.MountGroup(r, api.GroupConfig{Prefix: "/api"},
		SectionsModule(),
		PublicLibraryModule(store),
		PublicPrayerModule(store),
		PublicTopicsModule(store),
		PublicKidsModule(store),
		PublicMediaModule(store),
		BoardDeviceModule(store),
	)
	return r
}

func doGET(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestPrayerTimesKnownCity(t *testing.T) {
	r := newTestRouter(t, newFixtureStore())

	w := doGET(t, r, "/api/prayer-times?city=Lahore")
	require.Equal(t, http.StatusOK, w.Code)

	var resp packets.PrayerTimesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "Lahore", resp.City)
	require.Len(t, resp.Prayers, 6)
	assert.Equal(t, "فجر", resp.Prayers[0].Name)
	assert.Equal(t, "04:45 AM", resp.Prayers[0].Time)
	assert.Equal(t, "عشاء", resp.Prayers[5].Name)
	// zawal derived from dhuhr 12:15 PM
	assert.Equal(t, "12:10 PM", resp.Zawal)
	assert.NotEmpty(t, resp.HijriDate)
	assert.NotEmpty(t, resp.IslamicMonth)
}

func TestPrayerTimesUnknownCityFallsBack(t *testing.T) {
	r := newTestRouter(t, newFixtureStore())

	w := doGET(t, r, "/api/prayer-times?city=Multan")
	require.Equal(t, http.StatusOK, w.Code)

	var resp packets.PrayerTimesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "Karachi", resp.City)
	assert.Equal(t, "05:15 AM", resp.Prayers[0].Time)
}

func TestPrayerTimesCityCaseInsensitive(t *testing.T) {
	r := newTestRouter(t, newFixtureStore())

	w := doGET(t, r, "/api/prayer-times?city=lahore")
	require.Equal(t, http.StatusOK, w.Code)

	var resp packets.PrayerTimesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Lahore", resp.City)
}

func TestSearchMatchesReference(t *testing.T) {
	r := newTestRouter(t, newFixtureStore())

	w := doGET(t, r, "/api/search?q="+escape("بخاری"))
	require.Equal(t, http.StatusOK, w.Code)

	var resp packets.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Hadiths, 1)
	assert.Equal(t, "بخاری", resp.Hadiths[0].Reference)
	assert.Empty(t, resp.Verses)
}

func TestSearchNoMatchesIsStillOK(t *testing.T) {
	r := newTestRouter(t, newFixtureStore())

	w := doGET(t, r, "/api/search?q=zzzz")
	require.Equal(t, http.StatusOK, w.Code)

	var resp packets.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Hadiths)
	assert.Empty(t, resp.Verses)
}

func TestSearchMissingQueryRejected(t *testing.T) {
	r := newTestRouter(t, newFixtureStore())

	w := doGET(t, r, "/api/search")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDailyHadithIsStableForTheDay(t *testing.T) {
	store := newFixtureStore()
	r := newTestRouter(t, store)

	first := doGET(t, r, "/api/hadiths/daily")
	require.Equal(t, http.StatusOK, first.Code)
	second := doGET(t, r, "/api/hadiths/daily")
	require.Equal(t, http.StatusOK, second.Code)

	assert.JSONEq(t, first.Body.String(), second.Body.String())

	var h model.Hadith
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &h))
	want := store.hadiths[time.Now().YearDay()%len(store.hadiths)]
	assert.Equal(t, want.ID, h.ID)
}

func TestTopicAssembly(t *testing.T) {
	r := newTestRouter(t, newFixtureStore())

	w := doGET(t, r, "/api/topics/tauheed")
	require.Equal(t, http.StatusOK, w.Code)

	var resp packets.TopicResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "tauheed", resp.Slug)
	require.Len(t, resp.Sections, 2)
	assert.Equal(t, "rububiyyah", resp.Sections[0].Slug)
	assert.Equal(t, []string{"اللہ ہی خالق ہے", "اللہ ہی رازق ہے"}, resp.Sections[0].Items)
	assert.Equal(t, "benefits", resp.Sections[1].Kind)
	require.Len(t, resp.Verses, 1)
	assert.Equal(t, "الاخلاص", resp.Verses[0].Surah)
}

func TestUnknownTopicIs404(t *testing.T) {
	r := newTestRouter(t, newFixtureStore())

	w := doGET(t, r, "/api/topics/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMediaTypeFilter(t *testing.T) {
	r := newTestRouter(t, newFixtureStore())

	w := doGET(t, r, "/api/media?type=image")
	require.Equal(t, http.StatusOK, w.Code)

	var media []model.Media
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &media))
	require.Len(t, media, 1)
	assert.Equal(t, "image", media[0].Type)

	w = doGET(t, r, "/api/media?type=audio")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSectionsList(t *testing.T) {
	r := newTestRouter(t, newFixtureStore())

	w := doGET(t, r, "/api/sections")
	require.Equal(t, http.StatusOK, w.Code)

	var secs []packets.SectionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &secs))
	require.Len(t, secs, 6)
	assert.Equal(t, "library", secs[0].Slug)
}

func TestKidsCorner(t *testing.T) {
	r := newTestRouter(t, newFixtureStore())

	w := doGET(t, r, "/api/kids/duas")
	require.Equal(t, http.StatusOK, w.Code)

	var duas []model.Dua
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &duas))
	require.Len(t, duas, 1)
	assert.Equal(t, "سورۃ طہ - آیت 114", duas[0].Source)

	w = doGET(t, r, "/api/kids/stories/999")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPairingFlow(t *testing.T) {
	store := newFixtureStore()
	r := newTestRouter(t, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/boards/request-pairing", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var pairing packets.PairingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pairing))
	assert.Len(t, pairing.Code, 6)
	assert.NotEmpty(t, pairing.DeviceID)
	assert.Equal(t, 300, pairing.ExpiresIn)

	// unpaired devices cannot fetch config yet
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/boards/connect",
		strings.NewReader(`{"device_id":"`+pairing.DeviceID+`"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBoardPage(t *testing.T) {
	store := newFixtureStore()
	board, err := store.CreateBoard("Lobby", "Karachi", nil)
	require.NoError(t, err)
	require.NoError(t, store.PairBoard(board.ID, "board-device-1"))

	r := newTestRouter(t, store)
	r.SetHTMLTemplate(template.Must(template.ParseFiles("../../../../../templates/athan.html")))

	w := doGET(t, r, "/api/boards/board-device-1/page")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Karachi")
	// zawal derived from dhuhr 12:30 PM
	assert.Contains(t, body, "12:25 PM")
	// exactly one row is highlighted as the upcoming prayer
	assert.Equal(t, 1, strings.Count(body, `"prayer next"`))

	w = doGET(t, r, "/api/boards/not-a-device/page")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func escape(s string) string {
	return url.QueryEscape(s)
}
