package packets

type SignupRequest struct {
	Email    string  `json:"email"    binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Name     *string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateCurrentProfileRequest struct {
	Email string  `json:"email" binding:"required,email"`
	Name  *string `json:"name"`
}

type CreateHadithRequest struct {
	Arabic    string `json:"arabic"    binding:"required"`
	Urdu      string `json:"urdu"      binding:"required"`
	Reference string `json:"reference" binding:"required"`
}

type UpdateHadithRequest struct {
	Arabic    *string `json:"arabic"`
	Urdu      *string `json:"urdu"`
	Reference *string `json:"reference"`
}

type CreateVerseRequest struct {
	Arabic string `json:"arabic" binding:"required"`
	Urdu   string `json:"urdu"   binding:"required"`
	Surah  string `json:"surah"  binding:"required"`
	Ayah   int    `json:"ayah"   binding:"required"`
}

type UpdateVerseRequest struct {
	Arabic *string `json:"arabic"`
	Urdu   *string `json:"urdu"`
	Surah  *string `json:"surah"`
	Ayah   *int    `json:"ayah"`
}

// UpdatePrayerTimesRequest replaces a city's whole day; all six rows are
// required so the ordering check always sees the full set.
type UpdatePrayerTimesRequest struct {
	Fajr    string `json:"fajr"    binding:"required"`
	Sunrise string `json:"sunrise" binding:"required"`
	Dhuhr   string `json:"dhuhr"   binding:"required"`
	Asr     string `json:"asr"     binding:"required"`
	Maghrib string `json:"maghrib" binding:"required"`
	Isha    string `json:"isha"    binding:"required"`
}

type ImportTimetableRequest struct {
	URL string `json:"url" binding:"required,url"`
}

type CreateStoryRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body"  binding:"required"`
}

type CreateDuaRequest struct {
	Arabic string `json:"arabic" binding:"required"`
	Urdu   string `json:"urdu"   binding:"required"`
	Source string `json:"source" binding:"required"`
}

type CreateBoardRequest struct {
	Name     string  `json:"name" binding:"required"`
	City     string  `json:"city" binding:"required"`
	Location *string `json:"location"`
}

type PairBoardRequest struct {
	Code string `json:"code" binding:"required"`
}
