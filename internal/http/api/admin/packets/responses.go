package packets

type ProfileResponse struct {
	ID        int     `json:"id"`
	Email     string  `json:"email"`
	Name      *string `json:"name"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type MediaResponse struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	Type      string  `json:"type"`
	URL       string  `json:"url"`
	Caption   *string `json:"caption"`
	Location  *string `json:"location"`
	CreatedAt string  `json:"created_at"`
}

type BoardResponse struct {
	ID       int     `json:"id"`
	DeviceID *string `json:"device_id"`
	Name     string  `json:"name"`
	City     string  `json:"city"`
	Location *string `json:"location"`
	Paired   bool    `json:"paired"`
	Online   bool    `json:"online"`
}

// ImportReport summarizes a timetable import: which table rows matched a
// supported city and which were skipped.
type ImportReport struct {
	Updated []string `json:"updated"`
	Skipped []string `json:"skipped"`
}
