package models

// Format is a distribution quality tier a film can be purchased in.
type Format string

const (
	FormatSD Format = "SD"
	FormatHD Format = "HD"
	Format4K Format = "4K"
)

// Film is an immutable catalog entry. ID is the source dataset's rank and is
// unique across the catalog; Formats is derived from the rank and is never
// empty.
type Film struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Genres      []string `json:"genres"`
	Director    string   `json:"director"`
	Actors      []string `json:"actors"`
	Year        int      `json:"year"`
	Runtime     int      `json:"runtime"`
	Formats     []Format `json:"formats"`
}

// HasFormat reports whether the film is available in the given format.
func (f Film) HasFormat(format Format) bool {
	for _, available := range f.Formats {
		if available == format {
			return true
		}
	}
	return false
}

// HasGenre reports whether the film carries the given (lowercase) genre.
func (f Film) HasGenre(genre string) bool {
	for _, g := range f.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// FormatsForRank derives a film's available formats from its dataset rank.
// The tiers cycle with rank mod 4: 1 → SD only, 2 → HD only, 3 → SD and HD,
// 0 → all three.
func FormatsForRank(rank int) []Format {
	switch rank % 4 {
	case 1:
		return []Format{FormatSD}
	case 2:
		return []Format{FormatHD}
	case 3:
		return []Format{FormatSD, FormatHD}
	default:
		return []Format{FormatSD, FormatHD, Format4K}
	}
}
