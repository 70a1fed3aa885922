package entities

// CategoryTypes maps the top-level key of a catalog file to its media type.
// Keys missing from the table fall back to the slugified key.
var CategoryTypes = map[string]MediaType{
	"Anime":        "anime",
	"Audiobooks":   "audiobook",
	"Books":        "book",
	"Comics":       "comic",
	"Games":        "game",
	"LightNovels":  "light_novel",
	"LiveEvents":   "live_event",
	"Manga":        "manga",
	"Movies":       "movie",
	"Music":        "music",
	"Podcasts":     "podcast",
	"Shows":        "show",
	"VisualNovels": "visual_novel",
	"WebNovels":    "web_novel",
	"Webseries":    "web_series",
	"Webtoons":     "webtoon",
}

// CreatorRoles are the role labels stripped from creator strings before splitting.
var CreatorRoles = []string{
	"Author",
	"Artist",
	"Writer",
	"Director",
	"Developer",
	"Host",
	"Producer",
	"Narrator",
	"Composer",
	"Organizer",
	"Mangaka",
	"Creator",
	"Studio",
	"Headliner",
	"Original Author",
}

// Core item fields mapped onto media columns. Everything else lands in attributes.
const (
	FieldTitle   = "title"
	FieldYear    = "year_of_release"
	FieldCountry = "country_of_origin"
	FieldCreator = "creator"
	FieldSummary = "synopsis"

	AttrSourceCategory = "source_category"
	AttrSourceFile     = "source_file"
)

// CoreFields are the item keys consumed by core media columns.
var CoreFields = map[string]bool{
	FieldTitle:   true,
	FieldCountry: true,
	FieldCreator: true,
	FieldSummary: true,
	FieldYear:    true,
}
