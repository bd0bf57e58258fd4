package domain

// Genre is a selectable music genre.
type Genre struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// GenreCategory groups genres for display.
type GenreCategory struct {
	Name   string  `json:"name"`
	Genres []Genre `json:"genres"`
}

// GenreCategories is the genre catalog of the track step.
var GenreCategories = []GenreCategory{
	{
		Name:   "Dance / Electronic",
		Genres: []Genre{
			{Value: "afro-house", Label: "Afro House"},
			{Value: "bass", Label: "Bass"},
			{Value: "bass-house", Label: "Bass House"},
			{Value: "breaks", Label: "Breaks"},
			{Value: "chill-out", Label: "Chill Out"},
			{Value: "deep-house", Label: "Deep House"},
			{Value: "drum-and-bass", Label: "Drum & Bass"},
			{Value: "dubstep", Label: "Dubstep"},
			{Value: "electro-house", Label: "Electro House"},
			{Value: "electronica", Label: "Electronica"},
			{Value: "future-house", Label: "Future House"},
			{Value: "glitch-hop", Label: "Glitch Hop"},
			{Value: "hard-dance", Label: "Hard Dance"},
			{Value: "hardcore-hard-techno", Label: "Hardcore / Hard Techno"},
			{Value: "house", Label: "House"},
			{Value: "indie-dance-nu-disco", Label: "Indie Dance / Nu Disco"},
			{Value: "progressive-house", Label: "Progressive House"},
			{Value: "psy-trance", Label: "Psy Trance"},
			{Value: "tech-house", Label: "Tech House"},
			{Value: "techno", Label: "Techno"},
			{Value: "trance", Label: "Trance"},
			{Value: "trap", Label: "Trap"},
			{Value: "trip-hop", Label: "Trip-Hop"},
		},
	},
	{
		Name:   "Hip-Hop / R&B",
		Genres: []Genre{
			{Value: "r-and-b", Label: "R&B"},
			{Value: "disco", Label: "Disco"},
			{Value: "funk", Label: "Funk"},
			{Value: "hip-hop", Label: "Hip-Hop"},
			{Value: "rap", Label: "Rap"},
			{Value: "soul", Label: "Soul"},
		},
	},
	{
		Name:   "Pop / Rock",
		Genres: []Genre{
			{Value: "acoustic", Label: "Acoustic"},
			{Value: "alternative", Label: "Alternative"},
			{Value: "pop", Label: "Pop"},
			{Value: "country", Label: "Country"},
			{Value: "folk", Label: "Folk"},
			{Value: "indie", Label: "Indie"},
			{Value: "k-pop", Label: "K-Pop"},
			{Value: "metal", Label: "Metal"},
			{Value: "punk", Label: "Punk"},
			{Value: "rock", Label: "Rock"},
			{Value: "singer-songwriter", Label: "Singer Songwriter"},
			{Value: "world", Label: "World"},
		},
	},
	{
		Name:   "Other",
		Genres: []Genre{
			{Value: "blues", Label: "Blues"},
			{Value: "christian", Label: "Christian"},
			{Value: "classical", Label: "Classical"},
			{Value: "dancehall", Label: "Dancehall"},
			{Value: "dub", Label: "Dub"},
			{Value: "gospel", Label: "Gospel"},
			{Value: "jazz", Label: "Jazz"},
			{Value: "latin", Label: "Latin"},
			{Value: "reggae", Label: "Reggae"},
			{Value: "reggaeton", Label: "Reggaeton"},
			{Value: "other", Label: "Other"},
		},
	},
}
