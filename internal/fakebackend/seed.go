package fakebackend

import "github.com/rfhold/marquee/internal/catalog"

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func defaultExternalMovies() []catalog.ExternalMovie {
	return []catalog.ExternalMovie{
		{Name: strPtr("Encanto"), Description: strPtr("A family with magic"), ReleaseYear: intPtr(2021)},
		{Name: strPtr("Moana"), Description: strPtr("A voyage across the ocean"), ReleaseYear: intPtr(2016)},
		{Name: strPtr("Frozen"), Description: strPtr("Two sisters and an eternal winter"), ReleaseYear: intPtr(2013)},
		{Name: strPtr("Frozen II"), Description: strPtr("The sisters follow a voice north"), ReleaseYear: intPtr(2019)},
		{Name: strPtr("Coco"), Description: strPtr("A boy in the Land of the Dead"), ReleaseYear: intPtr(2017)},
		{Name: strPtr("Zootopia"), Description: strPtr("A rabbit cop and a fox"), ReleaseYear: intPtr(2016)},
		{Name: strPtr("Wish"), ReleaseYear: intPtr(2023)},
		{Name: strPtr("Elemental")},
	}
}

func defaultExternalLanguages() []catalog.ExternalLanguage {
	return []catalog.ExternalLanguage{
		{Code: strPtr("es"), Name: strPtr("Spanish")},
		{Code: strPtr("en"), Name: strPtr("English")},
		{Code: strPtr("fr"), Name: strPtr("French")},
		{Code: strPtr("pt"), Name: strPtr("Portuguese")},
		{Code: strPtr("ja"), Name: strPtr("Japanese")},
		{Code: strPtr("ko"), Name: strPtr("Korean")},
		{Code: strPtr("qu")},
	}
}

// SeedDemo fills the collections with a few records so a fresh stub is not empty
func (s *Store) SeedDemo() {
	movies := [][2]string{
		{"Encanto", "A family with magic"},
		{"Coco", "A boy in the Land of the Dead"},
		{"Moana", "A voyage across the ocean"},
	}
	for _, m := range movies {
		_, _ = s.CreateMovie(m[0], m[1])
	}

	languages := []catalog.LanguageInput{
		{Code: "es", Name: "Spanish", NativeName: "Español", Region: "ES"},
		{Code: "en", Name: "English", NativeName: "English", Region: "US"},
		{Code: "ja", Name: "Japanese", NativeName: "日本語", Region: "JP"},
	}
	for _, l := range languages {
		_, _ = s.CreateLanguage(l)
	}
}
