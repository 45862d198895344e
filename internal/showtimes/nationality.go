package showtimes

import "strings"

// Keys are lower-case country names without accents.
var nationalities = map[string]string{
	"france":           "français",
	"belgique":         "belge",
	"suisse":           "suisse",
	"canada":           "canadien",
	"u.s.a.":           "américain",
	"etats-unis":       "américain",
	"royaume-uni":      "britannique",
	"irlande":          "irlandais",
	"allemagne":        "allemand",
	"autriche":         "autrichien",
	"italie":           "italien",
	"espagne":          "espagnol",
	"portugal":         "portugais",
	"pays-bas":         "néerlandais",
	"danemark":         "danois",
	"suede":            "suédois",
	"norvege":          "norvégien",
	"finlande":         "finlandais",
	"islande":          "islandais",
	"pologne":          "polonais",
	"roumanie":         "roumain",
	"grece":            "grec",
	"turquie":          "turc",
	"russie":           "russe",
	"ukraine":          "ukrainien",
	"israel":           "israélien",
	"iran":             "iranien",
	"liban":            "libanais",
	"egypte":           "égyptien",
	"maroc":            "marocain",
	"algerie":          "algérien",
	"tunisie":          "tunisien",
	"senegal":          "sénégalais",
	"ethiopie":         "éthiopien",
	"afrique du sud":   "sud-africain",
	"inde":             "indien",
	"chine":            "chinois",
	"hong-kong":        "hongkongais",
	"taiwan":           "taïwanais",
	"japon":            "japonais",
	"coree du sud":     "sud-coréen",
	"thailande":        "thaïlandais",
	"australie":        "australien",
	"nouvelle-zelande": "néo-zélandais",
	"mexique":          "mexicain",
	"bresil":           "brésilien",
	"argentine":        "argentin",
	"chili":            "chilien",
	"colombie":         "colombien",
}

// Nationalities renders the movie countries as French adjectives,
// "Éthiopie" giving "éthiopien". Unknown countries become "de <country>".
func (m Movie) Nationalities() []string {
	if len(m.Countries) == 0 {
		return nil
	}
	out := make([]string, 0, len(m.Countries))
	for _, country := range m.Countries {
		if n, ok := nationalities[strings.ToLower(StripAccents(strings.TrimSpace(country)))]; ok {
			out = append(out, n)
			continue
		}
		out = append(out, "de "+country)
	}
	return out
}
