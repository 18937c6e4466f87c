package game

import "strings"

// countryCodes maps country names the wiki uses to ISO 3166-1 alpha-2
// codes, covering the regions the major leagues draw players from.
var countryCodes = map[string]string{
	"south korea":    "kr",
	"korea":          "kr",
	"china":          "cn",
	"united states":  "us",
	"usa":            "us",
	"france":         "fr",
	"germany":        "de",
	"united kingdom": "gb",
	"uk":             "gb",
	"spain":          "es",
	"italy":          "it",
	"japan":          "jp",
	"canada":         "ca",
	"brazil":         "br",
	"denmark":        "dk",
	"sweden":         "se",
	"norway":         "no",
	"finland":        "fi",
	"belgium":        "be",
	"netherlands":    "nl",
	"poland":         "pl",
	"australia":      "au",
	"russia":         "ru",
	"turkey":         "tr",
	"vietnam":        "vn",
	"taiwan":         "tw",
	"hong kong":      "hk",
	"macau":          "mo",
	"indonesia":      "id",
	"malaysia":       "my",
	"thailand":       "th",
	"philippines":    "ph",
	"singapore":      "sg",
	"mexico":         "mx",
	"argentina":      "ar",
	"chile":          "cl",
	"peru":           "pe",
	"colombia":       "co",
	"venezuela":      "ve",
	"croatia":        "hr",
	"czech republic": "cz",
	"czechia":        "cz",
	"greece":         "gr",
	"hungary":        "hu",
	"iceland":        "is",
	"ireland":        "ie",
	"portugal":       "pt",
	"romania":        "ro",
	"slovakia":       "sk",
	"slovenia":       "si",
	"switzerland":    "ch",
	"bulgaria":       "bg",
	"estonia":        "ee",
	"latvia":         "lv",
	"lithuania":      "lt",
	"austria":        "at",
	"serbia":         "rs",
	"ukraine":        "ua",
}

// CountryCode derives the flag code for a country name, or "" when the
// country is unknown or unmapped.
func CountryCode(country string) string {
	return countryCodes[strings.ToLower(strings.TrimSpace(country))]
}
