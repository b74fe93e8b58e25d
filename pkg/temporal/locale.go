package temporal

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is used when a picker does not name one.
const DefaultLocale = "en-US"

// langTable carries the month names and display conventions of a language.
type langTable struct {
	tag   language.Tag
	long  [12]string
	short [12]string
	// datePattern is the "locale" display pattern; monthFirstPattern replaces
	// it for month/day/year regions.
	datePattern       string
	monthFirstPattern string
	am, pm            string
	periodFirst       bool
}

var langTables = []langTable{
	{
		tag: language.English,
		long: [12]string{"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December"},
		short: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		datePattern:       "D MMM YYYY",
		monthFirstPattern: "MMM D, YYYY",
		am:                "AM", pm: "PM",
	},
	{
		tag: language.German,
		long: [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember"},
		short: [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni",
			"Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
		datePattern: "D. MMM YYYY",
		am:          "AM", pm: "PM",
	},
	{
		tag: language.French,
		long: [12]string{"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		short: [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin",
			"juil.", "août", "sept.", "oct.", "nov.", "déc."},
		datePattern: "D MMM YYYY",
		am:          "AM", pm: "PM",
	},
	{
		tag: language.Spanish,
		long: [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		short: [12]string{"ene", "feb", "mar", "abr", "may", "jun",
			"jul", "ago", "sept", "oct", "nov", "dic"},
		datePattern: "D MMM YYYY",
		am:          "a. m.", pm: "p. m.",
	},
	{
		tag: language.Italian,
		long: [12]string{"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno",
			"luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre"},
		short: [12]string{"gen", "feb", "mar", "apr", "mag", "giu",
			"lug", "ago", "set", "ott", "nov", "dic"},
		datePattern: "D MMM YYYY",
		am:          "AM", pm: "PM",
	},
	{
		tag: language.Portuguese,
		long: [12]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho",
			"julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
		short: [12]string{"jan.", "fev.", "mar.", "abr.", "mai.", "jun.",
			"jul.", "ago.", "set.", "out.", "nov.", "dez."},
		datePattern: "D de MMM de YYYY",
		am:          "AM", pm: "PM",
	},
	{
		tag: language.Dutch,
		long: [12]string{"januari", "februari", "maart", "april", "mei", "juni",
			"juli", "augustus", "september", "oktober", "november", "december"},
		short: [12]string{"jan", "feb", "mrt", "apr", "mei", "jun",
			"jul", "aug", "sep", "okt", "nov", "dec"},
		datePattern: "D MMM YYYY",
		am:          "a.m.", pm: "p.m.",
	},
	{
		tag: language.Swedish,
		long: [12]string{"januari", "februari", "mars", "april", "maj", "juni",
			"juli", "augusti", "september", "oktober", "november", "december"},
		short: [12]string{"jan.", "feb.", "mars", "apr.", "maj", "juni",
			"juli", "aug.", "sep.", "okt.", "nov.", "dec."},
		datePattern: "D MMM YYYY",
		am:          "fm", pm: "em",
	},
	{
		tag: language.Polish,
		long: [12]string{"styczeń", "luty", "marzec", "kwiecień", "maj", "czerwiec",
			"lipiec", "sierpień", "wrzesień", "październik", "listopad", "grudzień"},
		short: [12]string{"sty", "lut", "mar", "kwi", "maj", "cze",
			"lip", "sie", "wrz", "paź", "lis", "gru"},
		datePattern: "D MMM YYYY",
		am:          "AM", pm: "PM",
	},
	{
		tag: language.Japanese,
		long: [12]string{"1月", "2月", "3月", "4月", "5月", "6月",
			"7月", "8月", "9月", "10月", "11月", "12月"},
		short: [12]string{"1月", "2月", "3月", "4月", "5月", "6月",
			"7月", "8月", "9月", "10月", "11月", "12月"},
		datePattern: "YYYY年M月D日",
		am:          "午前", pm: "午後",
		periodFirst: true,
	},
}

var langMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(langTables))
	for i, t := range langTables {
		tags[i] = t.tag
	}
	return language.NewMatcher(tags)
}()

// Regions that write dates month first in the English family.
var monthFirstRegions = map[string]bool{
	"US": true, "PH": true, "FM": true, "MH": true, "PW": true,
	"AS": true, "GU": true, "MP": true, "PR": true, "UM": true, "VI": true,
}

// CanonicalLocale turns "en_us" style input into a BCP 47 tag string. An
// empty locale resolves to DefaultLocale.
func CanonicalLocale(locale string) string {
	return localeTag(locale).String()
}

func localeTag(locale string) language.Tag {
	locale = strings.TrimSpace(strings.ReplaceAll(locale, "_", "-"))
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

// MonthFirst reports whether numeric dates in locale read month/day/year.
// Only the en-US family does; every other locale reads day/month/year.
func MonthFirst(locale string) bool {
	tag := localeTag(locale)
	base, _ := tag.Base()
	if base.String() != "en" {
		return false
	}
	region, _ := tag.Region()
	return monthFirstRegions[region.String()]
}

func tableFor(locale string) *langTable {
	_, idx, conf := langMatcher.Match(localeTag(locale))
	if conf == language.No || idx < 0 || idx >= len(langTables) {
		return &langTables[0]
	}
	return &langTables[idx]
}
