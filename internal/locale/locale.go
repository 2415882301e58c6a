package locale

import (
	"fmt"
	"time"
)

// Language is the site-wide language selector. Only English and Hindi are
// supported; anything else falls back to English.
type Language string

const (
	LangEnglish Language = "en"
	LangHindi   Language = "hi"
)

// Normalize maps an arbitrary selector value onto a supported Language.
func Normalize(raw string) Language {
	if Language(raw) == LangHindi {
		return LangHindi
	}
	return LangEnglish
}

// NavStrings holds the navigation bar labels.
type NavStrings struct {
	Home      string `json:"home"`
	About     string `json:"about"`
	Services  string `json:"services"`
	Festivals string `json:"festivals"`
	Gallery   string `json:"gallery"`
	Donate    string `json:"donate"`
	Contact   string `json:"contact"`
}

// HeroStrings holds the landing hero copy.
type HeroStrings struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTA      string `json:"cta"`
}

// SectionStrings holds section headings used across pages.
type SectionStrings struct {
	LiveDarshan       string `json:"live_darshan"`
	UpcomingFestivals string `json:"upcoming_festivals"`
	ServicesTitle     string `json:"services_title"`
	AIPriestTitle     string `json:"ai_priest_title"`
	AIPriestDesc      string `json:"ai_priest_desc"`
}

// ActionStrings holds button labels.
type ActionStrings struct {
	BookNow     string `json:"book_now"`
	ReadMore    string `json:"read_more"`
	DonateNow   string `json:"donate_now"`
	SendMessage string `json:"send_message"`
	ChatStart   string `json:"chat_start"`
}

// Translation is the full display-string table for one language.
type Translation struct {
	Nav      NavStrings     `json:"nav"`
	Hero     HeroStrings    `json:"hero"`
	Sections SectionStrings `json:"sections"`
	Actions  ActionStrings  `json:"actions"`
}

var translations = map[Language]Translation{
	LangEnglish: {
		Nav: NavStrings{
			Home:      "Home",
			About:     "About",
			Services:  "Services",
			Festivals: "Festivals",
			Gallery:   "Gallery",
			Donate:    "Donate",
			Contact:   "Contact",
		},
		Hero: HeroStrings{
			Title:    "A Sanctuary of Bhakti, Seva, and Community",
			Subtitle: "Lakshmi Narayan Temple is a sacred space where ancient traditions and heartfelt devotion come together.",
			CTA:      "Explore Our Offerings",
		},
		Sections: SectionStrings{
			LiveDarshan:       "Live Darshan",
			UpcomingFestivals: "Upcoming Highlights",
			ServicesTitle:     "Our Spiritual Services",
			AIPriestTitle:     "Ask the Pandit (AI)",
			AIPriestDesc:      "Have questions about rituals, mythology, or spirituality? Ask our AI spiritual guide.",
		},
		Actions: ActionStrings{
			BookNow:     "Book Now",
			ReadMore:    "Read More",
			DonateNow:   "Donate Now",
			SendMessage: "Send Message",
			ChatStart:   "Chat with Pandit",
		},
	},
	LangHindi: {
		Nav: NavStrings{
			Home:      "मुख्य पृष्ठ",
			About:     "हमारे बारे में",
			Services:  "सेवाएँ",
			Festivals: "त्यौहार",
			Gallery:   "दीर्घा",
			Donate:    "दान करें",
			Contact:   "संपर्क करें",
		},
		Hero: HeroStrings{
			Title:    "भक्ति, सेवा और समुदाय का अभयारण्य",
			Subtitle: "लक्ष्मी नारायण मंदिर एक पवित्र स्थान है जहाँ प्राचीन परंपराएँ और हार्दिक भक्ति एक साथ मिलती हैं।",
			CTA:      "हमारी पेशकश देखें",
		},
		Sections: SectionStrings{
			LiveDarshan:       "लाईव दर्शन",
			UpcomingFestivals: "आगामी मुख्य अंश",
			ServicesTitle:     "हमारी आध्यात्मिक सेवाएँ",
			AIPriestTitle:     "पंडित जी से पूछें (AI)",
			AIPriestDesc:      "क्या आपके पास अनुष्ठानों, पौराणिक कथाओं या आध्यात्मिकता के बारे में प्रश्न हैं?",
		},
		Actions: ActionStrings{
			BookNow:     "बुक करें",
			ReadMore:    "और पढ़ें",
			DonateNow:   "दान करें",
			SendMessage: "संदेश भेजें",
			ChatStart:   "पंडित जी से बात करें",
		},
	},
}

// Table returns the translation table for the given language.
func Table(lang Language) Translation {
	t, ok := translations[lang]
	if !ok {
		return translations[LangEnglish]
	}
	return t
}

var weekdayNames = map[Language][7]string{
	LangEnglish: {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	LangHindi:   {"रवि", "सोम", "मंगल", "बुध", "गुरु", "शुक्र", "शनि"},
}

var monthNames = map[Language][12]string{
	LangEnglish: {
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	LangHindi: {
		"जनवरी", "फ़रवरी", "मार्च", "अप्रैल", "मई", "जून",
		"जुलाई", "अगस्त", "सितंबर", "अक्टूबर", "नवंबर", "दिसंबर",
	},
}

var monthShortNames = map[Language][12]string{
	LangEnglish: {
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	LangHindi: {
		"जन", "फ़र", "मार्च", "अप्रै", "मई", "जून",
		"जुल", "अग", "सित", "अक्टू", "नव", "दिस",
	},
}

var weekdayFullNames = map[Language][7]string{
	LangEnglish: {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	LangHindi:   {"रविवार", "सोमवार", "मंगलवार", "बुधवार", "गुरुवार", "शुक्रवार", "शनिवार"},
}

// WeekdayLabels returns the seven short weekday headers, Sunday first.
func WeekdayLabels(lang Language) [7]string {
	if l, ok := weekdayNames[lang]; ok {
		return l
	}
	return weekdayNames[LangEnglish]
}

// MonthName returns the display name for a month in the given language.
func MonthName(lang Language, m time.Month) string {
	names, ok := monthNames[lang]
	if !ok {
		names = monthNames[LangEnglish]
	}
	return names[int(m)-1]
}

// FormatMonthYear renders a calendar header like "October 2024".
func FormatMonthYear(lang Language, year int, m time.Month) string {
	return fmt.Sprintf("%s %d", MonthName(lang, m), year)
}

// FormatFullDate renders a date like "Thursday, October 3, 2024".
func FormatFullDate(lang Language, t time.Time) string {
	wd, ok := weekdayFullNames[lang]
	if !ok {
		wd = weekdayFullNames[LangEnglish]
	}
	return fmt.Sprintf("%s, %s %d, %d", wd[int(t.Weekday())], MonthName(lang, t.Month()), t.Day(), t.Year())
}

// FormatShortDate renders a date like "3 Oct 2024".
func FormatShortDate(lang Language, t time.Time) string {
	names, ok := monthShortNames[lang]
	if !ok {
		names = monthShortNames[LangEnglish]
	}
	return fmt.Sprintf("%d %s %d", t.Day(), names[int(t.Month())-1], t.Year())
}
