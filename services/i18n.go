package services

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Language is the persisted UI language setting.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageBangla  Language = "bn"
)

var (
	supportedLanguages = []Language{LanguageEnglish, LanguageBangla}
	languageMatcher    = language.NewMatcher([]language.Tag{language.English, language.Bengali})
)

// ParseLanguage maps any BCP 47 tag onto a supported language. Unknown
// or malformed input falls back to English.
func ParseLanguage(s string) Language {
	tag, err := language.Parse(s)
	if err != nil {
		return LanguageEnglish
	}
	_, index, confidence := languageMatcher.Match(tag)
	if confidence == language.No {
		return LanguageEnglish
	}
	return supportedLanguages[index]
}

func (l Language) tag() language.Tag {
	if l == LanguageBangla {
		return language.Bengali
	}
	return language.English
}

const (
	msgBookingConfirmed = "booking_confirmed"
	msgBookingSuccess   = "booking_success"
	msgJustNow          = "just_now"
)

// Localizer renders the few strings the core itself produces; the rest
// of the UI copy belongs to the presentation layer.
type Localizer struct {
	catalog catalog.Catalog
}

func NewLocalizer() *Localizer {
	b := catalog.NewBuilder(catalog.Fallback(language.English))

	entries := []struct {
		tag  language.Tag
		key  string
		text string
	}{
		{language.English, msgBookingConfirmed, "Booking Confirmed"},
		{language.English, msgBookingSuccess, "Your ticket has been booked successfully for %s."},
		{language.English, msgJustNow, "Just now"},
		{language.Bengali, msgBookingConfirmed, "বুকিং নিশ্চিত হয়েছে"},
		{language.Bengali, msgBookingSuccess, "%s ট্রেনে আপনার টিকিট সফলভাবে বুক হয়েছে।"},
		{language.Bengali, msgJustNow, "এখনই"},
	}
	for _, e := range entries {
		// SetString only fails on malformed tags
		_ = b.SetString(e.tag, e.key, e.text)
	}

	return &Localizer{catalog: b}
}

func (l *Localizer) printer(lang Language) *message.Printer {
	return message.NewPrinter(lang.tag(), message.Catalog(l.catalog))
}

// BookingConfirmed returns the title and message of the notification
// raised when a ticket is issued on trainName.
func (l *Localizer) BookingConfirmed(lang Language, trainName string) (string, string) {
	p := l.printer(lang)
	return p.Sprintf(msgBookingConfirmed), p.Sprintf(msgBookingSuccess, trainName)
}

// JustNow is the relative time label of a fresh notification.
func (l *Localizer) JustNow(lang Language) string {
	return l.printer(lang).Sprintf(msgJustNow)
}
