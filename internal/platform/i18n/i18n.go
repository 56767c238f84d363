// Package i18n resolves user-facing messages against the Accept-Language
// header. Spanish is the primary language of the application and the
// fallback for unsupported locales.
package i18n

import (
	"golang.org/x/text/language"
)

// Message keys for user-facing errors.
const (
	MsgGenerationFailed = "generation_failed"
	MsgFreeLimitReached = "free_limit_reached"
	MsgPremiumRequired  = "premium_required"
	MsgInvalidInput     = "invalid_input"
	MsgNothingParked    = "nothing_parked"
)

var supported = []language.Tag{
	language.Spanish, // first entry is the fallback
	language.English,
}

var matcher = language.NewMatcher(supported)

var catalog = map[language.Tag]map[string]string{
	language.Spanish: {
		MsgGenerationFailed: "Hubo un error al contactar el servicio de generación. Por favor, inténtelo de nuevo más tarde.",
		MsgFreeLimitReached: "Ha alcanzado el límite de generaciones gratuitas. Active el acceso premium para continuar.",
		MsgPremiumRequired:  "Esta función requiere acceso premium.",
		MsgInvalidInput:     "Los parámetros del curso no son válidos.",
		MsgNothingParked:    "No hay ninguna generación pendiente de reanudar.",
	},
	language.English: {
		MsgGenerationFailed: "There was an error contacting the generation service. Please try again later.",
		MsgFreeLimitReached: "You have reached the free generation limit. Activate premium access to continue.",
		MsgPremiumRequired:  "This feature requires premium access.",
		MsgInvalidInput:     "The course parameters are not valid.",
		MsgNothingParked:    "There is no pending generation to resume.",
	},
}

// Match resolves an Accept-Language header value to a supported language.
func Match(acceptLanguage string) language.Tag {
	_, index := language.MatchStrings(matcher, acceptLanguage)
	return supported[index]
}

// Message returns the message for key in the language best matching the
// Accept-Language header value. Unknown keys return the key itself so a
// missing translation never yields an empty response.
func Message(acceptLanguage, key string) string {
	tag := Match(acceptLanguage)
	if msg, ok := catalog[tag][key]; ok {
		return msg
	}
	return key
}
