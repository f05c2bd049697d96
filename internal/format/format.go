// Package format renders numbers and short display strings for the garden
// views in the configured locale.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/CozyGarden_Go/internal/domain"
)

func init() {
	for _, e := range []struct {
		tag        language.Tag
		key, value string
	}{
		{language.English, KeyRebirthSummary, "%d hearts · %d rebirths · best run %s"},
		{language.English, KeyRebirthGain, "Rebirth for %d more hearts"},
		{language.English, KeyRebirthNoGain, "Reach %s pets in one run to earn a heart"},
		{language.English, KeyUnlockCrossed, "%s joined the garden!"},
		{language.English, KeyEndingReached, "The garden is complete"},
		{language.English, KeyRebirthCompleted, "Reborn with %d new hearts"},
		{language.English, KeyRebirthUnavailable, "No rebirth available yet"},
		{language.Spanish, KeyRebirthSummary, "%d corazones · %d renacimientos · mejor partida %s"},
		{language.Spanish, KeyRebirthGain, "Renace por %d corazones más"},
		{language.Spanish, KeyRebirthNoGain, "Consigue %s caricias en una partida para ganar un corazón"},
		{language.Spanish, KeyUnlockCrossed, "¡%s se unió al jardín!"},
		{language.Spanish, KeyEndingReached, "El jardín está completo"},
		{language.Spanish, KeyRebirthCompleted, "Renaciste con %d corazones nuevos"},
		{language.Spanish, KeyRebirthUnavailable, "Aún no puedes renacer"},
	} {
		_ = message.SetString(e.tag, e.key, e.value)
	}
}

// Formatter renders values for one locale
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Formatter for locale, falling back to English when the tag
// cannot be parsed.
func New(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	return &Formatter{tag: tag, printer: message.NewPrinter(tag)}
}

// Locale returns the resolved language tag
func (f *Formatter) Locale() string {
	return f.tag.String()
}

// Pets renders a pet count: one decimal below a thousand, otherwise two
// decimals with a K, M, B or T suffix.
func (f *Formatter) Pets(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return f.printer.Sprint(x)
	}
	if x < unitStep {
		return f.printer.Sprintf("%.1f", x)
	}

	u := 0
	v := x
	for v >= unitStep && u < len(units)-1 {
		v /= unitStep
		u++
	}
	return f.printer.Sprintf("%.2f", v) + units[u]
}

// Sprintf renders a catalog message
func (f *Formatter) Sprintf(key message.Reference, args ...interface{}) string {
	return f.printer.Sprintf(key, args...)
}

// Notification renders the player-facing line for an engine notification.
// Unknown kinds render as an empty string.
func (f *Formatter) Notification(n domain.Notification) string {
	switch n.Kind {
	case domain.NotificationUnlockCrossed:
		name, ok := companionNames[n.UnlockID]
		if !ok {
			name = string(n.UnlockID)
		}
		return f.Sprintf(KeyUnlockCrossed, name)
	case domain.NotificationEndingReached:
		return f.Sprintf(KeyEndingReached)
	case domain.NotificationRebirthCompleted:
		return f.Sprintf(KeyRebirthCompleted, n.PrestigeGain)
	case domain.NotificationPrestigeAvailableChanged:
		if n.PrestigeGain > 0 {
			return f.Sprintf(KeyRebirthGain, n.PrestigeGain)
		}
		return f.Sprintf(KeyRebirthUnavailable)
	}
	return ""
}
