package format

import "github.com/osse101/CozyGarden_Go/internal/domain"

// DefaultLocale is used when the configured locale cannot be parsed
const DefaultLocale = "en"

// unitStep is the factor between adjacent suffixes
const unitStep = 1000.0

// units are the magnitude suffixes, smallest first
var units = []string{"", "K", "M", "B", "T"}

// Message keys for display strings
const (
	KeyRebirthSummary = "%d hearts · %d rebirths · best run %s"
	KeyRebirthGain    = "Rebirth for %d more hearts"
	KeyRebirthNoGain  = "Reach %s pets in one run to earn a heart"
	KeyUnlockCrossed  = "%s joined the garden!"
	KeyEndingReached  = "The garden is complete"

	KeyRebirthCompleted   = "Reborn with %d new hearts"
	KeyRebirthUnavailable = "No rebirth available yet"
)

// companionNames are the display names of the unlockable companions
var companionNames = map[domain.UnlockID]string{
	domain.UnlockZeze: "Zeze",
	domain.UnlockBMO:  "BMO",
}
