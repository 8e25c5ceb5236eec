package utils

import (
	"fmt"
	"strings"

	"github.com/shishigami87/aimroutines/internal/models"
)

// Kovaaks Steam app id used for jump-to-playlist deep links.
const kovaaksAppID = 824270

// PlayURI builds the link that launches a playlist in-game. Kovaaks share
// codes become steam:// deep links; for Aimlabs the reference already is the
// URL we want.
func PlayURI(reference string, game models.Game) string {
	if game == models.GameKovaaks {
		return fmt.Sprintf("steam://run/%d/?action=jump-to-playlist;sharecode=%s", kovaaksAppID, reference)
	}
	return reference
}

// Capitalize renders an enum value like "KOVAAKS" as "Kovaaks" for display.
func Capitalize(text string) string {
	if text == "" {
		return ""
	}
	return strings.ToUpper(text[:1]) + strings.ToLower(text[1:])
}
