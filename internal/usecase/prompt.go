package usecase

import (
	"fmt"
	"strings"
)

// buildPrompt assembles the generation request from the two collected
// fields. Both values are embedded verbatim; the instruction asks for a
// short, low-jargon summary so the reply fits a chat message.
func buildPrompt(birthDate, birthCity string) string {
	return fmt.Sprintf(
		"Create a very short, generalized natal chart reading for a person "+
			"born on %s in the city of %s. Include general personality traits "+
			"and the main planetary influences (for example the Sun sign, the "+
			"ascendant and the Moon sign, as far as these can be inferred from "+
			"the given data). Present the information in an easy-to-read format "+
			"with minimal astrological jargon.",
		normalizePromptInput(birthDate),
		normalizePromptInput(birthCity),
	)
}

func normalizePromptInput(s string) string {
	return strings.Join(strings.Fields(strings.TrimSpace(s)), " ")
}
