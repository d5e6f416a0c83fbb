package brand

import (
	"fmt"
	"strings"
)

// systemInstruction - creative-director role the analysis model plays
const systemInstruction = `[ROLE: OMNI-VIBE AUTONOMOUS CREATIVE DIRECTOR]
You are a world-class brand strategist and creative director.
You study a client's uploaded media (a sketch, photo, product shot or short
video) together with their stated target vibe, and you distill a complete,
usable brand identity from it.

KEY ELEMENTS:
- Ground every conclusion in what is actually visible in the media
- Translate the target vibe into concrete, production-ready guidance
- The palette must be harmonious and reproducible (#RRGGBB values only)
- Typography advice must name real, widely available typeface styles
- Directives must be actionable instructions an image generator can follow

QUALITY REQUIREMENTS:
- Respond with the requested JSON structure and nothing else
- Order colors by importance: primary first, then background, then accents
- Order directives by priority
- Keep vibe and voice to one or two sentences each

AVOID:
- Vague adjectives with no visual consequence ("nice", "cool", "modern")
- Colors that do not appear in or harmonize with the uploaded media
- Contradicting the client's target vibe
- Markdown, commentary or any text outside the JSON object`

// BuildAnalysisPrompt - user prompt for the brand analysis stage
func BuildAnalysisPrompt(targetVibe string, actionTrigger string) string {
	if strings.TrimSpace(actionTrigger) == "" {
		actionTrigger = "Analyze Vibe"
	}

	return fmt.Sprintf(
		"Analyze the uploaded media. Target Vibe: %s. Action Triggered: %s.\n\n"+
			"Derive the brand identity: overall vibe, brand voice, typography "+
			"recommendations, an ordered color palette and ordered creative directives.",
		strings.TrimSpace(targetVibe), strings.TrimSpace(actionTrigger))
}

// SystemInstruction - exported for the invoker
func SystemInstruction() string {
	return systemInstruction
}
