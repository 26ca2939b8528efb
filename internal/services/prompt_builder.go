package services

import (
	"fmt"
	"strconv"
	"strings"
)

// ItineraryPrompt carries everything the curator prompt is rendered from.
type ItineraryPrompt struct {
	LocationName string
	GroupType    string
	Duration     string
	Theme        string
	VibeName     string
	Candidates   []VenueCandidate
	LockedNames  []string
	TargetStops  int
}

const curatorRules = `**THEMATIC COHESION:** The itinerary's flow must feel logical. Descriptions must be vibrant and explain *why* each stop fits the theme.
**CRITICAL RULES:**
1.  **PRIORITIZE PROXIMITY:** You MUST choose stops that are geographically close to each other to form a convenient and logical path. Use the provided "Coords" for each venue to make this decision. The user should not have to travel long distances between stops.
2.  **ENSURE VARIETY:** Pick a variety of venue categories that fit a logical daily path. Do NOT pick multiple venues from the same category unless the theme is specific (e.g., "Cafe Crawl").
3.  **USE EXACT VENUE NAMES:** The "name" in your JSON output MUST be an exact match from the "AVAILABLE VENUES" list.
4.  **STRICT JSON OUTPUT:** Respond with a single JSON object with one key: "stops". Each stop has "name", "description" and "category".`

// NewStopsWanted is how many stops the model must choose beyond the locked ones.
func (p ItineraryPrompt) NewStopsWanted() int {
	return max(p.TargetStops-len(p.LockedNames), 0)
}

// BuildItineraryPrompt renders the curator instructions. The output depends
// only on its input, so the same pool always yields the same bytes.
func BuildItineraryPrompt(p ItineraryPrompt) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an expert local guide for %s. Create a perfect itinerary from the pre-vetted list of venues.\n", p.LocationName)
	b.WriteString(curatorRules)
	b.WriteString("\n")

	b.WriteString("**USER PREFERENCES:**\n")
	fmt.Fprintf(&b, "- Group: %q, Duration: %q, Theme: %q, Selected Vibe: %q\n", p.GroupType, p.Duration, p.Theme, p.VibeName)

	b.WriteString("**AVAILABLE VENUES (Choose from this list):**\n")
	for _, c := range p.Candidates {
		b.WriteString(formatCandidate(c))
		b.WriteString("\n")
	}

	if len(p.LockedNames) > 0 {
		b.WriteString("The user has LOCKED these stops:\n")
		for _, name := range p.LockedNames {
			fmt.Fprintf(&b, "- %s\n", name)
		}
		fmt.Fprintf(&b, "You MUST include them. Build the rest of the path around them by choosing %d new stops.", p.NewStopsWanted())
	} else {
		fmt.Fprintf(&b, "Create a brand new path of %d stops from scratch.", p.TargetStops)
	}

	return b.String()
}

func formatCandidate(c VenueCandidate) string {
	rating := "N/A"
	if r, ok := c.Rating(); ok && r > 0 {
		rating = formatNumber(r)
	}
	lat, lng := c.Coordinate()
	return fmt.Sprintf("- Name: %q, Category: %q, Rating: %s, Coords: (%s, %s)",
		c.Name(), c.Category(), rating, formatNumber(lat), formatNumber(lng))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
