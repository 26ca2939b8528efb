package services

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"roam/pkg/utils"
)

type VibeTags struct {
	Group string
	Theme string
}

// Vibe is a named recipe: an ordered list of venue archetypes.
type Vibe struct {
	Name   string
	Tags   VibeTags
	Recipe []string
}

const (
	GroupDate    = "Date"
	GroupFriends = "Friends"
	GroupSolo    = "Solo"
	GroupFamily  = "Family"
)

var vibeCatalog = []Vibe{
	{Name: "Sporty Fit", Tags: VibeTags{GroupDate, "Active"}, Recipe: []string{"Active Fun", "Casual Restaurant"}},
	{Name: "Picnic Core", Tags: VibeTags{GroupDate, "Relaxing"}, Recipe: []string{"Aesthetic Snack Pickup", "Park Picnic Spot", "Dessert Cafe"}},
	{Name: "Cafe Crawl", Tags: VibeTags{GroupDate, "Relaxing"}, Recipe: []string{"Cafe", "Second Cafe", "Dessert Cafe"}},
	{Name: "Arts & Indie", Tags: VibeTags{GroupDate, "Creative"}, Recipe: []string{"Museum", "Thrift Store", "Stylish Cafe"}},
	{Name: "Concert/Live Gig", Tags: VibeTags{GroupDate, "Entertainment"}, Recipe: []string{"Casual Restaurant", "Live Music Venue", "Late-Night Bar"}},
	{Name: "Foodie Quest", Tags: VibeTags{GroupDate, "Foodie"}, Recipe: []string{"Hyped Food Spot", "Street Food", "Dessert Cafe"}},
	{Name: "Boujee Night Out", Tags: VibeTags{GroupDate, "Romantic"}, Recipe: []string{"Rooftop Bar", "Fine Dining", "Cocktail Lounge"}},
	{Name: "Chill & Cozy", Tags: VibeTags{GroupDate, "Relaxing"}, Recipe: []string{"Bookstore", "Dessert Cafe", "Gaming Lounge"}},
	{Name: "Adventure Date", Tags: VibeTags{GroupDate, "Active"}, Recipe: []string{"Outdoor Activity", "Scenic Viewpoint", "Casual Restaurant"}},
	{Name: "Seasonal Aesthetic", Tags: VibeTags{GroupDate, "Romantic"}, Recipe: []string{"Seasonal Activity", "Cafe", "Walkable Area"}},
	{Name: "Rom-Com Energy", Tags: VibeTags{GroupDate, "Romantic"}, Recipe: []string{"Flower Shop", "Walkable Area", "Ice Cream Shop"}},
	{Name: "Late-Night Vibes", Tags: VibeTags{GroupDate, "Entertainment"}, Recipe: []string{"Late-Night Restaurant", "Neon Lit Walk", "Dessert Cafe"}},
	{Name: "Tote Run", Tags: VibeTags{GroupSolo, "Relaxing"}, Recipe: []string{"Farmers Market", "Flower Shop", "Cafe"}},
	{Name: "Thrift Flip", Tags: VibeTags{GroupSolo, "Creative"}, Recipe: []string{"Vintage Shops", "Record Store", "Cafe"}},
	{Name: "Art Stroll", Tags: VibeTags{GroupSolo, "Creative"}, Recipe: []string{"Art Gallery", "Street Art", "Stylish Cafe"}},
	{Name: "Food Crawl", Tags: VibeTags{GroupSolo, "Foodie"}, Recipe: []string{"Street Food", "Dessert Cafe", "Bubble Tea"}},
	{Name: "Book Nook", Tags: VibeTags{GroupSolo, "Relaxing"}, Recipe: []string{"Indie Bookstore", "Library", "Cafe"}},
	{Name: "Park Day", Tags: VibeTags{GroupSolo, "Relaxing"}, Recipe: []string{"Park Picnic Spot", "Outdoor Activity", "Ice Cream Shop"}},
	{Name: "Moon Walk", Tags: VibeTags{GroupSolo, "Entertainment"}, Recipe: []string{"Neon Lit Walk", "Ice Cream Shop", "Late-Night Restaurant"}},
	{Name: "Solo Screen", Tags: VibeTags{GroupSolo, "Entertainment"}, Recipe: []string{"Indie Cinema", "Casual Restaurant", "Quiet Bar"}},
	{Name: "Brunch Babes", Tags: VibeTags{GroupFriends, "Foodie"}, Recipe: []string{"Brunch Spot", "Shopping", "Cafe"}},
	{Name: "Thrift Squad", Tags: VibeTags{GroupFriends, "Creative"}, Recipe: []string{"Thrift Store", "Flea Market", "Bubble Tea"}},
	{Name: "Foodie Quest (Friends)", Tags: VibeTags{GroupFriends, "Foodie"}, Recipe: []string{"Hyped Food Spot", "Street Food", "Dessert Cafe"}},
	{Name: "Arcade Mode", Tags: VibeTags{GroupFriends, "Entertainment"}, Recipe: []string{"Arcade", "Bowling", "Pizza Spot"}},
	{Name: "Culture Squad", Tags: VibeTags{GroupFriends, "Creative"}, Recipe: []string{"Museum", "Pop-up Event", "Casual Restaurant"}},
	{Name: "Rooftop Squad", Tags: VibeTags{GroupFriends, "Entertainment"}, Recipe: []string{"Rooftop Bar", "Casual Restaurant", "Late-Night Bar"}},
	{Name: "Concert Mode", Tags: VibeTags{GroupFriends, "Entertainment"}, Recipe: []string{"Casual Restaurant", "Live Music Venue", "Late-Night Bar"}},
	{Name: "Park Day (Family)", Tags: VibeTags{GroupFamily, "Active"}, Recipe: []string{"Family Park", "Ice Cream Shop", "Casual Restaurant"}},
	{Name: "Museum Trip", Tags: VibeTags{GroupFamily, "Creative"}, Recipe: []string{"Family Museum", "Lunch Spot", "Bookstore"}},
	{Name: "Fun Zone", Tags: VibeTags{GroupFamily, "Entertainment"}, Recipe: []string{"Amusement", "Pizza Spot", "Dessert Cafe"}},
	{Name: "Family Foodie Quest", Tags: VibeTags{GroupFamily, "Foodie"}, Recipe: []string{"Kid-Friendly Restaurant", "Dessert Cafe", "Gourmet Store"}},
}

// Vibes returns a copy of the catalog.
func Vibes() []Vibe {
	out := make([]Vibe, len(vibeCatalog))
	copy(out, vibeCatalog)
	return out
}

// StopsForDuration maps the free-text duration label to a stop count.
func StopsForDuration(duration string) int {
	switch {
	case strings.Contains(duration, "Quick"):
		return 2
	case strings.Contains(duration, "All day"):
		return 4
	default:
		return 3
	}
}

// MatchVibes filters on group and theme, relaxing to group only when no
// vibe carries both tags.
func MatchVibes(groupType, theme string) []Vibe {
	var exact, byGroup []Vibe
	for _, v := range vibeCatalog {
		if v.Tags.Group != groupType {
			continue
		}
		byGroup = append(byGroup, v)
		if v.Tags.Theme == theme {
			exact = append(exact, v)
		}
	}
	if len(exact) > 0 {
		return exact
	}
	return byGroup
}

// SelectVibe picks a matching vibe uniformly at random and returns it with its
// recipe truncated to stops archetypes.
func SelectVibe(rng *rand.Rand, groupType, theme string, stops int) (Vibe, []string, error) {
	matches := MatchVibes(groupType, theme)
	if len(matches) == 0 {
		return Vibe{}, nil, fmt.Errorf("couldn't find any vibes for '%s': %w", groupType, utils.ErrNoMatchingVibe)
	}

	selected := matches[rng.IntN(len(matches))]
	n := min(stops, len(selected.Recipe))
	structure := make([]string, n)
	copy(structure, selected.Recipe[:n])

	return selected, structure, nil
}
