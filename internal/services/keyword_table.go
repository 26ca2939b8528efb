package services

import "math/rand/v2"

// archetypeKeywords maps a recipe archetype to the search phrases it may be
// queried with.
var archetypeKeywords = map[string][]string{
	"Activity":                {"fun activities"},
	"Food":                    {"restaurants"},
	"Entertainment":           {"entertainment venues"},
	"Sightseeing":             {"tourist attractions"},
	"Cafe":                    {"specialty coffee shops", "cozy cafes"},
	"Second Cafe":             {"aesthetic cafes"},
	"Bookstore":               {"independent bookstores"},
	"Cozy Restaurant":         {"cozy restaurants with warm ambiance"},
	"Quiet Bar":               {"quiet bars", "lounges"},
	"Active Fun":              {"bowling alleys", "arcades", "go-karting", "rock climbing"},
	"Casual Restaurant":       {"casual dining", "breweries", "food trucks"},
	"Park":                    {"parks with walking trails"},
	"Outdoor Activity":        {"hiking spots", "bike trails", "kayaking"},
	"Sports Bar":              {"sports bars"},
	"Art Gallery":             {"art galleries"},
	"Stylish Cafe":            {"aesthetic cafes", "instagrammable coffee shops"},
	"Museum":                  {"museums", "cultural centers"},
	"Thrift Store":            {"vintage clothing stores", "thrift shops"},
	"Live Music Venue":        {"live music venues", "local band gigs"},
	"Late-Night Bar":          {"late night bars"},
	"Hyped Food Spot":         {"hyped restaurants", "popular food spots"},
	"Street Food":             {"street food stalls"},
	"Dessert Cafe":            {"dessert cafes", "ice cream shops"},
	"Rooftop Bar":             {"rooftop bars"},
	"Fine Dining":             {"fine dining restaurants"},
	"Cocktail Lounge":         {"cocktail lounges"},
	"Gaming Lounge":           {"gaming lounges", "board game cafes"},
	"Scenic Viewpoint":        {"scenic viewpoints"},
	"Late-Night Restaurant":   {"late night restaurants", "24/7 diners", "midnight ramen"},
	"Neon Lit Walk":           {"city parks for night walk", "well-lit streets"},
	"Farmers Market":          {"farmers markets"},
	"Flower Shop":             {"flower shops"},
	"Vintage Shops":           {"vintage shops"},
	"Record Store":            {"record stores"},
	"Indie Bookstore":         {"independent bookstores"},
	"Library":                 {"public libraries"},
	"Brunch Spot":             {"brunch restaurants", "bottomless mimosas"},
	"Shopping":                {"shopping areas", "boutiques"},
	"Flea Market":             {"flea markets"},
	"Bubble Tea":              {"bubble tea shops"},
	"Arcade":                  {"arcades", "barcades"},
	"Bowling":                 {"bowling alleys"},
	"Pizza Spot":              {"pizza restaurants"},
	"Pop-up Event":            {"pop-up events", "street fairs", "night markets"},
	"Ice Cream Shop":          {"ice cream shops"},
	"Walkable Area":           {"downtown areas for walking", "scenic neighborhood"},
	"Seasonal Activity":       {"seasonal events", "pumpkin patch", "ice skating rink"},
	"Aesthetic Snack Pickup":  {"gourmet grocery", "charcuterie shop", "aesthetic bakery"},
	"Park Picnic Spot":        {"parks with scenic views", "botanical gardens"},
	"Family Park":             {"parks with playgrounds", "family-friendly parks"},
	"Family Museum":           {"science museums", "childrens museums", "interactive exhibits"},
	"Lunch Spot":              {"family restaurants", "casual lunch spots"},
	"Amusement":               {"amusement parks", "family fun centers", "arcades"},
	"Kid-Friendly Restaurant": {"restaurants with play areas", "family-friendly dining"},
	"Gourmet Store":           {"gourmet food stores", "specialty food shops"},
}

// KeywordsFor returns the phrases for an archetype, or the archetype label
// itself when the table has no entry.
func KeywordsFor(archetype string) []string {
	if kws, ok := archetypeKeywords[archetype]; ok && len(kws) > 0 {
		return kws
	}
	return []string{archetype}
}

// PickKeyword chooses one phrase uniformly at random.
func PickKeyword(rng *rand.Rand, archetype string) string {
	kws := KeywordsFor(archetype)
	return kws[rng.IntN(len(kws))]
}
