package services

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"roam/internal/models/request_models"
	"roam/pkg/utils"
)

// GeneratedStop is a stop as the model returns it, before coordinates and
// identifiers are recovered from the pool.
type GeneratedStop struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// ParseCuratedStops decodes {"stops": [...]}. A missing or non-list stops
// field is malformed output.
func ParseCuratedStops(raw string) ([]GeneratedStop, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMalformedModelOutput, err)
	}

	field, ok := envelope["stops"]
	if !ok {
		return nil, fmt.Errorf("%w: missing \"stops\"", utils.ErrMalformedModelOutput)
	}

	var stops []GeneratedStop
	if err := json.Unmarshal(field, &stops); err != nil || stops == nil {
		return nil, fmt.Errorf("%w: \"stops\" is not a list", utils.ErrMalformedModelOutput)
	}
	return stops, nil
}

// ReconcileStops turns the model's choices into response stops:
//  1. locked stops the model left out are appended;
//  2. names absent from the pool are dropped;
//  3. repeated names keep their first occurrence;
//  4. the result is capped at target, never cutting a locked stop.
func ReconcileStops(generated []GeneratedStop, pool *VenuePool, locked []request_models.Stop, target int) []request_models.Stop {
	lockedNames := make(map[string]struct{}, len(locked))
	for _, s := range locked {
		lockedNames[s.Name] = struct{}{}
	}

	present := make(map[string]struct{}, len(generated))
	merged := make([]GeneratedStop, 0, len(generated)+len(locked))
	for _, g := range generated {
		present[g.Name] = struct{}{}
		merged = append(merged, g)
	}
	for _, s := range locked {
		if _, ok := present[s.Name]; !ok {
			merged = append(merged, GeneratedStop{Name: s.Name, Description: s.Description, Category: s.Category})
		}
	}

	newBudget := max(target-len(locked), 0)
	emitted := make(map[string]struct{}, len(merged))
	out := make([]request_models.Stop, 0, min(len(merged), max(target, len(locked))))

	for _, g := range merged {
		if _, dup := emitted[g.Name]; dup {
			continue
		}
		candidate, ok := pool.Lookup(g.Name)
		if !ok {
			continue
		}

		_, isLocked := lockedNames[g.Name]
		if !isLocked {
			if newBudget == 0 {
				continue
			}
			newBudget--
		}

		emitted[g.Name] = struct{}{}
		out = append(out, materializeStop(g, candidate, isLocked))
	}

	return out
}

func materializeStop(g GeneratedStop, c VenueCandidate, isLocked bool) request_models.Stop {
	if stop, ok := c.LockedStop(); ok && isLocked {
		stop.Locked = true
		return stop
	}

	lat, lng := c.Coordinate()
	category := g.Category
	if category == "" {
		category = c.Category()
	}
	return request_models.Stop{
		Name:        g.Name,
		Description: g.Description,
		Category:    category,
		Locked:      isLocked,
		Lat:         lat,
		Lng:         lng,
		PlaceID:     c.PlaceID(),
	}
}
