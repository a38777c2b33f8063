package catalog

import (
	"sort"
	"strings"

	"voyago/models"
)

// DefaultPageSize caps search results when no limit is supplied.
const DefaultPageSize = 20

// SearchInMemory runs the flight search pipeline over an in-memory slice:
// substring filter on origin/destination, exact date match, one comparator
// sort, then offset/limit pagination.
func SearchInMemory(flights []models.Flight, query FlightQuery) FlightPage {
	filtered := filterFlights(flights, query)
	sortFlights(filtered, query.SortBy, query.Desc)

	total := len(filtered)
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}
	limit := query.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	return FlightPage{
		Items:  filtered[offset:end],
		Total:  total,
		Offset: offset,
		Limit:  limit,
	}
}

func filterFlights(flights []models.Flight, query FlightQuery) []models.Flight {
	origin := strings.ToLower(query.Origin)
	dest := strings.ToLower(query.Destination)

	var out []models.Flight
	for _, f := range flights {
		if origin != "" && !strings.Contains(strings.ToLower(f.Origin), origin) {
			continue
		}
		if dest != "" && !strings.Contains(strings.ToLower(f.Destination), dest) {
			continue
		}
		if query.Date != "" && f.DepartureDate != query.Date {
			continue
		}
		out = append(out, f)
	}
	return out
}

func sortFlights(flights []models.Flight, sortBy string, desc bool) {
	var less func(i, j int) bool
	switch sortBy {
	case "departure":
		less = func(i, j int) bool {
			if flights[i].DepartureDate != flights[j].DepartureDate {
				return flights[i].DepartureDate < flights[j].DepartureDate
			}
			return flights[i].DepartureTime < flights[j].DepartureTime
		}
	default: // "price"
		less = func(i, j int) bool { return flights[i].Price < flights[j].Price }
	}
	if desc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(flights, less)
}
