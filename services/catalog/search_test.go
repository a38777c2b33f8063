package catalog

import (
	"testing"

	"voyago/models"
)

func testFlights() []models.Flight {
	return []models.Flight{
		{ID: "f1", FlightNo: "VY-101", Origin: "SGN", Destination: "HAN", DepartureDate: "2026-09-10", DepartureTime: "08:00", Price: 100},
		{ID: "f2", FlightNo: "VY-102", Origin: "SGN", Destination: "HAN", DepartureDate: "2026-09-10", DepartureTime: "06:30", Price: 85},
		{ID: "f3", FlightNo: "VY-201", Origin: "SGN", Destination: "DAD", DepartureDate: "2026-09-11", DepartureTime: "09:15", Price: 60},
		{ID: "f4", FlightNo: "VY-301", Origin: "HAN", Destination: "SGN", DepartureDate: "2026-09-10", DepartureTime: "18:45", Price: 95},
	}
}

func flightIDs(page FlightPage) []string {
	ids := make([]string, 0, len(page.Items))
	for _, f := range page.Items {
		ids = append(ids, f.ID)
	}
	return ids
}

func sameIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestSearchFilters(t *testing.T) {
	cases := []struct {
		name  string
		query FlightQuery
		want  []string
	}{
		{"origin only", FlightQuery{Origin: "sgn", SortBy: "departure"}, []string{"f2", "f1", "f3"}},
		{"origin and destination", FlightQuery{Origin: "SGN", Destination: "HAN"}, []string{"f2", "f1"}},
		{"date is an exact match", FlightQuery{Date: "2026-09-10"}, []string{"f2", "f4", "f1"}},
		{"no results", FlightQuery{Origin: "DAD", Destination: "HAN"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page := SearchInMemory(testFlights(), tc.query)
			if !sameIDs(flightIDs(page), tc.want) {
				t.Errorf("got %v, want %v", flightIDs(page), tc.want)
			}
		})
	}
}

func TestSearchSortsByPriceByDefault(t *testing.T) {
	page := SearchInMemory(testFlights(), FlightQuery{})
	want := []string{"f3", "f2", "f4", "f1"}
	if !sameIDs(flightIDs(page), want) {
		t.Fatalf("got %v, want %v", flightIDs(page), want)
	}

	page = SearchInMemory(testFlights(), FlightQuery{Desc: true})
	want = []string{"f1", "f4", "f2", "f3"}
	if !sameIDs(flightIDs(page), want) {
		t.Fatalf("desc: got %v, want %v", flightIDs(page), want)
	}
}

func TestSearchSortsByDeparture(t *testing.T) {
	// Same-day flights order by time.
	page := SearchInMemory(testFlights(), FlightQuery{SortBy: "departure"})
	want := []string{"f2", "f1", "f4", "f3"}
	if !sameIDs(flightIDs(page), want) {
		t.Fatalf("got %v, want %v", flightIDs(page), want)
	}
}

func TestSearchPaginates(t *testing.T) {
	page := SearchInMemory(testFlights(), FlightQuery{Offset: 1, Limit: 2})
	want := []string{"f2", "f4"}
	if !sameIDs(flightIDs(page), want) {
		t.Fatalf("got %v, want %v", flightIDs(page), want)
	}
	if page.Total != 4 {
		t.Fatalf("total = %d, want 4", page.Total)
	}

	page = SearchInMemory(testFlights(), FlightQuery{Offset: 99, Limit: 2})
	if len(page.Items) != 0 || page.Offset != 4 {
		t.Fatalf("expected empty clamped page, got %+v", page)
	}
}
