package booking

import (
	"sort"
	"strings"

	"voyago/models"
)

// DefaultPageSize caps listings when the caller does not supply a limit.
const DefaultPageSize = 20

// ApplyQuery runs the booking-history list pipeline over an in-memory slice:
// case-insensitive substring filter, single-comparator sort, then offset/limit
// pagination. The page total reflects the filtered count, not the page size.
func ApplyQuery(bookings []models.Booking, query models.BookingQuery) models.BookingPage {
	filtered := filterBookings(bookings, query.Search)
	sortBookings(filtered, query.SortBy, query.Desc)

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

	return models.BookingPage{
		Items:  filtered[offset:end],
		Total:  total,
		Offset: offset,
		Limit:  limit,
	}
}

func filterBookings(bookings []models.Booking, search string) []models.Booking {
	if search == "" {
		out := make([]models.Booking, len(bookings))
		copy(out, bookings)
		return out
	}
	needle := strings.ToLower(search)
	var out []models.Booking
	for _, b := range bookings {
		haystack := strings.ToLower(b.Kind + " " + b.ProductRef + " " + b.TravelerName + " " + b.Status)
		if strings.Contains(haystack, needle) {
			out = append(out, b)
		}
	}
	return out
}

func sortBookings(bookings []models.Booking, sortBy string, desc bool) {
	var less func(i, j int) bool
	switch sortBy {
	case "date":
		less = func(i, j int) bool { return bookings[i].TravelDate < bookings[j].TravelDate }
	case "total":
		less = func(i, j int) bool { return bookings[i].Total < bookings[j].Total }
	default: // "created"
		less = func(i, j int) bool { return bookings[i].CreatedAt.Before(bookings[j].CreatedAt) }
	}
	if desc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(bookings, less)
}
