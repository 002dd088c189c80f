// Package booking builds hand-off URLs for the external Cloudbeds
// reservation engine. This service has no visibility into real availability
// or pricing; the deep link is the entire integration surface.
package booking

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"casa_schuck/internal/domain"
)

const baseURL = "https://hotels.cloudbeds.com/reservation"

// PlaceholderPropertyID is substituted when no property ID is configured.
// The page still renders; the link is visibly non-functional instead of the
// whole site failing closed.
const PlaceholderPropertyID = "PROPERTY_ID_PLACEHOLDER"

// Params are the user-selected stay parameters. All fields are optional;
// absent fields are omitted from the resulting URL. The builder does not
// validate checkin < checkout — that is the caller's responsibility.
type Params struct {
	Checkin    string // YYYY-MM-DD
	Checkout   string // YYYY-MM-DD
	Adults     int
	Children   int
	RoomTypeID string
	Currency   string
	Language   domain.Locale
}

type Builder struct {
	propertyID string
}

func NewBuilder(propertyID string) Builder {
	if propertyID == "" {
		propertyID = PlaceholderPropertyID
	}
	return Builder{propertyID: propertyID}
}

// Build returns the reservation URL for p. Query parameters are appended in
// the fixed order checkin, checkout, adults, children, currency, language so
// identical input yields byte-identical output. Zero-valued occupancy counts
// are omitted: the engine treats an absent count as zero, and this has been
// the shipped contract from day one. RoomTypeID travels in the fragment
// (#room_type=<id>), never in the query, per the engine's URL contract.
func (b Builder) Build(p Params) string {
	var sb strings.Builder
	sb.WriteString(baseURL)
	sb.WriteByte('/')
	sb.WriteString(url.PathEscape(b.propertyID))

	sep := byte('?')
	add := func(k, v string) {
		sb.WriteByte(sep)
		sep = '&'
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(v))
	}

	if p.Checkin != "" {
		add("checkin", p.Checkin)
	}
	if p.Checkout != "" {
		add("checkout", p.Checkout)
	}
	if p.Adults > 0 {
		add("adults", strconv.Itoa(p.Adults))
	}
	if p.Children > 0 {
		add("children", strconv.Itoa(p.Children))
	}
	if p.Currency != "" {
		add("currency", p.Currency)
	}
	if p.Language != "" {
		add("language", string(p.Language))
	}
	if p.RoomTypeID != "" {
		sb.WriteString("#room_type=")
		sb.WriteString(p.RoomTypeID)
	}
	return sb.String()
}

const dateLayout = "2006-01-02"

// DefaultDates returns checkin=today, checkout=tomorrow on the local
// calendar of now's location. The date is taken as the wall-clock date, not
// UTC-shifted, so a guest browsing at 23:30 still gets today's date.
func DefaultDates(now time.Time) (checkin, checkout string) {
	return now.Format(dateLayout), now.AddDate(0, 0, 1).Format(dateLayout)
}
