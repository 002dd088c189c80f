// Package widget holds the availability form state that feeds the deep link
// builder. It mirrors the interactive booking bar: independently settable
// fields, bounded occupancy selectors, and a fire-and-forget submit.
package widget

import (
	"time"

	"casa_schuck/internal/booking"
	"casa_schuck/internal/domain"
)

const (
	MinAdults   = 1
	MaxAdults   = 4
	MinChildren = 0
	MaxChildren = 3

	DefaultAdults   = 2
	DefaultChildren = 0
)

type Widget struct {
	builder  booking.Builder
	locale   domain.Locale
	checkin  string
	checkout string
	adults   int
	children int
}

// New initializes the form with checkin=today, checkout=tomorrow and the
// default party size.
func New(b booking.Builder, loc domain.Locale, now time.Time) *Widget {
	ci, co := booking.DefaultDates(now)
	return &Widget{
		builder:  b,
		locale:   loc,
		checkin:  ci,
		checkout: co,
		adults:   DefaultAdults,
		children: DefaultChildren,
	}
}

// SetCheckin accepts any YYYY-MM-DD string. No cross-field validation:
// checkout before checkin is not prevented here, matching the form.
func (w *Widget) SetCheckin(date string) { w.checkin = date }

func (w *Widget) SetCheckout(date string) { w.checkout = date }

func (w *Widget) SetAdults(n int) { w.adults = clamp(n, MinAdults, MaxAdults) }

func (w *Widget) SetChildren(n int) { w.children = clamp(n, MinChildren, MaxChildren) }

func (w *Widget) Checkin() string  { return w.checkin }
func (w *Widget) Checkout() string { return w.checkout }
func (w *Widget) Adults() int      { return w.adults }
func (w *Widget) Children() int    { return w.children }

// Submit hands the current state to the deep link builder and returns the
// reservation URL. The widget's state is left unchanged: no reset, no
// pending indicator.
func (w *Widget) Submit() string {
	return w.builder.Build(booking.Params{
		Checkin:  w.checkin,
		Checkout: w.checkout,
		Adults:   w.adults,
		Children: w.children,
		Language: w.locale,
	})
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
