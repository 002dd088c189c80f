package widget_test

import (
	"strings"
	"testing"
	"time"

	"casa_schuck/internal/booking"
	"casa_schuck/internal/domain"
	"casa_schuck/internal/widget"
)

var fixedNow = time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

func newWidget() *widget.Widget {
	return widget.New(booking.NewBuilder("casa-schuck"), domain.LocaleEN, fixedNow)
}

func TestNew_Defaults(t *testing.T) {
	w := newWidget()
	if w.Checkin() != "2025-03-10" || w.Checkout() != "2025-03-11" {
		t.Fatalf("dates: %s/%s", w.Checkin(), w.Checkout())
	}
	if w.Adults() != 2 || w.Children() != 0 {
		t.Fatalf("party: %d adults, %d children", w.Adults(), w.Children())
	}
}

func TestSetters_ClampToBounds(t *testing.T) {
	w := newWidget()

	w.SetAdults(9)
	if w.Adults() != widget.MaxAdults {
		t.Fatalf("adults not clamped: %d", w.Adults())
	}
	w.SetAdults(0)
	if w.Adults() != widget.MinAdults {
		t.Fatalf("adults below minimum: %d", w.Adults())
	}
	w.SetChildren(-1)
	if w.Children() != 0 {
		t.Fatalf("children below minimum: %d", w.Children())
	}
	w.SetChildren(7)
	if w.Children() != widget.MaxChildren {
		t.Fatalf("children not clamped: %d", w.Children())
	}
}

func TestSubmit_BuildsLinkAndLeavesStateUntouched(t *testing.T) {
	w := newWidget()
	w.SetCheckin("2025-06-01")
	w.SetCheckout("2025-06-03")
	w.SetAdults(3)
	w.SetChildren(1)

	url := w.Submit()
	if !strings.Contains(url, "checkin=2025-06-01&checkout=2025-06-03&adults=3&children=1&language=en") {
		t.Fatalf("unexpected url: %q", url)
	}

	// Fire-and-forget: submitting must not reset the form.
	if w.Checkin() != "2025-06-01" || w.Adults() != 3 || w.Children() != 1 {
		t.Fatalf("state changed after submit: %s %d %d", w.Checkin(), w.Adults(), w.Children())
	}
	if again := w.Submit(); again != url {
		t.Fatalf("resubmit differs: %q vs %q", again, url)
	}
}

func TestNoCrossFieldValidation(t *testing.T) {
	w := newWidget()
	w.SetCheckin("2025-06-10")
	w.SetCheckout("2025-06-01") // before checkin, deliberately allowed
	url := w.Submit()
	if !strings.Contains(url, "checkin=2025-06-10&checkout=2025-06-01") {
		t.Fatalf("unexpected url: %q", url)
	}
}
