package widget

// HeaderScrollThreshold is the scroll offset past which the sticky header
// switches to its condensed style.
const HeaderScrollThreshold = 80

// ScrollState holds every UI flag derived from the page scroll position.
// It is a pure function of the observed offsets — no ambient mutable flags.
type ScrollState struct {
	HeaderCondensed   bool // sticky header solid style
	BookingBarVisible bool // mobile booking bar slides in past the hero
	SecondaryRow      bool // call/map row reveals while scrolling up
}

// DeriveScroll computes the scroll-driven flags from the current and
// previous offsets plus the viewport height. The booking bar appears after
// half a viewport of scrolling; its secondary row only while moving up.
func DeriveScroll(offset, prev, viewportHeight int) ScrollState {
	hero := viewportHeight / 2
	return ScrollState{
		HeaderCondensed:   offset > HeaderScrollThreshold,
		BookingBarVisible: offset > hero,
		SecondaryRow:      offset < prev && offset > hero,
	}
}
