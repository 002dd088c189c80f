package domain

import (
	"fmt"
	"strings"
)

// Dictionary is the complete localized string bundle for one locale. Every
// namespace is enumerated as a struct so that a missing translation is a
// load-time error, not a silent content gap at render time.
type Dictionary struct {
	Locale       Locale              `json:"-"`
	Meta         MetaStrings         `json:"meta"`
	Nav          NavStrings          `json:"nav"`
	Common       CommonStrings       `json:"common"`
	Hero         HeroStrings         `json:"hero"`
	Availability AvailabilityStrings `json:"availability"`
	Rooms        RoomsSection        `json:"rooms"`
	Packages     PackagesSection     `json:"packages"`
	Chatbot      ChatbotStrings      `json:"chatbot"`
	Footer       FooterStrings       `json:"footer"`
	Contact      ContactStrings      `json:"contact"`
}

type MetaStrings struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type NavStrings struct {
	Rooms       string `json:"rooms"`
	Weddings    string `json:"weddings"`
	Retreats    string `json:"retreats"`
	Groups      string `json:"groups"`
	Story       string `json:"story"`
	Experiences string `json:"experiences"`
	BookNow     string `json:"bookNow"`
	Language    string `json:"language"`
}

type CommonStrings struct {
	BookNow    string `json:"bookNow"`
	BookRoom   string `json:"bookRoom"`
	FromLabel  string `json:"fromLabel"`
	PerNight   string `json:"perNight"`
	MaxGuests  string `json:"maxGuests"`
	BedType    string `json:"bedType"`
	Floor      string `json:"floor"`
	Amenities  string `json:"amenities"`
	Accessible string `json:"accessible"`
}

type HeroStrings struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTA      string `json:"cta"`
}

type AvailabilityStrings struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Adult    string `json:"adult"`
	Adults   string `json:"adults"`
	Child    string `json:"child"`
	Children string `json:"children"`
	Search   string `json:"search"`
}

type RoomsSection struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Items    []Room `json:"items"`
}

// Room is static display data; real availability and pricing live in the
// external booking engine.
type Room struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	BedType     string   `json:"bedType"`
	Floor       string   `json:"floor"`
	MaxGuests   int      `json:"maxGuests"`
	PriceFrom   int      `json:"priceFrom"`
	Accessible  bool     `json:"accessible"`
	Amenities   []string `json:"amenities"`
}

type PackagesSection struct {
	Title string    `json:"title"`
	Items []Package `json:"items"`
}

type Package struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	RoomTypeID  string `json:"roomTypeId"`
}

type ChatbotStrings struct {
	Title            string   `json:"title"`
	Greeting         string   `json:"greeting"`
	Placeholder      string   `json:"placeholder"`
	PoweredBy        string   `json:"poweredBy"`
	WhatsappFallback string   `json:"whatsappFallback"`
	Responses        []string `json:"responses"`
}

type FooterStrings struct {
	Tagline string `json:"tagline"`
	Rights  string `json:"rights"`
}

type ContactStrings struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Validate checks that every required entry is present and non-empty.
// Bundles failing validation are rejected at load time.
func (d Dictionary) Validate() error {
	var missing []string
	req := func(key, val string) {
		if strings.TrimSpace(val) == "" {
			missing = append(missing, key)
		}
	}

	req("meta.title", d.Meta.Title)
	req("meta.description", d.Meta.Description)
	req("nav.rooms", d.Nav.Rooms)
	req("nav.weddings", d.Nav.Weddings)
	req("nav.retreats", d.Nav.Retreats)
	req("nav.groups", d.Nav.Groups)
	req("nav.story", d.Nav.Story)
	req("nav.bookNow", d.Nav.BookNow)
	req("nav.language", d.Nav.Language)
	req("common.bookNow", d.Common.BookNow)
	req("common.bookRoom", d.Common.BookRoom)
	req("common.perNight", d.Common.PerNight)
	req("hero.title", d.Hero.Title)
	req("hero.subtitle", d.Hero.Subtitle)
	req("hero.cta", d.Hero.CTA)
	req("availability.checkIn", d.Availability.CheckIn)
	req("availability.checkOut", d.Availability.CheckOut)
	req("availability.adults", d.Availability.Adults)
	req("availability.children", d.Availability.Children)
	req("availability.search", d.Availability.Search)
	req("rooms.title", d.Rooms.Title)
	req("chatbot.title", d.Chatbot.Title)
	req("chatbot.greeting", d.Chatbot.Greeting)
	req("chatbot.whatsappFallback", d.Chatbot.WhatsappFallback)
	req("footer.tagline", d.Footer.Tagline)
	req("contact.phone", d.Contact.Phone)
	req("contact.email", d.Contact.Email)

	if len(d.Rooms.Items) == 0 {
		missing = append(missing, "rooms.items")
	}
	for i, rm := range d.Rooms.Items {
		req(fmt.Sprintf("rooms.items[%d].id", i), rm.ID)
		req(fmt.Sprintf("rooms.items[%d].name", i), rm.Name)
	}
	for i, pk := range d.Packages.Items {
		req(fmt.Sprintf("packages.items[%d].id", i), pk.ID)
		req(fmt.Sprintf("packages.items[%d].name", i), pk.Name)
	}
	if len(d.Chatbot.Responses) == 0 {
		missing = append(missing, "chatbot.responses")
	}

	if len(missing) > 0 {
		return fmt.Errorf("dictionary %q: missing required entries: %s", d.Locale, strings.Join(missing, ", "))
	}
	return nil
}
