package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"casa_schuck/internal/adapters/observability"
	"casa_schuck/internal/app"
	"casa_schuck/internal/booking"
	"casa_schuck/internal/domain"
	"casa_schuck/internal/widget"
)

type Handlers struct {
	Dicts    *app.DictionaryService
	Links    booking.Builder
	WhatsApp string // wa.me deep link for the contact buttons
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/dictionaries/{locale}", h.getDictionary)
	s.mux.Get("/v1/booking/link", h.bookingLink)
	s.mux.Get("/{locale}", h.pageContext)
	s.mux.Get("/{locale}/*", h.pageContext)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// pageView is everything the presentation layer needs to render a localized
// page: the string bundle plus the precomputed hand-off links.
type pageView struct {
	Locale      domain.Locale     `json:"locale"`
	Path        string            `json:"path"`
	Dictionary  domain.Dictionary `json:"dictionary"`
	BookingURL  string            `json:"bookingUrl"`
	WhatsAppURL string            `json:"whatsappUrl"`
}

func (h *Handlers) pageContext(w http.ResponseWriter, r *http.Request) {
	loc, ok := domain.ParseLocale(chi.URLParam(r, "locale"))
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "unsupported locale")
		return
	}

	d, err := h.Dicts.Get(r.Context(), loc)
	if err != nil {
		log.Error().Err(err).Str("locale", string(loc)).Msg("dictionary load failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "dictionary unavailable")
		return
	}

	view := pageView{
		Locale:      loc,
		Path:        "/" + chi.URLParam(r, "*"),
		Dictionary:  d,
		BookingURL:  h.Links.Build(booking.Params{Language: loc}),
		WhatsAppURL: h.WhatsApp,
	}

	etag, body := calcETagAndBody(view)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Language", string(loc))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write pageContext body")
	}
}

func (h *Handlers) getDictionary(w http.ResponseWriter, r *http.Request) {
	loc, ok := domain.ParseLocale(chi.URLParam(r, "locale"))
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "unsupported locale")
		return
	}

	d, err := h.Dicts.Get(r.Context(), loc)
	if err != nil {
		log.Error().Err(err).Str("locale", string(loc)).Msg("dictionary load failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "dictionary unavailable")
		return
	}

	etag, body := calcETagAndBody(d)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Language", string(loc))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write getDictionary body")
	}
}

// bookingLink mirrors the two client flows that hand off to the reservation
// engine: the availability form (dates + party size, clamped the way the
// form's selectors are) and the per-room "book this room" button, which
// carries only the room type.
func (h *Handlers) bookingLink(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if rt := q.Get("room_type"); rt != "" {
		observability.ObserveDeepLink("room")
		writeLink(w, h.Links.Build(booking.Params{RoomTypeID: rt}))
		return
	}

	loc, ok := domain.ParseLocale(q.Get("language"))
	if !ok {
		loc = negotiateLocale(r.Header.Get("Accept-Language"))
	}

	wdg := widget.New(h.Links, loc, time.Now())
	if v := q.Get("checkin"); v != "" {
		wdg.SetCheckin(v)
	}
	if v := q.Get("checkout"); v != "" {
		wdg.SetCheckout(v)
	}
	if v := q.Get("adults"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid adults", "adults must be an integer")
			return
		}
		wdg.SetAdults(n)
	}
	if v := q.Get("children"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid children", "children must be an integer")
			return
		}
		wdg.SetChildren(n)
	}

	observability.ObserveDeepLink("stay")
	writeLink(w, wdg.Submit())
}

func writeLink(w http.ResponseWriter, url string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(struct {
		URL string `json:"url"`
	}{URL: url}); err != nil {
		log.Error().Err(err).Msg("failed to write booking link body")
	}
}
