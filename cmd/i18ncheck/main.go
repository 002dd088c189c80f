// i18ncheck validates every locale's string bundle: unknown keys, missing
// required entries, and catalogs drifting out of lockstep with the default
// locale all fail the build before they can ship as silent content gaps.
package main

import (
	"context"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"casa_schuck/internal/adapters/observability"
	"casa_schuck/internal/domain"
	"casa_schuck/internal/i18n"
	"casa_schuck/internal/shared"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	src := i18n.NewSource()

	def, err := src.Load(ctx, domain.DefaultLocale)
	if err != nil {
		log.Fatal().Err(err).Msg("default locale bundle is broken")
	}

	sem := semaphore.NewWeighted(4)
	var wg sync.WaitGroup
	var mu sync.Mutex
	failed := false

	for _, loc := range domain.Locales() {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(loc domain.Locale) {
			defer wg.Done()
			defer sem.Release(1)

			d, err := src.Load(ctx, loc)
			if err != nil {
				log.Error().Str("locale", string(loc)).Err(err).Msg("bundle invalid")
				mu.Lock()
				failed = true
				mu.Unlock()
				return
			}

			for _, miss := range catalogDrift(def, d) {
				log.Error().Str("locale", string(loc)).Str("entry", miss).Msg("bundle out of lockstep with default locale")
				mu.Lock()
				failed = true
				mu.Unlock()
			}

			log.Info().Str("locale", string(loc)).Int("rooms", len(d.Rooms.Items)).Msg("bundle ok")
		}(loc)
	}

	wg.Wait()
	if failed {
		os.Exit(1)
	}
	log.Info().Msg("all bundles valid")
}

// catalogDrift reports structural entries that must match the default locale:
// room and package IDs, their counts, and the chatbot script length.
func catalogDrift(def, d domain.Dictionary) []string {
	var out []string
	if len(d.Rooms.Items) != len(def.Rooms.Items) {
		out = append(out, "rooms.items length")
	} else {
		for i := range def.Rooms.Items {
			if d.Rooms.Items[i].ID != def.Rooms.Items[i].ID {
				out = append(out, "rooms.items["+d.Rooms.Items[i].ID+"].id")
			}
		}
	}
	if len(d.Packages.Items) != len(def.Packages.Items) {
		out = append(out, "packages.items length")
	} else {
		for i := range def.Packages.Items {
			if d.Packages.Items[i].ID != def.Packages.Items[i].ID {
				out = append(out, "packages.items["+d.Packages.Items[i].ID+"].id")
			}
		}
	}
	if len(d.Chatbot.Responses) != len(def.Chatbot.Responses) {
		out = append(out, "chatbot.responses length")
	}
	return out
}
