// Command notification-receiver is a development sink for registration events
// posted by notification-api when NOTIFY_WEBHOOK_URL points at it.
package main

import (
	"encoding/json"
	"flag"
	"net/http"

	"github.com/DIMO-Network/cloudevent"
	"github.com/DIMO-Network/server-garage/pkg/logging"
	"github.com/porchman/notification-api/internal/services/notifier"
)

func main() {
	addr := flag.String("addr", ":8081", "listen address")
	flag.Parse()

	logger := logging.GetAndSetDefaultLogger("notification-receiver")

	http.HandleFunc("/webhook", func(w http.ResponseWriter, r *http.Request) {
		var event cloudevent.CloudEvent[notifier.TrackingRegistered]
		if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
			logger.Warn().Err(err).Msg("Invalid payload")
			http.Error(w, "Invalid payload", http.StatusBadRequest)
			return
		}
		logger.Info().
			Str("id", event.ID).
			Str("type", event.Type).
			Str("hash", event.Data.Hash).
			Str("number", event.Data.Number).
			Str("trackId", event.Data.TrackID).
			Msg("Registration received")
		w.WriteHeader(http.StatusOK)
	})

	logger.Info().Str("addr", *addr).Msg("Notification receiver listening")
	if err := http.ListenAndServe(*addr, nil); err != nil { //nolint:gosec
		logger.Fatal().Err(err).Msg("Receiver stopped")
	}
}
