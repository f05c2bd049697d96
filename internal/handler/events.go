package handler

import (
	"net/http"

	"github.com/osse101/CozyGarden_Go/internal/eventlog"
	"github.com/osse101/CozyGarden_Go/internal/logger"
)

// DefaultEventsLimit caps the journal page when no limit is given
const DefaultEventsLimit = 50

// MaxEventsLimit is the largest page the journal returns
const MaxEventsLimit = 500

// HandleGetEvents returns recent journal entries, newest first.
// Query: limit (default 50, max 500), type (optional event type filter).
func HandleGetEvents(svc eventlog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetLimitParam(r, w, DefaultEventsLimit)
		if !ok {
			return
		}
		if limit > MaxEventsLimit {
			limit = MaxEventsLimit
		}
		eventType := GetOptionalQueryParam(r, QueryParamType, "")

		events, err := svc.Recent(r.Context(), eventType, limit)
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgGetEventsFailed, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGetEventsFailed)
			return
		}
		if events == nil {
			events = []eventlog.Event{}
		}

		respondJSON(w, http.StatusOK, events)
	}
}
