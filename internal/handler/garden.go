package handler

import (
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CozyGarden_Go/internal/domain"
	"github.com/osse101/CozyGarden_Go/internal/format"
	"github.com/osse101/CozyGarden_Go/internal/logger"
	"github.com/osse101/CozyGarden_Go/internal/progression"
)

// URLParamUpgradeID is the chi route parameter holding the upgrade id
const URLParamUpgradeID = "id"

// GardenHandlers serves the player-facing progression endpoints
type GardenHandlers struct {
	engine progression.Service
	fmt    *format.Formatter
}

// NewGardenHandlers creates the progression handlers. A nil formatter uses the default locale.
func NewGardenHandlers(engine progression.Service, f *format.Formatter) *GardenHandlers {
	if f == nil {
		f = format.New(format.DefaultLocale)
	}
	return &GardenHandlers{engine: engine, fmt: f}
}

// DisplayView holds preformatted strings for the UI
type DisplayView struct {
	Pets        string `json:"pets"`
	ClickRate   string `json:"click_rate"`
	PassiveRate string `json:"passive_rate"`
	Hearts      string `json:"hearts"`
}

// NotificationView is a notification with its rendered message
type NotificationView struct {
	domain.Notification
	Message string `json:"message"`
}

// StateView is the snapshot returned by state-reading and mutating endpoints
type StateView struct {
	State         domain.ProgressionState `json:"state"`
	Settings      domain.Settings         `json:"settings"`
	Unlocks       []domain.UnlockID       `json:"unlocks"`
	Display       DisplayView             `json:"display"`
	Notifications []NotificationView      `json:"notifications,omitempty"`
}

// PurchaseResponse reports a successful upgrade purchase
type PurchaseResponse struct {
	StateView
	UpgradeID string  `json:"upgrade_id"`
	Cost      float64 `json:"cost"`
	Level     int     `json:"level"`
}

// RebirthView is the confirmation-dialog preview
type RebirthView struct {
	progression.RebirthPreview
	Summary string `json:"summary"`
	Prompt  string `json:"prompt"`
}

// RebirthResponse reports a completed rebirth
type RebirthResponse struct {
	StateView
	Gain int `json:"gain"`
}

// RebirthRequest must carry confirm=true for the rebirth to run
type RebirthRequest struct {
	Confirm *bool `json:"confirm" validate:"required"`
}

// PixelModeRequest toggles the cosmetic pixel rendering mode
type PixelModeRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// PurchaseParams validates the purchase path parameter
type PurchaseParams struct {
	ID string `validate:"required,upgrade_id"`
}

func (h *GardenHandlers) notificationViews(notes []domain.Notification) []NotificationView {
	if len(notes) == 0 {
		return nil
	}
	views := make([]NotificationView, len(notes))
	for i, n := range notes {
		views[i] = NotificationView{Notification: n, Message: h.fmt.Notification(n)}
	}
	return views
}

func (h *GardenHandlers) view(state domain.ProgressionState, notes []domain.Notification) StateView {
	return StateView{
		State:         state,
		Settings:      h.engine.Settings(),
		Unlocks:       state.Unlocks(),
		Notifications: h.notificationViews(notes),
		Display: DisplayView{
			Pets:        h.fmt.Pets(state.Currency),
			ClickRate:   h.fmt.Pets(state.ClickRate),
			PassiveRate: h.fmt.Pets(state.PassiveRate),
			Hearts:      h.fmt.Sprintf("%d", state.PrestigeCurrency),
		},
	}
}

// HandleGetState returns the current progression snapshot
func (h *GardenHandlers) HandleGetState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, h.view(h.engine.State(), nil))
	}
}

// HandlePet applies one pet action
func (h *GardenHandlers) HandlePet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := h.engine.Pet(r.Context())
		logger.FromContext(r.Context()).Debug(LogMsgPetRequest, "currency", res.State.Currency)
		respondJSON(w, http.StatusOK, h.view(res.State, res.Notifications))
	}
}

// HandleGetUpgrades lists every upgrade with its level and next cost
func (h *GardenHandlers) HandleGetUpgrades() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, h.engine.Upgrades())
	}
}

// HandlePurchase buys one level of the upgrade named in the path
func (h *GardenHandlers) HandlePurchase() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := PurchaseParams{ID: chi.URLParam(r, URLParamUpgradeID)}
		if err := GetValidator().ValidateStruct(params); err != nil {
			respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:  ErrMsgInvalidRequestSummary,
				Fields: FormatValidationError(err),
			})
			return
		}

		res, err := h.engine.Purchase(r.Context(), params.ID)
		if err != nil {
			respondServiceError(w, r, LogMsgPurchaseFailed, err)
			return
		}

		level := res.State.Level(params.ID)
		logger.FromContext(r.Context()).Info(LogMsgPurchaseSucceeded,
			"upgrade_id", params.ID, "level", level, "cost", res.Cost)

		respondJSON(w, http.StatusOK, PurchaseResponse{
			StateView: h.view(res.State, res.Notifications),
			UpgradeID: params.ID,
			Cost:      res.Cost,
			Level:     level,
		})
	}
}

// HandleGetRebirth returns the rebirth preview shown before confirmation
func (h *GardenHandlers) HandleGetRebirth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := h.engine.Preview()

		view := RebirthView{
			RebirthPreview: p,
			Summary:        h.fmt.Sprintf(format.KeyRebirthSummary, p.Hearts, p.Rebirths, h.fmt.Pets(p.BestRun)),
		}
		if p.Gain > 0 {
			view.Prompt = h.fmt.Sprintf(format.KeyRebirthGain, p.Gain)
		} else {
			next := progression.PrestigeBaseThreshold * math.Pow10(p.Hearts+1)
			view.Prompt = h.fmt.Sprintf(format.KeyRebirthNoGain, h.fmt.Pets(next))
		}

		respondJSON(w, http.StatusOK, view)
	}
}

// HandleRebirth performs a rebirth. confirm=false is a no-op cancel.
func (h *GardenHandlers) HandleRebirth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RebirthRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Rebirth"); err != nil {
			return
		}

		log := logger.FromContext(r.Context())
		if !*req.Confirm {
			log.Info(LogMsgRebirthDeclined)
			respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRebirthDeclined})
			return
		}

		res, err := h.engine.Rebirth(r.Context())
		if err != nil {
			respondServiceError(w, r, LogMsgRebirthFailed, err)
			return
		}

		log.Info(LogMsgRebirthSucceeded, "gain", res.Gain, "hearts", res.State.PrestigeCurrency)
		respondJSON(w, http.StatusOK, RebirthResponse{
			StateView: h.view(res.State, res.Notifications),
			Gain:      res.Gain,
		})
	}
}

// HandleSetPixelMode toggles the cosmetic pixel mode
func (h *GardenHandlers) HandleSetPixelMode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PixelModeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set pixel mode"); err != nil {
			return
		}

		settings := h.engine.SetPixelMode(r.Context(), *req.Enabled)
		logger.FromContext(r.Context()).Info(LogMsgPixelModeSet, "enabled", settings.PixelMode)
		respondJSON(w, http.StatusOK, settings)
	}
}
