package progression

import (
	"context"
	"errors"
	"sync"

	"github.com/osse101/CozyGarden_Go/internal/catalog"
	"github.com/osse101/CozyGarden_Go/internal/domain"
	"github.com/osse101/CozyGarden_Go/internal/event"
	"github.com/osse101/CozyGarden_Go/internal/logger"
	"github.com/osse101/CozyGarden_Go/internal/metrics"
)

// Service is the progression engine. It owns the single ProgressionState and
// runs every transaction to completion before the next one starts.
type Service interface {
	// Transactions
	Pet(ctx context.Context) Result
	Tick(ctx context.Context) Result
	Purchase(ctx context.Context, upgradeID string) (Result, error)
	Rebirth(ctx context.Context) (Result, error)
	SetPixelMode(ctx context.Context, enabled bool) domain.Settings

	// Read-only views
	State() domain.ProgressionState
	Settings() domain.Settings
	Catalog() *catalog.Catalog
	Upgrades() []UpgradeOffer
	Preview() RebirthPreview
}

// Saver persists committed snapshots. Implementations must not block the
// caller on storage and must swallow their own failures.
type Saver interface {
	Save(ctx context.Context, state domain.ProgressionState, settings domain.Settings)
}

// Result describes one committed (or rejected) transaction.
type Result struct {
	State         domain.ProgressionState
	Notifications []domain.Notification
	Changed       bool
	Cost          float64
	Gain          int
}

// UpgradeOffer is the purchase view of one catalog entry.
type UpgradeOffer struct {
	Definition catalog.UpgradeDefinition `json:"definition"`
	Level      int                       `json:"level"`
	NextCost   float64                   `json:"next_cost"`
	Affordable bool                      `json:"affordable"`
	Highlight  bool                      `json:"highlight"`
}

// Option configures the engine
type Option func(*service)

// WithUnlockRules replaces the companion unlock rules.
func WithUnlockRules(rules []UnlockRule) Option {
	return func(s *service) {
		s.rules = rules
	}
}

// WithTickFraction sets the elapsed fraction credited by each Tick.
func WithTickFraction(fraction float64) Option {
	return func(s *service) {
		if fraction > 0 {
			s.tickFraction = fraction
		}
	}
}

type service struct {
	catalog *catalog.Catalog
	bus     event.Bus
	saver   Saver

	rules        []UnlockRule
	tickFraction float64

	// mu guards state, settings and lastGain. publishMu is taken before mu is
	// released so saves and notifications leave in commit order.
	mu        sync.RWMutex
	publishMu sync.Mutex
	state     domain.ProgressionState
	settings  domain.Settings
	lastGain  int
}

// txnOutcome is what a transaction body reports back to transact.
type txnOutcome struct {
	changed bool
	cost    float64
	gain    int
	notes   []domain.Notification
	events  []event.Event
}

type nopSaver struct{}

func (nopSaver) Save(context.Context, domain.ProgressionState, domain.Settings) {}

// NewService creates the engine around a loaded state. bus and saver may be nil.
func NewService(state domain.ProgressionState, settings domain.Settings, cat *catalog.Catalog, bus event.Bus, saver Saver, opts ...Option) Service {
	if cat == nil {
		cat = catalog.Default()
	}
	if saver == nil {
		saver = nopSaver{}
	}
	s := &service{
		catalog:      cat,
		bus:          bus,
		saver:        saver,
		rules:        DefaultUnlockRules(),
		tickFraction: DefaultTickFraction,
		state:        state.Clone(),
		settings:     settings,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lastGain = AvailablePrestigeGain(s.state.PeakCurrency, s.state.PrestigeCurrency)
	metrics.ObserveState(s.state)
	return s
}

// Pet applies one pet action.
func (s *service) Pet(ctx context.Context) Result {
	res, _ := s.transact(ctx, func(st *domain.ProgressionState) (txnOutcome, error) {
		ApplyPetAction(st)
		return txnOutcome{changed: true}, nil
	})
	metrics.PetsTotal.Inc()
	logger.FromContext(ctx).Debug(LogMsgPetApplied, "currency", res.State.Currency)
	return res
}

// Tick applies one passive accrual step. With no passive income it is a no-op:
// no mutation, no save, no notification.
func (s *service) Tick(ctx context.Context) Result {
	res, _ := s.transact(ctx, func(st *domain.ProgressionState) (txnOutcome, error) {
		return txnOutcome{changed: ApplyPassiveTick(st, s.tickFraction)}, nil
	})
	if res.Changed {
		metrics.PassiveTicksTotal.WithLabelValues(metrics.OutcomeApplied).Inc()
	} else {
		metrics.PassiveTicksTotal.WithLabelValues(metrics.OutcomeIdle).Inc()
	}
	return res
}

// Purchase buys one level of upgradeID.
func (s *service) Purchase(ctx context.Context, upgradeID string) (Result, error) {
	log := logger.FromContext(ctx)

	res, err := s.transact(ctx, func(st *domain.ProgressionState) (txnOutcome, error) {
		cost, err := PurchaseUpgrade(st, s.catalog, upgradeID)
		if err != nil {
			return txnOutcome{cost: cost}, err
		}
		return txnOutcome{
			changed: true,
			cost:    cost,
			events:  []event.Event{event.NewUpgradePurchasedEvent(upgradeID, st.Level(upgradeID), cost)},
		}, nil
	})
	if err != nil {
		reason := RejectReasonInsufficientFunds
		if errors.Is(err, domain.ErrUpgradeNotFound) {
			reason = RejectReasonUnknownUpgrade
		}
		metrics.PurchasesRejectedTotal.WithLabelValues(reason).Inc()
		log.Warn(LogMsgPurchaseRejected, "upgrade", upgradeID, "reason", reason, "error", err)
		return res, err
	}

	log.Info(LogMsgUpgradePurchased,
		"upgrade", upgradeID,
		"level", res.State.Level(upgradeID),
		"cost", res.Cost,
		"clickRate", res.State.ClickRate,
		"passiveRate", res.State.PassiveRate)
	return res, nil
}

// Rebirth converts the run peak into hearts and resets the run.
func (s *service) Rebirth(ctx context.Context) (Result, error) {
	log := logger.FromContext(ctx)

	res, err := s.transact(ctx, func(st *domain.ProgressionState) (txnOutcome, error) {
		gain, err := PerformRebirth(st)
		if err != nil {
			return txnOutcome{}, err
		}
		return txnOutcome{
			changed: true,
			gain:    gain,
			notes:   []domain.Notification{domain.RebirthCompleted(gain)},
		}, nil
	})
	if err != nil {
		log.Warn(LogMsgRebirthRejected, "error", err)
		return res, err
	}

	log.Info(LogMsgRebirthCompleted,
		"gain", res.Gain,
		"hearts", res.State.PrestigeCurrency,
		"rebirths", res.State.PrestigeCount,
		"clickRate", res.State.ClickRate)
	return res, nil
}

// SetPixelMode stores the cosmetic toggle and persists it.
func (s *service) SetPixelMode(ctx context.Context, enabled bool) domain.Settings {
	s.mu.Lock()
	s.settings.PixelMode = enabled
	settings := s.settings
	state := s.state.Clone()
	s.publishMu.Lock()
	s.mu.Unlock()
	defer s.publishMu.Unlock()

	s.saver.Save(ctx, state, settings)
	logger.FromContext(ctx).Info(LogMsgPixelModeChanged, "enabled", enabled)
	return settings
}

// transact runs fn against a copy of the state. A failing or no-op body leaves
// the engine untouched. Otherwise unlocks are evaluated, the copy is committed,
// and the snapshot is handed to the saver before notifications are published.
func (s *service) transact(ctx context.Context, fn func(*domain.ProgressionState) (txnOutcome, error)) (Result, error) {
	s.mu.Lock()
	next := s.state.Clone()
	out, err := fn(&next)
	if err != nil || !out.changed {
		current := s.state.Clone()
		s.mu.Unlock()
		return Result{State: current, Cost: out.cost}, err
	}

	out.notes = append(out.notes, EvaluateUnlocks(&next, s.rules)...)
	if gain := AvailablePrestigeGain(next.PeakCurrency, next.PrestigeCurrency); gain != s.lastGain {
		s.lastGain = gain
		out.notes = append(out.notes, domain.PrestigeAvailableChanged(gain))
	}

	s.state = next
	settings := s.settings
	s.publishMu.Lock()
	s.mu.Unlock()
	defer s.publishMu.Unlock()

	s.saver.Save(ctx, next.Clone(), settings)
	metrics.ObserveState(next)
	s.publish(ctx, next, out)

	return Result{
		State:         next.Clone(),
		Notifications: out.notes,
		Changed:       true,
		Cost:          out.cost,
		Gain:          out.gain,
	}, nil
}

// publish sends the transaction's events and notifications to the bus.
// Handlers must not start engine transactions.
func (s *service) publish(ctx context.Context, committed domain.ProgressionState, out txnOutcome) {
	log := logger.FromContext(ctx)

	for _, n := range out.notes {
		switch n.Kind {
		case domain.NotificationUnlockCrossed:
			log.Info(LogMsgUnlockCrossed, "unlock", n.UnlockID, "peak", committed.PeakCurrency)
		case domain.NotificationEndingReached:
			log.Info(LogMsgEndingReached, "hearts", committed.PrestigeCurrency, "peak", committed.PeakCurrency)
		case domain.NotificationPrestigeAvailableChanged:
			log.Debug(LogMsgPrestigeGainChange, "gain", n.PrestigeGain)
		}
	}

	if s.bus == nil {
		return
	}

	events := append([]event.Event(nil), out.events...)
	for _, n := range out.notes {
		evt, err := event.FromNotification(n, committed)
		if err != nil {
			log.Error(LogMsgPublishFailed, "kind", n.Kind, "error", err)
			continue
		}
		events = append(events, evt)
	}
	for _, evt := range events {
		if err := s.bus.Publish(ctx, evt); err != nil {
			metrics.EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			log.Error(LogMsgPublishFailed, "type", evt.Type, "error", err)
		}
	}
}

// State returns a deep copy of the current state.
func (s *service) State() domain.ProgressionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Settings returns the cosmetic settings.
func (s *service) Settings() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Catalog returns the upgrade catalog the engine prices against.
func (s *service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Upgrades returns every catalog entry with its current level and next price.
// An entry is highlighted when it has never been bought and is affordable.
func (s *service) Upgrades() []UpgradeOffer {
	state := s.State()
	defs := s.catalog.All()
	offers := make([]UpgradeOffer, 0, len(defs))
	for _, def := range defs {
		level := state.Level(def.ID)
		cost, err := catalog.CostAt(def, level)
		if err != nil {
			continue
		}
		affordable := state.Currency >= cost
		offers = append(offers, UpgradeOffer{
			Definition: def,
			Level:      level,
			NextCost:   cost,
			Affordable: affordable,
			Highlight:  level == 0 && affordable,
		})
	}
	return offers
}

// Preview summarises what a rebirth would do right now.
func (s *service) Preview() RebirthPreview {
	return PreviewRebirth(s.State())
}
