package progression

// Prestige tuning
const (
	// PrestigeBaseThreshold is the peak needed before the first heart can be earned
	PrestigeBaseThreshold = 1000.0

	// PrestigeBoostPerHeart is the permanent bonus each heart adds to both base rates (+5%)
	PrestigeBoostPerHeart = 0.05
)

// Unlock and ending thresholds
const (
	ZezeUnlockThreshold = 2000.0
	BMOUnlockThreshold  = 15000.0

	// CompanionRateMultiplier is applied once when a companion is unlocked (+10%)
	CompanionRateMultiplier = 1.1

	EndingPrestigeThreshold = 5
	EndingPeakThreshold     = 200000.0
)

// DefaultTickFraction is the share of one nominal time unit covered by one accrual tick.
const DefaultTickFraction = 0.1

// Purchase rejection reasons used as metric labels
const (
	RejectReasonInsufficientFunds = "insufficient_funds"
	RejectReasonUnknownUpgrade    = "unknown_upgrade"
)

// Error message format strings
const (
	ErrMsgUnknownUpgradeFmt    = "%w: %s"
	ErrMsgCannotAffordFmt      = "%w: %s costs %.0f, balance %.2f"
	ErrMsgNoGainFmt            = "%w: best run %.2f earns %d hearts, already have %d"
	ErrMsgUpgradeCostFailedFmt = "failed to price upgrade %s: %w"
)

// Log messages
const (
	LogMsgPetApplied         = "Pet action applied"
	LogMsgUpgradePurchased   = "Upgrade purchased"
	LogMsgPurchaseRejected   = "Upgrade purchase rejected"
	LogMsgRebirthCompleted   = "Rebirth completed"
	LogMsgRebirthRejected    = "Rebirth rejected"
	LogMsgUnlockCrossed      = "Companion unlocked"
	LogMsgEndingReached      = "Ending reached"
	LogMsgPublishFailed      = "Failed to publish notification"
	LogMsgPixelModeChanged   = "Pixel mode changed"
	LogMsgPrestigeGainChange = "Available prestige gain changed"
)
