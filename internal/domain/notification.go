package domain

// NotificationKind names an engine-to-presentation notification.
type NotificationKind string

const (
	NotificationUnlockCrossed            NotificationKind = "unlock_crossed"
	NotificationEndingReached            NotificationKind = "ending_reached"
	NotificationPrestigeAvailableChanged NotificationKind = "prestige_available_changed"
	NotificationRebirthCompleted         NotificationKind = "rebirth_completed"
)

// Notification is emitted by a transaction for the presentation layer to react to.
// It is never persisted.
type Notification struct {
	Kind         NotificationKind `json:"kind"`
	UnlockID     UnlockID         `json:"unlock_id,omitempty"`
	PrestigeGain int              `json:"prestige_gain"`
}

// UnlockCrossed builds the notification for a newly crossed unlock threshold.
func UnlockCrossed(id UnlockID) Notification {
	return Notification{Kind: NotificationUnlockCrossed, UnlockID: id}
}

// EndingReached builds the one-time ending notification.
func EndingReached() Notification {
	return Notification{Kind: NotificationEndingReached}
}

// PrestigeAvailableChanged builds the notification for a changed rebirth gain.
func PrestigeAvailableChanged(gain int) Notification {
	return Notification{Kind: NotificationPrestigeAvailableChanged, PrestigeGain: gain}
}

// RebirthCompleted builds the notification for a finished rebirth.
func RebirthCompleted(gain int) Notification {
	return Notification{Kind: NotificationRebirthCompleted, PrestigeGain: gain}
}
