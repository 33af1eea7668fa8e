package haptic

// Canned feedback patterns matching the impact/notification styles exposed by
// mobile feedback-generator APIs. Each returns a fresh event slice, so callers
// may mutate the result freely.

// ImpactStyle selects the weight of an impact tap.
type ImpactStyle string

const (
	ImpactLight  ImpactStyle = "light"
	ImpactMedium ImpactStyle = "medium"
	ImpactHeavy  ImpactStyle = "heavy"
)

// NotificationStyle selects a notification feedback pattern.
type NotificationStyle string

const (
	NotificationSuccess NotificationStyle = "success"
	NotificationWarning NotificationStyle = "warning"
	NotificationError   NotificationStyle = "error"
)

// Impact returns the single-tap pattern for the given style.
// Unknown styles fall back to medium.
func Impact(style ImpactStyle) []Event {
	var intensity, sharpness float64
	switch style {
	case ImpactLight:
		intensity, sharpness = 0.4, 0.4
	case ImpactHeavy:
		intensity, sharpness = 1.0, 0.6
	default:
		intensity, sharpness = 0.7, 0.5
	}
	return []Event{
		Transient(0, WithIntensity(intensity), WithSharpness(sharpness)),
	}
}

// Notification returns the multi-tap pattern for the given style.
// Unknown styles fall back to success.
func Notification(style NotificationStyle) []Event {
	switch style {
	case NotificationWarning:
		return []Event{
			Transient(0, WithIntensity(0.8), WithSharpness(0.6)),
			Transient(0.15, WithIntensity(0.5), WithSharpness(0.4)),
		}
	case NotificationError:
		return []Event{
			Transient(0, WithIntensity(0.9), WithSharpness(0.7)),
			Transient(0.12, WithIntensity(0.7), WithSharpness(0.6)),
			Transient(0.24, WithIntensity(1.0), WithSharpness(0.8)),
		}
	default:
		return []Event{
			Transient(0, WithIntensity(0.6), WithSharpness(0.5)),
			Transient(0.12, WithIntensity(1.0), WithSharpness(0.7)),
		}
	}
}

// Selection returns the light tick used for picker/selection changes.
func Selection() []Event {
	return []Event{
		Transient(0, WithIntensity(0.3), WithSharpness(0.3)),
	}
}
