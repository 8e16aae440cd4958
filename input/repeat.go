package input

import "time"

// Auto-repeat cadence for held keys, close to common desktop defaults.
const (
	RepeatDelay    = 500 * time.Millisecond
	RepeatInterval = 50 * time.Millisecond
)

// Repeat reports whether a key held for held produces an auto-repeat during
// the frame of length frame that ends at held. The initial press is not a
// repeat; frontends that see key-down events directly do not need this.
func Repeat(held, frame time.Duration) bool {
	if frame <= 0 || held < RepeatDelay {
		return false
	}
	return repeats(held) > repeats(held-frame)
}

func repeats(held time.Duration) int {
	if held < RepeatDelay {
		return 0
	}
	return int((held-RepeatDelay)/RepeatInterval) + 1
}
