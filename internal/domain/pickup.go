package domain

// PickupWindow is a named slot during which an order will be ready.
type PickupWindow struct {
	Code      string `json:"code"`
	Label     string `json:"label"`
	TimeRange string `json:"timeRange"`
	OrderBy   string `json:"orderBy"`
}

const (
	PickupAfternoon = "afternoon"
	PickupEvening   = "evening"
	PickupNight     = "night"
	PickupMidnight  = "midnight"
)

var pickupWindows = []PickupWindow{
	{Code: PickupAfternoon, Label: "Afternoon Batch", TimeRange: "3 PM – 4 PM", OrderBy: "orders in before 12 PM"},
	{Code: PickupEvening, Label: "Evening Batch", TimeRange: "6 PM – 7 PM", OrderBy: "orders in before 3 PM"},
	{Code: PickupNight, Label: "Night Batch", TimeRange: "9 PM – 10 PM", OrderBy: "orders in before 6 PM"},
	{Code: PickupMidnight, Label: "Midnight Batch", TimeRange: "12 AM – 1 AM", OrderBy: "pickup ok"},
}

// PickupWindows returns the fixed slot catalog in display order.
func PickupWindows() []PickupWindow {
	out := make([]PickupWindow, len(pickupWindows))
	copy(out, pickupWindows)
	return out
}

func LookupPickupWindow(code string) (PickupWindow, bool) {
	for _, w := range pickupWindows {
		if w.Code == code {
			return w, true
		}
	}
	return PickupWindow{}, false
}

// Summary renders the window the way it travels in a checkout payload.
func (w PickupWindow) Summary() string {
	return w.Label + " | " + w.TimeRange
}

// PickupSelector holds the active window for one storefront view. The
// selection is transient; it is never persisted.
type PickupSelector struct {
	current PickupWindow
}

func NewPickupSelector() *PickupSelector {
	afternoon, _ := LookupPickupWindow(PickupAfternoon)
	return &PickupSelector{current: afternoon}
}

// Select switches the active window. Unknown codes leave the previous
// selection in place.
func (s *PickupSelector) Select(code string) {
	if w, ok := LookupPickupWindow(code); ok {
		s.current = w
	}
}

func (s *PickupSelector) Current() PickupWindow {
	return s.current
}
