package model

// ImportOrderStatus is the lifecycle stage of an import order
type ImportOrderStatus string

const (
	StatusDraft     ImportOrderStatus = "draft"
	StatusPending   ImportOrderStatus = "pending"
	StatusPartial   ImportOrderStatus = "partial"
	StatusReceived  ImportOrderStatus = "received"
	StatusCancelled ImportOrderStatus = "cancelled"
)

// statusTransitions lists every legal move; received and cancelled are terminal
var statusTransitions = map[ImportOrderStatus][]ImportOrderStatus{
	StatusDraft:     {StatusPending, StatusCancelled},
	StatusPending:   {StatusPartial, StatusReceived, StatusCancelled},
	StatusPartial:   {StatusReceived, StatusCancelled},
	StatusReceived:  {},
	StatusCancelled: {},
}

var statusDisplayNames = map[ImportOrderStatus]string{
	StatusDraft:     "Nháp",
	StatusPending:   "Chờ xử lý",
	StatusPartial:   "Nhận một phần",
	StatusReceived:  "Đã nhận",
	StatusCancelled: "Đã hủy",
}

// AllStatuses returns the statuses in lifecycle order
func AllStatuses() []ImportOrderStatus {
	return []ImportOrderStatus{StatusDraft, StatusPending, StatusPartial, StatusReceived, StatusCancelled}
}

func (s ImportOrderStatus) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// IsValidTransition reports whether current may move to target
func IsValidTransition(current, target ImportOrderStatus) bool {
	for _, allowed := range statusTransitions[current] {
		if allowed == target {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the statuses reachable from s in one step
func (s ImportOrderStatus) AllowedTransitions() []ImportOrderStatus {
	allowed := statusTransitions[s]
	out := make([]ImportOrderStatus, len(allowed))
	copy(out, allowed)
	return out
}

// IsEditable reports whether header and items may still change
func (s ImportOrderStatus) IsEditable() bool {
	return s == StatusDraft || s == StatusPending
}

func (s ImportOrderStatus) IsDeletable() bool {
	return s == StatusDraft
}

func (s ImportOrderStatus) IsTerminal() bool {
	return s.IsValid() && len(statusTransitions[s]) == 0
}

func (s ImportOrderStatus) DisplayName() string {
	if name, ok := statusDisplayNames[s]; ok {
		return name
	}
	return string(s)
}
