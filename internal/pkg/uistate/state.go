// Package uistate holds the console UI state that used to live in the browser:
// per-screen pagination, open dialogs, the selected row and the toast queue.
// State is a plain value; Reduce never mutates its input.
package uistate

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// First is the zero-based row offset of the page.
func (p Pagination) First() int {
	return (p.Page - 1) * p.PageSize
}

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarn    Severity = "warn"
	SeverityError   Severity = "error"
)

type Toast struct {
	ID       string   `json:"id"`
	Severity Severity `json:"severity"`
	Summary  string   `json:"summary"`
	Detail   string   `json:"detail"`
}

type ToastState struct {
	Items []Toast `json:"items"`
	Next  int     `json:"next"`
}

type State struct {
	Pagination map[string]Pagination `json:"pagination"`
	Dialogs    map[string]bool       `json:"dialogs"`
	SelectedID string                `json:"selected_id,omitempty"`
	Toasts     ToastState            `json:"toasts"`
}

func New() State {
	return State{
		Pagination: map[string]Pagination{},
		Dialogs:    map[string]bool{},
		Toasts:     ToastState{Items: []Toast{}},
	}
}

// PaginationFor returns the screen's pagination or the defaults.
func (s State) PaginationFor(screen string) Pagination {
	if p, ok := s.Pagination[screen]; ok && p.Page > 0 && p.PageSize > 0 {
		return p
	}
	return Pagination{Page: DefaultPage, PageSize: DefaultPageSize}
}

func (s State) clone() State {
	out := State{
		Pagination: make(map[string]Pagination, len(s.Pagination)),
		Dialogs:    make(map[string]bool, len(s.Dialogs)),
		SelectedID: s.SelectedID,
		Toasts: ToastState{
			Items: make([]Toast, len(s.Toasts.Items)),
			Next:  s.Toasts.Next,
		},
	}
	for k, v := range s.Pagination {
		out.Pagination[k] = v
	}
	for k, v := range s.Dialogs {
		out.Dialogs[k] = v
	}
	copy(out.Toasts.Items, s.Toasts.Items)
	return out
}
