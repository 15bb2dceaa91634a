package uistate

type ActionType string

const (
	ActionPageChanged   ActionType = "page_changed"
	ActionPageReset     ActionType = "page_reset"
	ActionDialogOpened  ActionType = "dialog_opened"
	ActionDialogClosed  ActionType = "dialog_closed"
	ActionSelected      ActionType = "selected"
	ActionToastAdded    ActionType = "toast_added"
	ActionToastsCleared ActionType = "toasts_cleared"
)

// Action is one UI event. Only the fields relevant to Type are read.
type Action struct {
	Type     ActionType
	Screen   string
	First    int
	Rows     int
	Dialog   string
	ID       string
	Severity Severity
	Summary  string
	Detail   string
}

func PageChanged(screen string, first, rows int) Action {
	return Action{Type: ActionPageChanged, Screen: screen, First: first, Rows: rows}
}

func PageReset(screen string) Action {
	return Action{Type: ActionPageReset, Screen: screen}
}

func DialogOpened(dialog string) Action {
	return Action{Type: ActionDialogOpened, Dialog: dialog}
}

func DialogClosed(dialog string) Action {
	return Action{Type: ActionDialogClosed, Dialog: dialog}
}

func Selected(id string) Action {
	return Action{Type: ActionSelected, ID: id}
}

func ToastAdded(severity Severity, summary, detail string) Action {
	return Action{Type: ActionToastAdded, Severity: severity, Summary: summary, Detail: detail}
}

func ToastsCleared() Action {
	return Action{Type: ActionToastsCleared}
}
