package uistate

import (
	"fmt"
	"strconv"
)

// Reduce applies action to state and returns the new state.
func Reduce(state State, action Action) (State, error) {
	next := state.clone()

	switch action.Type {
	case ActionPageChanged:
		if action.Rows <= 0 || action.First < 0 {
			return state, fmt.Errorf("invalid page window first=%d rows=%d", action.First, action.Rows)
		}
		next.Pagination[action.Screen] = Pagination{
			Page:     action.First/action.Rows + 1,
			PageSize: action.Rows,
		}
	case ActionPageReset:
		current := state.PaginationFor(action.Screen)
		next.Pagination[action.Screen] = Pagination{Page: DefaultPage, PageSize: current.PageSize}
	case ActionDialogOpened:
		next.Dialogs[action.Dialog] = true
	case ActionDialogClosed:
		delete(next.Dialogs, action.Dialog)
	case ActionSelected:
		next.SelectedID = action.ID
	case ActionToastAdded:
		next.Toasts = reduceToastAdded(next.Toasts, action)
	case ActionToastsCleared:
		next.Toasts.Items = []Toast{}
	default:
		return state, fmt.Errorf("unknown action %q", action.Type)
	}

	return next, nil
}

func reduceToastAdded(toasts ToastState, action Action) ToastState {
	severity := action.Severity
	if severity == "" {
		severity = SeverityInfo
	}
	toasts.Items = append(toasts.Items, Toast{
		ID:       strconv.Itoa(toasts.Next),
		Severity: severity,
		Summary:  action.Summary,
		Detail:   action.Detail,
	})
	toasts.Next++
	return toasts
}
