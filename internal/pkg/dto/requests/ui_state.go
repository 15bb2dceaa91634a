package requests

import "clinic-console-service/internal/pkg/uistate"

type UIStateAction struct {
	Type     string `json:"type" validate:"required,oneof=page_changed page_reset dialog_opened dialog_closed selected toast_added toasts_cleared"`
	Screen   string `json:"screen" validate:"required_if=Type page_changed,required_if=Type page_reset"`
	First    int    `json:"first" validate:"gte=0"`
	Rows     int    `json:"rows" validate:"required_if=Type page_changed,omitempty,gte=1,lte=100"`
	Dialog   string `json:"dialog" validate:"required_if=Type dialog_opened,required_if=Type dialog_closed"`
	ID       string `json:"id"`
	Severity string `json:"severity" validate:"omitempty,oneof=success info warn error"`
	Summary  string `json:"summary" validate:"required_if=Type toast_added,max=100"`
	Detail   string `json:"detail" validate:"max=500"`
}

func (a UIStateAction) ToAction() uistate.Action {
	return uistate.Action{
		Type:     uistate.ActionType(a.Type),
		Screen:   a.Screen,
		First:    a.First,
		Rows:     a.Rows,
		Dialog:   a.Dialog,
		ID:       a.ID,
		Severity: uistate.Severity(a.Severity),
		Summary:  a.Summary,
		Detail:   a.Detail,
	}
}
