package entity

import (
	"errors"
	"slices"
)

var ErrUnknownAction = errors.New("unknown filter action")

// FilterActionType names a single state transition
type FilterActionType string

const (
	ActionSetSearch       FilterActionType = "set_search"
	ActionSetConsultType  FilterActionType = "set_consult_type"
	ActionToggleSpecialty FilterActionType = "toggle_specialty"
	ActionSetSpecialties  FilterActionType = "set_specialties"
	ActionSetSort         FilterActionType = "set_sort"
	ActionReset           FilterActionType = "reset"
)

// FilterAction is a request to change a FilterState.
// Value carries the scalar payload, Values the list payload of set_specialties.
type FilterAction struct {
	Type   FilterActionType
	Value  string
	Values []string
}

// ReduceFilterState applies action to state and returns the resulting state.
// The input state is never modified.
func ReduceFilterState(state FilterState, action FilterAction) (FilterState, error) {
	next := state.Clone()

	switch action.Type {
	case ActionSetSearch:
		next.Search = action.Value
	case ActionSetConsultType:
		next.ConsultType = action.Value
	case ActionToggleSpecialty:
		if i := slices.Index(next.Specialties, action.Value); i >= 0 {
			next.Specialties = slices.Delete(next.Specialties, i, i+1)
		} else {
			next.Specialties = append(next.Specialties, action.Value)
		}
	case ActionSetSpecialties:
		next.Specialties = slices.Clone(action.Values)
	case ActionSetSort:
		next.SortBy = action.Value
	case ActionReset:
		next = FilterState{}
	default:
		return state, ErrUnknownAction
	}

	return next, nil
}
