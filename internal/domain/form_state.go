package domain

// FormState is the transient state of the course dialog. It is passed into
// and returned from every course handler and is never persisted.
type FormState struct {
	EditMode      bool
	SelectedIndex *int
	FullFormMode  bool
}

// Reset leaves edit mode and drops the selection, keeping the form mode.
func (s FormState) Reset() FormState {
	return FormState{FullFormMode: s.FullFormMode}
}
