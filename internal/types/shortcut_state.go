package types

type ShortcutsStatus int

const (
	ShortcutsStatusInitial ShortcutsStatus = iota
	ShortcutsStatusUpdating
	ShortcutsStatusSuccess
	ShortcutsStatusFailure
)

func (s ShortcutsStatus) String() string {
	switch s {
	case ShortcutsStatusInitial:
		return "initial"
	case ShortcutsStatusUpdating:
		return "updating"
	case ShortcutsStatusSuccess:
		return "success"
	case ShortcutsStatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// ShortcutsState is an immutable snapshot of the shortcuts controller.
// Bindings are authoritative only when Status is success; updating and
// failure states carry the last good bindings, if any.
type ShortcutsState struct {
	status   ShortcutsStatus
	bindings []ShortcutBinding
	err      error
}

func InitialShortcutsState() ShortcutsState {
	return ShortcutsState{status: ShortcutsStatusInitial}
}

func UpdatingShortcutsState(previous []ShortcutBinding) ShortcutsState {
	return ShortcutsState{status: ShortcutsStatusUpdating, bindings: CloneBindings(previous)}
}

func SuccessShortcutsState(bindings []ShortcutBinding) ShortcutsState {
	if bindings == nil {
		bindings = []ShortcutBinding{}
	}
	return ShortcutsState{status: ShortcutsStatusSuccess, bindings: CloneBindings(bindings)}
}

func FailureShortcutsState(previous []ShortcutBinding, err error) ShortcutsState {
	return ShortcutsState{status: ShortcutsStatusFailure, bindings: CloneBindings(previous), err: err}
}

func (s ShortcutsState) Status() ShortcutsStatus {
	return s.status
}

// Bindings returns a copy of the bindings held by the snapshot.
func (s ShortcutsState) Bindings() []ShortcutBinding {
	return CloneBindings(s.bindings)
}

func (s ShortcutsState) Err() error {
	return s.err
}

// Message is the human-readable failure description, empty unless the
// snapshot is a failure.
func (s ShortcutsState) Message() string {
	if s.status != ShortcutsStatusFailure || s.err == nil {
		return ""
	}
	return s.err.Error()
}

// KeyFor returns the key combo bound to actionKey in this snapshot.
func (s ShortcutsState) KeyFor(actionKey string) (string, bool) {
	for _, binding := range s.bindings {
		if binding.ActionKey == actionKey {
			return binding.KeyCombo, true
		}
	}
	return "", false
}
