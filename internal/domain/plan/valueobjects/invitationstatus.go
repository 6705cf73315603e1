package valueobjects

// InvitationStatus is the state of a (plan, member) admission record.
type InvitationStatus string

const (
	StatusPending  InvitationStatus = "PENDING"
	StatusAccepted InvitationStatus = "ACCEPTED"
	StatusDenied   InvitationStatus = "DENIED"
)

var validInvitationStatuses = map[InvitationStatus]bool{
	StatusPending:  true,
	StatusAccepted: true,
	StatusDenied:   true,
}

// ACCEPTED and DENIED are terminal.
var invitationTransitions = map[InvitationStatus][]InvitationStatus{
	StatusPending: {StatusAccepted, StatusDenied},
}

func (s InvitationStatus) String() string {
	return string(s)
}

func (s InvitationStatus) IsValid() bool {
	return validInvitationStatuses[s]
}

func (s InvitationStatus) IsTerminal() bool {
	return len(invitationTransitions[s]) == 0
}

func (s InvitationStatus) CanTransitionTo(next InvitationStatus) bool {
	for _, allowed := range invitationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
