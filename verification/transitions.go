package verification

// Transition describes one admin action on an application.
type Transition struct {
	From AdminStatus `json:"from"`
	To   AdminStatus `json:"to"`
	Note string      `json:"note"`
}

// validTransitions is the authoritative definition of the verification
// machine. Every state is reachable from every other: an admin can re-reject
// an approved restaurant or re-approve a rejected driver, and repeating the
// current status is an idempotent no-op write. No history is kept.
var validTransitions = []Transition{
	{From: StatusPending, To: StatusApproved, Note: "admin approves the application"},
	{From: StatusPending, To: StatusRejected, Note: "admin rejects the application"},
	{From: StatusApproved, To: StatusRejected, Note: "admin re-rejects a previously approved entity"},
	{From: StatusRejected, To: StatusApproved, Note: "admin re-approves a previously rejected entity"},
	{From: StatusApproved, To: StatusPending, Note: "admin resets the application for another review"},
	{From: StatusRejected, To: StatusPending, Note: "admin resets the application for another review"},
	{From: StatusPending, To: StatusPending, Note: "no-op"},
	{From: StatusApproved, To: StatusApproved, Note: "no-op"},
	{From: StatusRejected, To: StatusRejected, Note: "no-op"},
}

// GetAllTransitions returns the full machine for the docs endpoint.
func GetAllTransitions() []Transition {
	return validTransitions
}

// ValidTransitionsFrom returns all states reachable from a given state.
func ValidTransitionsFrom(status AdminStatus) []AdminStatus {
	var nexts []AdminStatus
	seen := map[AdminStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}
