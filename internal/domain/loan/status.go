package loan

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusDefaulted Status = "DEFAULTED"
	StatusRejected  Status = "REJECTED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusCompleted, StatusDefaulted, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further automatic transition is expected from s.
// Note the ledger's auto-completion rule does NOT consult this: a zeroing
// repayment moves any loan to COMPLETED, terminal or not. That mirrors the
// historical back-office behavior; tightening it is a policy change.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusDefaulted, StatusRejected:
		return true
	}
	return false
}
