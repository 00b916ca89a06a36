package events

const RecordChangedTopic = "record:changed"

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

const (
	EntityUser        = "user"
	EntityCompany     = "company"
	EntityJob         = "job"
	EntityApplication = "application"
)

// RecordChanged is published after every successful mutation. Label is a
// short human-readable handle for the record, e.g. a user or job name.
type RecordChanged struct {
	Entity string
	Action Action
	ID     int
	Label  string
}
