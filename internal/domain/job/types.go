package job

import "errors"

var (
	ErrInvalidJobType = errors.New("invalid job type")
	ErrInvalidStatus  = errors.New("invalid job status")
)

type Type string

const (
	TypeWindshield Type = "windshield"
	TypeSideWindow Type = "side_window"
	TypeRearWindow Type = "rear_window"
	TypeChipRepair Type = "chip_repair"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeWindshield, TypeSideWindow, TypeRearWindow, TypeChipRepair:
		return true
	default:
		return false
	}
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidJobType
	}
	return t, nil
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
