package value_objects

import "fmt"

type Action string

const (
	ActionRead      Action = "read"
	ActionWrite     Action = "write"
	ActionReadAll   Action = "read_all"
	ActionManageAll Action = "manage_all"
)

var validActions = map[Action]bool{
	ActionRead:      true,
	ActionWrite:     true,
	ActionReadAll:   true,
	ActionManageAll: true,
}

func NewAction(action string) (Action, error) {
	if action == "" {
		return "", fmt.Errorf("action cannot be empty")
	}

	a := Action(action)
	if !validActions[a] {
		return "", fmt.Errorf("invalid action: %s", action)
	}

	return a, nil
}

func (a Action) String() string {
	return string(a)
}
