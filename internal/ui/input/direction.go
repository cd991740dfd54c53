package input

// Direction is used when cycling focus between fields.
type Direction int

const (
	Forward Direction = iota
	Backward
)
