package models

// Owned is implemented by records that only their author may mutate.
type Owned interface {
	OwnerID() uint
	Kind() string
}
