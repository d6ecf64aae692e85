package models

// Owned is implemented by every record that belongs to a single user.
type Owned interface {
	OwnerID() uint64
}
