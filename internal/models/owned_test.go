package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	_ Owned = Course{}
	_ Owned = Task{}
	_ Owned = Event{}
	_ Owned = Resource{}
)

func TestOwnerID(t *testing.T) {
	assert.EqualValues(t, 7, Course{UserID: 7}.OwnerID())
	assert.EqualValues(t, 7, Task{UserID: 7}.OwnerID())
	assert.EqualValues(t, 7, Event{UserID: 7}.OwnerID())
	assert.EqualValues(t, 7, Resource{UserID: 7}.OwnerID())
}
