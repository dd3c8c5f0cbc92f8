package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stubEvent struct {
	Base
	name string
}

func (e stubEvent) EventName() string { return e.name }

func TestRecorder_AppendsInOrder(t *testing.T) {
	var rec Recorder
	rec.Record(stubEvent{Base: Base{Timestamp: time.Now()}, name: "first"})
	rec.Record(stubEvent{Base: Base{Timestamp: time.Now()}, name: "second"})

	got := rec.Events()
	assert.Len(t, got, 2)
	assert.Equal(t, "first", got[0].EventName())
	assert.Equal(t, "second", got[1].EventName())
}

func TestRecorder_EventsReturnsCopy(t *testing.T) {
	var rec Recorder
	rec.Record(stubEvent{name: "only"})

	got := rec.Events()
	got[0] = stubEvent{name: "mutated"}
	assert.Equal(t, "only", rec.Events()[0].EventName())
}

func TestRecorder_Clear(t *testing.T) {
	var rec Recorder
	rec.Record(stubEvent{name: "a"})
	rec.ClearEvents()
	assert.Empty(t, rec.Events())
}
