package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testListener struct {
	name  string
	calls int
}

func withEventSystem(t *testing.T) {
	t.Helper()
	_ = EventSystemShutdown()
	require.True(t, EventSystemInitialize())
	t.Cleanup(func() { _ = EventSystemShutdown() })
}

func TestEventRegisterRejectsDuplicateListener(t *testing.T) {
	withEventSystem(t)
	l := &testListener{}
	fn := func(SystemEventCode, interface{}, interface{}, EventContext) bool { return false }

	assert.True(t, EventRegister(EVENT_CODE_RESIZED, l, fn))
	assert.False(t, EventRegister(EVENT_CODE_RESIZED, l, fn))
	assert.True(t, EventRegister(EVENT_CODE_KEY_PRESSED, l, fn))
}

func TestEventFireStopsAtFirstHandler(t *testing.T) {
	withEventSystem(t)
	first := &testListener{name: "first"}
	second := &testListener{name: "second"}

	handler := func(handled bool) FnOnEvent {
		return func(code SystemEventCode, sender interface{}, listener interface{}, ctx EventContext) bool {
			listener.(*testListener).calls++
			return handled
		}
	}

	require.True(t, EventRegister(EVENT_CODE_FILE_CHANGED, first, handler(true)))
	require.True(t, EventRegister(EVENT_CODE_FILE_CHANGED, second, handler(false)))

	assert.True(t, EventFire(EVENT_CODE_FILE_CHANGED, nil, EventContext{Data: &FileEvent{Path: "cube.obj"}}))
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls)
}

func TestEventFireDeliversTypeAndData(t *testing.T) {
	withEventSystem(t)
	var got EventContext
	l := &testListener{}
	require.True(t, EventRegister(EVENT_CODE_RESIZED, l, func(code SystemEventCode, _ interface{}, _ interface{}, ctx EventContext) bool {
		got = ctx
		return true
	}))

	EventFire(EVENT_CODE_RESIZED, nil, EventContext{Data: &ResizeEvent{Width: 640, Height: 480}})
	assert.Equal(t, EVENT_CODE_RESIZED, got.Type)
	assert.Equal(t, &ResizeEvent{Width: 640, Height: 480}, got.Data)
}

func TestEventUnregisterRemovesOnlyThatListener(t *testing.T) {
	withEventSystem(t)
	a := &testListener{name: "a"}
	b := &testListener{name: "b"}
	count := func(_ SystemEventCode, _ interface{}, listener interface{}, _ EventContext) bool {
		listener.(*testListener).calls++
		return false
	}
	require.True(t, EventRegister(EVENT_CODE_APPLICATION_QUIT, a, count))
	require.True(t, EventRegister(EVENT_CODE_APPLICATION_QUIT, b, count))

	assert.True(t, EventUnregister(EVENT_CODE_APPLICATION_QUIT, a))
	assert.False(t, EventUnregister(EVENT_CODE_APPLICATION_QUIT, a))

	EventFire(EVENT_CODE_APPLICATION_QUIT, nil, EventContext{})
	assert.Equal(t, 0, a.calls)
	assert.Equal(t, 1, b.calls)
}

func TestEventSystemNotInitialized(t *testing.T) {
	_ = EventSystemShutdown()
	assert.False(t, EventRegister(EVENT_CODE_RESIZED, &testListener{}, func(SystemEventCode, interface{}, interface{}, EventContext) bool { return true }))
	assert.False(t, EventFire(EVENT_CODE_RESIZED, nil, EventContext{}))
}
