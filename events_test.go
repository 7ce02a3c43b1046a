package elm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvents_EmitReachesSubscribersInOrder(t *testing.T) {
	bus := NewEvents[int]()

	var order []string
	bus.Subscribe(func(int) { order = append(order, "first") })
	bus.Subscribe(func(int) { order = append(order, "second") })

	bus.Emit(1)

	require.Equal(t, []string{"first", "second"}, order)
}

func TestWatchEvents_DispatchesMappedMessages(t *testing.T) {
	bus := NewEvents[string]()
	d := mustNew(t)
	d.Start(counterProps{})

	d.runCmds([]Cmd{WatchEvents(d, bus, func(s string) Msg {
		return setNote{Note: s}
	})})

	bus.Emit("clicked")
	require.Equal(t, "clicked", d.Model().Note)
}

func TestWatchEvents_DroppedAfterStop(t *testing.T) {
	bus := NewEvents[string]()
	d := mustNew(t)
	d.Start(counterProps{})

	d.runCmds([]Cmd{WatchEvents(d, bus, func(s string) Msg {
		return setNote{Note: s}
	})})

	d.Stop()
	bus.Emit("late")

	require.Empty(t, d.Model().Note)
}

func TestWatchEvents_NilMessageSkipped(t *testing.T) {
	bus := NewEvents[string]()
	d := mustNew(t)
	d.Start(counterProps{})

	d.runCmds([]Cmd{WatchEvents(d, bus, func(s string) Msg {
		return nil
	})})

	bus.Emit("ignored")
	require.Empty(t, d.Model().Note)
}
