package elm

import (
	"sync"
	"testing"
)

func TestState_NewState(t *testing.T) {
	type tc struct {
		initial int
	}

	tests := map[string]tc{
		"creates state with zero value": {
			initial: 0,
		},
		"creates state with positive value": {
			initial: 42,
		},
		"creates state with negative value": {
			initial: -10,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewState(tt.initial)
			if s.Get() != tt.initial {
				t.Errorf("NewState(%d).Get() = %d, want %d", tt.initial, s.Get(), tt.initial)
			}
		})
	}
}

func TestState_TypeInference(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		s := NewState("hello")
		if got := s.Get(); got != "hello" {
			t.Errorf("Get() = %q, want %q", got, "hello")
		}
	})

	t.Run("struct pointer", func(t *testing.T) {
		type user struct{ Name string }
		s := NewState(&user{Name: "Alice"})
		got := s.Get()
		if got == nil || got.Name != "Alice" {
			t.Errorf("Get() = %v, want &user{Name:Alice}", got)
		}
	})
}

func TestState_Set_NotifiesBindings(t *testing.T) {
	s := NewState(0)

	var notified []int
	s.Bind(func(v int) {
		notified = append(notified, v)
	})

	s.Set(1)
	s.Set(2)

	if len(notified) != 2 || notified[0] != 1 || notified[1] != 2 {
		t.Errorf("bindings received %v, want [1 2]", notified)
	}
}

func TestState_Bind_Order(t *testing.T) {
	s := NewState(0)

	var order []string
	s.Bind(func(int) { order = append(order, "first") })
	s.Bind(func(int) { order = append(order, "second") })

	s.Set(1)

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("bindings executed in order %v, want [first second]", order)
	}
}

func TestState_Unbind(t *testing.T) {
	s := NewState(0)

	calls := 0
	unbind := s.Bind(func(int) { calls++ })

	s.Set(1)
	unbind()
	s.Set(2)

	if calls != 1 {
		t.Errorf("binding called %d times after unbind, want 1", calls)
	}
}

func TestState_Update(t *testing.T) {
	s := NewState(10)
	s.Update(func(v int) int { return v + 5 })
	if got := s.Get(); got != 15 {
		t.Errorf("after Update(+5), Get() = %d, want 15", got)
	}
}

func TestState_ConcurrentGet(t *testing.T) {
	s := NewState(1)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = s.Get()
			}
		}()
	}
	wg.Wait()
}

func TestState_SatisfiesCell(t *testing.T) {
	type model struct{ Count int }

	// State[*S] must plug in as a Cell[S].
	var cell Cell[model] = NewState[*model](nil)

	cell.Set(&model{Count: 1})
	if got := cell.Get(); got == nil || got.Count != 1 {
		t.Errorf("cell.Get() = %v, want &model{Count:1}", got)
	}
}
