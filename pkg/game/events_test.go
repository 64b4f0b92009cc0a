package game

import "testing"

// TestEventQueueFIFO 测试队列按入队顺序分发并清空
func TestEventQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	q.Push(Event{Kind: EventResizeBegin}, ResizeEvent(10, 20))
	q.Push(FrameEvent(5, false))

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", q.Len())
	}

	var kinds []EventKind
	q.Drain(func(ev Event) { kinds = append(kinds, ev.Kind) })

	want := []EventKind{EventResizeBegin, EventResize, EventFrame}
	if len(kinds) != len(want) {
		t.Fatalf("drained %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("event[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}
	if q.Len() != 0 {
		t.Errorf("Len() after Drain = %d, want 0", q.Len())
	}
}

// TestEventQueueReentrantPush 测试处理过程中入队的事件在同一次 Drain 中处理
func TestEventQueueReentrantPush(t *testing.T) {
	q := NewEventQueue()
	q.Push(ResizeEvent(1, 1))

	count := 0
	q.Drain(func(ev Event) {
		count++
		if ev.Kind == EventResize {
			q.Push(FrameEvent(1, false))
		}
	})

	if count != 2 {
		t.Errorf("handled %d events, want 2", count)
	}
}

// TestEventKindString 测试事件类型名称
func TestEventKindString(t *testing.T) {
	tests := map[EventKind]string{
		EventResizeBegin: "ResizeBegin",
		EventResize:      "Resize",
		EventResizeEnd:   "ResizeEnd",
		EventFrame:       "Frame",
		EventKind(42):    "EventKind(42)",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(kind), got, want)
		}
	}
}
