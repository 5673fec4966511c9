package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(EnemyKilled, ListenerFunc(func(Event) { order = append(order, "first") }))
	d.Subscribe(EnemyKilled, ListenerFunc(func(Event) { order = append(order, "second") }))
	d.Dispatch(Event{Type: EnemyKilled})
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("unexpected delivery order %v", order)
	}
}

func TestDispatchFiltersByType(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(WaveGenerated, r)
	d.Dispatch(Event{Type: EnemySpawned})
	d.Dispatch(Event{Type: WaveGenerated, Data: WaveData{Level: 2}})
	if len(r.got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(r.got))
	}
	if data, ok := r.got[0].Data.(WaveData); !ok || data.Level != 2 {
		t.Errorf("unexpected payload %+v", r.got[0].Data)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(CastleFallen, r)
	d.Unsubscribe(CastleFallen, r)
	d.Dispatch(Event{Type: CastleFallen})
	if len(r.got) != 0 {
		t.Errorf("unsubscribed listener received %d events", len(r.got))
	}
}
