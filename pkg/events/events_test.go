package events

import "testing"

func TestOutboxDrainPreservesOrder(t *testing.T) {
	o := NewOutbox()
	o.Emit(Event{Type: SlashGenuine, Amount: 15})
	o.Emit(Event{Type: Miss, Amount: -5})
	o.Emit(Event{Type: SlashCounterfeit, Amount: -8})

	if o.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", o.Len())
	}

	got := o.Drain()
	want := []Type{SlashGenuine, Miss, SlashCounterfeit}
	if len(got) != len(want) {
		t.Fatalf("Drain() returned %d events, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Type != want[i] {
			t.Errorf("event %d: got %v, want %v", i, got[i].Type, want[i])
		}
	}

	if o.Len() != 0 {
		t.Error("outbox should be empty after Drain")
	}
	if o.Drain() != nil {
		t.Error("second Drain should return nil")
	}
}

func TestDrainedSliceIsIndependent(t *testing.T) {
	o := NewOutbox()
	o.Emit(Event{Type: SlashGenuine})
	first := o.Drain()

	o.Emit(Event{Type: Miss})
	if first[0].Type != SlashGenuine {
		t.Error("drained events must not be overwritten by later emits")
	}
}

func TestTypeString(t *testing.T) {
	tests := map[Type]string{
		SlashGenuine:      "slash-genuine",
		SlashCounterfeit:  "slash-counterfeit",
		SlashPremium:      "slash-premium",
		Miss:              "miss",
		OfferAcceptedGood: "offer-accepted-good",
		OfferAcceptedBad:  "offer-accepted-bad",
		Type(99):          "unknown",
	}
	for typ, want := range tests {
		if got := typ.String(); got != want {
			t.Errorf("Type(%d).String() = %q, want %q", int(typ), got, want)
		}
	}
}
