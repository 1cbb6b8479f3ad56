package lesson

import "testing"

func TestParams_Defaults(t *testing.T) {
	s, _, _ := newTestSession("")
	if got := s.Params.Get("voltage"); got != 12 {
		t.Errorf("default voltage = %v, want 12", got)
	}
	if got := s.Params.Get("resistance"); got != 2 {
		t.Errorf("default resistance = %v, want 2", got)
	}
}

func TestParams_SetEmitsChange(t *testing.T) {
	s, sink, _ := newTestSession("")

	s.Params.Set("voltage", 18)
	if got := s.Params.Get("voltage"); got != 18 {
		t.Errorf("voltage = %v, want 18", got)
	}

	changes := sink.ofType(EventParamChanged)
	if len(changes) != 1 {
		t.Fatalf("param_changed events = %d, want 1", len(changes))
	}
	if changes[0].Details["param"] != "voltage" || changes[0].Details["value"] != 18.0 {
		t.Errorf("param_changed details = %v", changes[0].Details)
	}
}

func TestParams_SetSameValueNoEvent(t *testing.T) {
	s, sink, _ := newTestSession("")
	s.Params.Set("voltage", 12)
	if n := len(sink.ofType(EventParamChanged)); n != 0 {
		t.Errorf("no-op set emitted %d events", n)
	}
}

func TestParams_Bool(t *testing.T) {
	s, sink, _ := newTestSession("")

	s.Params.SetBool("regeneration", true)
	if !s.Params.GetBool("regeneration") {
		t.Error("GetBool = false after SetBool(true)")
	}
	s.Params.SetBool("regeneration", true)
	if n := len(sink.ofType(EventParamChanged)); n != 1 {
		t.Errorf("param_changed events = %d, want 1", n)
	}
}

func TestParams_Spec(t *testing.T) {
	s, _, _ := newTestSession("")

	spec, ok := s.Params.Spec("resistance")
	if !ok {
		t.Fatal("Spec(resistance) not found")
	}
	if spec.Min != 0.5 || spec.Max != 10 {
		t.Errorf("resistance range = [%v, %v], want [0.5, 10]", spec.Min, spec.Max)
	}

	if _, ok := s.Params.Spec("unknown"); ok {
		t.Error("Spec(unknown) found")
	}
}
