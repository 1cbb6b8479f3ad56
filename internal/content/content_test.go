package content

import (
	"encoding/json"
	"testing"
)

func TestBuiltinPacksValid(t *testing.T) {
	packs := All()
	if len(packs) != 4 {
		t.Fatalf("expected 4 built-in packs, got %d", len(packs))
	}

	for _, p := range packs {
		if err := Validate(p); err != nil {
			t.Errorf("pack %q invalid: %v", p.ID, err)
		}
	}
}

func TestBuiltinPacksRoundTripSchema(t *testing.T) {
	// Every built-in pack must satisfy the same schema custom packs do.
	for _, p := range All() {
		raw, err := json.Marshal(p)
		if err != nil {
			t.Fatalf("marshal %q: %v", p.ID, err)
		}
		if _, err := ParsePack(raw); err != nil {
			t.Errorf("pack %q fails its own schema: %v", p.ID, err)
		}
	}
}

func TestQuestion_CorrectID(t *testing.T) {
	for _, p := range All() {
		for i, q := range p.Questions {
			id := q.CorrectID()
			if id == "" {
				t.Errorf("pack %q question %d has no correct option", p.ID, i)
				continue
			}
			found := false
			for _, o := range q.Options {
				if o.ID == id && o.Correct {
					found = true
				}
			}
			if !found {
				t.Errorf("pack %q question %d: CorrectID %q not a correct option", p.ID, i, id)
			}
		}
	}
}

func TestByID(t *testing.T) {
	for _, id := range IDs() {
		p, err := ByID(id)
		if err != nil {
			t.Errorf("ByID(%q): %v", id, err)
		}
		if p.ID != id {
			t.Errorf("ByID(%q).ID = %q", id, p.ID)
		}
	}

	if _, err := ByID("nope"); err == nil {
		t.Error("ByID(nope) succeeded")
	}
}

func TestValidate_Rejections(t *testing.T) {
	base := MotorPack()

	short := base
	short.Questions = base.Questions[:9]
	if err := Validate(short); err == nil {
		t.Error("9-question pack accepted")
	}

	twoCorrect := MotorPack()
	twoCorrect.Questions[0].Options[0].Correct = true
	if err := Validate(twoCorrect); err == nil {
		t.Error("pack with two correct options accepted")
	}

	dupIDs := MotorPack()
	dupIDs.Questions[0].Options[1].ID = dupIDs.Questions[0].Options[0].ID
	if err := Validate(dupIDs); err == nil {
		t.Error("pack with duplicate option ids accepted")
	}

	threeApps := MotorPack()
	threeApps.Applications = threeApps.Applications[:3]
	if err := Validate(threeApps); err == nil {
		t.Error("3-application pack accepted")
	}

	badRange := MotorPack()
	badRange.Params[0].Min = badRange.Params[0].Max
	if err := Validate(badRange); err == nil {
		t.Error("param with empty range accepted")
	}
}

func TestParsePack_RejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{"},
		{"empty object", "{}"},
		{"missing questions", `{"id":"x","title":"X","applications":[]}`},
	}

	for _, tt := range tests {
		if _, err := ParsePack([]byte(tt.raw)); err == nil {
			t.Errorf("%s: ParsePack accepted", tt.name)
		}
	}
}
