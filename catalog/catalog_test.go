package catalog

import (
	"encoding/json"
	"math"
	"testing"
)

func TestTableValues(t *testing.T) {
	tests := []struct {
		obj      Object
		position float64
		altitude float64
		size     float64
	}{
		{Chandra, 0.5, 0.5, 800},
		{Compton, 0.1, 0.45, 800},
		{Debris, 0.5, 0.4, 2000},
		{Explorer, 0.45, 0.4, 400},
		{Hubble, 0.85, 0.7, 800},
		{ISS, 0.4, 0.65, 1200},
		{Landsat, 0.9, 0.45, 500},
		{NOAA15, 0.7, 0.4, 500},
		{Spitzer, 0.65, 0.75, 800},
		{Sputnik, 0.15, 0.3, 400},
		{Tiros, 0.8, 0.6, 400},
		{Vanguard, 0.25, 0.5, 400},
		{Missile, 0.5, 0, 300},
		{Drone, 0.5, 0, 300},
		{RocketLaunch, 0.5, 0, 800},
	}

	for _, tt := range tests {
		t.Run(tt.obj.String(), func(t *testing.T) {
			if tt.obj.Position() != tt.position {
				t.Errorf("position = %v, want %v", tt.obj.Position(), tt.position)
			}
			if tt.obj.Altitude() != tt.altitude {
				t.Errorf("altitude = %v, want %v", tt.obj.Altitude(), tt.altitude)
			}
			if tt.obj.Size() != tt.size {
				t.Errorf("size = %v, want %v", tt.obj.Size(), tt.size)
			}
		})
	}
}

func TestWidth(t *testing.T) {
	// 800 / 5 / 600
	want := 800.0 / 5.0 / 600.0
	if got := Chandra.Width(); math.Abs(got-want) > 1e-12 {
		t.Errorf("Chandra.Width() = %v, want %v", got, want)
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, o := range All() {
		got, err := Parse(o.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", o.String(), err)
		}
		if got != o {
			t.Errorf("Parse(%q) = %v, want %v", o.String(), got, o)
		}
	}

	if _, err := Parse("voyager"); err == nil {
		t.Error("Expected error for unknown object")
	}
}

func TestFilenames(t *testing.T) {
	if RocketLaunch.Filename() != "rocket-launch.png" {
		t.Errorf("unexpected filename %q", RocketLaunch.Filename())
	}
	for _, o := range All() {
		if o.Filename() == "" {
			t.Errorf("%s has no filename", o)
		}
	}
}

func TestRoster(t *testing.T) {
	r := Roster{Sputnik: false, Hubble: true, Debris: false}

	if !r.IsDead(Sputnik) {
		t.Error("Sputnik should be dead")
	}
	if r.IsDead(Hubble) {
		t.Error("Hubble should be alive")
	}
	if r.IsDead(ISS) {
		t.Error("Objects missing from the roster must not be treated as dead")
	}

	objs := r.Objects()
	want := []Object{Debris, Hubble, Sputnik}
	if len(objs) != len(want) {
		t.Fatalf("Objects() = %v, want %v", objs, want)
	}
	for i := range want {
		if objs[i] != want[i] {
			t.Errorf("Objects()[%d] = %v, want %v", i, objs[i], want[i])
		}
	}

	c := r.Clone()
	c[Sputnik] = true
	if r[Sputnik] {
		t.Error("Clone must not alias the original")
	}
}

func TestSatelliteClassification(t *testing.T) {
	if Missile.IsSatellite() || RocketShield.IsSatellite() {
		t.Error("launched entities are not satellites")
	}
	if !Debris.IsSatellite() || !ISS.IsSatellite() {
		t.Error("orbital objects are satellites")
	}
	if !RocketLaunch.IsRocket() || Missile.IsRocket() {
		t.Error("rocket classification mismatch")
	}
}

func TestObjectJSONName(t *testing.T) {
	b, err := json.Marshal(map[string]Object{"target": Hubble})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(b) != `{"target":"hubble"}` {
		t.Errorf("Unexpected encoding %s", b)
	}

	var decoded struct{ Target Object }
	if err := json.Unmarshal([]byte(`{"Target":"noaa15"}`), &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.Target != NOAA15 {
		t.Errorf("Expected noaa15, got %v", decoded.Target)
	}

	if err := json.Unmarshal([]byte(`{"Target":"pluto"}`), &decoded); err == nil {
		t.Error("Expected error for unknown object")
	}
}
