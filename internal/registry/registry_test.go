package registry

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func stubFactory(id string) Factory {
	return func() Game { return &stubGame{id: id} }
}

func TestRegisterCreateList(t *testing.T) {
	Register("stub_b", stubFactory("stub_b"))
	Register("stub_a", stubFactory("stub_a"))

	if !Exists("stub_a") {
		t.Fatal("Exists(stub_a) should be true")
	}

	g, err := Create("stub_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_b" {
		t.Errorf("Create(stub_b).ID() = %q, expected %q", g.ID(), "stub_b")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "stub_a" && info.Title != "Stub stub_a" {
			t.Errorf("title for stub_a = %q, expected %q", info.Title, "Stub stub_a")
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List() not sorted: %v", ids)
		}
	}
}

func TestCreateReturnsFreshInstances(t *testing.T) {
	Register("stub_fresh", stubFactory("stub_fresh"))

	a, _ := Create("stub_fresh")
	b, _ := Create("stub_fresh")
	if a == b {
		t.Error("Create() should return a new game each call")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist"); err == nil {
		t.Error("Create() of an unknown game should fail")
	}
	if Exists("does-not-exist") {
		t.Error("Exists() of an unknown game should be false")
	}
}

func TestRegisterPanics(t *testing.T) {
	Register("stub_dup", stubFactory("stub_dup"))

	tests := []struct {
		name string
		id   string
		f    Factory
	}{
		{"duplicate", "stub_dup", stubFactory("stub_dup")},
		{"empty id", "", stubFactory("x")},
		{"nil factory", "stub_nil", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Register(%q) should panic", tc.id)
				}
			}()
			Register(tc.id, tc.f)
		})
	}
}
