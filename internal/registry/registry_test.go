package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return strings.ToUpper(g.id) }
func (stubGame) Reset(core.RuntimeConfig) {}
func (stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (stubGame) Render(*core.Screen) {}
func (stubGame) State() core.GameState { return core.GameState{} }

func stub(id string) Factory {
	return func() Game { return stubGame{id: id} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_test_b", stub("zz_test_b"))
	Register("zz_test_a", stub("zz_test_a"))

	if !Exists("zz_test_a") {
		t.Fatal("Registered game should exist")
	}

	g, err := Create("zz_test_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_test_b" {
		t.Errorf("Create() returned %q", g.ID())
	}

	var seen []GameInfo
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "zz_test_") {
			seen = append(seen, info)
		}
	}
	if len(seen) != 2 || seen[0].ID != "zz_test_a" || seen[1].Title != "ZZ_TEST_B" {
		t.Errorf("List() = %+v, expected sorted entries with titles", seen)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create() should fail for an unknown ID")
	}
	if Exists("no_such_game") {
		t.Error("Exists() should be false for an unknown ID")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_test_dup", stub("zz_test_dup"))

	defer func() {
		if recover() == nil {
			t.Error("Duplicate Register should panic")
		}
	}()
	Register("zz_test_dup", stub("zz_test_dup"))
}
