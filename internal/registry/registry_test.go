package registry

import (
	"context"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/runner"
)

type stubFrontend struct {
	id string
}

func (s stubFrontend) ID() string       { return s.id }
func (s stubFrontend) Title() string    { return "Stub " + s.id }
func (s stubFrontend) Fullscreen() bool { return false }

func (s stubFrontend) Run(context.Context, *runner.Session) (runner.Result, error) {
	return runner.Result{}, nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Frontend { return stubFrontend{id: "zz-stub"} })
	Register("aa-stub", func() Frontend { return stubFrontend{id: "aa-stub"} })

	if !Exists("zz-stub") {
		t.Fatal("Exists() should report a registered frontend")
	}

	fe, err := Create("aa-stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if fe.ID() != "aa-stub" {
		t.Errorf("ID() = %q", fe.ID())
	}

	list := List()
	var ids []string
	for _, info := range list {
		ids = append(ids, info.ID)
	}
	if len(ids) < 2 || ids[0] != "aa-stub" || ids[len(ids)-1] != "zz-stub" {
		t.Errorf("List() not sorted by ID: %v", ids)
	}
	if list[0].Title != "Stub aa-stub" {
		t.Errorf("Title = %q", list[0].Title)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("missing")
	if err == nil || !strings.Contains(err.Error(), "missing") {
		t.Errorf("Create(missing) error = %v", err)
	}
	if Exists("missing") {
		t.Error("Exists(missing) should be false")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Frontend { return stubFrontend{id: "dup-stub"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup-stub", func() Frontend { return stubFrontend{id: "dup-stub"} })
}
