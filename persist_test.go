package navhist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dshills/navhist/item"
	"github.com/dshills/navhist/persist"
)

// fakeGateway is an in-memory persist.Gateway for stack-level tests.
type fakeGateway struct {
	saved   *persist.Snapshot
	saveErr error
	loadErr error
}

func (g *fakeGateway) Save(_ context.Context, snap persist.Snapshot) error {
	if g.saveErr != nil {
		return g.saveErr
	}
	g.saved = &snap
	return nil
}

func (g *fakeGateway) Load(_ context.Context) (persist.Snapshot, bool, error) {
	if g.loadErr != nil {
		return persist.Snapshot{}, false, g.loadErr
	}
	if g.saved == nil {
		return persist.Snapshot{}, false, nil
	}
	return *g.saved, true, nil
}

var _ persist.Gateway = (*fakeGateway)(nil)

func TestSaveLoadRoundTrip(t *testing.T) {
	gw := &fakeGateway{}
	ctx := context.Background()

	s := New(WithGateway(gw))
	p1, p2, p3 := item.New("P1"), item.New("P2"), item.New("P3")
	s.NavigateTo(p1)
	s.NavigateTo(p2)
	s.NavigateTo(p3)
	s.GoBack()

	if err := s.Save(ctx); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Rebuild from the gateway into a fresh stack.
	restored := New(WithGateway(gw))
	ok, err := restored.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("Load reported absent after Save")
	}

	if restored.Count() != 3 {
		t.Errorf("Count = %d, want 3", restored.Count())
	}
	if !restored.Current().Equal(p2) {
		t.Errorf("Current = %v, want P2 (cursor preserved)", restored.Current())
	}
	want := s.History()
	got := restored.History()
	for i := range want {
		if got[i].ID != want[i].ID {
			t.Errorf("History[%d].ID = %q, want %q", i, got[i].ID, want[i].ID)
		}
	}
}

func TestSaveLoadWithoutGateway(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.Save(ctx); !errors.Is(err, ErrNoGateway) {
		t.Errorf("Save err = %v, want ErrNoGateway", err)
	}
	if _, err := s.Load(ctx); !errors.Is(err, ErrNoGateway) {
		t.Errorf("Load err = %v, want ErrNoGateway", err)
	}
}

func TestLoadAbsent(t *testing.T) {
	s := New(WithGateway(&fakeGateway{}))
	s.NavigateTo(item.New("P1"))

	ok, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Error("Load with nothing saved should report absent")
	}
	if s.Count() != 1 {
		t.Error("absent Load must leave in-memory state untouched")
	}
}

func TestSaveErrorPropagates(t *testing.T) {
	boom := errors.New("disk full")
	s := New(WithGateway(&fakeGateway{saveErr: boom}))
	s.NavigateTo(item.New("P1"))

	if err := s.Save(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Save err = %v, want boom", err)
	}
}

func TestLoadErrorPropagates(t *testing.T) {
	boom := errors.New("io error")
	s := New(WithGateway(&fakeGateway{loadErr: boom}))

	if _, err := s.Load(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Load err = %v, want boom", err)
	}
}

func TestLoadRejectsInconsistentSnapshot(t *testing.T) {
	// A wire snapshot may carry index -1 alongside items; a live stack
	// cannot represent that, so Load treats it as absent.
	it := item.NewWithID("p1", "Page", time.Now().UTC())
	stored, err := persist.NewSnapshot([]*item.Item{it}, -1)
	if err != nil {
		t.Fatalf("NewSnapshot: %v", err)
	}

	gw := &fakeGateway{saved: &stored}
	s := New(WithGateway(gw))
	s.NavigateTo(item.New("Existing"))

	ok, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Error("inconsistent snapshot should load as absent")
	}
	if s.Count() != 1 || s.Current().DisplayName != "Existing" {
		t.Error("failed Load must leave in-memory state untouched")
	}
}

func TestLoadEmitsChange(t *testing.T) {
	gw := &fakeGateway{}
	ctx := context.Background()

	source := New(WithGateway(gw))
	p1 := item.New("P1")
	source.NavigateTo(p1)
	if err := source.Save(ctx); err != nil {
		t.Fatalf("Save: %v", err)
	}

	s := New(WithGateway(gw))
	var got []Change
	s.Subscribe(func(c Change) { got = append(got, c) })

	if ok, err := s.Load(ctx); !ok || err != nil {
		t.Fatalf("Load = (%v, %v)", ok, err)
	}
	if len(got) != 1 || got[0].Kind != ChangeNavigate {
		t.Fatalf("notifications = %+v, want one navigate", got)
	}
	if got[0].Previous != nil || !got[0].Current.Equal(p1) {
		t.Errorf("payload = {%v -> %v}, want nil -> P1", got[0].Previous, got[0].Current)
	}
}
