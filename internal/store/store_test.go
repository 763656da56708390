package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"
)

var objectIDHex = regexp.MustCompile(`^[0-9a-f]{24}$`)

func TestDisconnectedStoreFailsFast(t *testing.T) {
	s := Disconnected()
	ctx := context.Background()

	start := time.Now()
	_, err := s.Insert(ctx, "lead", map[string]string{"name": "Jane"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}

	_, err = s.ListCollections(ctx)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}

	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("degraded operations should not block, took %s", elapsed)
	}

	if s.Connected() {
		t.Error("expected disconnected store to report not connected")
	}
	if s.DatabaseName() != "" {
		t.Errorf("expected empty database name, got %q", s.DatabaseName())
	}
}

func TestConnectRejectsEmptyURI(t *testing.T) {
	_, err := Connect(context.Background(), "", "plumberpro", time.Second)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable for empty URI, got %v", err)
	}
}

func TestMemoryStoreInsert(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	id, err := s.Insert(ctx, "lead", map[string]string{"name": "Jane Doe", "phone": "555-1234"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !objectIDHex.MatchString(id) {
		t.Errorf("expected 24-hex object id, got %q", id)
	}

	docs := s.Documents("lead")
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	if docs[0]["name"] != "Jane Doe" {
		t.Errorf("expected stored name Jane Doe, got %v", docs[0]["name"])
	}
}

func TestMemoryStoreListCollections(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if _, err := s.Insert(ctx, "lead", map[string]string{"name": "a"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Insert(ctx, "quote", map[string]string{"name": "b"}); err != nil {
		t.Fatal(err)
	}

	names, err := s.ListCollections(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 2 || names[0] != "lead" || names[1] != "quote" {
		t.Errorf("expected sorted [lead quote], got %v", names)
	}
}

type recordingObserver struct {
	ops  []string
	errs []error
}

func (o *recordingObserver) ObserveStoreOp(op string, _ float64, err error) {
	o.ops = append(o.ops, op)
	o.errs = append(o.errs, err)
}

func TestInstrumentReportsOperations(t *testing.T) {
	obs := &recordingObserver{}
	s := Instrument(NewMemoryStore(), obs)
	ctx := context.Background()

	if _, err := s.Insert(ctx, "lead", map[string]string{"name": "a"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.ListCollections(ctx); err != nil {
		t.Fatal(err)
	}

	if len(obs.ops) != 2 || obs.ops[0] != "insert" || obs.ops[1] != "list_collections" {
		t.Fatalf("expected [insert list_collections], got %v", obs.ops)
	}
	if obs.errs[0] != nil || obs.errs[1] != nil {
		t.Fatalf("expected nil errors, got %v", obs.errs)
	}
}

func TestInstrumentReportsFailures(t *testing.T) {
	obs := &recordingObserver{}
	s := Instrument(Disconnected(), obs)

	_, err := s.Insert(context.Background(), "lead", nil)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if len(obs.errs) != 1 || !errors.Is(obs.errs[0], ErrUnavailable) {
		t.Fatalf("expected observed failure, got %v", obs.errs)
	}
}

func TestInstrumentNilObserver(t *testing.T) {
	inner := NewMemoryStore()
	if got := Instrument(inner, nil); got != Store(inner) {
		t.Fatal("expected nil observer to return the inner store")
	}
}
