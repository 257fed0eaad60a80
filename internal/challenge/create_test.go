package challenge

import (
	"context"
	"errors"
	"testing"
)

func TestCreationWorkflow_SubmitsTemplateVerbatim(t *testing.T) {
	var got CreateInput
	created := Challenge{ID: "ch-new", ChallengeType: "hydration", Title: "Hydration Hero", DurationDays: 3}
	backend := &fakeBackend{
		createFn: func(_ context.Context, input CreateInput) (Challenge, error) {
			got = input
			return created, nil
		},
		activeFn: func(context.Context) ([]Challenge, error) {
			return []Challenge{created}, nil
		},
	}

	store := NewStore(backend, quietLogger())
	w := NewCreationWorkflow(store)

	out, err := w.Start(context.Background(), "hydration")
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if out.ID != "ch-new" {
		t.Fatalf("expected created challenge back, got %+v", out)
	}

	tmpl, _ := LookupTemplate("hydration")
	want := CreateInput{
		Type:         tmpl.Type,
		Title:        tmpl.Title,
		Description:  tmpl.Description,
		DurationDays: tmpl.DurationDays,
	}
	if got != want {
		t.Fatalf("template fields not submitted verbatim:\ngot  %+v\nwant %+v", got, want)
	}

	// The post-create reload made the new challenge visible.
	if _, ok := store.Get("ch-new"); !ok {
		t.Fatalf("created challenge missing after reload")
	}
}

func TestCreationWorkflow_UnknownTemplate(t *testing.T) {
	store := NewStore(&fakeBackend{}, quietLogger())
	w := NewCreationWorkflow(store)
	if _, err := w.Start(context.Background(), "cold_plunge"); !errors.Is(err, ErrUnknownTemplate) {
		t.Fatalf("expected ErrUnknownTemplate, got %v", err)
	}
}

func TestCreationWorkflow_ReloadFailureStillReturnsCreated(t *testing.T) {
	netErr := errors.New("network down")
	created := Challenge{ID: "ch-new", ChallengeType: "exercise", Title: "Move More", DurationDays: 14}
	backend := &fakeBackend{
		createFn: func(context.Context, CreateInput) (Challenge, error) {
			return created, nil
		},
		activeFn: func(context.Context) ([]Challenge, error) {
			return nil, netErr
		},
	}

	store := NewStore(backend, quietLogger())
	w := NewCreationWorkflow(store)

	out, err := w.Start(context.Background(), "exercise")
	if !errors.Is(err, ErrStaleList) {
		t.Fatalf("expected ErrStaleList when the reload fails, got %v", err)
	}
	if !errors.Is(err, netErr) {
		t.Fatalf("reload cause must stay inspectable, got %v", err)
	}
	if out.ID != "ch-new" {
		t.Fatalf("created challenge discarded on reload failure: %+v", out)
	}
}

func TestCreationWorkflow_FailureLeavesNothingBehind(t *testing.T) {
	boom := errors.New("backend rejected")
	backend := &fakeBackend{
		createFn: func(context.Context, CreateInput) (Challenge, error) {
			return Challenge{}, boom
		},
	}

	store := NewStore(backend, quietLogger())
	w := NewCreationWorkflow(store)
	if _, err := w.Start(context.Background(), "sleep"); !errors.Is(err, boom) {
		t.Fatalf("expected backend error to propagate, got %v", err)
	}
	if len(store.Challenges()) != 0 {
		t.Fatalf("no challenge should exist locally after a failed create")
	}
}
