package challenge

import (
	"context"
	"errors"
)

// CreationWorkflow starts a new challenge from a catalog template. Arbitrary
// user-entered templates are not supported; template shape validity is
// guaranteed by the fixed catalog, so no further client-side validation
// happens here.
type CreationWorkflow struct {
	store *Store
}

// NewCreationWorkflow creates a workflow over the given store.
func NewCreationWorkflow(store *Store) *CreationWorkflow {
	return &CreationWorkflow{store: store}
}

// Start submits the template's fields verbatim and, on success, reloads the
// active list so the new challenge shows up with server-assigned fields. On
// failure nothing is created locally and the caller may retry or cancel.
func (w *CreationWorkflow) Start(ctx context.Context, templateType string) (Challenge, error) {
	tmpl, ok := LookupTemplate(templateType)
	if !ok {
		return Challenge{}, ErrUnknownTemplate
	}

	created, err := w.store.Create(ctx, CreateInput{
		Type:         tmpl.Type,
		Title:        tmpl.Title,
		Description:  tmpl.Description,
		DurationDays: tmpl.DurationDays,
	})
	if err != nil {
		return Challenge{}, err
	}

	if _, err := w.store.LoadActive(ctx); err != nil {
		// Creation went through; the stale list is the caller's to refresh.
		return created, errors.Join(ErrStaleList, err)
	}

	return created, nil
}
