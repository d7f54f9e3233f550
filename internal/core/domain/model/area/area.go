// Package area contains the Area entity: a named service region within a
// city. Areas are searchable and soft-deletable like stores.
package area

import (
	"errors"
	"strings"
	"time"

	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/pkg/errs"
)

// ErrAreaIsNotConstructed is returned when an Area instance was not created
// through the NewArea or RestoreArea factory functions.
var ErrAreaIsNotConstructed = errors.New("Area must be created via NewArea constructor")

// Area is a delivery region: a city plus a named district within it.
// Stores reference exactly one area.
type Area struct {
	id   kernel.UUID
	city string
	name string

	deletedAt *time.Time
	deletedBy *kernel.UUID

	isConstructed bool
}

// NewArea creates an Area with validation. City and name must not be blank.
func NewArea(id kernel.UUID, city, name string) (*Area, error) {
	a := &Area{isConstructed: true}

	if err := errors.Join(
		a.setID(id),
		a.setCity(city),
		a.setName(name),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreArea reconstructs an Area from persisted state, including its
// soft-delete stamp.
func RestoreArea(id kernel.UUID, city, name string, deletedAt *time.Time, deletedBy *kernel.UUID) (*Area, error) {
	a, err := NewArea(id, city, name)
	if err != nil {
		return nil, err
	}

	a.deletedAt = deletedAt
	a.deletedBy = deletedBy
	return a, nil
}

// Validate ensures the Area instance was properly constructed.
func (a *Area) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAreaIsNotConstructed
	}
	return nil
}

// ID returns the area's unique identifier.
func (a *Area) ID() kernel.UUID { return a.id }

// City returns the city the area belongs to.
func (a *Area) City() string { return a.city }

// Name returns the area's district name.
func (a *Area) Name() string { return a.name }

// DeletedAt returns the soft-delete timestamp, nil while the area is live.
func (a *Area) DeletedAt() *time.Time { return a.deletedAt }

// DeletedBy returns who soft-deleted the area, nil while the area is live.
func (a *Area) DeletedBy() *kernel.UUID { return a.deletedBy }

// IsDeleted reports whether the area has been soft-deleted.
func (a *Area) IsDeleted() bool { return a.deletedAt != nil }

// Update replaces the area's mutable attributes.
// Fails with InvalidState when the area has been soft-deleted.
func (a *Area) Update(city, name string) error {
	if a.IsDeleted() {
		return errs.NewInvalidStateError("update area", "deleted")
	}

	return errors.Join(
		a.setCity(city),
		a.setName(name),
	)
}

// Delete soft-deletes the area, recording who performed the deletion.
// Deleting an already deleted area is a no-op success.
func (a *Area) Delete(deletedBy kernel.UUID) error {
	if err := deletedBy.Validate(); err != nil {
		return err
	}

	if a.IsDeleted() {
		return nil
	}

	now := time.Now().UTC()
	a.deletedAt = &now
	a.deletedBy = &deletedBy
	return nil
}

func (a *Area) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Area) setCity(city string) error {
	if strings.TrimSpace(city) == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Area) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("area name")
	}
	a.name = name
	return nil
}
