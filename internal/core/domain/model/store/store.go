// Package store contains the Store entity. Stores are searchable and
// soft-deletable: deletion stamps the record instead of removing it, and
// every search predicate composition excludes stamped records.
package store

import (
	"errors"
	"strings"
	"time"

	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/pkg/errs"
)

// ErrStoreIsNotConstructed is returned when a Store instance was not created
// through the NewStore or RestoreStore factory functions.
var ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore constructor")

// Store represents a restaurant registered on the platform. It references
// its owner and the area it serves, and carries the category identifiers it
// was registered under.
type Store struct {
	id          kernel.UUID
	ownerID     kernel.UUID
	areaID      kernel.UUID
	name        string
	address     string
	categoryIDs []kernel.UUID

	deletedAt *time.Time
	deletedBy *kernel.UUID

	isConstructed bool
}

// NewStore creates a Store with validation. Name and address must not be
// blank; owner and area references must be constructed UUIDs.
func NewStore(
	id kernel.UUID,
	ownerID kernel.UUID,
	areaID kernel.UUID,
	name string,
	address string,
	categoryIDs []kernel.UUID,
) (*Store, error) {
	s := &Store{isConstructed: true}

	if err := errors.Join(
		s.setID(id),
		s.setOwnerID(ownerID),
		s.setAreaID(areaID),
		s.setName(name),
		s.setAddress(address),
		s.setCategoryIDs(categoryIDs),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStore reconstructs a Store from persisted state, including its
// soft-delete stamp.
func RestoreStore(
	id kernel.UUID,
	ownerID kernel.UUID,
	areaID kernel.UUID,
	name string,
	address string,
	categoryIDs []kernel.UUID,
	deletedAt *time.Time,
	deletedBy *kernel.UUID,
) (*Store, error) {
	s, err := NewStore(id, ownerID, areaID, name, address, categoryIDs)
	if err != nil {
		return nil, err
	}

	s.deletedAt = deletedAt
	s.deletedBy = deletedBy
	return s, nil
}

// Validate ensures the Store instance was properly constructed.
func (s *Store) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStoreIsNotConstructed
	}
	return nil
}

// ID returns the store's unique identifier.
func (s *Store) ID() kernel.UUID { return s.id }

// OwnerID returns the identifier of the owning user.
func (s *Store) OwnerID() kernel.UUID { return s.ownerID }

// AreaID returns the identifier of the area the store serves.
func (s *Store) AreaID() kernel.UUID { return s.areaID }

// Name returns the store's display name.
func (s *Store) Name() string { return s.name }

// Address returns the store's street address.
func (s *Store) Address() string { return s.address }

// CategoryIDs returns a copy of the category identifiers the store is
// registered under.
func (s *Store) CategoryIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(s.categoryIDs))
	copy(ids, s.categoryIDs)
	return ids
}

// DeletedAt returns the soft-delete timestamp, nil while the store is live.
func (s *Store) DeletedAt() *time.Time { return s.deletedAt }

// DeletedBy returns who soft-deleted the store, nil while the store is live.
func (s *Store) DeletedBy() *kernel.UUID { return s.deletedBy }

// IsDeleted reports whether the store has been soft-deleted.
func (s *Store) IsDeleted() bool { return s.deletedAt != nil }

// Update replaces the store's mutable attributes.
// Fails with InvalidState when the store has been soft-deleted.
func (s *Store) Update(name, address string, areaID kernel.UUID, categoryIDs []kernel.UUID) error {
	if s.IsDeleted() {
		return errs.NewInvalidStateError("update store", "deleted")
	}

	return errors.Join(
		s.setName(name),
		s.setAddress(address),
		s.setAreaID(areaID),
		s.setCategoryIDs(categoryIDs),
	)
}

// Delete soft-deletes the store, recording who performed the deletion.
// Deleting an already deleted store is a no-op success.
func (s *Store) Delete(deletedBy kernel.UUID) error {
	if err := deletedBy.Validate(); err != nil {
		return err
	}

	if s.IsDeleted() {
		return nil
	}

	now := time.Now().UTC()
	s.deletedAt = &now
	s.deletedBy = &deletedBy
	return nil
}

func (s *Store) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Store) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	s.ownerID = ownerID
	return nil
}

func (s *Store) setAreaID(areaID kernel.UUID) error {
	if err := areaID.Validate(); err != nil {
		return err
	}
	s.areaID = areaID
	return nil
}

func (s *Store) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("store name")
	}
	s.name = name
	return nil
}

func (s *Store) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("store address")
	}
	s.address = address
	return nil
}

func (s *Store) setCategoryIDs(categoryIDs []kernel.UUID) error {
	for _, id := range categoryIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	s.categoryIDs = make([]kernel.UUID, len(categoryIDs))
	copy(s.categoryIDs, categoryIDs)
	return nil
}
