package criteria

import (
	"errors"
	"fmt"

	"bestcat/internal/pkg/errs"
	"bestcat/internal/pkg/guard"
)

// ErrPageIsNotConstructed is returned when a Page instance was not created
// through the NewPage factory function.
var ErrPageIsNotConstructed = errors.New("Page must be created via NewPage constructor")

// Page is the pagination window of a search: a zero-based page index and a
// positive page size. Sort order is not part of the page; searches always
// sort by creation time descending with the identifier as tie-break so
// pagination stays deterministic across calls.
type Page struct { //nolint:recvcheck //using for validation
	index int
	size  int

	guard guard.ConstructorGuard
}

// NewPage creates a validated pagination window.
// The index must be at least 0 and the size greater than 0.
func NewPage(index, size int) (Page, error) {
	page := Page{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		page.setIndex(index),
		page.setSize(size),
	); err != nil {
		return Page{}, err
	}

	return page, nil
}

// Validate ensures the page was created through the constructor.
func (p Page) Validate() error {
	return p.guard.Validate(ErrPageIsNotConstructed)
}

// Index returns the zero-based page index.
func (p Page) Index() int {
	return p.index
}

// Size returns the page size.
func (p Page) Size() int {
	return p.size
}

// Offset returns the number of rows to skip for this window.
func (p Page) Offset() int {
	return p.index * p.size
}

func (p *Page) setIndex(index int) error {
	if index < 0 {
		return errs.NewValueIsInvalidErrorWithCause("page index",
			fmt.Errorf("%d is negative", index))
	}
	p.index = index
	return nil
}

func (p *Page) setSize(size int) error {
	if size <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("page size",
			fmt.Errorf("%d is not greater than 0", size))
	}
	p.size = size
	return nil
}

// PageMeta describes the result window of an executed search.
type PageMeta struct {
	TotalCount int64
	TotalPages int
	Page       int
	Size       int
}

// NewPageMeta computes page metadata for a total row count and the window
// that produced it.
func NewPageMeta(totalCount int64, page Page) PageMeta {
	totalPages := int((totalCount + int64(page.Size()) - 1) / int64(page.Size()))

	return PageMeta{
		TotalCount: totalCount,
		TotalPages: totalPages,
		Page:       page.Index(),
		Size:       page.Size(),
	}
}
