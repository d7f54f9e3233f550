// Package queries contains read-only operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Search queries compose their predicates with the criteria package and run
// them through a shared gorm applier, so every search excludes soft-deleted
// rows and paginates the same way.
package queries

import (
	"fmt"

	"gorm.io/gorm"

	"bestcat/internal/core/application/usecases/queries/criteria"
	"bestcat/internal/pkg/errs"
)

// applyFilters translates a composed filter list into gorm conditions on tx.
// Root-entity columns are qualified with the table name so they stay
// unambiguous once a join is established. Joined predicates require their
// join path to be declared in joins; an undeclared path is a programming
// error and fails loudly.
func applyFilters(tx *gorm.DB, table string, filters []criteria.Filter, joins map[string]string) (*gorm.DB, error) {
	joined := make(map[string]bool)

	for _, f := range filters {
		column := table + "." + f.Column
		if f.Join != "" {
			clause, ok := joins[f.Join]
			if !ok {
				return nil, errs.NewValueIsInvalidErrorWithCause("filter join",
					fmt.Errorf("join path %q is not declared for table %q", f.Join, table))
			}
			if !joined[f.Join] {
				tx = tx.Joins(clause)
				joined[f.Join] = true
			}
			column = f.Join + "." + f.Column
		}

		switch f.Op {
		case criteria.Equals:
			tx = tx.Where(column+" = ?", f.Value)
		case criteria.Contains:
			value, ok := f.Value.(string)
			if !ok {
				return nil, errs.NewValueIsInvalidErrorWithCause("filter value",
					fmt.Errorf("contains predicate on %q needs a string value", column))
			}
			tx = tx.Where(column+" LIKE ?", "%"+value+"%")
		case criteria.IsNull:
			tx = tx.Where(column + " IS NULL")
		default:
			return nil, errs.NewValueIsInvalidErrorWithCause("filter op",
				fmt.Errorf("operator %d on %q is not supported", f.Op, column))
		}
	}

	return tx, nil
}
