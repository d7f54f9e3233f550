// Package order contains the Order aggregate: the aggregate root itself,
// its Item line entries, the Status state machine, and the fulfilment Type.
//
// The aggregate is the single consistency unit for an order's item list and
// status. All mutation goes through validated methods; there is no setter
// that writes the status field directly, so illegal transitions cannot be
// expressed against this API.
package order
