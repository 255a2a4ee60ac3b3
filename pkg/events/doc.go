// Package events provides the in-memory event log whose read-out the
// path-authorization primitives filter.
//
// # Storage model
//
// A Log keeps one ring per priority (Debug, Info, Critical), so chatty
// low-priority traffic never displaces critical records. One number
// sequence spans all rings: each appended record takes the next
// EventNumber and numbers are never reused, letting a reader resume
// from the last number it saw without missing or repeating records
// that are still retained.
//
// # Read-out
//
// Events returns records in event number order, narrowed by a Filter
// using the same nil-is-wildcard convention as the path request types.
// EventsForSubject additionally drops records the subject may not
// read, decided by a ReadAuthorizer such as *pathcheck.Resolver, and
// fabric-sensitive records belonging to other fabrics. The trimmed
// read-out looks the same whether a record was withheld or never
// logged.
package events
