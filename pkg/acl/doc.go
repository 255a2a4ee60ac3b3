// Package acl implements the Matter Access Control List engine.
//
// Every interaction a node serves is gated by an ACL check: a subject
// (the authenticated peer on a session) asks to perform an operation on
// a target (a cluster on an endpoint), and the engine answers Allowed
// or Denied. The answer is derived solely from the ACL entries
// installed for the subject's fabric.
//
// The pieces:
//   - Privilege: the access levels (View, ProxyView, Operate, Manage,
//     Administer) with the implication hierarchy of Spec 6.6.6.2.
//   - SubjectDescriptor: the authenticated identity (auth mode, node ID,
//     CASE Authenticated Tags, commissioning state).
//   - RequestPath: the operation target (cluster, endpoint, request type
//     and, for per-entity checks such as event reads, the entity ID).
//   - Entry / Target: stored grants, scoped to a fabric.
//   - Checker: the decision algorithm over installed entries.
//   - Manager: a Checker plus a persistence Store and entry CRUD with
//     validation and per-fabric limits.
//
// Decision algorithm (Spec 6.6.6.2):
//  1. A PASE session during commissioning holds implicit Administer.
//  2. Otherwise scan the subject fabric's entries. An entry applies when
//     its auth mode matches, its privilege grants the required one, one
//     of its subjects matches (exact node ID or CAT version match), and
//     one of its targets covers the request path.
//  3. The first applicable entry allows; nothing applicable denies.
//
// Spec References:
//   - Section 6.6: Access Control
//   - Section 6.6.6: Conceptual Access Control Algorithm
//   - Section 9.10.5: Access Control Cluster Data Types
package acl
