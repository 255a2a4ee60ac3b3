// Package pathcheck decides whether an event path request, possibly
// wildcarded at any level, could yield data the requesting subject is
// allowed to see.
//
// # The question it answers
//
// A read or subscribe request names events as (endpoint, cluster, event)
// paths where each component is concrete or a wildcard. Before doing any
// work for such a request, the server needs a yes/no: does at least one
// concrete path matched by the request both exist in the device's
// catalog and pass the subject's access control check? The Resolver
// answers exactly that, with a short-circuit existential search over the
// catalog in registration order, endpoints then clusters then events.
//
// # Two catalog modes
//
// A catalog in complete metadata mode enumerates each cluster's declared
// events, so the resolver iterates them and derives the per-event
// required privilege from the declarations. A coarse catalog cannot
// enumerate events. The resolver then assumes any named event exists and
// applies the View privilege floor at cluster granularity; exclusion
// must come from access control, never from existence ambiguity.
//
// # What a false answer reveals
//
// Nothing beyond "no data for you here". Unknown endpoints, unknown
// clusters, undeclared events, empty catalogs and access denials all
// collapse to the same plain false, so a caller cannot probe the device
// layout by distinguishing "does not exist" from "exists but denied".
//
// The resolver holds no state and is safe for concurrent use; each call
// is a bounded synchronous traversal of the catalog snapshot.
//
// C++ Reference: src/app/ember_coupling/EventPathValidity.mixin.h
package pathcheck
