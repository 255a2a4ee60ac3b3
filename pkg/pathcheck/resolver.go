package pathcheck

import (
	"errors"

	"github.com/pion/logging"

	"github.com/backkem/matterpath/pkg/acl"
	"github.com/backkem/matterpath/pkg/datamodel"
)

// Configuration errors.
var (
	ErrNoCatalog       = errors.New("pathcheck: catalog lookup is required")
	ErrNoAccessDecider = errors.New("pathcheck: access decider is required")
)

// AccessDecider is the access control decision port the resolver
// consults for every candidate path. The acl package's Checker and
// Manager satisfy it.
//
// Any result other than an explicit allow folds to deny.
type AccessDecider interface {
	Check(subject acl.SubjectDescriptor, path acl.RequestPath, privilege acl.Privilege) acl.Result
}

var (
	_ AccessDecider = (*acl.Checker)(nil)
	_ AccessDecider = (*acl.Manager)(nil)
)

// Config collects the resolver's collaborators.
type Config struct {
	// Catalog is the capability catalog to resolve paths against.
	// Required.
	Catalog datamodel.CatalogLookup

	// Access decides per-path privilege checks. Required.
	Access AccessDecider

	// LoggerFactory creates the resolver's logger. Optional.
	LoggerFactory logging.LoggerFactory
}

// Resolver answers existential event path queries against a catalog and
// an access control port. Stateless; safe for concurrent use.
type Resolver struct {
	catalog datamodel.CatalogLookup
	access  AccessDecider
	log     logging.LeveledLogger
}

// New creates a resolver from the config.
func New(config Config) (*Resolver, error) {
	if config.Catalog == nil {
		return nil, ErrNoCatalog
	}
	if config.Access == nil {
		return nil, ErrNoAccessDecider
	}

	loggerFactory := config.LoggerFactory
	if loggerFactory == nil {
		loggerFactory = logging.NewDefaultLoggerFactory()
	}

	return &Resolver{
		catalog: config.Catalog,
		access:  config.Access,
		log:     loggerFactory.NewLogger("pathcheck"),
	}, nil
}

// IsValidEventPath reports whether at least one concrete event path
// matched by the request exists and is readable by the subject. The
// search short-circuits on the first readable path; with all selectors
// concrete it degenerates to a single existence-gated access check.
//
// False carries no further information. A non-existent path and a
// denied path are indistinguishable to the caller.
func (r *Resolver) IsValidEventPath(request datamodel.EventPathRequest, subject acl.SubjectDescriptor) bool {
	valid := false
	if request.HasWildcardEndpoint() {
		for _, endpoint := range r.catalog.EndpointsKnownToDevice() {
			if r.hasValidEventPathForEndpoint(endpoint, request, subject) {
				valid = true
				break
			}
		}
	} else {
		valid = r.hasValidEventPathForEndpoint(*request.Endpoint, request, subject)
	}

	r.log.Tracef("%s: valid=%v", request, valid)
	return valid
}

// AnyValidEventPath reports whether at least one of the requests names a
// readable path. The gate for a subscribe request carrying several event
// paths: it is serviceable when any of them could yield data.
func (r *Resolver) AnyValidEventPath(requests []datamodel.EventPathRequest, subject acl.SubjectDescriptor) bool {
	for _, request := range requests {
		if r.IsValidEventPath(request, subject) {
			return true
		}
	}
	return false
}

// CanReadEvent decides whether the subject may read one concrete event
// path: the event must exist in the catalog and the subject must hold
// its required privilege. Event delivery uses this to filter records per
// recipient.
func (r *Resolver) CanReadEvent(subject acl.SubjectDescriptor, path datamodel.ConcreteEventPath) bool {
	cluster := r.catalog.FindCluster(path.Endpoint, path.Cluster)
	if cluster == nil {
		return false
	}
	if !clusterSupportsEvent(cluster, path.Event) {
		return false
	}
	return r.canAccessEvent(subject, path, requiredEventPrivilege(cluster, path.Event))
}

// hasValidEventPathForEndpoint expands a wildcard cluster selector over
// one endpoint's clusters, or resolves a concrete one.
func (r *Resolver) hasValidEventPathForEndpoint(endpoint datamodel.EndpointID, request datamodel.EventPathRequest, subject acl.SubjectDescriptor) bool {
	if request.HasWildcardCluster() {
		clusters := r.catalog.ClustersOnEndpoint(endpoint)
		if clusters == nil {
			// Unknown endpoint. Nothing valid in here.
			return false
		}
		for _, cluster := range clusters {
			if r.hasValidEventPathForEndpointAndCluster(endpoint, cluster, request, subject) {
				return true
			}
		}
		return false
	}

	cluster := r.catalog.FindCluster(endpoint, *request.Cluster)
	if cluster == nil {
		return false
	}
	return r.hasValidEventPathForEndpointAndCluster(endpoint, cluster, request, subject)
}

// hasValidEventPathForEndpointAndCluster expands a wildcard event
// selector within one cluster, or resolves a concrete one.
func (r *Resolver) hasValidEventPathForEndpointAndCluster(endpoint datamodel.EndpointID, cluster datamodel.ClusterDescriptor, request datamodel.EventPathRequest, subject acl.SubjectDescriptor) bool {
	if request.HasWildcardEvent() {
		if cluster.EventCompleteness() == datamodel.MetadataCoarse {
			// No way to expand the wildcard. Assume View is needed for
			// whatever events are involved and ask once at cluster
			// granularity.
			clusterPath := datamodel.ConcreteClusterPath{Endpoint: endpoint, Cluster: cluster.ClusterID()}
			return r.canAccessClusterEvents(subject, clusterPath)
		}

		for _, entry := range cluster.EventList() {
			path := datamodel.ConcreteEventPath{Endpoint: endpoint, Cluster: cluster.ClusterID(), Event: entry.ID}
			// The path exists; only the access check decides from here.
			if r.canAccessEvent(subject, path, toACLPrivilege(entry.ReadPrivilege)) {
				return true
			}
		}
		return false
	}

	if !clusterSupportsEvent(cluster, *request.Event) {
		// Not an existing event path. No access check happens, so the
		// answer is the same false a denial would produce.
		return false
	}

	path := datamodel.ConcreteEventPath{Endpoint: endpoint, Cluster: cluster.ClusterID(), Event: *request.Event}
	return r.canAccessEvent(subject, path, requiredEventPrivilege(cluster, *request.Event))
}

// canAccessEvent asks the access decider about one fully concrete event
// path.
func (r *Resolver) canAccessEvent(subject acl.SubjectDescriptor, path datamodel.ConcreteEventPath, required acl.Privilege) bool {
	requestPath := acl.NewRequestPathWithEntity(
		uint32(path.Cluster), uint16(path.Endpoint), acl.RequestTypeEventRead, uint32(path.Event))
	return r.access.Check(subject, requestPath, required) == acl.ResultAllowed
}

// canAccessClusterEvents asks the coarser question "may the subject read
// events in this cluster at all": no event named, View floor. Used when
// a coarse catalog cannot expand an event wildcard.
func (r *Resolver) canAccessClusterEvents(subject acl.SubjectDescriptor, path datamodel.ConcreteClusterPath) bool {
	requestPath := acl.NewRequestPath(
		uint32(path.Cluster), uint16(path.Endpoint), acl.RequestTypeEventRead)
	return r.access.Check(subject, requestPath, acl.PrivilegeView) == acl.ResultAllowed
}

// clusterSupportsEvent reports whether the event is part of the
// cluster's declared surface. A coarse descriptor cannot enumerate its
// events and claims support for any event; exclusion must then come
// from the access check rather than from existence ambiguity.
func clusterSupportsEvent(cluster datamodel.ClusterDescriptor, event datamodel.EventID) bool {
	if cluster.EventCompleteness() == datamodel.MetadataCoarse {
		// No way to tell. Claim supported.
		return true
	}
	for _, entry := range cluster.EventList() {
		if entry.ID == event {
			return true
		}
	}
	return false
}

// requiredEventPrivilege derives the privilege needed to read one event.
// Complete catalogs declare it per event; a coarse catalog cannot, so
// the View floor applies.
func requiredEventPrivilege(cluster datamodel.ClusterDescriptor, event datamodel.EventID) acl.Privilege {
	if cluster.EventCompleteness() == datamodel.MetadataCoarse {
		return acl.PrivilegeView
	}
	for _, entry := range cluster.EventList() {
		if entry.ID == event {
			return toACLPrivilege(entry.ReadPrivilege)
		}
	}
	return acl.PrivilegeView
}

// toACLPrivilege converts a catalog-declared privilege to the access
// control engine's scale. Undeclared means View.
func toACLPrivilege(p datamodel.Privilege) acl.Privilege {
	switch p {
	case datamodel.PrivilegeProxyView:
		return acl.PrivilegeProxyView
	case datamodel.PrivilegeOperate:
		return acl.PrivilegeOperate
	case datamodel.PrivilegeManage:
		return acl.PrivilegeManage
	case datamodel.PrivilegeAdminister:
		return acl.PrivilegeAdminister
	default:
		return acl.PrivilegeView
	}
}
