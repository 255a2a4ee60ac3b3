package acl

import "github.com/backkem/matterpath/pkg/fabric"

// Target scopes an ACL entry to a subset of the node's resources.
// A nil field is a wildcard. At least one field must be set, and
// Endpoint and DeviceType are mutually exclusive.
// Spec: Section 9.10.5.5 (AccessControlTargetStruct)
type Target struct {
	Cluster    *uint32 // nil = any cluster
	Endpoint   *uint16 // nil = any endpoint
	DeviceType *uint32 // nil = no device type constraint
}

// NewTargetCluster targets one cluster on any endpoint.
func NewTargetCluster(cluster uint32) Target {
	return Target{Cluster: &cluster}
}

// NewTargetEndpoint targets any cluster on one endpoint.
func NewTargetEndpoint(endpoint uint16) Target {
	return Target{Endpoint: &endpoint}
}

// NewTargetDeviceType targets any cluster on endpoints carrying the
// device type.
func NewTargetDeviceType(deviceType uint32) Target {
	return Target{DeviceType: &deviceType}
}

// NewTargetClusterEndpoint targets one cluster on one endpoint.
func NewTargetClusterEndpoint(cluster uint32, endpoint uint16) Target {
	return Target{Cluster: &cluster, Endpoint: &endpoint}
}

// NewTargetClusterDeviceType targets one cluster on endpoints carrying
// the device type.
func NewTargetClusterDeviceType(cluster uint32, deviceType uint32) Target {
	return Target{Cluster: &cluster, DeviceType: &deviceType}
}

// IsEmpty returns true if no field is set.
func (t Target) IsEmpty() bool {
	return t.Cluster == nil && t.Endpoint == nil && t.DeviceType == nil
}

// HasCluster returns true if a specific cluster is targeted.
func (t Target) HasCluster() bool {
	return t.Cluster != nil
}

// HasEndpoint returns true if a specific endpoint is targeted.
func (t Target) HasEndpoint() bool {
	return t.Endpoint != nil
}

// HasDeviceType returns true if a device type constraint is set.
func (t Target) HasDeviceType() bool {
	return t.DeviceType != nil
}

// Entry is one stored ACL grant: a privilege handed to a set of
// subjects over a set of targets, within one fabric. An empty Subjects
// list is a wildcard (CASE and Group only), an empty Targets list
// covers every resource on the node.
// Spec: Section 9.10.5.6 (AccessControlEntryStruct)
type Entry struct {
	FabricIndex fabric.FabricIndex // owning fabric, 1-254
	Privilege   Privilege          // level granted
	AuthMode    AuthMode           // CASE or Group (PASE is never stored)
	Subjects    []uint64           // node IDs, CAT node IDs or group node IDs
	Targets     []Target           // empty = every resource
}

// RequestPath names what an access check is about: one cluster on one
// endpoint, the kind of operation, and optionally the specific entity
// (attribute, command or event ID) being touched.
//
// A nil EntityID asks the coarser question "does the subject have this
// privilege for anything in the cluster", which is what wildcard
// expansion uses before it commits to concrete paths.
type RequestPath struct {
	// Cluster is the cluster being accessed.
	Cluster uint32

	// Endpoint is the endpoint being accessed.
	Endpoint uint16

	// RequestType is the kind of operation.
	RequestType RequestType

	// EntityID is the attribute, command or event ID, or nil when the
	// check is at cluster granularity.
	EntityID *uint32
}

// NewRequestPath builds a cluster-granularity request path.
func NewRequestPath(cluster uint32, endpoint uint16, reqType RequestType) RequestPath {
	return RequestPath{
		Cluster:     cluster,
		Endpoint:    endpoint,
		RequestType: reqType,
	}
}

// NewRequestPathWithEntity builds a request path naming a specific
// attribute, command or event.
func NewRequestPathWithEntity(cluster uint32, endpoint uint16, reqType RequestType, entityID uint32) RequestPath {
	return RequestPath{
		Cluster:     cluster,
		Endpoint:    endpoint,
		RequestType: reqType,
		EntityID:    &entityID,
	}
}
