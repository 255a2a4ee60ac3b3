package datamodel

// Fundamental ID types used throughout the data model.
// Widths follow the Matter Interaction Model path encoding.
type (
	// NodeID is a 64-bit node identifier.
	NodeID uint64

	// EndpointID is a 16-bit endpoint identifier.
	EndpointID uint16

	// ClusterID is a 32-bit cluster identifier.
	ClusterID uint32

	// EventID is a 32-bit event identifier.
	EventID uint32

	// EventNumber is a 64-bit monotonically increasing event counter.
	EventNumber uint64

	// DeviceTypeID is a 32-bit device type identifier.
	DeviceTypeID uint32
)

// Well-known cluster IDs used by examples and tests.
const (
	// ClusterIDOnOff is the On/Off cluster (no declared events).
	ClusterIDOnOff ClusterID = 0x0006

	// ClusterIDAccessControl is the Access Control cluster.
	ClusterIDAccessControl ClusterID = 0x001F

	// ClusterIDBasicInformation is the Basic Information cluster.
	ClusterIDBasicInformation ClusterID = 0x0028

	// ClusterIDSwitch is the Switch cluster.
	ClusterIDSwitch ClusterID = 0x003B
)

// Basic Information cluster event IDs.
// Spec: Section 11.1.6
const (
	EventIDStartUp          EventID = 0x00
	EventIDShutDown         EventID = 0x01
	EventIDLeave            EventID = 0x02
	EventIDReachableChanged EventID = 0x03
)

// Switch cluster event IDs.
// Spec: Section 1.13.7
const (
	EventIDSwitchLatched      EventID = 0x00
	EventIDInitialPress       EventID = 0x01
	EventIDLongPress          EventID = 0x02
	EventIDShortRelease       EventID = 0x03
	EventIDLongRelease        EventID = 0x04
	EventIDMultiPressOngoing  EventID = 0x05
	EventIDMultiPressComplete EventID = 0x06
)

// Access Control cluster event IDs.
// Spec: Section 9.10.7
const (
	EventIDAccessControlEntryChanged EventID = 0x00
)
