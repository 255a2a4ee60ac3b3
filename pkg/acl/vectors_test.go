package acl

import "testing"

// Test vectors ported from the C++ reference implementation,
// connectedhomeip/src/access/tests/TestAccessControl.cpp. They exercise
// the decision algorithm against the same entry set and expectations.

// Cluster IDs used in the vectors
const (
	kOnOffCluster         uint32 = 0x0000_0006
	kLevelControlCluster  uint32 = 0x0000_0008
	kAccessControlCluster uint32 = 0x0000_001F
	kColorControlCluster  uint32 = 0x0000_0300
)

// Node IDs used in the vectors
const (
	kOperationalNodeId0 uint64 = 0x0123_4567_89AB_CDEF
	kOperationalNodeId1 uint64 = 0x1234_5678_1234_5678
	kOperationalNodeId2 uint64 = 0x1122_3344_5566_7788
	kOperationalNodeId3 uint64 = 0x1111_1111_1111_1111
	kOperationalNodeId4 uint64 = 0x2222_2222_2222_2222
	kOperationalNodeId5 uint64 = 0x3333_3333_3333_3333
)

// CASE Auth Tags used in the vectors
var (
	kCASEAuthTag0 = NewCASEAuthTag(0x0001, 0x0001) // 0x0001_0001
	kCASEAuthTag1 = NewCASEAuthTag(0x0002, 0x0001) // 0x0002_0001
	kCASEAuthTag2 = NewCASEAuthTag(0xABCD, 0x0002) // 0xABCD_0002
	kCASEAuthTag3 = NewCASEAuthTag(0xABCD, 0x0008) // 0xABCD_0008
	kCASEAuthTag4 = NewCASEAuthTag(0xABCD, 0xABCD) // 0xABCD_ABCD
)

// Group node IDs
var (
	kGroup2 = NodeIDFromGroupID(0x0002)
	kGroup4 = NodeIDFromGroupID(0x0004)
)

// PAKE node IDs
var (
	kPaseVerifier0 = NodeIDFromPAKEKeyID(0x0000)
	kPaseVerifier1 = NodeIDFromPAKEKeyID(0x0001)
	kPaseVerifier3 = NodeIDFromPAKEKeyID(0x0003)
)

// vectorEntries mirrors the C++ entryData1[] entry set.
var vectorEntries = []Entry{
	// Entry 0: Fabric 1, Administer to specific node
	{
		FabricIndex: 1,
		Privilege:   PrivilegeAdminister,
		AuthMode:    AuthModeCASE,
		Subjects:    []uint64{kOperationalNodeId3},
	},
	// Entry 1: Fabric 1, View to anyone (wildcard subjects)
	{
		FabricIndex: 1,
		Privilege:   PrivilegeView,
		AuthMode:    AuthModeCASE,
	},
	// Entry 2: Fabric 2, Administer to specific node
	{
		FabricIndex: 2,
		Privilege:   PrivilegeAdminister,
		AuthMode:    AuthModeCASE,
		Subjects:    []uint64{kOperationalNodeId4},
	},
	// Entry 3: Fabric 1, Operate on OnOff cluster (any endpoint)
	{
		FabricIndex: 1,
		Privilege:   PrivilegeOperate,
		AuthMode:    AuthModeCASE,
		Targets:     []Target{NewTargetCluster(kOnOffCluster)},
	},
	// Entry 4: Fabric 2, Manage on OnOff@endpoint2 to specific node
	{
		FabricIndex: 2,
		Privilege:   PrivilegeManage,
		AuthMode:    AuthModeCASE,
		Subjects:    []uint64{kOperationalNodeId5},
		Targets:     []Target{NewTargetClusterEndpoint(kOnOffCluster, 2)},
	},
	// Entry 5: Fabric 2, ProxyView for Group2 on multiple targets
	{
		FabricIndex: 2,
		Privilege:   PrivilegeProxyView,
		AuthMode:    AuthModeGroup,
		Subjects:    []uint64{kGroup2},
		Targets: []Target{
			NewTargetClusterEndpoint(kLevelControlCluster, 1),
			NewTargetCluster(kOnOffCluster),
			NewTargetEndpoint(2),
		},
	},
	// Entry 6: Fabric 1, Administer to CAT0
	{
		FabricIndex: 1,
		Privilege:   PrivilegeAdminister,
		AuthMode:    AuthModeCASE,
		Subjects:    []uint64{kCASEAuthTag0.NodeID()},
	},
	// Entry 7: Fabric 2, Manage on OnOff to CAT3 or CAT1
	{
		FabricIndex: 2,
		Privilege:   PrivilegeManage,
		AuthMode:    AuthModeCASE,
		Subjects:    []uint64{kCASEAuthTag3.NodeID(), kCASEAuthTag1.NodeID()},
		Targets:     []Target{NewTargetCluster(kOnOffCluster)},
	},
	// Entry 8: Fabric 2, Operate on LevelControl to CAT4 or CAT1
	{
		FabricIndex: 2,
		Privilege:   PrivilegeOperate,
		AuthMode:    AuthModeCASE,
		Subjects:    []uint64{kCASEAuthTag4.NodeID(), kCASEAuthTag1.NodeID()},
		Targets:     []Target{NewTargetCluster(kLevelControlCluster)},
	},
}

// loadVectorEntries installs vectorEntries into a fresh checker.
func loadVectorEntries(t testing.TB) *Checker {
	t.Helper()

	c := NewChecker(nil)
	for i, entry := range vectorEntries {
		if err := c.AddEntry(entry); err != nil {
			t.Fatalf("vectorEntries[%d]: AddEntry failed: %v", i, err)
		}
	}
	return c
}

// checkVector is a single check with its expected outcome.
type checkVector struct {
	Name      string
	Subject   SubjectDescriptor
	Path      RequestPath
	Privilege Privilege
	Want      Result
}

// checkVectors mirrors the C++ checkData1[] expectations.
var checkVectors = []checkVector{
	// === Implicit PASE ===
	{"PASE implicit admin f=0", SubjectDescriptor{FabricIndex: 0, AuthMode: AuthModePASE, Subject: kPaseVerifier0, IsCommissioning: true},
		NewRequestPath(1, 2, RequestTypeAttributeRead), PrivilegeAdminister, ResultAllowed},
	{"PASE implicit admin f=1", SubjectDescriptor{FabricIndex: 1, AuthMode: AuthModePASE, Subject: kPaseVerifier0, IsCommissioning: true},
		NewRequestPath(3, 4, RequestTypeAttributeRead), PrivilegeAdminister, ResultAllowed},
	{"PASE implicit admin f=2", SubjectDescriptor{FabricIndex: 2, AuthMode: AuthModePASE, Subject: kPaseVerifier0, IsCommissioning: true},
		NewRequestPath(5, 6, RequestTypeAttributeRead), PrivilegeAdminister, ResultAllowed},
	{"PASE implicit admin f=2 v1", SubjectDescriptor{FabricIndex: 2, AuthMode: AuthModePASE, Subject: kPaseVerifier1, IsCommissioning: true},
		NewRequestPath(5, 6, RequestTypeAttributeRead), PrivilegeAdminister, ResultAllowed},
	{"PASE implicit admin f=3", SubjectDescriptor{FabricIndex: 3, AuthMode: AuthModePASE, Subject: kPaseVerifier3, IsCommissioning: true},
		NewRequestPath(7, 8, RequestTypeAttributeRead), PrivilegeAdminister, ResultAllowed},

	// === Entry 0: Fabric 1, Administer to kOperationalNodeId3 ===
	{"Entry0: admin on ACL cluster", CASESubject(1, kOperationalNodeId3),
		NewRequestPath(kAccessControlCluster, 0, RequestTypeAttributeRead), PrivilegeAdminister, ResultAllowed},
	{"Entry0: manage any", CASESubject(1, kOperationalNodeId3),
		NewRequestPath(1, 2, RequestTypeAttributeRead), PrivilegeManage, ResultAllowed},
	{"Entry0: operate any", CASESubject(1, kOperationalNodeId3),
		NewRequestPath(3, 4, RequestTypeAttributeRead), PrivilegeOperate, ResultAllowed},
	{"Entry0: view any", CASESubject(1, kOperationalNodeId3),
		NewRequestPath(5, 6, RequestTypeAttributeRead), PrivilegeView, ResultAllowed},
	{"Entry0: proxy view any", CASESubject(1, kOperationalNodeId3),
		NewRequestPath(7, 8, RequestTypeAttributeRead), PrivilegeProxyView, ResultAllowed},
	{"Entry0: wrong fabric", CASESubject(2, kOperationalNodeId3),
		NewRequestPath(1, 2, RequestTypeAttributeRead), PrivilegeAdminister, ResultDenied},
	{"Entry0: wrong auth mode", SubjectDescriptor{FabricIndex: 1, AuthMode: AuthModeGroup, Subject: kOperationalNodeId3},
		NewRequestPath(1, 2, RequestTypeAttributeRead), PrivilegeAdminister, ResultDenied},
	{"Entry0: wrong subject", CASESubject(1, kOperationalNodeId4),
		NewRequestPath(1, 2, RequestTypeAttributeRead), PrivilegeAdminister, ResultDenied},

	// === Entry 1: Fabric 1, View wildcard ===
	{"Entry1: view allowed", CASESubject(1, kOperationalNodeId1),
		NewRequestPath(11, 13, RequestTypeAttributeRead), PrivilegeView, ResultAllowed},
	{"Entry1: operate not granted", CASESubject(1, kOperationalNodeId1),
		NewRequestPath(11, 13, RequestTypeAttributeRead), PrivilegeOperate, ResultDenied},
	{"Entry1: wrong fabric", CASESubject(2, kOperationalNodeId1),
		NewRequestPath(11, 13, RequestTypeAttributeRead), PrivilegeView, ResultDenied},
	{"Entry1: wrong auth mode", SubjectDescriptor{FabricIndex: 1, AuthMode: AuthModeGroup, Subject: kOperationalNodeId1},
		NewRequestPath(11, 13, RequestTypeAttributeRead), PrivilegeView, ResultDenied},

	// === Entry 2: Fabric 2, Administer to kOperationalNodeId4 ===
	{"Entry2: admin ACL", CASESubject(2, kOperationalNodeId4),
		NewRequestPath(kAccessControlCluster, 0, RequestTypeAttributeRead), PrivilegeAdminister, ResultAllowed},
	{"Entry2: manage any", CASESubject(2, kOperationalNodeId4),
		NewRequestPath(1, 2, RequestTypeAttributeRead), PrivilegeManage, ResultAllowed},
	{"Entry2: operate any", CASESubject(2, kOperationalNodeId4),
		NewRequestPath(3, 4, RequestTypeAttributeRead), PrivilegeOperate, ResultAllowed},
	{"Entry2: view any", CASESubject(2, kOperationalNodeId4),
		NewRequestPath(5, 6, RequestTypeAttributeRead), PrivilegeView, ResultAllowed},
	{"Entry2: proxy view any", CASESubject(2, kOperationalNodeId4),
		NewRequestPath(7, 8, RequestTypeAttributeRead), PrivilegeProxyView, ResultAllowed},
	{"Entry2: wrong fabric", CASESubject(1, kOperationalNodeId4),
		NewRequestPath(1, 2, RequestTypeAttributeRead), PrivilegeAdminister, ResultDenied},
	{"Entry2: wrong auth mode", SubjectDescriptor{FabricIndex: 2, AuthMode: AuthModeGroup, Subject: kOperationalNodeId4},
		NewRequestPath(1, 2, RequestTypeAttributeRead), PrivilegeAdminister, ResultDenied},
	{"Entry2: wrong subject", CASESubject(2, kOperationalNodeId3),
		NewRequestPath(1, 2, RequestTypeAttributeRead), PrivilegeAdminister, ResultDenied},

	// === Entry 3: Fabric 1, Operate on OnOff ===
	{"Entry3: operate OnOff ep11", CASESubject(1, kOperationalNodeId1),
		NewRequestPath(kOnOffCluster, 11, RequestTypeAttributeRead), PrivilegeOperate, ResultAllowed},
	{"Entry3: operate OnOff ep13", CASESubject(1, kOperationalNodeId2),
		NewRequestPath(kOnOffCluster, 13, RequestTypeAttributeRead), PrivilegeOperate, ResultAllowed},
	{"Entry3: wrong fabric", CASESubject(2, kOperationalNodeId1),
		NewRequestPath(kOnOffCluster, 11, RequestTypeAttributeRead), PrivilegeOperate, ResultDenied},
	{"Entry3: wrong cluster", CASESubject(1, kOperationalNodeId1),
		NewRequestPath(123, 11, RequestTypeAttributeRead), PrivilegeOperate, ResultDenied},
	{"Entry3: manage not granted", CASESubject(1, kOperationalNodeId1),
		NewRequestPath(kOnOffCluster, 11, RequestTypeAttributeRead), PrivilegeManage, ResultDenied},

	// === Entry 4: Fabric 2, Manage on OnOff@ep2 to kOperationalNodeId5 ===
	{"Entry4: manage OnOff@2", CASESubject(2, kOperationalNodeId5),
		NewRequestPath(kOnOffCluster, 2, RequestTypeAttributeRead), PrivilegeManage, ResultAllowed},
	{"Entry4: wrong fabric", CASESubject(1, kOperationalNodeId5),
		NewRequestPath(kOnOffCluster, 2, RequestTypeAttributeRead), PrivilegeManage, ResultDenied},
	{"Entry4: wrong auth mode", SubjectDescriptor{FabricIndex: 2, AuthMode: AuthModeGroup, Subject: kOperationalNodeId5},
		NewRequestPath(kOnOffCluster, 2, RequestTypeAttributeRead), PrivilegeManage, ResultDenied},
	{"Entry4: wrong subject", CASESubject(2, kOperationalNodeId3),
		NewRequestPath(kOnOffCluster, 2, RequestTypeAttributeRead), PrivilegeManage, ResultDenied},
	{"Entry4: wrong cluster", CASESubject(2, kOperationalNodeId5),
		NewRequestPath(kLevelControlCluster, 2, RequestTypeAttributeRead), PrivilegeManage, ResultDenied},
	{"Entry4: wrong endpoint", CASESubject(2, kOperationalNodeId5),
		NewRequestPath(kOnOffCluster, 1, RequestTypeAttributeRead), PrivilegeManage, ResultDenied},
	{"Entry4: admin not granted", CASESubject(2, kOperationalNodeId5),
		NewRequestPath(kOnOffCluster, 2, RequestTypeAttributeRead), PrivilegeAdminister, ResultDenied},

	// === Entry 5: Fabric 2, ProxyView Group2 on multiple targets ===
	{"Entry5: proxyview Level@1", GroupSubject(2, 0x0002),
		NewRequestPath(kLevelControlCluster, 1, RequestTypeAttributeRead), PrivilegeProxyView, ResultAllowed},
	{"Entry5: proxyview OnOff@3", GroupSubject(2, 0x0002),
		NewRequestPath(kOnOffCluster, 3, RequestTypeAttributeRead), PrivilegeProxyView, ResultAllowed},
	{"Entry5: proxyview Color@2", GroupSubject(2, 0x0002),
		NewRequestPath(kColorControlCluster, 2, RequestTypeAttributeRead), PrivilegeProxyView, ResultAllowed},
	{"Entry5: wrong fabric", GroupSubject(1, 0x0002),
		NewRequestPath(kLevelControlCluster, 1, RequestTypeAttributeRead), PrivilegeProxyView, ResultDenied},
	{"Entry5: wrong auth mode", SubjectDescriptor{FabricIndex: 2, AuthMode: AuthModeCASE, Subject: kGroup2},
		NewRequestPath(kLevelControlCluster, 1, RequestTypeAttributeRead), PrivilegeProxyView, ResultDenied},
	{"Entry5: wrong group", GroupSubject(2, 0x0004),
		NewRequestPath(kLevelControlCluster, 1, RequestTypeAttributeRead), PrivilegeProxyView, ResultDenied},
	{"Entry5: wrong target Color@1", GroupSubject(2, 0x0002),
		NewRequestPath(kColorControlCluster, 1, RequestTypeAttributeRead), PrivilegeProxyView, ResultDenied},
	{"Entry5: wrong target Level@3", GroupSubject(2, 0x0002),
		NewRequestPath(kLevelControlCluster, 3, RequestTypeAttributeRead), PrivilegeProxyView, ResultDenied},
	{"Entry5: operate not granted", GroupSubject(2, 0x0002),
		NewRequestPath(kLevelControlCluster, 1, RequestTypeAttributeRead), PrivilegeOperate, ResultDenied},

	// === Entry 6: Fabric 1, Administer to CAT0 ===
	{"Entry6: wrong fabric", CASESubject(2, kOperationalNodeId0, kCASEAuthTag0),
		NewRequestPath(kLevelControlCluster, 1, RequestTypeAttributeRead), PrivilegeOperate, ResultDenied},
	{"Entry6: CAT0 matches", CASESubject(1, kOperationalNodeId0, kCASEAuthTag0),
		NewRequestPath(kLevelControlCluster, 1, RequestTypeAttributeRead), PrivilegeOperate, ResultAllowed},
	{"Entry6: CAT1 doesn't match", CASESubject(1, kOperationalNodeId0, kCASEAuthTag1),
		NewRequestPath(kLevelControlCluster, 1, RequestTypeAttributeRead), PrivilegeOperate, ResultDenied},

	// === Entry 7: Fabric 2, Manage on OnOff to CAT3 or CAT1 ===
	{"Entry7: CAT0 doesn't match", CASESubject(2, kOperationalNodeId0, kCASEAuthTag0),
		NewRequestPath(kOnOffCluster, 1, RequestTypeAttributeRead), PrivilegeOperate, ResultDenied},
	{"Entry7: CAT0+CAT2 doesn't match", CASESubject(2, kOperationalNodeId0, kCASEAuthTag0, kCASEAuthTag2),
		NewRequestPath(kOnOffCluster, 1, RequestTypeAttributeRead), PrivilegeOperate, ResultDenied},
	// CAT3 is 0xABCD version 8, the entry requires 0xABCD version 8: exact match
	{"Entry7: CAT0+CAT3 matches via CAT3", CASESubject(2, kOperationalNodeId0, kCASEAuthTag0, kCASEAuthTag3),
		NewRequestPath(kOnOffCluster, 1, RequestTypeAttributeRead), PrivilegeOperate, ResultAllowed},
	// CAT4 is 0xABCD version 0xABCD, the entry requires version 8: 0xABCD >= 8
	{"Entry7: CAT0+CAT4 matches via CAT4 Manage", CASESubject(2, kOperationalNodeId0, kCASEAuthTag0, kCASEAuthTag4),
		NewRequestPath(kOnOffCluster, 1, RequestTypeAttributeRead), PrivilegeManage, ResultAllowed},

	// === Entry 8: Fabric 2, Operate on LevelControl to CAT4 or CAT1 ===
	{"Entry8: CAT0+CAT3 doesn't match LevelControl", CASESubject(2, kOperationalNodeId0, kCASEAuthTag0, kCASEAuthTag3),
		NewRequestPath(kLevelControlCluster, 1, RequestTypeAttributeRead), PrivilegeOperate, ResultDenied},
	// CAT4 matches entry 8's first subject (identifier 0xABCD, version covers)
	{"Entry8: CAT0+CAT4 matches LevelControl", CASESubject(2, kOperationalNodeId0, kCASEAuthTag0, kCASEAuthTag4),
		NewRequestPath(kLevelControlCluster, 2, RequestTypeAttributeRead), PrivilegeOperate, ResultAllowed},
	// CAT1 matches entry 8's second subject
	{"Entry8: CAT1 matches LevelControl", CASESubject(2, kOperationalNodeId0, kCASEAuthTag1),
		NewRequestPath(kLevelControlCluster, 2, RequestTypeAttributeRead), PrivilegeOperate, ResultAllowed},
}

func TestCheckVectors(t *testing.T) {
	c := loadVectorEntries(t)

	for _, tc := range checkVectors {
		t.Run(tc.Name, func(t *testing.T) {
			got := c.Check(tc.Subject, tc.Path, tc.Privilege)
			if got != tc.Want {
				t.Errorf("Check() = %v, want %v", got, tc.Want)
				t.Logf("Subject: fabric=%d auth=%s subject=0x%016X cats=%v commissioning=%v",
					tc.Subject.FabricIndex, tc.Subject.AuthMode, tc.Subject.Subject, tc.Subject.CATs, tc.Subject.IsCommissioning)
				t.Logf("Path: cluster=0x%08X endpoint=%d", tc.Path.Cluster, tc.Path.Endpoint)
				t.Logf("Privilege: %s", tc.Privilege)
			}
		})
	}
}

// TestVectorEntriesValid ensures every entry in the vector set passes
// validation.
func TestVectorEntriesValid(t *testing.T) {
	for i, entry := range vectorEntries {
		if err := ValidateEntry(&entry); err != nil {
			t.Errorf("vectorEntries[%d] validation failed: %v", i, err)
		}
	}
}

// TestVectorFabricCounts verifies the entry distribution matches the
// C++ set (4 entries on fabric 1, 5 on fabric 2).
func TestVectorFabricCounts(t *testing.T) {
	c := loadVectorEntries(t)

	if got := len(c.GetEntries(1)); got != 4 {
		t.Errorf("fabric 1 entry count = %d, want 4", got)
	}
	if got := len(c.GetEntries(2)); got != 5 {
		t.Errorf("fabric 2 entry count = %d, want 5", got)
	}
}

func BenchmarkCheckVectors(b *testing.B) {
	c := loadVectorEntries(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, tc := range checkVectors {
			c.Check(tc.Subject, tc.Path, tc.Privilege)
		}
	}
}
