package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNICValidate_Full(t *testing.T) {
	ns := &NICNamespace{
		Subnet:               Specified("front"),
		VirtualNetworkName:   "vnet1",
		NetworkSecurityGroup: Specified("nsg1"),
		PublicIPAddress:      Specified("ip1"),
		PrivateIPAddress:     Specified("10.0.0.9"),
		InternalDNSNameLabel: "internal-db",
		LoadBalancerName:     "lb1",
		BackendAddressPools:  []string{"pool1"},
		InboundNatRules:      []string{"rule1"},
	}
	require.NoError(t, ns.Validate(testCtx))

	assert.Equal(t, subnetID, ns.Subnet.Value)
	assert.Contains(t, ns.NetworkSecurityGroup.Value, "/networkSecurityGroups/nsg1")
	assert.Contains(t, ns.PublicIPAddress.Value, "/publicIPAddresses/ip1")
	assert.Equal(t, AllocationStatic, ns.PrivateIPAllocation)
	assert.True(t, ns.UseDNSSettings)
	require.Len(t, ns.BackendAddressPoolRefs, 1)
	assert.Equal(t, poolID, ns.BackendAddressPoolRefs[0].ID)
	require.Len(t, ns.InboundNatRuleRefs, 1)
	assert.Equal(t, natID, ns.InboundNatRuleRefs[0].ID)
}

func TestNICValidate_DerivedNoneTypes(t *testing.T) {
	ns := &NICNamespace{
		Subnet:             Specified("front"),
		VirtualNetworkName: "vnet1",
	}
	require.NoError(t, ns.Validate(testCtx))

	assert.Equal(t, TypeNone, ns.PublicIPType)
	assert.Equal(t, TypeNone, ns.NetworkSecurityGroupType)
	assert.False(t, ns.UseDNSSettings)
	assert.Empty(t, ns.BackendAddressPoolRefs)
	assert.Empty(t, ns.InboundNatRuleRefs)
}

func TestNICValidate_PoolNameWithoutLBNameFails(t *testing.T) {
	ns := &NICNamespace{
		Subnet:              Specified("front"),
		VirtualNetworkName:  "vnet1",
		BackendAddressPools: []string{"pool1"},
	}
	err := ns.Validate(testCtx)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "--lb-name")
}

func TestNICValidate_SubnetRulesApply(t *testing.T) {
	ns := &NICNamespace{VirtualNetworkName: "vnet1"}
	err := ns.Validate(testCtx)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "--subnet")
}
