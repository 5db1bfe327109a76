package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicIPValidate_DNSNameImpliesDNSType(t *testing.T) {
	ns := &PublicIPNamespace{DNSName: "myapp", AddressType: TypeNew}
	require.NoError(t, ns.Validate(testCtx))
	assert.Equal(t, TypeDNS, ns.AddressType)
}

func TestPublicIPValidate_NoDNSNameLeavesType(t *testing.T) {
	ns := &PublicIPNamespace{AddressType: TypeNew}
	require.NoError(t, ns.Validate(testCtx))
	assert.Equal(t, TypeNew, ns.AddressType)
}

func TestIPConfigValidate_ResolvesBoth(t *testing.T) {
	ns := &IPConfigNamespace{
		LoadBalancerName:   "lb1",
		InboundNatRule:     Specified("rule1"),
		BackendAddressPool: Specified("pool1"),
	}
	require.NoError(t, ns.Validate(testCtx))
	assert.Equal(t, natID, ns.InboundNatRule.Value)
	assert.Equal(t, poolID, ns.BackendAddressPool.Value)
}

func TestIPConfigValidate_IDWithLBNameConflicts(t *testing.T) {
	ns := &IPConfigNamespace{
		LoadBalancerName: "lb1",
		InboundNatRule:   Specified(natID),
	}
	err := ns.Validate(testCtx)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestIPConfigValidate_NameWithoutLBNameFails(t *testing.T) {
	ns := &IPConfigNamespace{BackendAddressPool: Specified("pool1")}
	err := ns.Validate(testCtx)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestIPConfigValidate_EmptyIsNoop(t *testing.T) {
	ns := &IPConfigNamespace{}
	require.NoError(t, ns.Validate(testCtx))
}
