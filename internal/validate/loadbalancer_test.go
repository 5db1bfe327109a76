package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBalancerValidate_SubnetFrontend(t *testing.T) {
	ns := &LoadBalancerNamespace{
		Subnet:             Specified("front"),
		VirtualNetworkName: "vnet1",
		PublicIPType:       TypeNew,
	}
	require.NoError(t, ns.Validate(testCtx))
	assert.Equal(t, subnetID, ns.Subnet.Value)
	assert.Equal(t, TypeNone, ns.PublicIPType, "subnet frontend forces public IP type to none")
}

func TestLoadBalancerValidate_SubnetAndPublicIPConflict(t *testing.T) {
	ns := &LoadBalancerNamespace{
		Subnet:             Specified("front"),
		VirtualNetworkName: "vnet1",
		PublicIPAddress:    Specified("ip1"),
		PublicIPType:       TypeNew,
	}
	err := ns.Validate(testCtx)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestLoadBalancerValidate_DNSNameImpliesNewType(t *testing.T) {
	ns := &LoadBalancerNamespace{
		PublicIPDNSName: "myapp",
		PublicIPType:    TypeNew,
	}
	require.NoError(t, ns.Validate(testCtx))
	assert.Equal(t, TypeNew, ns.DNSNameType)
}

func TestLoadBalancerValidate_DNSNameWithExistingPublicIPFails(t *testing.T) {
	ns := &LoadBalancerNamespace{
		PublicIPAddress: Specified("ip1"),
		PublicIPType:    TypeExisting,
		PublicIPDNSName: "myapp",
	}
	err := ns.Validate(testCtx)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, err.Error(), "--public-ip-dns-name")
}

func TestLoadBalancerValidate_PrivateIPImpliesStatic(t *testing.T) {
	ns := &LoadBalancerNamespace{
		Subnet:             Specified("front"),
		VirtualNetworkName: "vnet1",
		PrivateIPAddress:   Specified("10.0.0.9"),
	}
	require.NoError(t, ns.Validate(testCtx))
	assert.Equal(t, AllocationStatic, ns.PrivateIPAllocation)
}

func TestLoadBalancerValidate_ExistingPublicIPNameResolves(t *testing.T) {
	ns := &LoadBalancerNamespace{
		PublicIPAddress: Specified("ip1"),
		PublicIPType:    TypeExisting,
	}
	require.NoError(t, ns.Validate(testCtx))
	assert.Contains(t, ns.PublicIPAddress.Value, "/publicIPAddresses/ip1")
}
