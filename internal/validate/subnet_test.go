package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const subnetID = "/subscriptions/00000000-0000-0000-0000-000000000000/resourceGroups/rg1/providers/Microsoft.Network/virtualNetworks/vnet1/subnets/front"

func TestResolveSubnet_NameWithVnet(t *testing.T) {
	f := Specified("front")
	require.NoError(t, testCtx.resolveSubnet(&f, "vnet1"))
	assert.Equal(t, subnetID, f.Value)
}

func TestResolveSubnet_IdempotentOnOwnOutput(t *testing.T) {
	f := Specified("front")
	require.NoError(t, testCtx.resolveSubnet(&f, "vnet1"))

	resolved := Specified(f.Value)
	require.NoError(t, testCtx.resolveSubnet(&resolved, ""))
	assert.Equal(t, f.Value, resolved.Value, "no double prefixing")
}

func TestResolveSubnet_IDPassesThrough(t *testing.T) {
	f := Specified(subnetID)
	require.NoError(t, testCtx.resolveSubnet(&f, ""))
	assert.Equal(t, subnetID, f.Value)
}

func TestResolveSubnet_IDWithVnetNameConflicts(t *testing.T) {
	f := Specified(subnetID)
	err := testCtx.resolveSubnet(&f, "vnet1")
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, err.Error(), "--vnet-name")
}

func TestResolveSubnet_VnetNameWithoutSubnetFails(t *testing.T) {
	f := Field{}
	err := testCtx.resolveSubnet(&f, "vnet1")
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "--subnet")
}

func TestResolveSubnet_NameWithoutVnetFails(t *testing.T) {
	f := Specified("front")
	err := testCtx.resolveSubnet(&f, "")
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "--vnet-name")
	assert.Equal(t, "front", f.Value, "field is left unresolved on failure")
}

func TestResolveSubnet_NeitherIsNoop(t *testing.T) {
	f := Field{}
	require.NoError(t, testCtx.resolveSubnet(&f, ""))
	assert.Equal(t, "", f.Value)
}

func TestResolveSubnet_ExplicitEmptyOptsOut(t *testing.T) {
	// --subnet "" short-circuits everything, even with --vnet-name set.
	f := Specified("")
	require.NoError(t, testCtx.resolveSubnet(&f, "vnet1"))
	assert.Equal(t, "", f.Value)
}

func TestCheckAddressPrefixes(t *testing.T) {
	subnet := Specified(subnetID)

	tests := []struct {
		name         string
		subnetType   string
		subnetPrefix Field
		vnetPrefix   Field
		wantErr      bool
	}{
		{"new subnet, defaults", TypeNew, Defaulted("10.0.0.0/24"), Defaulted("10.0.0.0/16"), false},
		{"new subnet, explicit", TypeNew, Specified("10.0.1.0/24"), Specified("10.0.0.0/16"), false},
		{"existing subnet, defaults", TypeExisting, Defaulted("10.0.0.0/24"), Defaulted("10.0.0.0/16"), false},
		{"existing subnet, explicit subnet prefix", TypeExisting, Specified("10.0.0.0/24"), Defaulted("10.0.0.0/16"), true},
		{"existing subnet, explicit vnet prefix", TypeExisting, Defaulted("10.0.0.0/24"), Specified("10.0.0.0/16"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkAddressPrefixes(tt.subnetType, subnet, tt.subnetPrefix, tt.vnetPrefix)
			if tt.wantErr {
				var cfgErr *ConfigError
				require.ErrorAs(t, err, &cfgErr)
				assert.Contains(t, err.Error(), "existing subnet")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestForcePublicIPType(t *testing.T) {
	t.Run("subnet forces type none", func(t *testing.T) {
		pipType := TypeNew
		err := forcePublicIPType(Specified(subnetID), Field{}, &pipType, "")
		require.NoError(t, err)
		assert.Equal(t, TypeNone, pipType)
	})

	t.Run("subnet plus public IP conflicts", func(t *testing.T) {
		pipType := TypeNew
		err := forcePublicIPType(Specified(subnetID), Specified("ip1"), &pipType, "")
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Contains(t, err.Error(), "--subnet")
		assert.Contains(t, err.Error(), "--public-ip-address")
	})

	t.Run("dns name requires new public IP", func(t *testing.T) {
		pipType := TypeExisting
		err := forcePublicIPType(Field{}, Specified("ip1"), &pipType, "mylabel")
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Contains(t, err.Error(), "--public-ip-dns-name")
	})

	t.Run("dns name with new public IP passes", func(t *testing.T) {
		pipType := TypeNew
		err := forcePublicIPType(Field{}, Specified("ip1"), &pipType, "mylabel")
		assert.NoError(t, err)
	})
}
