package validate

import (
	"github.com/ayeletshpigelman/azure-cli/internal/armid"
)

// resolveSubnet applies the subnet/vnet consistency rules and resolves a
// subnet name into a full resource ID. Exactly one of {subnet ID} or
// {vnet name + subnet name} may be supplied. Passing --subnet with an empty
// value is an explicit opt-out and short-circuits every other rule.
func (c Context) resolveSubnet(subnet *Field, vnetName string) error {
	if vnetName == "" && subnet.absent() {
		return nil
	}
	if subnet.Specified && subnet.Value == "" {
		return nil
	}

	if vnetName != "" && subnet.Value == "" {
		return NewConfigError("You must specify --subnet name when using --vnet-name.")
	}

	isID := armid.IsResourceID(subnet.Value)
	if isID && vnetName != "" {
		return NewConflictError("Please omit --vnet-name when specifying a subnet ID.")
	}
	if !isID && vnetName == "" {
		return NewConfigError("Please specify --vnet-name when specifying a subnet name.")
	}
	if !isID {
		subnet.Value = armid.FormatChild(c.SubscriptionID, c.ResourceGroup,
			"virtualNetworks", vnetName, "subnets", subnet.Value)
	}
	return nil
}

// checkAddressPrefixes rejects explicitly supplied address prefixes when an
// existing subnet is being reused. Prefixes may only be set while the
// command is also creating the subnet.
func checkAddressPrefixes(subnetType string, subnet Field, subnetPrefix, vnetPrefix Field) error {
	if subnetType != TypeNew && (subnetPrefix.Specified || vnetPrefix.Specified) {
		return NewConfigError(
			"Existing subnet (%s) found. Cannot specify address prefixes when reusing an existing subnet.",
			subnet.Value)
	}
	return nil
}

// forcePublicIPType reconciles subnet attachment with public IP selection:
// a subnet-attached frontend cannot also carry a public IP address.
func forcePublicIPType(subnet Field, publicIP Field, publicIPType *string, dnsName string) error {
	if subnet.Value != "" {
		*publicIPType = TypeNone
		if publicIP.Value != "" {
			return NewConflictError("Cannot specify --subnet and --public-ip-address at the same time.")
		}
	}
	if publicIP.Value != "" && dnsName != "" && *publicIPType != TypeNew {
		return NewConflictError(
			"Can only specify --public-ip-dns-name when creating a new public IP address.")
	}
	return nil
}
