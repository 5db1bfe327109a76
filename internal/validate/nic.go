package validate

// NICNamespace holds the parameters for `aznet nic create`.
type NICNamespace struct {
	Subnet             Field
	VirtualNetworkName string

	NetworkSecurityGroup     Field
	NetworkSecurityGroupType string

	PublicIPAddress Field
	PublicIPType    string

	PrivateIPAddress    Field
	PrivateIPAllocation string

	InternalDNSNameLabel string
	UseDNSSettings       bool

	LoadBalancerName string

	// Name-or-ID inputs and their resolved forms.
	BackendAddressPools    []string
	BackendAddressPoolRefs []ResourceRef
	InboundNatRules        []string
	InboundNatRuleRefs     []ResourceRef
}

// Validate resolves every name-typed parameter and derives the DNS and
// dependent-resource type fields.
func (n *NICNamespace) Validate(ctx Context) error {
	if err := ctx.resolveSubnet(&n.Subnet, n.VirtualNetworkName); err != nil {
		return err
	}
	ctx.resolveNSG(&n.NetworkSecurityGroup)
	ctx.resolvePublicIP(&n.PublicIPAddress)

	if n.PrivateIPAddress.Value != "" {
		n.PrivateIPAllocation = AllocationStatic
	}

	pools, err := ctx.resolveLBChildList(n.BackendAddressPools, n.LoadBalancerName, "backendAddressPools")
	if err != nil {
		return err
	}
	n.BackendAddressPoolRefs = pools

	rules, err := ctx.resolveLBChildList(n.InboundNatRules, n.LoadBalancerName, "inboundNatRules")
	if err != nil {
		return err
	}
	n.InboundNatRuleRefs = rules

	if n.InternalDNSNameLabel != "" {
		n.UseDNSSettings = true
	}
	if n.PublicIPAddress.Value == "" {
		n.PublicIPType = TypeNone
	}
	if n.NetworkSecurityGroup.Value == "" {
		n.NetworkSecurityGroupType = TypeNone
	}
	return nil
}
