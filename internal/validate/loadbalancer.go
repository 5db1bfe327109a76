package validate

// LoadBalancerNamespace holds the parameters for `aznet lb create`.
type LoadBalancerNamespace struct {
	Subnet             Field
	VirtualNetworkName string

	PublicIPAddress Field
	PublicIPType    string // new | existing | none
	PublicIPDNSName string
	DNSNameType     string

	PrivateIPAddress    Field
	PrivateIPAllocation string
}

// Validate resolves the frontend subnet or public IP and derives the DNS
// and allocation settings. A subnet frontend and a public IP frontend are
// mutually exclusive.
func (n *LoadBalancerNamespace) Validate(ctx Context) error {
	if err := ctx.resolveSubnet(&n.Subnet, n.VirtualNetworkName); err != nil {
		return err
	}
	if err := forcePublicIPType(n.Subnet, n.PublicIPAddress, &n.PublicIPType, n.PublicIPDNSName); err != nil {
		return err
	}
	ctx.resolvePublicIP(&n.PublicIPAddress)

	if n.PrivateIPAddress.Value != "" {
		n.PrivateIPAllocation = AllocationStatic
	}
	if n.PublicIPDNSName != "" {
		n.DNSNameType = TypeNew
	}
	return nil
}
