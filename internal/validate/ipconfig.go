package validate

// IPConfigNamespace holds the parameters for `aznet nic ip-config update`,
// which associates a NIC IP configuration with load-balancer child
// resources given as names or full IDs.
type IPConfigNamespace struct {
	LoadBalancerName   string
	InboundNatRule     Field
	BackendAddressPool Field
}

// Validate resolves the inbound NAT rule and backend address pool. A full
// ID already names its load balancer, so combining it with --lb-name is a
// conflict; a bare name requires --lb-name.
func (n *IPConfigNamespace) Validate(ctx Context) error {
	if n.InboundNatRule.Value != "" {
		if err := ctx.resolveLBChild(&n.InboundNatRule, n.LoadBalancerName,
			"inboundNatRules", "an inbound NAT rule"); err != nil {
			return err
		}
	}
	if n.BackendAddressPool.Value != "" {
		if err := ctx.resolveLBChild(&n.BackendAddressPool, n.LoadBalancerName,
			"backendAddressPools", "an address pool"); err != nil {
			return err
		}
	}
	return nil
}
