package validate

// PublicIPNamespace holds the parameters for `aznet public-ip create`.
type PublicIPNamespace struct {
	DNSName          string
	AddressType      string
	AllocationMethod string
}

// Validate derives the creation type: requesting a DNS name turns the
// public IP into a DNS-labelled one.
func (n *PublicIPNamespace) Validate(Context) error {
	if n.DNSName != "" {
		n.AddressType = TypeDNS
	}
	return nil
}
