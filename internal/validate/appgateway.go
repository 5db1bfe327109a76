package validate

// ApplicationGatewayNamespace holds the parameters for
// `aznet application-gateway create`.
type ApplicationGatewayNamespace struct {
	Subnet              Field
	VirtualNetworkName  string
	SubnetType          string // new | existing
	SubnetAddressPrefix Field
	VnetAddressPrefix   Field

	PublicIPAddress     Field
	PublicIPType        string
	PrivateIPAddress    Field
	PrivateIPAllocation string
	FrontendType        string

	// CertFile holds a file path on input and the base64 encoding of the
	// file's bytes after a successful Validate.
	CertFile             Field
	CertPassword         Field
	FrontendPort         int
	HTTPListenerProtocol string

	Servers        []string
	BackendServers []Server
}

// Validate resolves names, derives the frontend configuration and listener
// protocol, and classifies backend servers.
func (n *ApplicationGatewayNamespace) Validate(ctx Context) error {
	if err := ctx.resolveSubnet(&n.Subnet, n.VirtualNetworkName); err != nil {
		return err
	}
	if err := checkAddressPrefixes(n.SubnetType, n.Subnet, n.SubnetAddressPrefix, n.VnetAddressPrefix); err != nil {
		return err
	}

	ctx.resolvePublicIP(&n.PublicIPAddress)
	if n.PublicIPAddress.Value != "" {
		n.FrontendType = FrontendPublicIP
	} else {
		n.FrontendType = FrontendPrivateIP
		if n.PrivateIPAddress.Value != "" {
			n.PrivateIPAllocation = AllocationStatic
		} else {
			n.PrivateIPAllocation = AllocationDynamic
		}
	}
	if n.PublicIPType == "" {
		n.PublicIPType = TypeNone
	}

	if err := applyCert(&n.CertFile, &n.CertPassword, &n.HTTPListenerProtocol, &n.FrontendPort); err != nil {
		return err
	}

	n.BackendServers = classifyServers(n.Servers)
	return nil
}
