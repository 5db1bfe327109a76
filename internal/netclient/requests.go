// Package netclient turns validated command namespaces into Azure network
// request bodies and submits them. Builders are pure so the --dry-run path
// can print the exact body a live run would send.
package netclient

import (
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/ayeletshpigelman/azure-cli/internal/validate"
)

// Default component names inside a created application gateway.
const (
	gatewayIPConfigName   = "appGatewayIpConfig"
	gatewayFrontendIPName = "appGatewayFrontendIP"
	gatewayFrontendPort   = "appGatewayFrontendPort"
	gatewayBackendPool    = "appGatewayBackendPool"
	gatewaySSLCertName    = "appGatewaySslCert"
	gatewayListenerName   = "appGatewayHttpListener"
)

func allocationMethod(s string) *armnetwork.IPAllocationMethod {
	if strings.EqualFold(s, validate.AllocationStatic) {
		return to.Ptr(armnetwork.IPAllocationMethodStatic)
	}
	return to.Ptr(armnetwork.IPAllocationMethodDynamic)
}

func gatewayProtocol(s string) *armnetwork.ApplicationGatewayProtocol {
	if strings.EqualFold(s, validate.ProtocolHTTPS) {
		return to.Ptr(armnetwork.ApplicationGatewayProtocolHTTPS)
	}
	return to.Ptr(armnetwork.ApplicationGatewayProtocolHTTP)
}

// PublicIPAddress builds the request body for a public IP create.
func PublicIPAddress(ns *validate.PublicIPNamespace, location string) armnetwork.PublicIPAddress {
	props := &armnetwork.PublicIPAddressPropertiesFormat{
		PublicIPAllocationMethod: allocationMethod(ns.AllocationMethod),
	}
	if ns.DNSName != "" {
		props.DNSSettings = &armnetwork.PublicIPAddressDNSSettings{
			DomainNameLabel: to.Ptr(ns.DNSName),
		}
	}
	return armnetwork.PublicIPAddress{
		Location:   to.Ptr(location),
		Properties: props,
	}
}

// LoadBalancer builds the request body for a load balancer create. The
// namespace is expected to have passed Validate, so the subnet and public
// IP fields are either empty or fully-qualified IDs.
func LoadBalancer(ns *validate.LoadBalancerNamespace, location string) armnetwork.LoadBalancer {
	frontend := &armnetwork.FrontendIPConfigurationPropertiesFormat{}
	if ns.Subnet.Value != "" {
		frontend.Subnet = &armnetwork.Subnet{ID: to.Ptr(ns.Subnet.Value)}
		if ns.PrivateIPAddress.Value != "" {
			frontend.PrivateIPAddress = to.Ptr(ns.PrivateIPAddress.Value)
		}
		frontend.PrivateIPAllocationMethod = allocationMethod(ns.PrivateIPAllocation)
	}
	if ns.PublicIPAddress.Value != "" {
		frontend.PublicIPAddress = &armnetwork.PublicIPAddress{ID: to.Ptr(ns.PublicIPAddress.Value)}
	}

	return armnetwork.LoadBalancer{
		Location: to.Ptr(location),
		Properties: &armnetwork.LoadBalancerPropertiesFormat{
			FrontendIPConfigurations: []*armnetwork.FrontendIPConfiguration{{
				Name:       to.Ptr("LoadBalancerFrontEnd"),
				Properties: frontend,
			}},
			BackendAddressPools: []*armnetwork.BackendAddressPool{{
				Name: to.Ptr("LoadBalancerBackEnd"),
			}},
		},
	}
}

// Interface builds the request body for a NIC create.
func Interface(ns *validate.NICNamespace, location string) armnetwork.Interface {
	ipConfig := &armnetwork.InterfaceIPConfigurationPropertiesFormat{
		PrivateIPAllocationMethod: allocationMethod(ns.PrivateIPAllocation),
	}
	if ns.Subnet.Value != "" {
		ipConfig.Subnet = &armnetwork.Subnet{ID: to.Ptr(ns.Subnet.Value)}
	}
	if ns.PrivateIPAddress.Value != "" {
		ipConfig.PrivateIPAddress = to.Ptr(ns.PrivateIPAddress.Value)
	}
	if ns.PublicIPAddress.Value != "" {
		ipConfig.PublicIPAddress = &armnetwork.PublicIPAddress{ID: to.Ptr(ns.PublicIPAddress.Value)}
	}
	for _, ref := range ns.BackendAddressPoolRefs {
		ipConfig.LoadBalancerBackendAddressPools = append(ipConfig.LoadBalancerBackendAddressPools,
			&armnetwork.BackendAddressPool{ID: to.Ptr(ref.ID)})
	}
	for _, ref := range ns.InboundNatRuleRefs {
		ipConfig.LoadBalancerInboundNatRules = append(ipConfig.LoadBalancerInboundNatRules,
			&armnetwork.InboundNatRule{ID: to.Ptr(ref.ID)})
	}

	props := &armnetwork.InterfacePropertiesFormat{
		IPConfigurations: []*armnetwork.InterfaceIPConfiguration{{
			Name:       to.Ptr("ipconfig1"),
			Properties: ipConfig,
		}},
	}
	if ns.NetworkSecurityGroup.Value != "" {
		props.NetworkSecurityGroup = &armnetwork.SecurityGroup{ID: to.Ptr(ns.NetworkSecurityGroup.Value)}
	}
	if ns.UseDNSSettings {
		props.DNSSettings = &armnetwork.InterfaceDNSSettings{
			InternalDNSNameLabel: to.Ptr(ns.InternalDNSNameLabel),
		}
	}

	return armnetwork.Interface{
		Location:   to.Ptr(location),
		Properties: props,
	}
}

// AssociateIPConfig appends the resolved load-balancer associations from a
// validated ip-config namespace to the NIC's primary IP configuration.
func AssociateIPConfig(nic *armnetwork.Interface, ns *validate.IPConfigNamespace) {
	if nic.Properties == nil || len(nic.Properties.IPConfigurations) == 0 {
		nic.Properties = &armnetwork.InterfacePropertiesFormat{
			IPConfigurations: []*armnetwork.InterfaceIPConfiguration{{
				Name:       to.Ptr("ipconfig1"),
				Properties: &armnetwork.InterfaceIPConfigurationPropertiesFormat{},
			}},
		}
	}
	ipConfig := nic.Properties.IPConfigurations[0]
	if ipConfig.Properties == nil {
		ipConfig.Properties = &armnetwork.InterfaceIPConfigurationPropertiesFormat{}
	}
	if ns.InboundNatRule.Value != "" {
		ipConfig.Properties.LoadBalancerInboundNatRules = append(
			ipConfig.Properties.LoadBalancerInboundNatRules,
			&armnetwork.InboundNatRule{ID: to.Ptr(ns.InboundNatRule.Value)})
	}
	if ns.BackendAddressPool.Value != "" {
		ipConfig.Properties.LoadBalancerBackendAddressPools = append(
			ipConfig.Properties.LoadBalancerBackendAddressPools,
			&armnetwork.BackendAddressPool{ID: to.Ptr(ns.BackendAddressPool.Value)})
	}
}

// ApplicationGateway builds the request body for an application gateway
// create. gatewayID is the ID the gateway will have once created; listener
// sub-references are expressed relative to it.
func ApplicationGateway(ns *validate.ApplicationGatewayNamespace, gatewayID, location string) armnetwork.ApplicationGateway {
	frontend := &armnetwork.ApplicationGatewayFrontendIPConfigurationPropertiesFormat{}
	if ns.FrontendType == validate.FrontendPublicIP {
		frontend.PublicIPAddress = &armnetwork.SubResource{ID: to.Ptr(ns.PublicIPAddress.Value)}
	} else {
		frontend.Subnet = &armnetwork.SubResource{ID: to.Ptr(ns.Subnet.Value)}
		frontend.PrivateIPAllocationMethod = allocationMethod(ns.PrivateIPAllocation)
		if ns.PrivateIPAddress.Value != "" {
			frontend.PrivateIPAddress = to.Ptr(ns.PrivateIPAddress.Value)
		}
	}

	backends := make([]*armnetwork.ApplicationGatewayBackendAddress, 0, len(ns.BackendServers))
	for _, server := range ns.BackendServers {
		addr := &armnetwork.ApplicationGatewayBackendAddress{}
		if server.IPAddress != "" {
			addr.IPAddress = to.Ptr(server.IPAddress)
		} else {
			addr.Fqdn = to.Ptr(server.FQDN)
		}
		backends = append(backends, addr)
	}

	listener := &armnetwork.ApplicationGatewayHTTPListenerPropertiesFormat{
		FrontendIPConfiguration: &armnetwork.SubResource{
			ID: to.Ptr(gatewayID + "/frontendIPConfigurations/" + gatewayFrontendIPName),
		},
		FrontendPort: &armnetwork.SubResource{
			ID: to.Ptr(gatewayID + "/frontendPorts/" + gatewayFrontendPort),
		},
		Protocol: gatewayProtocol(ns.HTTPListenerProtocol),
	}

	props := &armnetwork.ApplicationGatewayPropertiesFormat{
		SKU: &armnetwork.ApplicationGatewaySKU{
			Name:     to.Ptr(armnetwork.ApplicationGatewaySKUNameStandardSmall),
			Tier:     to.Ptr(armnetwork.ApplicationGatewayTierStandard),
			Capacity: to.Ptr[int32](2),
		},
		GatewayIPConfigurations: []*armnetwork.ApplicationGatewayIPConfiguration{{
			Name: to.Ptr(gatewayIPConfigName),
			Properties: &armnetwork.ApplicationGatewayIPConfigurationPropertiesFormat{
				Subnet: &armnetwork.SubResource{ID: to.Ptr(ns.Subnet.Value)},
			},
		}},
		FrontendIPConfigurations: []*armnetwork.ApplicationGatewayFrontendIPConfiguration{{
			Name:       to.Ptr(gatewayFrontendIPName),
			Properties: frontend,
		}},
		FrontendPorts: []*armnetwork.ApplicationGatewayFrontendPort{{
			Name: to.Ptr(gatewayFrontendPort),
			Properties: &armnetwork.ApplicationGatewayFrontendPortPropertiesFormat{
				Port: to.Ptr(int32(ns.FrontendPort)),
			},
		}},
		BackendAddressPools: []*armnetwork.ApplicationGatewayBackendAddressPool{{
			Name: to.Ptr(gatewayBackendPool),
			Properties: &armnetwork.ApplicationGatewayBackendAddressPoolPropertiesFormat{
				BackendAddresses: backends,
			},
		}},
	}

	if ns.HTTPListenerProtocol == validate.ProtocolHTTPS {
		props.SSLCertificates = []*armnetwork.ApplicationGatewaySSLCertificate{{
			Name: to.Ptr(gatewaySSLCertName),
			Properties: &armnetwork.ApplicationGatewaySSLCertificatePropertiesFormat{
				Data:     to.Ptr(ns.CertFile.Value),
				Password: to.Ptr(ns.CertPassword.Value),
			},
		}}
		listener.SSLCertificate = &armnetwork.SubResource{
			ID: to.Ptr(gatewayID + "/sslCertificates/" + gatewaySSLCertName),
		}
	}

	props.HTTPListeners = []*armnetwork.ApplicationGatewayHTTPListener{{
		Name:       to.Ptr(gatewayListenerName),
		Properties: listener,
	}}

	return armnetwork.ApplicationGateway{
		Location:   to.Ptr(location),
		Properties: props,
	}
}
