package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ayeletshpigelman/azure-cli/internal/exitcode"
	"github.com/ayeletshpigelman/azure-cli/internal/netclient"
	"github.com/ayeletshpigelman/azure-cli/internal/output"
	"github.com/ayeletshpigelman/azure-cli/internal/validate"
)

var nicCmd = &cobra.Command{
	Use:   "nic",
	Short: "Manage network interfaces",
}

var nicCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a network interface",
	RunE:  runNICCreate,
}

var (
	nicName       string
	nicSubnet     string
	nicVnetName   string
	nicNSG        string
	nicPublicIP   string
	nicPrivateIP  string
	nicDNSLabel   string
	nicLBName     string
	nicLBPools    []string
	nicLBNatRules []string
)

var nicIPConfigCmd = &cobra.Command{
	Use:   "ip-config",
	Short: "Manage NIC IP configurations",
}

var nicIPConfigUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Associate an IP configuration with load-balancer resources",
	RunE:  runNICIPConfigUpdate,
}

var (
	ipcNICName string
	ipcLBName  string
	ipcNatRule string
	ipcPool    string
)

func init() {
	f := nicCreateCmd.Flags()
	f.StringVarP(&nicName, "name", "n", "", "name of the network interface")
	f.StringVar(&nicSubnet, "subnet", "", "subnet name or ID")
	f.StringVar(&nicVnetName, "vnet-name", "", "virtual network containing --subnet (when a name is given)")
	f.StringVar(&nicNSG, "network-security-group", "", "network security group name or ID")
	f.StringVar(&nicPublicIP, "public-ip-address", "", "public IP name or ID")
	f.StringVar(&nicPrivateIP, "private-ip-address", "", "static private IP address")
	f.StringVar(&nicDNSLabel, "internal-dns-name", "", "internal DNS name label")
	f.StringVar(&nicLBName, "lb-name", "", "load balancer owning the pools and NAT rules given by name")
	f.StringSliceVar(&nicLBPools, "lb-address-pools", nil, "backend address pool names or IDs to join")
	f.StringSliceVar(&nicLBNatRules, "lb-inbound-nat-rules", nil, "inbound NAT rule names or IDs to bind")
	_ = nicCreateCmd.MarkFlagRequired("name")

	uf := nicIPConfigUpdateCmd.Flags()
	uf.StringVar(&ipcNICName, "nic-name", "", "name of the network interface")
	uf.StringVar(&ipcLBName, "lb-name", "", "load balancer owning the resource given by name")
	uf.StringVar(&ipcNatRule, "inbound-nat-rule", "", "inbound NAT rule name or ID")
	uf.StringVar(&ipcPool, "backend-address-pool", "", "backend address pool name or ID")
	_ = nicIPConfigUpdateCmd.MarkFlagRequired("nic-name")

	nicIPConfigCmd.AddCommand(nicIPConfigUpdateCmd)
	nicCmd.AddCommand(nicCreateCmd)
	nicCmd.AddCommand(nicIPConfigCmd)
	rootCmd.AddCommand(nicCmd)
}

func runNICCreate(cmd *cobra.Command, args []string) error {
	ns := &validate.NICNamespace{
		Subnet:               fieldOf(cmd, "subnet", nicSubnet),
		VirtualNetworkName:   nicVnetName,
		NetworkSecurityGroup: fieldOf(cmd, "network-security-group", nicNSG),
		PublicIPAddress:      fieldOf(cmd, "public-ip-address", nicPublicIP),
		PrivateIPAddress:     fieldOf(cmd, "private-ip-address", nicPrivateIP),
		InternalDNSNameLabel: nicDNSLabel,
		LoadBalancerName:     nicLBName,
		BackendAddressPools:  nicLBPools,
		InboundNatRules:      nicLBNatRules,
	}
	ctx, err := validated(ns)
	if err != nil {
		return err
	}
	output.Debug("validated nic namespace",
		"publicIPType", ns.PublicIPType, "nsgType", ns.NetworkSecurityGroupType)

	body := netclient.Interface(ns, location)
	if dryRun {
		return printDryRun(cmd, "nic create", body)
	}
	if err := requireLocation(); err != nil {
		return err
	}

	client, err := newNetClient(cmd.Context(), ctx.SubscriptionID)
	if err != nil {
		return err
	}

	spin := output.NewSpinner("Creating network interface " + nicName)
	spin.Start()
	created, err := client.CreateNIC(cmd.Context(), ctx.ResourceGroup, nicName, body)
	spin.Stop()
	if err != nil {
		return exitcode.Wrap(exitcode.Azure, err)
	}

	reportCreated("Network interface", nicName, *created.ID)
	return nil
}

func runNICIPConfigUpdate(cmd *cobra.Command, args []string) error {
	ns := &validate.IPConfigNamespace{
		LoadBalancerName:   ipcLBName,
		InboundNatRule:     fieldOf(cmd, "inbound-nat-rule", ipcNatRule),
		BackendAddressPool: fieldOf(cmd, "backend-address-pool", ipcPool),
	}
	if ns.InboundNatRule.Value == "" && ns.BackendAddressPool.Value == "" {
		return exitcode.Wrap(exitcode.Validation,
			errors.New("specify --inbound-nat-rule and/or --backend-address-pool"))
	}
	ctx, err := validated(ns)
	if err != nil {
		return err
	}

	if dryRun {
		return printDryRun(cmd, "nic ip-config update", ns)
	}

	client, err := newNetClient(cmd.Context(), ctx.SubscriptionID)
	if err != nil {
		return err
	}

	nic, err := client.GetNIC(cmd.Context(), ctx.ResourceGroup, ipcNICName)
	if err != nil {
		return exitcode.Wrap(exitcode.Azure, err)
	}
	netclient.AssociateIPConfig(nic, ns)

	spin := output.NewSpinner("Updating network interface " + ipcNICName)
	spin.Start()
	updated, err := client.CreateNIC(cmd.Context(), ctx.ResourceGroup, ipcNICName, *nic)
	spin.Stop()
	if err != nil {
		return exitcode.Wrap(exitcode.Azure, err)
	}

	reportCreated("Network interface", ipcNICName, *updated.ID)
	return nil
}
