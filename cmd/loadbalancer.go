package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ayeletshpigelman/azure-cli/internal/exitcode"
	"github.com/ayeletshpigelman/azure-cli/internal/netclient"
	"github.com/ayeletshpigelman/azure-cli/internal/output"
	"github.com/ayeletshpigelman/azure-cli/internal/validate"
)

var lbCmd = &cobra.Command{
	Use:   "lb",
	Short: "Manage load balancers",
}

var lbCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a load balancer",
	Long: `Creates a load balancer with either a subnet frontend or a public IP
frontend. The two are mutually exclusive. A --public-ip-dns-name can only be
requested together with a newly created public IP.`,
	RunE: runLBCreate,
}

var (
	lbName       string
	lbSubnet     string
	lbVnetName   string
	lbPublicIP   string
	lbPIPType    string
	lbPIPDNSName string
	lbPrivateIP  string
)

func init() {
	f := lbCreateCmd.Flags()
	f.StringVarP(&lbName, "name", "n", "", "name of the load balancer")
	f.StringVar(&lbSubnet, "subnet", "", "subnet name or ID for the frontend")
	f.StringVar(&lbVnetName, "vnet-name", "", "virtual network containing --subnet (when a name is given)")
	f.StringVar(&lbPublicIP, "public-ip-address", "", "public IP name or ID for the frontend")
	f.StringVar(&lbPIPType, "public-ip-address-type", validate.TypeNew, "public IP usage (new | existing | none)")
	f.StringVar(&lbPIPDNSName, "public-ip-dns-name", "", "DNS label for a newly created public IP")
	f.StringVar(&lbPrivateIP, "private-ip-address", "", "static private IP for a subnet frontend")
	_ = lbCreateCmd.MarkFlagRequired("name")

	lbCmd.AddCommand(lbCreateCmd)
	rootCmd.AddCommand(lbCmd)
}

func runLBCreate(cmd *cobra.Command, args []string) error {
	ns := &validate.LoadBalancerNamespace{
		Subnet:             fieldOf(cmd, "subnet", lbSubnet),
		VirtualNetworkName: lbVnetName,
		PublicIPAddress:    fieldOf(cmd, "public-ip-address", lbPublicIP),
		PublicIPType:       lbPIPType,
		PublicIPDNSName:    lbPIPDNSName,
		PrivateIPAddress:   fieldOf(cmd, "private-ip-address", lbPrivateIP),
	}
	ctx, err := validated(ns)
	if err != nil {
		return err
	}
	output.Debug("validated lb namespace",
		"publicIPType", ns.PublicIPType, "dnsNameType", ns.DNSNameType)

	if dryRun {
		return printDryRun(cmd, "lb create", netclient.LoadBalancer(ns, location))
	}
	if err := requireLocation(); err != nil {
		return err
	}

	client, err := newNetClient(cmd.Context(), ctx.SubscriptionID)
	if err != nil {
		return err
	}

	// A new public IP frontend is provisioned first so the load balancer
	// can reference its ID.
	if ns.Subnet.Value == "" && ns.PublicIPType == validate.TypeNew {
		pipName := lbName + "PublicIP"
		pipNS := &validate.PublicIPNamespace{
			DNSName:          ns.PublicIPDNSName,
			AddressType:      validate.TypeNew,
			AllocationMethod: validate.AllocationDynamic,
		}
		if err := pipNS.Validate(ctx); err != nil {
			return err
		}

		spin := output.NewSpinner("Creating public IP " + pipName)
		spin.Start()
		pip, err := client.CreatePublicIP(cmd.Context(), ctx.ResourceGroup, pipName,
			netclient.PublicIPAddress(pipNS, location))
		spin.Stop()
		if err != nil {
			return exitcode.Wrap(exitcode.Azure, err)
		}
		ns.PublicIPAddress = validate.Specified(*pip.ID)
	}

	spin := output.NewSpinner("Creating load balancer " + lbName)
	spin.Start()
	created, err := client.CreateLoadBalancer(cmd.Context(), ctx.ResourceGroup, lbName,
		netclient.LoadBalancer(ns, location))
	spin.Stop()
	if err != nil {
		return exitcode.Wrap(exitcode.Azure, err)
	}

	reportCreated("Load balancer", lbName, *created.ID)
	return nil
}
