package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ayeletshpigelman/azure-cli/internal/armid"
	"github.com/ayeletshpigelman/azure-cli/internal/exitcode"
	"github.com/ayeletshpigelman/azure-cli/internal/netclient"
	"github.com/ayeletshpigelman/azure-cli/internal/output"
	"github.com/ayeletshpigelman/azure-cli/internal/validate"
)

var appGatewayCmd = &cobra.Command{
	Use:   "application-gateway",
	Short: "Manage application gateways",
}

var appGatewayCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an application gateway",
	Long: `Creates an application gateway. Without a certificate the listener uses
HTTP on port 80; with --cert-file and --cert-password (both required
together) the listener uses HTTPS on port 443. Address prefixes may only be
set when the subnet is being created (--subnet-type new).`,
	RunE: runAppGatewayCreate,
}

var (
	agwName         string
	agwSubnet       string
	agwVnetName     string
	agwSubnetType   string
	agwSubnetPrefix string
	agwVnetPrefix   string
	agwPublicIP     string
	agwPrivateIP    string
	agwCertFile     string
	agwCertPassword string
	agwFrontendPort int
	agwServers      []string
)

func init() {
	f := appGatewayCreateCmd.Flags()
	f.StringVarP(&agwName, "name", "n", "", "name of the application gateway")
	f.StringVar(&agwSubnet, "subnet", "", "subnet name or ID for the gateway")
	f.StringVar(&agwVnetName, "vnet-name", "", "virtual network containing --subnet (when a name is given)")
	f.StringVar(&agwSubnetType, "subnet-type", validate.TypeNew, "whether the subnet is created or reused (new | existing)")
	f.StringVar(&agwSubnetPrefix, "subnet-address-prefix", "10.0.0.0/24", "address prefix for a new subnet")
	f.StringVar(&agwVnetPrefix, "vnet-address-prefix", "10.0.0.0/16", "address prefix for a new virtual network")
	f.StringVar(&agwPublicIP, "public-ip-address", "", "public IP name or ID for the frontend")
	f.StringVar(&agwPrivateIP, "private-ip-address", "", "static private IP for the frontend")
	f.StringVar(&agwCertFile, "cert-file", "", "path to the SSL certificate (PFX)")
	f.StringVar(&agwCertPassword, "cert-password", "", "password of the SSL certificate")
	f.IntVar(&agwFrontendPort, "frontend-port", 0, "frontend listener port (default 80, or 443 with a certificate)")
	f.StringSliceVar(&agwServers, "servers", nil, "backend servers as IP addresses or FQDNs")
	_ = appGatewayCreateCmd.MarkFlagRequired("name")

	appGatewayCmd.AddCommand(appGatewayCreateCmd)
	rootCmd.AddCommand(appGatewayCmd)
}

func runAppGatewayCreate(cmd *cobra.Command, args []string) error {
	ns := &validate.ApplicationGatewayNamespace{
		Subnet:              fieldOf(cmd, "subnet", agwSubnet),
		VirtualNetworkName:  agwVnetName,
		SubnetType:          agwSubnetType,
		SubnetAddressPrefix: fieldOf(cmd, "subnet-address-prefix", agwSubnetPrefix),
		VnetAddressPrefix:   fieldOf(cmd, "vnet-address-prefix", agwVnetPrefix),
		PublicIPAddress:     fieldOf(cmd, "public-ip-address", agwPublicIP),
		PrivateIPAddress:    fieldOf(cmd, "private-ip-address", agwPrivateIP),
		CertFile:            fieldOf(cmd, "cert-file", agwCertFile),
		CertPassword:        fieldOf(cmd, "cert-password", agwCertPassword),
		FrontendPort:        agwFrontendPort,
		Servers:             agwServers,
	}
	ctx, err := validated(ns)
	if err != nil {
		return err
	}
	output.Debug("validated application-gateway namespace",
		"frontendType", ns.FrontendType, "protocol", ns.HTTPListenerProtocol,
		"port", ns.FrontendPort)

	gatewayID := armid.Format(ctx.SubscriptionID, ctx.ResourceGroup, "applicationGateways", agwName)
	body := netclient.ApplicationGateway(ns, gatewayID, location)
	if dryRun {
		return printDryRun(cmd, "application-gateway create", body)
	}
	if err := requireLocation(); err != nil {
		return err
	}

	client, err := newNetClient(cmd.Context(), ctx.SubscriptionID)
	if err != nil {
		return err
	}

	spin := output.NewSpinner("Creating application gateway " + agwName)
	spin.Start()
	created, err := client.CreateApplicationGateway(cmd.Context(), ctx.ResourceGroup, agwName, body)
	spin.Stop()
	if err != nil {
		return exitcode.Wrap(exitcode.Azure, err)
	}

	reportCreated("Application gateway", agwName, *created.ID)
	return nil
}
