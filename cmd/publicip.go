package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ayeletshpigelman/azure-cli/internal/exitcode"
	"github.com/ayeletshpigelman/azure-cli/internal/netclient"
	"github.com/ayeletshpigelman/azure-cli/internal/output"
	"github.com/ayeletshpigelman/azure-cli/internal/validate"
)

var publicIPCmd = &cobra.Command{
	Use:   "public-ip",
	Short: "Manage public IP addresses",
}

var publicIPCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a public IP address",
	RunE:  runPublicIPCreate,
}

var (
	pipName       string
	pipDNSName    string
	pipAllocation string
)

func init() {
	f := publicIPCreateCmd.Flags()
	f.StringVarP(&pipName, "name", "n", "", "name of the public IP address")
	f.StringVar(&pipDNSName, "dns-name", "", "DNS domain-name label for the public IP")
	f.StringVar(&pipAllocation, "allocation-method", validate.AllocationDynamic, "IP allocation method (static | dynamic)")
	_ = publicIPCreateCmd.MarkFlagRequired("name")

	publicIPCmd.AddCommand(publicIPCreateCmd)
	rootCmd.AddCommand(publicIPCmd)
}

func runPublicIPCreate(cmd *cobra.Command, args []string) error {
	ns := &validate.PublicIPNamespace{
		DNSName:          pipDNSName,
		AddressType:      validate.TypeNew,
		AllocationMethod: pipAllocation,
	}
	ctx, err := validated(ns)
	if err != nil {
		return err
	}
	output.Debug("validated public-ip namespace", "type", ns.AddressType)

	body := netclient.PublicIPAddress(ns, location)
	if dryRun {
		return printDryRun(cmd, "public-ip create", body)
	}
	if err := requireLocation(); err != nil {
		return err
	}

	client, err := newNetClient(cmd.Context(), ctx.SubscriptionID)
	if err != nil {
		return err
	}

	spin := output.NewSpinner("Creating public IP " + pipName)
	spin.Start()
	created, err := client.CreatePublicIP(cmd.Context(), ctx.ResourceGroup, pipName, body)
	spin.Stop()
	if err != nil {
		return exitcode.Wrap(exitcode.Azure, err)
	}

	reportCreated("Public IP", pipName, *created.ID)
	return nil
}
