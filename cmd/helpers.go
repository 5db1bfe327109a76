package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ayeletshpigelman/azure-cli/internal/exitcode"
	"github.com/ayeletshpigelman/azure-cli/internal/netclient"
	"github.com/ayeletshpigelman/azure-cli/internal/output"
	"github.com/ayeletshpigelman/azure-cli/internal/session"
	"github.com/ayeletshpigelman/azure-cli/internal/validate"
)

// printDryRun renders the request body a live run would send.
func printDryRun(cmd *cobra.Command, cmdName string, body any) error {
	if jsonOutput {
		output.JSON(map[string]any{"command": cmdName, "request": body})
		return nil
	}
	data, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		return fmt.Errorf("rendering request body: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// newNetClient authenticates, verifies the subscription is reachable, and
// returns a network client for it.
func newNetClient(ctx context.Context, subscriptionID string) (*netclient.Client, error) {
	cred, err := session.Credential()
	if err != nil {
		return nil, exitcode.Wrap(exitcode.Azure, err)
	}
	if err := session.Verify(ctx, cred, subscriptionID); err != nil {
		return nil, exitcode.Wrap(exitcode.Azure, err)
	}
	client, err := netclient.NewClient(subscriptionID, cred)
	if err != nil {
		return nil, exitcode.Wrap(exitcode.Azure, err)
	}
	return client, nil
}

// validated resolves the ambient request scope and runs the namespace's
// validation against it.
func validated(ns validate.Namespace) (validate.Context, error) {
	ctx, err := requestContext()
	if err != nil {
		return validate.Context{}, err
	}
	if err := ns.Validate(ctx); err != nil {
		return ctx, err
	}
	return ctx, nil
}

// reportCreated prints the outcome of a successful create.
func reportCreated(kind, name, id string) {
	if jsonOutput {
		output.JSON(map[string]string{"kind": kind, "name": name, "id": id})
		return
	}
	output.Success(fmt.Sprintf("%s %s created", kind, name))
	color.New(color.Faint).Println(id)
}
