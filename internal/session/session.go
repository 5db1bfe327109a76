// Package session resolves the active Azure session for aznet: the
// subscription scope that anchors resource-ID construction, and the
// credential used when a request is actually sent.
//
// Subscription resolution order:
//  1. explicit --subscription flag
//  2. AZURE_SUBSCRIPTION_ID environment variable
//  3. aznet.yaml defaults (applied by the command layer before calling in)
//  4. the active az CLI account (az account show)
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
)

// CommandRunner executes external commands. Injected for tests.
type CommandRunner func(name string, args ...string) ([]byte, error)

func defaultRunner(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// Session resolves subscription context from the local environment.
type Session struct {
	runner CommandRunner
}

// New returns a session backed by the real az CLI.
func New() *Session {
	return &Session{runner: defaultRunner}
}

// NewWithRunner returns a session with an injected command runner.
func NewWithRunner(runner CommandRunner) *Session {
	if runner == nil {
		runner = defaultRunner
	}
	return &Session{runner: runner}
}

// SubscriptionID resolves the subscription for this invocation. The
// explicit value wins when non-empty; otherwise the environment and the
// active az CLI account are consulted in order.
func (s *Session) SubscriptionID(explicit string) (string, error) {
	if v := strings.TrimSpace(explicit); v != "" {
		return v, nil
	}
	if v := strings.TrimSpace(os.Getenv("AZURE_SUBSCRIPTION_ID")); v != "" {
		return v, nil
	}

	out, err := s.runner("az", "account", "show", "--output", "json")
	if err != nil {
		return "", fmt.Errorf("no subscription configured: pass --subscription, set AZURE_SUBSCRIPTION_ID, or run az login")
	}
	var account struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(out, &account); err != nil {
		return "", fmt.Errorf("invalid az account output: %w", err)
	}
	if account.ID == "" {
		return "", fmt.Errorf("az account show returned no subscription id")
	}
	return account.ID, nil
}

// Credential returns a token credential, preferring service-principal
// environment variables and falling back to the az CLI session.
func Credential() (azcore.TokenCredential, error) {
	if os.Getenv("AZURE_CLIENT_ID") != "" && os.Getenv("AZURE_TENANT_ID") != "" {
		cred, err := azidentity.NewEnvironmentCredential(nil)
		if err == nil {
			return cred, nil
		}
	}
	cred, err := azidentity.NewAzureCLICredential(nil)
	if err != nil {
		return nil, fmt.Errorf("no Azure credential available (set AZURE_CLIENT_ID/AZURE_CLIENT_SECRET/AZURE_TENANT_ID or run az login): %w", err)
	}
	return cred, nil
}

// Verify checks that the subscription exists and is visible to the
// credential before any create request is attempted.
func Verify(ctx context.Context, cred azcore.TokenCredential, subscriptionID string) error {
	client, err := armsubscriptions.NewClient(cred, nil)
	if err != nil {
		return fmt.Errorf("creating subscriptions client: %w", err)
	}
	if _, err := client.Get(ctx, subscriptionID, nil); err != nil {
		return fmt.Errorf("subscription %s is not accessible: %w", subscriptionID, err)
	}
	return nil
}
