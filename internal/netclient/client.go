package netclient

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
)

// Client submits network create requests for one subscription.
type Client struct {
	factory *armnetwork.ClientFactory
}

// NewClient creates a network client for the subscription.
func NewClient(subscriptionID string, cred azcore.TokenCredential) (*Client, error) {
	factory, err := armnetwork.NewClientFactory(subscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("creating network client factory: %w", err)
	}
	return &Client{factory: factory}, nil
}

// CreatePublicIP creates or updates a public IP address and waits for the
// operation to finish.
func (c *Client) CreatePublicIP(ctx context.Context, resourceGroup, name string, params armnetwork.PublicIPAddress) (*armnetwork.PublicIPAddress, error) {
	poller, err := c.factory.NewPublicIPAddressesClient().BeginCreateOrUpdate(ctx, resourceGroup, name, params, nil)
	if err != nil {
		return nil, fmt.Errorf("creating public IP %s: %w", name, err)
	}
	res, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("waiting for public IP %s: %w", name, err)
	}
	return &res.PublicIPAddress, nil
}

// CreateLoadBalancer creates or updates a load balancer and waits for the
// operation to finish.
func (c *Client) CreateLoadBalancer(ctx context.Context, resourceGroup, name string, params armnetwork.LoadBalancer) (*armnetwork.LoadBalancer, error) {
	poller, err := c.factory.NewLoadBalancersClient().BeginCreateOrUpdate(ctx, resourceGroup, name, params, nil)
	if err != nil {
		return nil, fmt.Errorf("creating load balancer %s: %w", name, err)
	}
	res, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("waiting for load balancer %s: %w", name, err)
	}
	return &res.LoadBalancer, nil
}

// CreateNIC creates or updates a network interface and waits for the
// operation to finish.
func (c *Client) CreateNIC(ctx context.Context, resourceGroup, name string, params armnetwork.Interface) (*armnetwork.Interface, error) {
	poller, err := c.factory.NewInterfacesClient().BeginCreateOrUpdate(ctx, resourceGroup, name, params, nil)
	if err != nil {
		return nil, fmt.Errorf("creating network interface %s: %w", name, err)
	}
	res, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("waiting for network interface %s: %w", name, err)
	}
	return &res.Interface, nil
}

// GetNIC fetches an existing network interface.
func (c *Client) GetNIC(ctx context.Context, resourceGroup, name string) (*armnetwork.Interface, error) {
	res, err := c.factory.NewInterfacesClient().Get(ctx, resourceGroup, name, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching network interface %s: %w", name, err)
	}
	return &res.Interface, nil
}

// CreateApplicationGateway creates or updates an application gateway and
// waits for the operation to finish. Gateway provisioning routinely takes
// many minutes; the context controls how long the caller is willing to wait.
func (c *Client) CreateApplicationGateway(ctx context.Context, resourceGroup, name string, params armnetwork.ApplicationGateway) (*armnetwork.ApplicationGateway, error) {
	poller, err := c.factory.NewApplicationGatewaysClient().BeginCreateOrUpdate(ctx, resourceGroup, name, params, nil)
	if err != nil {
		return nil, fmt.Errorf("creating application gateway %s: %w", name, err)
	}
	res, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("waiting for application gateway %s: %w", name, err)
	}
	return &res.ApplicationGateway, nil
}
