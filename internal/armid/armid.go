// Package armid wraps Azure resource-ID parsing and construction for the
// network commands. All IDs built here live under the Microsoft.Network
// provider namespace.
package armid

import (
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
)

// ProviderNetwork is the resource provider namespace for all network resources.
const ProviderNetwork = "Microsoft.Network"

// IsResourceID reports whether s is a well-formed, fully-qualified
// Azure resource ID. Bare names and empty strings are not.
func IsResourceID(s string) bool {
	if !strings.HasPrefix(s, "/subscriptions/") {
		return false
	}
	_, err := arm.ParseResourceID(s)
	return err == nil
}

// ResourceID identifies a top-level or child resource by its path segments.
// ChildType and ChildName are both empty for a top-level resource.
type ResourceID struct {
	SubscriptionID string
	ResourceGroup  string
	Provider       string
	ResourceType   string
	Name           string
	ChildType      string
	ChildName      string
}

// String renders the canonical resource-ID path.
func (r ResourceID) String() string {
	id := fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/%s/%s/%s",
		r.SubscriptionID, r.ResourceGroup, r.Provider, r.ResourceType, r.Name)
	if r.ChildType != "" {
		id += fmt.Sprintf("/%s/%s", r.ChildType, r.ChildName)
	}
	return id
}

// Format builds the canonical ID for a top-level Microsoft.Network resource.
func Format(subscriptionID, resourceGroup, resourceType, name string) string {
	return ResourceID{
		SubscriptionID: subscriptionID,
		ResourceGroup:  resourceGroup,
		Provider:       ProviderNetwork,
		ResourceType:   resourceType,
		Name:           name,
	}.String()
}

// FormatChild builds the canonical ID for a child resource nested under a
// top-level Microsoft.Network resource.
func FormatChild(subscriptionID, resourceGroup, resourceType, name, childType, childName string) string {
	return ResourceID{
		SubscriptionID: subscriptionID,
		ResourceGroup:  resourceGroup,
		Provider:       ProviderNetwork,
		ResourceType:   resourceType,
		Name:           name,
		ChildType:      childType,
		ChildName:      childName,
	}.String()
}
