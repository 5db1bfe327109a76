package validate

import (
	"github.com/ayeletshpigelman/azure-cli/internal/armid"
)

// resolveNetworkID expands a short name into a top-level Microsoft.Network
// resource ID. Already-qualified IDs pass through unchanged.
func (c Context) resolveNetworkID(resourceType, nameOrID string) string {
	if armid.IsResourceID(nameOrID) {
		return nameOrID
	}
	return armid.Format(c.SubscriptionID, c.ResourceGroup, resourceType, nameOrID)
}

// resolvePublicIP resolves a public IP address name or ID in place.
// An absent value is left untouched.
func (c Context) resolvePublicIP(publicIP *Field) {
	if publicIP.Value == "" {
		return
	}
	publicIP.Value = c.resolveNetworkID("publicIPAddresses", publicIP.Value)
}

// resolveNSG resolves a network security group name or ID in place.
// An absent value is left untouched.
func (c Context) resolveNSG(nsg *Field) {
	if nsg.Value == "" {
		return
	}
	nsg.Value = c.resolveNetworkID("networkSecurityGroups", nsg.Value)
}

// lbChildID builds the ID of a resource nested under a load balancer.
func (c Context) lbChildID(lbName, childType, childName string) string {
	return armid.FormatChild(c.SubscriptionID, c.ResourceGroup,
		"loadBalancers", lbName, childType, childName)
}

// resolveLBChildList resolves a list of load-balancer child resources given
// as names or IDs. Output order matches input order and every element is
// wrapped as {"id": ...}. A name cannot be resolved without --lb-name; in
// that case the whole list fails and the input is left unmodified.
func (c Context) resolveLBChildList(items []string, lbName, childType string) ([]ResourceRef, error) {
	if len(items) == 0 {
		return nil, nil
	}
	result := make([]ResourceRef, 0, len(items))
	for _, item := range items {
		if armid.IsResourceID(item) {
			result = append(result, ResourceRef{ID: item})
			continue
		}
		if lbName == "" {
			return nil, NewConfigError(
				"Unable to process %s. Please supply a well-formed ID or --lb-name.", item)
		}
		result = append(result, ResourceRef{ID: c.lbChildID(lbName, childType, item)})
	}
	return result, nil
}

// resolveLBChild resolves a single load-balancer child resource in place.
// Unlike the list form, an explicit ID conflicts with --lb-name here: the
// ID already names its load balancer.
func (c Context) resolveLBChild(field *Field, lbName, childType, flagDesc string) error {
	if armid.IsResourceID(field.Value) {
		if lbName != "" {
			return NewConflictError("Please omit --lb-name when specifying %s ID.", flagDesc)
		}
		return nil
	}
	if lbName == "" {
		return NewConfigError("Please specify --lb-name when specifying %s name.", flagDesc)
	}
	field.Value = c.lbChildID(lbName, childType, field.Value)
	return nil
}
