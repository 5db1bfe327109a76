package armid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsResourceID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "full top-level ID",
			input: "/subscriptions/00000000-0000-0000-0000-000000000000/resourceGroups/rg1/providers/Microsoft.Network/publicIPAddresses/ip1",
			want:  true,
		},
		{
			name:  "full child ID",
			input: "/subscriptions/00000000-0000-0000-0000-000000000000/resourceGroups/rg1/providers/Microsoft.Network/virtualNetworks/vnet1/subnets/subnet1",
			want:  true,
		},
		{name: "bare name", input: "my-subnet", want: false},
		{name: "empty", input: "", want: false},
		{name: "relative path", input: "resourceGroups/rg1/providers/Microsoft.Network/subnets/s1", want: false},
		{name: "truncated", input: "/subscriptions/00000000-0000-0000-0000-000000000000/resourceGroups", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsResourceID(tt.input))
		})
	}
}

func TestFormat(t *testing.T) {
	got := Format("sub1", "rg1", "publicIPAddresses", "ip1")
	assert.Equal(t,
		"/subscriptions/sub1/resourceGroups/rg1/providers/Microsoft.Network/publicIPAddresses/ip1",
		got)
}

func TestFormatChild(t *testing.T) {
	got := FormatChild("sub1", "rg1", "loadBalancers", "lb1", "inboundNatRules", "rule1")
	assert.Equal(t,
		"/subscriptions/sub1/resourceGroups/rg1/providers/Microsoft.Network/loadBalancers/lb1/inboundNatRules/rule1",
		got)
}

func TestFormatChild_RoundTripsThroughIsResourceID(t *testing.T) {
	id := FormatChild("00000000-0000-0000-0000-000000000000", "rg1",
		"virtualNetworks", "vnet1", "subnets", "front")
	assert.True(t, IsResourceID(id), "constructed IDs must parse as valid resource IDs")
}
