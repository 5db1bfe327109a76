package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyServers(t *testing.T) {
	got := classifyServers([]string{"10.0.0.5", "db.example.com", "192.168.1.1", "app-01"})
	assert.Equal(t, []Server{
		{IPAddress: "10.0.0.5"},
		{FQDN: "db.example.com"},
		{IPAddress: "192.168.1.1"},
		{FQDN: "app-01"},
	}, got, "classification preserves input order")
}

func TestClassifyServers_Empty(t *testing.T) {
	assert.Empty(t, classifyServers(nil))
	assert.Empty(t, classifyServers([]string{}))
}

func TestClassifyServers_InvalidQuadIsFQDN(t *testing.T) {
	got := classifyServers([]string{"10.0.0.999", "256.1.1.1", "1.2.3"})
	for _, s := range got {
		assert.Empty(t, s.IPAddress, "%+v should classify as FQDN", s)
		assert.NotEmpty(t, s.FQDN)
	}
}
