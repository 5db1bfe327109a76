// Package validate normalizes parsed command parameters before a request
// body is built: short names become fully-qualified resource IDs, derived
// fields (protocol, ports, allocation modes) are filled in, and
// cross-parameter consistency rules are enforced. Each command has one
// namespace struct with one Validate entry point; validation mutates the
// namespace in place and stops at the first failure.
package validate

// Field is a string parameter that distinguishes "never passed" from
// "passed empty" from "passed with a value". Specified is true only when
// the user supplied the flag explicitly, so a default value stays
// distinguishable from the same value typed out by the user.
type Field struct {
	Value     string
	Specified bool
}

// Specified returns a Field carrying an explicitly user-supplied value.
func Specified(value string) Field {
	return Field{Value: value, Specified: true}
}

// Defaulted returns a Field carrying a default the user never touched.
func Defaulted(value string) Field {
	return Field{Value: value}
}

// absent reports whether the field was never passed and holds no default.
func (f Field) absent() bool {
	return !f.Specified && f.Value == ""
}

// Context is the ambient request scope used to expand short names into
// fully-qualified resource IDs. The command layer resolves the subscription
// from the active session before validation runs, so validators never block
// on anything but the certificate file read.
type Context struct {
	SubscriptionID string
	ResourceGroup  string
}

// Namespace is implemented by every per-command parameter set. Validate
// mutates the namespace in place and reports the first rule violation.
type Namespace interface {
	Validate(Context) error
}

// ResourceRef wraps a resolved resource ID the way the network API expects
// list elements to be shaped.
type ResourceRef struct {
	ID string `json:"id"`
}

// Server is one backend server entry, classified as a literal IPv4 address
// or a domain name.
type Server struct {
	IPAddress string `json:"IpAddress,omitempty"`
	FQDN      string `json:"Fqdn,omitempty"`
}

// Allocation modes for private IP addresses.
const (
	AllocationStatic  = "static"
	AllocationDynamic = "dynamic"
)

// Creation type markers derived for dependent resources.
const (
	TypeNew      = "new"
	TypeExisting = "existing"
	TypeNone     = "none"
	TypeDNS      = "dns"
)

// Frontend kinds for the application gateway.
const (
	FrontendPublicIP  = "publicIp"
	FrontendPrivateIP = "privateIp"
)

// Listener protocols.
const (
	ProtocolHTTP  = "http"
	ProtocolHTTPS = "https"
)
