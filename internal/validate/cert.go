package validate

import (
	"encoding/base64"
	"os"
)

// Listener port defaults per protocol.
const (
	defaultPortHTTP  = 80
	defaultPortHTTPS = 443
)

// applyCert derives the listener protocol and frontend port from the SSL
// certificate parameters. With no certificate the listener stays on plain
// HTTP. With one, certData is replaced by the base64 encoding of the file's
// exact bytes and the listener switches to HTTPS. File path and password
// must be supplied together. The port defaults are only applied when the
// port was not set.
func applyCert(certData, certPassword *Field, protocol *string, frontendPort *int) error {
	if certData.Value == "" && certPassword.Value == "" {
		*protocol = ProtocolHTTP
		if *frontendPort == 0 {
			*frontendPort = defaultPortHTTP
		}
		return nil
	}

	if certData.Value == "" || certPassword.Value == "" {
		return NewConflictError(
			"To use an SSL certificate, you must specify both --cert-file and --cert-password.")
	}

	contents, err := os.ReadFile(certData.Value)
	if err != nil {
		return NewConfigError("Unable to read certificate file %s: %v.", certData.Value, err)
	}
	certData.Value = base64.StdEncoding.EncodeToString(contents)

	*protocol = ProtocolHTTPS
	if *frontendPort == 0 {
		*frontendPort = defaultPortHTTPS
	}
	return nil
}
