package server

import "errors"

// errNoServersAreCreated is returned by NewServer when the configuration
// provides no HTTP listen address, leaving nothing to run. This is treated
// as a fatal misconfiguration at startup.
var errNoServersAreCreated = errors.New("no servers are created")
