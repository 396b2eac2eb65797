package controller

import (
	"os"
)

// controllerEndpoint is the address an Exporter's status is advertised with,
// the same value clients are told to dial for Register/Listen/Dial.
func controllerEndpoint() string {
	ep := os.Getenv("GRPC_ENDPOINT")
	if ep == "" {
		return "localhost:8082"
	}
	return ep
}
