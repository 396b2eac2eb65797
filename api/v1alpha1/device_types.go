package v1alpha1

// Device is an opaque record of one piece of hardware an Exporter currently
// makes available. The core never interprets Labels or DriverInterface; they
// are reported verbatim by the exporter's driver plugin system and only
// round-tripped through Exporter.Status.Devices.
type Device struct {
	Uuid            string            `json:"uuid,omitempty"`
	DriverInterface string            `json:"driverInterface,omitempty"`
	Labels          map[string]string `json:"labels,omitempty"`
}
