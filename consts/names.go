package consts

const (
	// AppName is used as window title prefix and as zeroconf instance prefix
	AppName = "glplayground"

	// DebugServiceName is the DNS-SD service type of the debug HTTP server
	DebugServiceName = "_glplayground._tcp"
)
