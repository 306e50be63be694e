package configs

// Telemetry configures trace export. An empty Endpoint disables exporting;
// spans are still created but dropped.
type Telemetry struct {
	Endpoint    string `env:"ENDPOINT"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"unipact"`
	Insecure    bool   `env:"INSECURE" envDefault:"true"`
}
