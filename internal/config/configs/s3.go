package configs

// S3 configures object storage for deliverables and reports. An empty
// Bucket keeps files in memory instead.
type S3 struct {
	Bucket   string `env:"BUCKET"`
	Region   string `env:"REGION" envDefault:"ap-southeast-1"`
	Endpoint string `env:"ENDPOINT"`
	Prefix   string `env:"PREFIX" envDefault:"unipact"`
}

func (s S3) Enabled() bool { return s.Bucket != "" }
