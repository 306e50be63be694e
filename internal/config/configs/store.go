package configs

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Store selects where state lives. The memory backend keeps everything in
// process and is meant for local runs and demos.
type Store struct {
	Backend string `env:"BACKEND" envDefault:"postgres"`
}

func (s Store) Valid() bool {
	return s.Backend == BackendPostgres || s.Backend == BackendMemory
}
