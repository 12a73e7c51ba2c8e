package types

// CatalogConfig holds settings for the catalog layer.
type CatalogConfig struct {
	// Path is the catalog snapshot file read by search and dietary commands
	// (YAML by default; .json switches the codec).
	Path string `json:"path" yaml:"path"`
}

// MatchConfig holds settings for the matching stage.
// Per prd004-matching R5.1.
type MatchConfig struct {
	// MaxResults is the maximum number of ranked matches to return (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// GeneratorConfig holds settings for the synthetic catalog generator.
// Per prd006-generation R1.1-R1.4.
type GeneratorConfig struct {
	// Count is the number of records to generate (default 25).
	Count int `json:"count" yaml:"count"`

	// Seed drives the generator's PRNG. The same seed always produces the
	// same catalog.
	Seed int64 `json:"seed" yaml:"seed"`

	// City is the display name stamped into the catalog envelope.
	City string `json:"city" yaml:"city"`

	// CenterLatitude and CenterLongitude anchor the coordinate jitter for
	// generated venues.
	CenterLatitude  float64 `json:"center_latitude" yaml:"center_latitude"`
	CenterLongitude float64 `json:"center_longitude" yaml:"center_longitude"`
}

// EngineConfig groups all stage configurations.
type EngineConfig struct {
	Catalog   CatalogConfig   `json:"catalog" yaml:"catalog"`
	Match     MatchConfig     `json:"match" yaml:"match"`
	Generator GeneratorConfig `json:"generator" yaml:"generator"`
}
