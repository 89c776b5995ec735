package config

// Spec is the raw TOML document. Pointer fields distinguish "not set" from
// an explicit zero so that Resolve can apply defaults.
type Spec struct {
	Input  InputSpec  `toml:"input"`
	Output OutputSpec `toml:"output"`
	Batch  BatchSpec  `toml:"batch"`
	Log    LogSpec    `toml:"log"`
}

// InputSpec controls how names are read before encoding.
type InputSpec struct {
	Trim           *bool `toml:"trim"`            // Trim surrounding whitespace (nil=default true)
	FoldDiacritics *bool `toml:"fold_diacritics"` // Strip accents before encoding (nil=default false)
}

// OutputSpec controls presentation.
type OutputSpec struct {
	Format string `toml:"format"` // text | json | groups
	Color  string `toml:"color"`  // auto | always | never
}

// BatchSpec controls the encoding worker pool.
type BatchSpec struct {
	Workers *int `toml:"workers"` // Worker goroutines (nil=number of CPUs)
}

// LogSpec controls logging.
type LogSpec struct {
	Level       string `toml:"level"`        // debug | info | warn | error
	File        string `toml:"file"`         // JSON log file, appended to
	RedactNames *bool  `toml:"redact_names"` // Mask personal names in logs (nil=default true)
}
