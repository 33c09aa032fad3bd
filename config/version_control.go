package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executable
	Main_version = "v0.3.0"

	// Modular tools
	Benchmark     = "v1.0.0"
	GC_Content    = "v1.1.0"
	Seq_Generator = "v1.0.0"
	Sanity_check  = "v1.0.0"
)
