// Package config holds the points-to engine's configuration surface:
// lazy-vs-eager evaluation, the heap-allocating function set, the oracle
// selector, and the large-function warning threshold.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"ptaset/internal/alias"
)

// DefaultHeapAllocatingFunctions is the standard C allocator family used as
// the default set of heap-allocating function names.
var DefaultHeapAllocatingFunctions = []string{"malloc", "calloc", "realloc"}

// DefaultLargePointerWarningThreshold is the per-function pointer count
// above which analysis cost grows noticeably, since disambiguation is
// O(n^2) in the number of pointers.
const DefaultLargePointerWarningThreshold = 100

// Config is the engine's construction-time configuration.
type Config struct {
	// UseLazyEvaluation, if false, analyzes every non-declaration function
	// eagerly at construction; if true, functions are analyzed on first
	// query that reaches them.
	UseLazyEvaluation bool `yaml:"useLazyEvaluation"`
	// HeapAllocatingFunctions names calls classified as heap allocation
	// sites by the allocation-site classifier.
	HeapAllocatingFunctions []string `yaml:"heapAllocatingFunctions"`
	// PointerAnalysisType selects the oracle implementation.
	PointerAnalysisType alias.Type `yaml:"pointerAnalysisType"`
	// LargePointerWarningThreshold is the per-function pointer count above
	// which the analyzer logs a performance warning.
	LargePointerWarningThreshold int `yaml:"largePointerWarningThreshold"`
}

// Default returns the engine's default configuration: eager evaluation,
// the C allocator family, the type-shape oracle, threshold 100.
func Default() Config {
	return Config{
		UseLazyEvaluation:             false,
		HeapAllocatingFunctions:       append([]string(nil), DefaultHeapAllocatingFunctions...),
		PointerAnalysisType:           alias.TypeShape,
		LargePointerWarningThreshold: DefaultLargePointerWarningThreshold,
	}
}

// HeapAllocatingSet returns c's heap-allocating function names as a set,
// for O(1) membership tests in the allocation-site classifier.
func (c Config) HeapAllocatingSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.HeapAllocatingFunctions))
	for _, name := range c.HeapAllocatingFunctions {
		set[name] = struct{}{}
	}
	return set
}

// Load reads a YAML configuration file, starting from Default() so a
// partial file only overrides the fields it mentions.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
