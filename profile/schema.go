package profile

// Profile mirrors a registry configuration as a declarative YAML
// document: the system zone, the provenance markers, the passthrough set
// and the declared type pairs.
type Profile struct {
	Version     string   `yaml:"version"`
	Zone        string   `yaml:"zone"`
	Markers     Markers  `yaml:"markers,omitempty"`
	Passthrough []string `yaml:"passthrough,omitempty"`
	Pairs       []Pair   `yaml:"pairs"`
}

// Markers names the import-path segments that decide type provenance.
// Empty markers fall back to the caster defaults (data/domain).
type Markers struct {
	Local string `yaml:"local,omitempty"`
	UTC   string `yaml:"utc,omitempty"`
}

// Pair declares one source->target mapping.
type Pair struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
	// Passthrough overrides the profile-wide passthrough set when present.
	Passthrough []string `yaml:"passthrough,omitempty"`
	// Ignore lists target fields allowed to stay unmapped.
	Ignore []string `yaml:"ignore,omitempty"`
	// Resolvers lists target fields whose values come from Go-side
	// resolver functions supplied at bind time.
	Resolvers []string `yaml:"resolvers,omitempty"`
}

// String renders the pair as "source->target".
func (p Pair) String() string {
	return p.Source + "->" + p.Target
}
