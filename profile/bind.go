package profile

import (
	"fmt"

	"tzcaster/caster"
)

// TypeSet names the Go struct types a profile may reference, keyed the
// way pairs spell them, e.g. "data.Person": data.Person{}.
type TypeSet map[string]any

// Resolvers supplies resolver functions keyed "<target>.<Field>", e.g.
// "domain.Person.FullName".
type Resolvers map[string]any

// Bind compiles a profile into a fully built caster.Registry. It
// validates the profile, resolves the zone, registers every declared
// pair with its resolvers, and runs the eager registry validation.
func Bind(p *Profile, types TypeSet, resolvers Resolvers) (*caster.Registry, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}

	reg, err := caster.NewRegistry(caster.Config{
		Zone:        p.Zone,
		Markers:     caster.Markers{Local: p.Markers.Local, UTC: p.Markers.UTC},
		Passthrough: p.Passthrough,
	})
	if err != nil {
		return nil, err
	}

	for i := range p.Pairs {
		pair := &p.Pairs[i]

		src, ok := types[pair.Source]
		if !ok {
			return nil, fmt.Errorf("bind pair %s: unknown source type %q", pair, pair.Source)
		}

		dst, ok := types[pair.Target]
		if !ok {
			return nil, fmt.Errorf("bind pair %s: unknown target type %q", pair, pair.Target)
		}

		cfg := &caster.PairConfig{
			Passthrough: pair.Passthrough,
			Ignore:      pair.Ignore,
		}

		for _, field := range pair.Resolvers {
			fn, ok := resolvers[pair.Target+"."+field]
			if !ok {
				return nil, fmt.Errorf("bind pair %s: no resolver supplied for %s.%s", pair, pair.Target, field)
			}

			if cfg.Resolvers == nil {
				cfg.Resolvers = make(map[string]any, len(pair.Resolvers))
			}

			cfg.Resolvers[field] = fn
		}

		if _, err := reg.Register(src, dst, cfg); err != nil {
			return nil, fmt.Errorf("bind pair %s: %w", pair, err)
		}
	}

	if err := reg.Build(); err != nil {
		return nil, err
	}

	return reg, nil
}
