// Package caster maps records between a wall-clock "data" representation
// and a UTC "domain" representation. A Registry is configured once: each
// registered type pair gets a compiled copy plan, optional per-field
// resolvers, and an explicitly attached post-copy hook that rezones
// timestamp fields. After Build succeeds the registry is immutable and
// safe for concurrent use.
package caster

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"tzcaster/internal/common"
	"tzcaster/zone"
)

// DefaultPassthrough is the passthrough set applied when neither the
// registry config nor a pair overrides it.
var DefaultPassthrough = []string{"AppointmentTime"}

// Config configures a Registry.
type Config struct {
	// Zone names the system-wide local zone, resolved once at construction.
	Zone string
	// Markers decide type provenance; the zero value means DefaultMarkers.
	Markers Markers
	// Passthrough lists field names exempt from conversion registry-wide;
	// nil means DefaultPassthrough.
	Passthrough []string
}

// PairConfig tunes one registered type pair. A nil PairConfig keeps all
// registry defaults.
type PairConfig struct {
	// Passthrough overrides the registry passthrough set when non-nil.
	Passthrough []string
	// Ignore lists destination fields allowed to stay unmapped.
	Ignore []string
	// Resolvers supplies one function per destination field that has no
	// same-named source field. Each must be func(Src) T or
	// func(Src) (T, error) with T assignable to the field.
	Resolvers map[string]any
}

// pairKey identifies a registered source/destination combination.
type pairKey struct {
	Src, Dst reflect.Type
}

// Mapping is the handle for one registered type pair.
type Mapping struct {
	src, dst  reflect.Type
	direction DirectionEnum
	cfg       PairConfig

	// compiled by Registry.Build
	plan      []copyStep
	stamps    []FieldDescriptor
	resolvers []resolver
	hooks     []Hook
}

// SourceType returns the registered source struct type.
func (m *Mapping) SourceType() reflect.Type { return m.src }

// TargetType returns the registered destination struct type.
func (m *Mapping) TargetType() reflect.Type { return m.dst }

// Direction returns the conversion direction deduced from provenance.
func (m *Mapping) Direction() DirectionEnum { return m.direction }

// String renders the pair as "data.Person->domain.Person".
func (m *Mapping) String() string {
	return typeLabel(m.src) + "->" + typeLabel(m.dst)
}

// Registry holds all registered type pairs plus the shared zone handle.
type Registry struct {
	zone        *zone.Handle
	markers     Markers
	passthrough []string

	pairs map[pairKey]*Mapping
	order []*Mapping
	built bool
}

// NewRegistry resolves the configured zone and returns an empty registry.
// An unknown zone fails here, never during a conversion.
func NewRegistry(cfg Config) (*Registry, error) {
	handle, err := zone.Resolve(cfg.Zone)
	if err != nil {
		return nil, fmt.Errorf("new registry: %w", err)
	}

	markers := cfg.Markers
	if markers == (Markers{}) {
		markers = DefaultMarkers()
	}

	passthrough := cfg.Passthrough
	if passthrough == nil {
		passthrough = DefaultPassthrough
	}

	return &Registry{
		zone:        handle,
		markers:     markers,
		passthrough: passthrough,
		pairs:       make(map[pairKey]*Mapping),
	}, nil
}

// Zone returns the shared zone handle.
func (r *Registry) Zone() *zone.Handle { return r.zone }

// Mappings returns the registered pair handles in registration order.
func (r *Registry) Mappings() []*Mapping {
	return append([]*Mapping(nil), r.order...)
}

// Register declares that values of src's type convert into dst's type.
// Both arguments are used for their types only. Deep validation is
// deferred to Build so every defect is reported at once.
func (r *Registry) Register(src, dst any, cfg *PairConfig) (*Mapping, error) {
	if r.built {
		return nil, ErrAlreadyBuilt
	}

	st, dt := reflect.TypeOf(src), reflect.TypeOf(dst)
	if st == nil || st.Kind() != reflect.Struct || dt == nil || dt.Kind() != reflect.Struct {
		return nil, ErrNotAStruct
	}

	key := pairKey{Src: st, Dst: dt}
	if _, exists := r.pairs[key]; exists {
		return nil, fmt.Errorf("%w: %s->%s", ErrDuplicatePair, typeLabel(st), typeLabel(dt))
	}

	m := &Mapping{
		src:       st,
		dst:       dt,
		direction: r.markers.Direction(st, dt),
	}
	if cfg != nil {
		m.cfg = *cfg
	}

	r.pairs[key] = m
	r.order = append(r.order, m)

	return m, nil
}

// Build compiles every registered pair and validates, eagerly, that each
// destination field is satisfied by the copy plan, a resolver, or an
// ignore entry. It returns a *ConfigError listing every defect found.
// After a successful Build the registry rejects further registrations.
func (r *Registry) Build() error {
	if r.built {
		return ErrAlreadyBuilt
	}

	var issues []Issue
	for _, m := range r.order {
		issues = append(issues, r.compile(m)...)
	}

	if len(issues) > 0 {
		return &ConfigError{Issues: issues}
	}

	r.built = true

	return nil
}

// compile builds the copy plan, descriptor table, resolvers and hooks for
// one pair, collecting configuration defects instead of failing fast.
func (r *Registry) compile(m *Mapping) []Issue {
	var issues []Issue
	pair := m.String()

	m.plan = buildCopyPlan(m.src, m.dst)
	m.stamps = TimestampFields(m.dst)

	covered := make(map[string]struct{}, len(m.plan))
	for _, step := range m.plan {
		covered[m.dst.Field(step.Dst).Name] = struct{}{}
	}

	names := make([]string, 0, len(m.cfg.Resolvers))
	for name := range m.cfg.Resolvers {
		names = append(names, name)
	}
	sort.Strings(names)

	m.resolvers = m.resolvers[:0]
	for _, name := range names {
		fn := m.cfg.Resolvers[name]

		df, ok := m.dst.FieldByName(name)
		if !ok || len(df.Index) != 1 {
			issues = append(issues, Issue{
				Code: "resolver_field_not_found", TypePair: pair, Field: name,
				Message: fmt.Sprintf("destination type %s has no field %q", typeLabel(m.dst), name),
			})
			continue
		}

		res, err := parseResolver(fn, m.src, df.Type)
		if err != nil {
			issues = append(issues, Issue{
				Code: "resolver_invalid", TypePair: pair, Field: name, Message: err.Error(),
			})
			continue
		}

		res.field = name
		res.dstIdx = df.Index[0]
		m.resolvers = append(m.resolvers, res)
		covered[name] = struct{}{}
	}

	for _, name := range m.cfg.Ignore {
		if _, ok := m.dst.FieldByName(name); !ok {
			issues = append(issues, Issue{
				Code: "ignore_field_not_found", TypePair: pair, Field: name,
				Message: fmt.Sprintf("destination type %s has no field %q", typeLabel(m.dst), name),
			})
			continue
		}

		covered[name] = struct{}{}
	}

	for i := 0; i < m.dst.NumField(); i++ {
		df := m.dst.Field(i)
		if !df.IsExported() || df.Anonymous {
			continue
		}

		if _, ok := covered[df.Name]; !ok {
			issues = append(issues, Issue{
				Code: "missing_source", TypePair: pair, Field: df.Name,
				Message: "destination field has no source field and no resolver",
			})
		}
	}

	passthrough := m.cfg.Passthrough
	if passthrough == nil {
		passthrough = r.passthrough
	}

	m.hooks = m.hooks[:0]
	if hook := timestampHook(m.direction, m.stamps, lowerSet(passthrough), r.zone); hook != nil {
		m.hooks = append(m.hooks, hook)
	}

	return issues
}

// Convert maps src into the struct that dst points at. The pair is looked
// up by the dynamic types of both arguments.
func (r *Registry) Convert(src, dst any) error {
	if !r.built {
		return ErrNotBuilt
	}

	dstV := reflect.ValueOf(dst)
	if !dstV.IsValid() || dstV.Kind() != reflect.Pointer || dstV.IsNil() ||
		dstV.Elem().Kind() != reflect.Struct {
		return ErrNotAPointer
	}

	srcV := reflect.ValueOf(src)
	if !srcV.IsValid() || srcV.Kind() != reflect.Struct {
		return ErrNotAStruct
	}

	key := pairKey{Src: srcV.Type(), Dst: dstV.Elem().Type()}

	m, ok := r.pairs[key]
	if !ok {
		return fmt.Errorf("%w: %s->%s", ErrUnknownPair, typeLabel(key.Src), typeLabel(key.Dst))
	}

	return m.apply(srcV, dstV.Elem())
}

// ConvertTo maps src into a freshly allocated D.
func ConvertTo[D any](r *Registry, src any) (D, error) {
	var dst D
	err := r.Convert(src, &dst)

	return dst, err
}

// apply runs the copy plan, then resolvers, then post-copy hooks. The
// destination is fully populated before the first hook sees it.
func (m *Mapping) apply(src, dst reflect.Value) error {
	runCopyPlan(m.plan, src, dst)

	for _, res := range m.resolvers {
		out := res.fn.Call([]reflect.Value{src})
		if res.hasErr && !out[1].IsNil() {
			return fmt.Errorf("resolve %s.%s: %w", typeLabel(m.dst), res.field, out[1].Interface().(error))
		}

		dst.Field(res.dstIdx).Set(out[0])
	}

	for _, hook := range m.hooks {
		hook(dst)
	}

	return nil
}

func typeLabel(t reflect.Type) string {
	if t.PkgPath() == "" {
		return t.String()
	}

	return common.PkgAlias(t.PkgPath()) + "." + t.Name()
}

func lowerSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[strings.ToLower(name)] = struct{}{}
	}

	return set
}
