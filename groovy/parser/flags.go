package parser

// Flags is the per-parse keyed store behind scoped parse-mode flags.
type Flags struct {
	values map[any]any
}

// Key is a typed flag key with a declared default.
type Key[T any] struct {
	name         string
	defaultValue T
}

func NewKey[T any](name string, defaultValue T) *Key[T] {
	return &Key[T]{name: name, defaultValue: defaultValue}
}

func (k *Key[T]) String() string {
	return k.name
}

// Get returns the current value of k, or its default when unset.
func (k *Key[T]) Get(f *Flags) T {
	if v, ok := k.Lookup(f); ok {
		return v
	}
	return k.defaultValue
}

func (k *Key[T]) Lookup(f *Flags) (T, bool) {
	if v, ok := f.values[k]; ok {
		return v.(T), true
	}
	var zero T
	return zero, false
}

func (k *Key[T]) Set(f *Flags, v T) {
	if f.values == nil {
		f.values = make(map[any]any)
	}
	f.values[k] = v
}

func (k *Key[T]) Clear(f *Flags) {
	delete(f.values, k)
}

// With sets k to v for the duration of action. The previous value, or the
// unset state, is restored on every exit path including panics.
func (k *Key[T]) With(f *Flags, v T, action func() bool) bool {
	prev, had := k.Lookup(f)
	defer k.restore(f, prev, had)
	k.Set(f, v)
	return action()
}

// Without runs action with k explicitly unset.
func (k *Key[T]) Without(f *Flags, action func() bool) bool {
	prev, had := k.Lookup(f)
	defer k.restore(f, prev, had)
	k.Clear(f)
	return action()
}

func (k *Key[T]) restore(f *Flags, prev T, had bool) {
	if had {
		k.Set(f, prev)
	} else {
		k.Clear(f)
	}
}

var (
	parseDiamonds                 = NewKey("groovy.parse.diamonds", false)
	parseArguments                = NewKey("groovy.parse.arguments", false)
	parseApplicationArguments     = NewKey("groovy.parse.application.arguments", false)
	parseAnyTypeElement           = NewKey("groovy.parse.any.type.element", false)
	parseQualifiedName            = NewKey("groovy.parse.qualified.name", false)
	parseCapitalizedCodeReference = NewKey("groovy.parse.capitalized", false)
	parseDefinitelyTypeElement    = NewKey("groovy.parse.definitely.type.element", false)
	referenceWasCapitalized       = NewKey("groovy.parse.ref.was.capitalized", false)
	typeWasPrimitive              = NewKey("groovy.parse.type.was.primitive", false)
	referenceHadTypeArguments     = NewKey("groovy.parse.ref.had.type.arguments", false)
	referenceWasQualified         = NewKey("groovy.parse.ref.was.qualified", false)
)
