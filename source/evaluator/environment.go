package evaluator

import (
	"sort"

	"src.elv.sh/pkg/persistent/hash"
	"src.elv.sh/pkg/persistent/hashmap"

	"github.com/tim-hardcastle/curly/source/values"
)

// An Environment maps names to values. It is persistent: binding a name gives a new
// environment and leaves the old one unchanged, so a closure can keep the environment it
// was made in for as long as it likes.
type Environment struct {
	vars hashmap.Map
}

func NewEnvironment() *Environment {
	return &Environment{vars: hashmap.New(equalNames, hashName)}
}

func equalNames(a, b any) bool {
	return a.(string) == b.(string)
}

func hashName(k any) uint32 {
	return hash.String(k.(string))
}

func (env *Environment) Get(name string) (values.Value, bool) {
	v, ok := env.vars.Index(name)
	if !ok {
		return values.UNDEFINED, false
	}
	return v.(values.Value), true
}

// With returns a new environment in which name is bound to v.
func (env *Environment) With(name string, v values.Value) *Environment {
	return &Environment{vars: env.vars.Assoc(name, v)}
}

func (env *Environment) Len() int {
	return env.vars.Len()
}

// The names bound in the environment, in alphabetical order.
func (env *Environment) Names() []string {
	result := make([]string, 0, env.vars.Len())
	for it := env.vars.Iterator(); it.HasElem(); it.Next() {
		k, _ := it.Elem()
		result = append(result, k.(string))
	}
	sort.Strings(result)
	return result
}
