package compiler

// How the compiler keeps track of the Go types of the names in scope, so that it can say
// what type a procedure returns.

type Environment struct {
	Data map[string]string
	Ext  *Environment
}

func NewEnvironment() *Environment {
	return &Environment{Data: make(map[string]string), Ext: nil}
}

func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.Ext = outer
	return env
}

func (env *Environment) GetType(name string) (string, bool) {
	if env == nil {
		return "", false
	}
	t, ok := env.Data[name]
	if ok {
		return t, true
	}
	return env.Ext.GetType(name)
}

func (env *Environment) SetType(name, goType string) {
	env.Data[name] = goType
}
