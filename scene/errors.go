package scene

import "fmt"

// UndefinedName is returned when a form references a name that has not
// yet been declared. Forward references are not allowed.
type UndefinedName struct {
	Name string
}

func (e UndefinedName) Error() string { return fmt.Sprintf("undefined name %q", e.Name) }

// TypeMismatch is returned when a name resolves to the wrong kind of
// entity, e.g. a node name used where a pattern is expected.
type TypeMismatch struct {
	Expected, Got string
	Name          string
}

func (e TypeMismatch) Error() string {
	return fmt.Sprintf("%q: expected %s, got %s", e.Name, e.Expected, e.Got)
}

// ArityError is returned when a form is given the wrong number of
// arguments.
type ArityError struct {
	Form     string
	Expected string
	Got      int
}

func (e ArityError) Error() string {
	return fmt.Sprintf("%s: expected %s arguments, got %d", e.Form, e.Expected, e.Got)
}

// UnknownOption is returned when a phong material form is given a keyword
// outside the fixed set {:pattern, :ambient, :diffuse, :specular,
// :shininess, :reflective}.
type UnknownOption struct {
	Form, Option string
}

func (e UnknownOption) Error() string {
	return fmt.Sprintf("%s: unknown option %s", e.Form, e.Option)
}

// DuplicateName is returned when a top-level form redeclares a name
// already bound in the same namespace. The scene language has no notion
// of redefinition, so this is treated the same as any other build failure
// rather than silently shadowing the earlier declaration.
type DuplicateName struct {
	Name string
}

func (e DuplicateName) Error() string { return fmt.Sprintf("name %q already declared", e.Name) }
