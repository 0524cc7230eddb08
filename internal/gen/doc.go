// Package gen generates Validate methods from struct tags.
//
// Every struct type in the input file with at least one field tagged
// `check:"..."` gets a value-receiver method that binds each check to the
// field and runs them with validex.Validate:
//
//	type Signup struct {
//		Age  uint32 `check:"validex.Range(validex.Between[uint32](18, 65))"`
//		Name string `check:"validex.Length[string](validex.AtLeast(1)), isASCII"`
//	}
//
// becomes
//
//	func (r Signup) Validate() error {
//		return validex.Validate(
//			validex.Bind("age", validex.Range(validex.Between[uint32](18, 65)), r.Age),
//			validex.Bind("name", validex.Length[string](validex.AtLeast(1)), r.Name),
//			validex.BindFunc("name", isASCII, r.Name),
//		)
//	}
//
// The tag value is split at top-level commas. A piece that names a declaration
// is bound by what the name declares: functions and method expressions
// (isASCII, Address.Validate, strutil.NotBlank) with BindFunc, variables and
// constants (adultAge, rules.Adult) with Bind. Names are looked up in the
// input file, then its sibling files, then imported packages through
// golang.org/x/tools/go/packages; a name nothing declares is bound with
// BindFunc. A constant literal (100, "admin", true) becomes
// validex.Eq[<field type>](literal). Every other piece is bound with Bind.
// The binding key is the field's json name when it has one, otherwise the
// snake_case field name.
//
// Output goes to <name>_validex.go next to the input and is formatted with
// golang.org/x/tools/imports.
package gen
