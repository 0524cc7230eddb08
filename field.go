package validex

// Validatable is implemented by records that validate themselves, usually
// through a method emitted by validex gen.
type Validatable interface {
	Validate() error
}

// Binding is one deferred field check, produced by Bind or BindFunc.
type Binding func() error

// Field runs c against v and attributes a failure to key.
// It returns nil or a *FieldError.
func Field[T any](key string, c Checker[T], v T) error {
	if err := c.Check(v); err != nil {
		return NewFieldError(key, err)
	}
	return nil
}

// Bind defers Field(key, c, v) until Validate runs it.
func Bind[T any](key string, c Checker[T], v T) Binding {
	return func() error {
		return Field(key, c, v)
	}
}

// BindFunc is Bind for a plain function check.
func BindFunc[T any](key string, fn func(v T) error, v T) Binding {
	return Bind[T](key, Func(fn), v)
}

// Validate runs bindings in order and returns the first failure. Bindings
// after a failing one are not run.
func Validate(bindings ...Binding) error {
	for _, b := range bindings {
		if err := b(); err != nil {
			return err
		}
	}
	return nil
}

// Nested checks a field by calling its own Validate method, so a failure
// renders as "outer -> inner -> cause".
func Nested[T Validatable]() CheckFunc[T] {
	return func(v T) error {
		return v.Validate()
	}
}
