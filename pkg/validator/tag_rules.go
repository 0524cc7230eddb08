package validator

import (
	"errors"
	"fmt"
	"sync"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/validex"
)

var (
	engine     *playground.Validate
	engineOnce sync.Once
)

// tagEngine returns the shared go-playground validator. It is safe for
// concurrent use once built.
func tagEngine() *playground.Validate {
	engineOnce.Do(func() {
		engine = playground.New(playground.WithRequiredStructEnabled())
	})
	return engine
}

// Tag checks a value against a go-playground/validator tag such as
// "required,email" or "min=3,max=64". The tag is parsed here: an unknown tag,
// or one that cannot apply to T, panics when the rule is built.
func Tag[T any](tag string) Rule[T] {
	mustParseTag[T](tag)

	test := func(v T) bool {
		return tagEngine().Var(v, tag) == nil
	}
	fail := func(v T) error {
		err := tagEngine().Var(v, tag)

		var verrs playground.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return &Violation{Code: fe.Tag(), Message: describeTag(fe.Tag(), fe.Param()), Err: ErrInvalidValue}
		}
		if err != nil {
			return &Violation{Code: "tag", Message: err.Error(), Err: ErrInvalidValue}
		}
		return &Violation{Code: "tag", Message: fmt.Sprintf("must satisfy %q", tag), Err: ErrInvalidValue}
	}
	return validex.Predicate(test, fail)
}

// mustParseTag runs tag once against the zero T, which makes go-playground
// parse and cache it.
func mustParseTag[T any](tag string) {
	defer func() {
		if r := recover(); r != nil {
			panic(fmt.Sprintf("validator: invalid tag %q: %v", tag, r))
		}
	}()
	var zero T
	_ = tagEngine().Var(zero, tag)
}

func describeTag(tag, param string) string {
	if param == "" {
		return fmt.Sprintf("must satisfy %s", tag)
	}
	return fmt.Sprintf("must satisfy %s=%s", tag, param)
}
