package hamlet

import (
	"fmt"
	"reflect"
	"testing"
)

// Hamlet is a minimal "to be, or not to be" test helper. Specifications
// gives two of them: one that demands a condition holds, and one that
// demands it does not.
type Hamlet struct {
	t        *testing.T
	expected bool
}

func Specifications(t *testing.T) (*Hamlet, *Hamlet) {
	t.Helper()
	return &Hamlet{t, true}, &Hamlet{t, false}
}

func (it *Hamlet) decide(ok bool, form string, details ...interface{}) {
	it.t.Helper()
	if ok != it.expected {
		it.t.Errorf(form, details...)
	}
}

func (it *Hamlet) True(value bool) {
	it.t.Helper()
	it.decide(value, "Expected %v to be %v!", value, it.expected)
}

func (it *Hamlet) Nil(value interface{}) {
	it.t.Helper()
	it.decide(isNil(value), "Expected nil-ness of %#v to be %v!", value, it.expected)
}

func (it *Hamlet) Equal(left, right interface{}) {
	it.t.Helper()
	it.decide(reflect.DeepEqual(left, right), "Equality of %#v vs. %#v expected to be %v!", left, right, it.expected)
}

func (it *Hamlet) Text(expected string, value interface{}) {
	it.t.Helper()
	actual := fmt.Sprintf("%v", value)
	it.decide(expected == actual, "Text form %q vs. %q expected to be %v!", expected, actual, it.expected)
}

func (it *Hamlet) Panic(todo func()) {
	it.t.Helper()
	defer func() {
		it.t.Helper()
		caught := recover()
		it.decide(caught != nil, "Panic expectation was %v, got: %v!", it.expected, caught)
	}()
	todo()
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	reflected := reflect.ValueOf(value)
	switch reflected.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return reflected.IsNil()
	}
	return false
}
