package testsupport

import "github.com/stretchr/testify/mock"

// Spy records calls to a callback, standing in for a mock function.
// Every invocation is recorded as the "Call" method with the argument
// list as its single argument, so tests assert with
// AssertNumberOfCalls(t, "Call", n) or AssertCalled(t, "Call", []any{...}).
type Spy struct {
	mock.Mock
}

// NewSpy returns a spy that accepts any call.
func NewSpy() *Spy {
	s := &Spy{}
	s.On("Call", mock.Anything)
	return s
}

// Call records one invocation with its arguments.
func (s *Spy) Call(args ...any) {
	s.MethodCalled("Call", args)
}
