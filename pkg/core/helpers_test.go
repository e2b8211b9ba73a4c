package core

import (
	"testing"

	"github.com/go-mtrl/mtrl/pkg/compose"
	mtrltest "github.com/go-mtrl/mtrl/pkg/testing"
)

// build runs enhancers over a fresh base component owned by tester's
// document.
func build(tester *mtrltest.Tester, name string, fns ...func(*Component) *Component) *Component {
	base := NewBase(BaseConfig{ComponentName: name, Document: tester.Document()})
	return compose.Pipe(fns...)(base)
}

func collect(c *Component, event string) *[]any {
	var got []any
	c.On(event, func(data any) { got = append(got, data) })
	return &got
}

func newTester(t *testing.T, opts ...mtrltest.TesterOption) *mtrltest.Tester {
	t.Helper()
	return mtrltest.NewTesterWithT(t, opts...)
}
