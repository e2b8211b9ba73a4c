package widgets

import (
	"testing"

	"github.com/go-mtrl/mtrl/pkg/core"
	mtrltest "github.com/go-mtrl/mtrl/pkg/testing"
)

type emitter interface {
	On(event string, h core.Handler) core.ListenerID
}

func collect(w emitter, event string) *[]any {
	var got []any
	w.On(event, func(data any) { got = append(got, data) })
	return &got
}

func newTester(t *testing.T, opts ...mtrltest.TesterOption) *mtrltest.Tester {
	t.Helper()
	return mtrltest.NewTesterWithT(t, opts...)
}
