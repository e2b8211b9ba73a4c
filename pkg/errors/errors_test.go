package errors

import (
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	errors  []*ComponentError
	panics  []*PanicError
	creates []*CreateError
}

func (h *recordingHandler) HandleError(err *ComponentError)    { h.errors = append(h.errors, err) }
func (h *recordingHandler) HandlePanic(err *PanicError)        { h.panics = append(h.panics, err) }
func (h *recordingHandler) HandleCreateError(err *CreateError) { h.creates = append(h.creates, err) }

func useRecorder(t *testing.T) *recordingHandler {
	t.Helper()
	h := &recordingHandler{}
	SetHandler(h)
	t.Cleanup(func() { SetHandler(nil) })
	return h
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindCreate, "create"},
		{KindDOM, "dom"},
		{KindConfig, "config"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestComponentErrorString(t *testing.T) {
	err := &ComponentError{Op: "tooltip.SetTarget", Kind: KindDOM, Err: stderrors.New("detached")}
	assert.Equal(t, "tooltip.SetTarget [dom]: detached", err.Error())
	assert.ErrorIs(t, err, err.Err)
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	assert.Equal(t, "panic: test panic", err.Error())

	err.Op = "sheet.close"
	assert.Equal(t, "panic in sheet.close: test panic", err.Error())
}

func TestCreateErrorString(t *testing.T) {
	err := &CreateError{Widget: "card", Err: stderrors.New("bad tag")}
	assert.Equal(t, "Failed to create card: bad tag", err.Error())

	err = &CreateError{Widget: "chip", Recovered: "boom"}
	assert.Equal(t, "Failed to create chip: boom", err.Error())
}

func TestGuard_Success(t *testing.T) {
	h := useRecorder(t)

	got, err := Guard("card", func() (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.Empty(t, h.creates)
}

func TestGuard_RecoversPanicWithError(t *testing.T) {
	h := useRecorder(t)
	cause := stderrors.New("InvalidCharacterError: bad tag")

	got, err := Guard("card", func() (*int, error) { panic(cause) })
	assert.Nil(t, got)

	var ce *CreateError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "card", ce.Widget)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Failed to create card: InvalidCharacterError: bad tag", err.Error())
	assert.NotEmpty(t, ce.StackTrace)
	require.Len(t, h.creates, 1)
}

func TestGuard_WrapsReturnedError(t *testing.T) {
	h := useRecorder(t)

	_, err := Guard("tooltip", func() (string, error) { return "", stderrors.New("no target") })
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "Failed to create tooltip: "))
	assert.Len(t, h.creates, 1)
}

func TestRecover(t *testing.T) {
	h := useRecorder(t)

	func() {
		defer Recover("ripple.cleanup")
		panic("lost node")
	}()

	require.Len(t, h.panics, 1)
	assert.Equal(t, "ripple.cleanup", h.panics[0].Op)
}

func TestReport_SetsTimestamp(t *testing.T) {
	h := useRecorder(t)

	Report(&ComponentError{Op: "x", Err: stderrors.New("y")})
	Report(nil)

	require.Len(t, h.errors, 1)
	assert.False(t, h.errors[0].Timestamp.IsZero())
}
