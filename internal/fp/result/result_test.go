package result_test

import (
	"errors"
	"testing"

	. "github.com/npillmayer/stylecore/internal/fp/result"
)

func TestResultSimple(t *testing.T) {
	x := Ok(7) // infers type
	y := Err[int](errors.New("not ok"))

	v, err := x.Get()
	if err != nil || v != 7 {
		t.Errorf("expected Ok(7).Get() to return (7, nil), got (%d, %v)", v, err)
	}

	_, err = y.Get()
	if err == nil {
		t.Errorf("expected error to be non-nil, but it is nil")
	}
}
