package selector_test

import (
	"testing"

	"github.com/npillmayer/stylecore/selector"
)

func TestSpecificityOrdering(t *testing.T) {
	elementOnly := selector.NewSpecificity(false, 0, 0, 1, 0, 0)
	classAndElement := selector.NewSpecificity(false, 0, 1, 1, 0, 0)
	idOnly := selector.NewSpecificity(false, 1, 0, 0, 0, 0)

	if !(elementOnly < classAndElement) {
		t.Fatalf("expected element < class+element")
	}
	if !(classAndElement < idOnly) {
		t.Fatalf("expected class+element < id")
	}
}

func TestSpecificityAddCommutativeAndIdentity(t *testing.T) {
	a := selector.NewSpecificity(false, 1, 2, 3, 0, 0)
	b := selector.NewSpecificity(false, 0, 1, 0, 0, 0)
	if selector.Add(a, b) != selector.Add(b, a) {
		t.Fatalf("Add not commutative")
	}
	if selector.Add(a, selector.Zero) != a {
		t.Fatalf("Zero is not an additive identity")
	}
	if !(a <= selector.Add(a, b)) {
		t.Fatalf("a should be <= a+b")
	}
}

func TestSpecificityOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on id-count overflow")
		}
	}()
	selector.NewSpecificity(false, 1001, 0, 0, 0, 0)
}

func TestSpecificityTieBreakBySourceOrder(t *testing.T) {
	first := selector.NewSpecificity(false, 0, 1, 1, 0, 0)
	second := selector.NewSpecificity(false, 0, 1, 1, 0, 1)
	if !(first < second) {
		t.Fatalf("later rule-index should be more specific on tie")
	}
}
