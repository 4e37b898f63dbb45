package sllist

import (
	"testing"

	"github.com/google/uuid"

	"github.com/nxlak/single-linked-list/internal/contract"
)

func TestNodeCleanup(t *testing.T) {
	l := Of("a", "b")
	n := l.head.next
	if n.owner != l.id {
		t.Error("node must be owned by its list")
	}

	if err := l.PopFront(); err != nil {
		t.Error(err)
		return
	}

	if n.next != nil || n.owner != uuid.Nil || n.value != "" {
		t.Errorf("removed node must be detached, got %+v", *n)
	}
	if code := contract.AsCode(checkDeref(n)); code != contract.CodeForeignPosition {
		t.Errorf("expected %s got %s", contract.CodeForeignPosition, code)
	}
}

func TestZeroListInit(t *testing.T) {
	var l List[int]
	if l.id != uuid.Nil {
		t.Error("zero list must not have identity before use")
	}

	bb := l.BeforeBegin()
	if l.id == uuid.Nil || !l.head.head || l.head.owner != l.id {
		t.Error("sentinel must be initialized on first use")
	}
	if bb.n != &l.head {
		t.Error("before-begin must reference the sentinel")
	}
}
