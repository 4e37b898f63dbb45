package sllist_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirkon/errors"

	"github.com/nxlak/single-linked-list/internal/contract"
	"github.com/nxlak/single-linked-list/internal/extmocks"
	"github.com/nxlak/single-linked-list/internal/sllist"
)

func TestLogger(t *testing.T) {
	t.Run("contract-violations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := extmocks.NewLoggerMock(ctrl)
		m.EXPECT().ListContractViolation("pop front", contract.NewEmptyList())
		m.EXPECT().ListContractViolation("erase after", contract.NewNoSuccessor())
		m.EXPECT().ListContractViolation("insert after", contract.NewEndPosition())
		m.EXPECT().ListContractViolation("insert after", contract.NewForeignPosition())

		l := sllist.New(sllist.WithLogger[int](m))
		_ = l.PopFront()
		_, _ = l.EraseAfter(l.BeforeBegin())
		_, _ = l.InsertAfter(l.End(), 1)
		_, _ = l.InsertAfter(sllist.Of(1).Begin(), 1)
	})

	t.Run("clone-failure", func(t *testing.T) {
		experr := errors.New("clone failed")

		ctrl := gomock.NewController(t)
		m := extmocks.NewLoggerMock(ctrl)
		m.EXPECT().ListCloneFailed("push front", experr)

		l := sllist.New(
			sllist.WithLogger[int](m),
			sllist.WithCloner(func(v int) (int, error) {
				return 0, experr
			}),
		)
		if err := l.PushFront(1); !errors.Is(err, experr) {
			t.Error("clone error must be propagated")
		}
	})

	t.Run("copy-inherits-logger", func(t *testing.T) {
		var calls int
		experr := errors.New("clone failed")

		ctrl := gomock.NewController(t)
		m := extmocks.NewLoggerMock(ctrl)
		m.EXPECT().ListCloneFailed("copy", experr)

		l := sllist.New(
			sllist.WithLogger[int](m),
			sllist.WithCloner(func(v int) (int, error) {
				calls++
				if calls > 2 {
					return 0, experr
				}
				return v, nil
			}),
		)
		if err := l.PushFront(1); err != nil {
			t.Error(err)
			return
		}
		if err := l.PushFront(2); err != nil {
			t.Error(err)
			return
		}

		if _, err := l.Copy(); !errors.Is(err, experr) {
			t.Error("clone error must be propagated")
		}
	})
}
