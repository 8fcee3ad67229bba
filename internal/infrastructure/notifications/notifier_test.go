package notifications

import (
	"context"
	"errors"
	"testing"

	"patisserie_marketplace/internal/usecase/interfaces"
	mock_interfaces "patisserie_marketplace/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestMultiNotifier(t *testing.T) {
	t.Run("a failing channel does not stop the others", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		first := mock_interfaces.NewMockINotifier(ctrl)
		second := mock_interfaces.NewMockINotifier(ctrl)
		order, shop, merchant := sampleOrder()

		boom := errors.New("smtp down")
		first.EXPECT().OrderConfirmed(gomock.Any(), order, shop, merchant).Return(boom)
		second.EXPECT().OrderConfirmed(gomock.Any(), order, shop, merchant).Return(nil)

		err := NewMultiNotifier(first, second).OrderConfirmed(context.Background(), order, shop, merchant)
		if !errors.Is(err, boom) {
			t.Fatalf("expected joined error to wrap boom, got %v", err)
		}
	})

	t.Run("nil channels are dropped", func(t *testing.T) {
		var none interfaces.INotifier
		m := NewMultiNotifier(none)
		order, shop, _ := sampleOrder()
		if err := m.OrderStatusChanged(context.Background(), order, shop); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}
