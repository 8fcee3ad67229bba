package notifications

import (
	"context"
	"crypto/ecdh"
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	appconfig "patisserie_marketplace/internal/config"
	"patisserie_marketplace/internal/domain/entities"
	mock_interfaces "patisserie_marketplace/internal/usecase/interfaces/mocks"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func testSubscription(t *testing.T, id, endpoint string) entities.PushSubscription {
	t.Helper()
	key, err := ecdh.P256().GenerateKey(rand.Reader)
	require.NoError(t, err)
	auth := make([]byte, 16)
	_, err = rand.Read(auth)
	require.NoError(t, err)
	return entities.PushSubscription{
		ID:        id,
		ProfileID: "prof-1",
		Endpoint:  endpoint,
		P256dh:    base64.RawURLEncoding.EncodeToString(key.PublicKey().Bytes()),
		Auth:      base64.RawURLEncoding.EncodeToString(auth),
	}
}

func newTestPushNotifier(t *testing.T, subs *mock_interfaces.MockIPushSubscriptionRepository) *PushNotifier {
	t.Helper()
	priv, pub, err := webpush.GenerateVAPIDKeys()
	require.NoError(t, err)
	n, err := NewPushNotifier(subs, appconfig.WebPushConfig{
		PublicKey:  pub,
		PrivateKey: priv,
		Subscriber: "mailto:ops@shop.test",
		TTL:        60,
	}, "https://shop.test", nil, zap.NewNop())
	require.NoError(t, err)
	return n
}

func TestNewPushNotifier_RequiresKeys(t *testing.T) {
	_, err := NewPushNotifier(nil, appconfig.WebPushConfig{}, "", nil, zap.NewNop())
	require.ErrorIs(t, err, ErrVAPIDNotConfigured)
}

func TestPushNotifier_OrderConfirmed(t *testing.T) {
	t.Run("delivers to every subscription", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		ctrl := gomock.NewController(t)
		subs := mock_interfaces.NewMockIPushSubscriptionRepository(ctrl)
		subs.EXPECT().ListByProfile(gomock.Any(), "prof-1").Return([]entities.PushSubscription{
			testSubscription(t, "s1", srv.URL+"/a"),
			testSubscription(t, "s2", srv.URL+"/b"),
		}, nil)

		order, shop, merchant := sampleOrder()
		require.NoError(t, newTestPushNotifier(t, subs).OrderConfirmed(context.Background(), order, shop, merchant))
		require.EqualValues(t, 2, hits.Load())
	})

	t.Run("gone endpoint is deleted", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusGone)
		}))
		defer srv.Close()

		ctrl := gomock.NewController(t)
		subs := mock_interfaces.NewMockIPushSubscriptionRepository(ctrl)
		subs.EXPECT().ListByProfile(gomock.Any(), "prof-1").Return([]entities.PushSubscription{
			testSubscription(t, "s-expired", srv.URL),
		}, nil)
		subs.EXPECT().Delete(gomock.Any(), "s-expired").Return(nil)

		order, shop, merchant := sampleOrder()
		require.NoError(t, newTestPushNotifier(t, subs).OrderConfirmed(context.Background(), order, shop, merchant))
	})

	t.Run("server error surfaces", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		ctrl := gomock.NewController(t)
		subs := mock_interfaces.NewMockIPushSubscriptionRepository(ctrl)
		subs.EXPECT().ListByProfile(gomock.Any(), "prof-1").Return([]entities.PushSubscription{
			testSubscription(t, "s1", srv.URL),
		}, nil)

		order, shop, merchant := sampleOrder()
		require.Error(t, newTestPushNotifier(t, subs).OrderConfirmed(context.Background(), order, shop, merchant))
	})
}

func TestPushNotifier_NoSubscriptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	subs := mock_interfaces.NewMockIPushSubscriptionRepository(ctrl)
	subs.EXPECT().ListByProfile(gomock.Any(), "ref-1").Return(nil, nil)

	require.NoError(t, newTestPushNotifier(t, subs).PayoutSent(context.Background(), entities.Profile{ID: "ref-1"}, entities.AffiliatePayout{}))
}
