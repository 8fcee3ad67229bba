package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	appconfig "patisserie_marketplace/internal/config"
	"patisserie_marketplace/internal/domain/entities"
	"patisserie_marketplace/internal/usecase/interfaces"

	webpush "github.com/SherClockHolmes/webpush-go"
	"go.uber.org/zap"
)

var ErrVAPIDNotConfigured = errors.New("webpush vapid keys not configured")

type pushPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url,omitempty"`
}

// PushNotifier sends web-push messages to every browser a merchant or
// affiliate registered. Expired endpoints (404/410) are deleted.
type PushNotifier struct {
	subscriptions interfaces.IPushSubscriptionRepository
	options       webpush.Options
	baseURL       string
	logger        *zap.Logger
}

var _ interfaces.INotifier = (*PushNotifier)(nil)

func NewPushNotifier(subscriptions interfaces.IPushSubscriptionRepository, cfg appconfig.WebPushConfig, baseURL string, httpClient webpush.HTTPClient, logger *zap.Logger) (*PushNotifier, error) {
	if cfg.PublicKey == "" || cfg.PrivateKey == "" {
		return nil, ErrVAPIDNotConfigured
	}
	return &PushNotifier{
		subscriptions: subscriptions,
		options: webpush.Options{
			HTTPClient:      httpClient,
			Subscriber:      cfg.Subscriber,
			VAPIDPublicKey:  cfg.PublicKey,
			VAPIDPrivateKey: cfg.PrivateKey,
			TTL:             cfg.TTL,
		},
		baseURL: baseURL,
		logger:  logger,
	}, nil
}

func (n *PushNotifier) OrderConfirmed(ctx context.Context, order entities.Order, shop entities.Shop, merchant entities.Profile) error {
	return n.notifyProfile(ctx, merchant.ID, pushPayload{
		Title: "Nouvelle commande " + order.OrderRef,
		Body:  fmt.Sprintf("%s, retrait le %s (%s €)", order.CustomerName, order.PickupDate, order.PaidAmount.StringFixed(2)),
		URL:   n.dashboardURL(order),
	})
}

func (n *PushNotifier) CustomRequestReceived(ctx context.Context, order entities.Order, shop entities.Shop, merchant entities.Profile) error {
	return n.notifyProfile(ctx, merchant.ID, pushPayload{
		Title: "Nouvelle demande personnalisée",
		Body:  fmt.Sprintf("%s, pour le %s", order.CustomerName, order.PickupDate),
		URL:   n.dashboardURL(order),
	})
}

// OrderStatusChanged only concerns the customer, who has no push endpoint.
func (n *PushNotifier) OrderStatusChanged(context.Context, entities.Order, entities.Shop) error {
	return nil
}

func (n *PushNotifier) PayoutSent(ctx context.Context, referrer entities.Profile, payout entities.AffiliatePayout) error {
	return n.notifyProfile(ctx, referrer.ID, pushPayload{
		Title: "Commissions versées",
		Body:  fmt.Sprintf("%s € pour %s", payout.Amount.StringFixed(2), payout.Period),
	})
}

func (n *PushNotifier) dashboardURL(order entities.Order) string {
	return fmt.Sprintf("%s/dashboard/orders/%s", n.baseURL, order.ID)
}

func (n *PushNotifier) notifyProfile(ctx context.Context, profileID string, payload pushPayload) error {
	if profileID == "" {
		return nil
	}
	subs, err := n.subscriptions.ListByProfile(ctx, profileID)
	if err != nil {
		return fmt.Errorf("list push subscriptions: %w", err)
	}
	if len(subs) == 0 {
		return nil
	}

	message, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	var errs []error
	for _, sub := range subs {
		if err := n.sendOne(ctx, sub, message); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (n *PushNotifier) sendOne(ctx context.Context, sub entities.PushSubscription, message []byte) error {
	opts := n.options
	resp, err := webpush.SendNotificationWithContext(ctx, message, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys:     webpush.Keys{Auth: sub.Auth, P256dh: sub.P256dh},
	}, &opts)
	if err != nil {
		n.logger.Warn("[notify][push] send failed", zap.String("subscription_id", sub.ID), zap.Error(err))
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		n.logger.Info("[notify][push] subscription expired, deleting", zap.String("subscription_id", sub.ID))
		if err := n.subscriptions.Delete(ctx, sub.ID); err != nil {
			return fmt.Errorf("delete expired subscription %s: %w", sub.ID, err)
		}
		return nil
	case resp.StatusCode >= 300:
		return fmt.Errorf("push endpoint returned %d", resp.StatusCode)
	}
	return nil
}
