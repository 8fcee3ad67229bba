package notifications

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"time"

	appconfig "patisserie_marketplace/internal/config"
	"patisserie_marketplace/internal/domain/entities"
	"patisserie_marketplace/internal/usecase/interfaces"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

var ErrSMTPNotConfigured = errors.New("smtp host not configured")

// mailSender is the part of *mail.Client the notifier uses.
type mailSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// EmailNotifier sends transactional emails to customers, merchants and
// affiliates over SMTP.
type EmailNotifier struct {
	sender  mailSender
	from    string
	baseURL string
	logger  *zap.Logger
}

var _ interfaces.INotifier = (*EmailNotifier)(nil)

func NewEmailNotifier(cfg appconfig.SMTPConfig, baseURL string, logger *zap.Logger) (*EmailNotifier, error) {
	if cfg.Host == "" {
		return nil, ErrSMTPNotConfigured
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(10 * time.Second),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return newEmailNotifier(client, cfg.From, baseURL, logger), nil
}

func newEmailNotifier(sender mailSender, from, baseURL string, logger *zap.Logger) *EmailNotifier {
	return &EmailNotifier{sender: sender, from: from, baseURL: baseURL, logger: logger}
}

func (n *EmailNotifier) OrderConfirmed(ctx context.Context, order entities.Order, shop entities.Shop, merchant entities.Profile) error {
	data := n.orderData(order, shop)
	var errs []error
	if order.CustomerEmail != "" {
		errs = append(errs, n.send(ctx, order.CustomerEmail,
			fmt.Sprintf("%s : commande %s confirmée", shop.Name, order.OrderRef), customerConfirmedTmpl, data))
	}
	if merchant.Email != "" {
		errs = append(errs, n.send(ctx, merchant.Email,
			fmt.Sprintf("Nouvelle commande %s", order.OrderRef), merchantNewOrderTmpl, data))
	}
	return errors.Join(errs...)
}

func (n *EmailNotifier) CustomRequestReceived(ctx context.Context, order entities.Order, shop entities.Shop, merchant entities.Profile) error {
	data := n.orderData(order, shop)
	var errs []error
	if merchant.Email != "" {
		errs = append(errs, n.send(ctx, merchant.Email,
			fmt.Sprintf("Nouvelle demande personnalisée %s", order.OrderRef), merchantCustomRequestTmpl, data))
	}
	if order.CustomerEmail != "" {
		errs = append(errs, n.send(ctx, order.CustomerEmail,
			fmt.Sprintf("%s : demande %s reçue", shop.Name, order.OrderRef), customerRequestAckTmpl, data))
	}
	return errors.Join(errs...)
}

func (n *EmailNotifier) OrderStatusChanged(ctx context.Context, order entities.Order, shop entities.Shop) error {
	if order.CustomerEmail == "" {
		return nil
	}
	return n.send(ctx, order.CustomerEmail,
		fmt.Sprintf("%s : commande %s mise à jour", shop.Name, order.OrderRef), customerStatusTmpl, n.orderData(order, shop))
}

func (n *EmailNotifier) PayoutSent(ctx context.Context, referrer entities.Profile, payout entities.AffiliatePayout) error {
	if referrer.Email == "" {
		return nil
	}
	return n.send(ctx, referrer.Email, fmt.Sprintf("Versement de vos commissions %s", payout.Period), payoutTmpl, map[string]any{
		"Name":   referrer.DisplayName,
		"Period": payout.Period,
		"Amount": payout.Amount.StringFixed(2),
	})
}

func (n *EmailNotifier) orderData(order entities.Order, shop entities.Shop) map[string]any {
	return map[string]any{
		"ShopName":   shop.Name,
		"OrderRef":   order.OrderRef,
		"Customer":   order.CustomerName,
		"PickupDate": order.PickupDate,
		"PickupTime": order.PickupTime,
		"Total":      order.TotalAmount.StringFixed(2),
		"Paid":       order.PaidAmount.StringFixed(2),
		"Status":     statusLabel(order.Status),
		"Reason":     order.RefusalReason,
		"Link":       fmt.Sprintf("%s/%s/order/confirmation?order=%s", n.baseURL, shop.Slug, order.ID),
	}
}

func (n *EmailNotifier) send(ctx context.Context, to, subject string, tmpl *template.Template, data any) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}

	msg := mail.NewMsg()
	if err := msg.From(n.from); err != nil {
		return fmt.Errorf("from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetDate()
	msg.SetMessageID()
	msg.SetBodyString(mail.TypeTextHTML, body.String())

	if err := n.sender.DialAndSendWithContext(ctx, msg); err != nil {
		n.logger.Warn("[notify][email] send failed", zap.String("template", tmpl.Name()), zap.Error(err))
		return err
	}
	n.logger.Debug("[notify][email] sent", zap.String("template", tmpl.Name()))
	return nil
}

func statusLabel(s entities.OrderStatus) string {
	switch s {
	case entities.OrderStatusQuoted:
		return "devis disponible"
	case entities.OrderStatusConfirmed:
		return "confirmée"
	case entities.OrderStatusToVerify:
		return "virement en cours de vérification"
	case entities.OrderStatusReady:
		return "prête à être retirée"
	case entities.OrderStatusCompleted:
		return "retirée"
	case entities.OrderStatusRefused:
		return "refusée"
	default:
		return "en attente"
	}
}

var (
	customerConfirmedTmpl = template.Must(template.New("customer_confirmed").Parse(
		`<p>Bonjour {{.Customer}},</p><p>Votre commande <b>{{.OrderRef}}</b> chez {{.ShopName}} est confirmée.</p>` +
			`<p>Retrait le {{.PickupDate}}{{if .PickupTime}} à {{.PickupTime}}{{end}}. Montant réglé : {{.Paid}} € sur {{.Total}} €.</p>` +
			`<p><a href="{{.Link}}">Voir ma commande</a></p>`))

	merchantNewOrderTmpl = template.Must(template.New("merchant_new_order").Parse(
		`<p>Nouvelle commande <b>{{.OrderRef}}</b> de {{.Customer}}.</p><p>Retrait le {{.PickupDate}}{{if .PickupTime}} à {{.PickupTime}}{{end}}. Réglé : {{.Paid}} € / {{.Total}} €.</p>`))

	merchantCustomRequestTmpl = template.Must(template.New("merchant_custom_request").Parse(
		`<p>{{.Customer}} a envoyé une demande personnalisée (<b>{{.OrderRef}}</b>) pour le {{.PickupDate}}.</p><p>Envoyez-lui un devis depuis votre tableau de bord.</p>`))

	customerRequestAckTmpl = template.Must(template.New("customer_request_ack").Parse(
		`<p>Bonjour {{.Customer}},</p><p>{{.ShopName}} a bien reçu votre demande <b>{{.OrderRef}}</b>. Vous recevrez un devis prochainement.</p>`))

	customerStatusTmpl = template.Must(template.New("customer_status").Parse(
		`<p>Bonjour {{.Customer}},</p><p>Votre commande <b>{{.OrderRef}}</b> chez {{.ShopName}} est désormais : {{.Status}}.</p>` +
			`{{if .Reason}}<p>Motif : {{.Reason}}</p>{{end}}<p><a href="{{.Link}}">Voir ma commande</a></p>`))

	payoutTmpl = template.Must(template.New("affiliate_payout").Parse(
		`<p>Bonjour {{.Name}},</p><p>Vos commissions de parrainage pour {{.Period}} ({{.Amount}} €) ont été virées sur votre compte Stripe.</p>`))
)
