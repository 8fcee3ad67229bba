package repository

import (
	"context"
	"errors"

	"patisserie_marketplace/internal/adapter/persistence/models"
	"patisserie_marketplace/internal/domain/entities"
	"patisserie_marketplace/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// CatalogGormRepository reads the relational catalog from MySQL.
type CatalogGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ICatalogRepository = (*CatalogGormRepository)(nil)

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func (r *CatalogGormRepository) GetProfile(ctx context.Context, id string) (entities.Profile, error) {
	var m models.Profile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return entities.Profile{}, notFoundAsZero(err)
	}
	return toProfileEntity(m), nil
}

func (r *CatalogGormRepository) GetShopByID(ctx context.Context, id string) (entities.Shop, error) {
	var m models.Shop
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return entities.Shop{}, notFoundAsZero(err)
	}
	return toShopEntity(m), nil
}

func (r *CatalogGormRepository) GetShopBySlug(ctx context.Context, slug string) (entities.Shop, error) {
	var m models.Shop
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
		return entities.Shop{}, notFoundAsZero(err)
	}
	return toShopEntity(m), nil
}

func (r *CatalogGormRepository) GetProduct(ctx context.Context, shopID, productID string) (entities.Product, error) {
	var m models.Product
	if err := r.db.WithContext(ctx).Where("id = ? AND shop_id = ?", productID, shopID).First(&m).Error; err != nil {
		return entities.Product{}, notFoundAsZero(err)
	}
	p := entities.Product{
		ID:          m.ID,
		ShopID:      m.ShopID,
		Name:        m.Name,
		BasePrice:   m.BasePrice,
		IsAvailable: m.IsAvailable,
	}
	if m.FormID != nil {
		p.FormID = *m.FormID
	}
	return p, nil
}

func (r *CatalogGormRepository) GetFormFields(ctx context.Context, formID string) ([]entities.FormField, error) {
	var rows []models.FormField
	err := r.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("form_id = ?", formID).
		Order("position ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toFormFieldEntities(rows), nil
}

func (r *CatalogGormRepository) GetCustomForm(ctx context.Context, shopID string) (entities.Form, error) {
	var m models.Form
	err := r.db.WithContext(ctx).
		Preload("Fields", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Fields.Options", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("shop_id = ? AND is_custom_form = ?", shopID, true).
		First(&m).Error
	if err != nil {
		return entities.Form{}, notFoundAsZero(err)
	}
	return entities.Form{
		ID:           m.ID,
		ShopID:       m.ShopID,
		IsCustomForm: m.IsCustomForm,
		Fields:       toFormFieldEntities(m.Fields),
	}, nil
}

// notFoundAsZero keeps the repository contract: missing rows are not errors.
func notFoundAsZero(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func toProfileEntity(m models.Profile) entities.Profile {
	return entities.Profile{
		ID:                 m.ID,
		Email:              m.Email,
		DisplayName:        m.DisplayName,
		Plan:               entities.PlanName(m.Plan),
		StripeAccountID:    m.StripeAccountID,
		StripeOnboarded:    m.StripeOnboarded,
		PayPalEmail:        m.PayPalEmail,
		PayPalEnabled:      m.PayPalEnabled,
		MercadoPagoEnabled: m.MercadoPagoEnabled,
		ManualTransferIBAN: m.ManualTransferIBAN,
		ReferredBy:         m.ReferredBy,
	}
}

func toShopEntity(m models.Shop) entities.Shop {
	return entities.Shop{
		ID:        m.ID,
		ProfileID: m.ProfileID,
		Slug:      m.Slug,
		Name:      m.Name,
		IsActive:  m.IsActive,
		Currency:  m.Currency,
	}
}

func toFormFieldEntities(rows []models.FormField) []entities.FormField {
	fields := make([]entities.FormField, 0, len(rows))
	for _, f := range rows {
		opts := make([]entities.CustomizationOption, 0, len(f.Options))
		for _, o := range f.Options {
			opts = append(opts, entities.CustomizationOption{Label: o.Label, Price: o.Price})
		}
		fields = append(fields, entities.FormField{
			ID:       f.ID,
			FormID:   f.FormID,
			Label:    f.Label,
			Type:     entities.FieldType(f.Type),
			Required: f.Required,
			Position: f.Position,
			Options:  opts,
		})
	}
	return fields
}

// PushSubscriptionGormRepository manages merchant web-push endpoints.
type PushSubscriptionGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPushSubscriptionRepository = (*PushSubscriptionGormRepository)(nil)

func NewPushSubscriptionGormRepository(db *gorm.DB) *PushSubscriptionGormRepository {
	return &PushSubscriptionGormRepository{db: db}
}

func (r *PushSubscriptionGormRepository) ListByProfile(ctx context.Context, profileID string) ([]entities.PushSubscription, error) {
	var rows []models.PushSubscription
	if err := r.db.WithContext(ctx).Where("profile_id = ?", profileID).Find(&rows).Error; err != nil {
		return nil, err
	}
	subs := make([]entities.PushSubscription, 0, len(rows))
	for _, s := range rows {
		subs = append(subs, entities.PushSubscription{
			ID:        s.ID,
			ProfileID: s.ProfileID,
			Endpoint:  s.Endpoint,
			P256dh:    s.P256dh,
			Auth:      s.Auth,
		})
	}
	return subs, nil
}

func (r *PushSubscriptionGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.PushSubscription{}).Error
}
