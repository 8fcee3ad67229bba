package interfaces

import (
	"context"

	"patisserie_marketplace/internal/domain/entities"
)

//go:generate mockgen -source=catalog_repository_interface.go -destination=mocks/catalog_repository_mock.go -package=mock_interfaces

// ICatalogRepository reads the relational catalog: profiles, shops, products
// and form definitions. Missing rows come back as zero values.
type ICatalogRepository interface {
	GetProfile(ctx context.Context, id string) (entities.Profile, error)
	GetShopByID(ctx context.Context, id string) (entities.Shop, error)
	GetShopBySlug(ctx context.Context, slug string) (entities.Shop, error)
	GetProduct(ctx context.Context, shopID string, productID string) (entities.Product, error)
	GetFormFields(ctx context.Context, formID string) ([]entities.FormField, error)
	GetCustomForm(ctx context.Context, shopID string) (entities.Form, error)
}

// IPushSubscriptionRepository lists and prunes merchant web-push endpoints.
type IPushSubscriptionRepository interface {
	ListByProfile(ctx context.Context, profileID string) ([]entities.PushSubscription, error)
	Delete(ctx context.Context, id string) error
}
