package database

import (
	"context"
	"testing"

	appconfig "patisserie_marketplace/internal/config"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDynamoDBConfig(t *testing.T) {
	t.Run("local endpoint uses static credentials", func(t *testing.T) {
		cfg, err := NewDynamoDBConfig(context.Background(), appconfig.AWSConfig{
			Region:          "eu-west-3",
			Endpoint:        "http://localhost:8000",
			AccessKeyID:     "local",
			SecretAccessKey: "local",
		})
		require.NoError(t, err)
		assert.Equal(t, "eu-west-3", cfg.Region)

		creds, err := cfg.Credentials.Retrieve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "local", creds.AccessKeyID)

		ep, err := cfg.EndpointResolverWithOptions.ResolveEndpoint(dynamodb.ServiceID, cfg.Region)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8000", ep.URL)

		_, err = cfg.EndpointResolverWithOptions.ResolveEndpoint("S3", cfg.Region)
		assert.Error(t, err)
	})

	t.Run("no endpoint keeps default resolution", func(t *testing.T) {
		cfg, err := NewDynamoDBConfig(context.Background(), appconfig.AWSConfig{Region: "us-east-1"})
		require.NoError(t, err)
		assert.Nil(t, cfg.EndpointResolverWithOptions)
	})
}
