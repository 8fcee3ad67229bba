package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"patisserie_marketplace/internal/adapter/http/handlers/mocks"
	"patisserie_marketplace/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResolveRunTime(t *testing.T) {
	fixed := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	now := func() time.Time { return fixed }

	t.Run("defaults to now", func(t *testing.T) {
		got, err := resolveRunTime("", "Europe/Paris", now)
		require.NoError(t, err)
		assert.Equal(t, fixed, got)
	})

	t.Run("noon of the given business day", func(t *testing.T) {
		got, err := resolveRunTime("2030-03-05", "Europe/Paris", now)
		require.NoError(t, err)
		paris, _ := time.LoadLocation("Europe/Paris")
		assert.Equal(t, 5, got.In(paris).Day())
		assert.Equal(t, 12, got.In(paris).Hour())
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := resolveRunTime("05/03/2030", "Europe/Paris", now)
		assert.Error(t, err)
	})
}

func TestRunPayout(t *testing.T) {
	at := time.Date(2030, 3, 5, 12, 0, 0, 0, time.UTC)

	t.Run("prints the report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAffiliatePayoutUseCase(ctrl)
		uc.EXPECT().Run(gomock.Any(), at, true).Return(usecase.PayoutReport{Period: "2030-02"}, nil)

		var out bytes.Buffer
		require.NoError(t, runPayout(context.Background(), uc, at, true, &out))
		assert.Contains(t, out.String(), `"period": "2030-02"`)
	})

	t.Run("referrer failures fail the command", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAffiliatePayoutUseCase(ctrl)
		uc.EXPECT().Run(gomock.Any(), at, false).Return(usecase.PayoutReport{
			Period:   "2030-02",
			Failures: []usecase.ReferrerFailure{{ReferrerID: "prof-1", Error: "stripe down"}},
		}, nil)

		var out bytes.Buffer
		err := runPayout(context.Background(), uc, at, false, &out)
		require.Error(t, err)
		assert.Contains(t, out.String(), "prof-1")
	})

	t.Run("run error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAffiliatePayoutUseCase(ctrl)
		uc.EXPECT().Run(gomock.Any(), at, false).Return(usecase.PayoutReport{}, errors.New("scan failed"))

		err := runPayout(context.Background(), uc, at, false, &bytes.Buffer{})
		assert.ErrorContains(t, err, "scan failed")
	})
}
