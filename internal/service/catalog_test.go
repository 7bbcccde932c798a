// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/mock"
	"github.com/MKhiriev/go-quote-keeper/internal/store"
	"github.com/MKhiriev/go-quote-keeper/models"
)

func TestCatalog_Categories_DistinctFirstSeenOrder(t *testing.T) {
	kv := newMemoryKV()
	quotes := newLoadedStore(t, kv, []models.Quote{
		q("1", "Life"), q("2", "Motivation"), q("3", "Life"), q("4", "Server"), q("5", "Motivation"),
	})
	c := NewCatalog(quotes, kv, logger.Nop())

	assert.Equal(t, []string{"Life", "Motivation", "Server"}, slices.Collect(c.Categories()))
}

func TestCatalog_Categories_IsRestartableAndSeesUpdates(t *testing.T) {
	kv := newMemoryKV()
	quotes := newLoadedStore(t, kv, []models.Quote{q("1", "A")})
	c := NewCatalog(quotes, kv, logger.Nop())

	seq := c.Categories()
	assert.Equal(t, []string{"A"}, slices.Collect(seq))

	require.NoError(t, quotes.Append(context.Background(), q("2", "B")))
	assert.Equal(t, []string{"A", "B"}, slices.Collect(seq))
}

func TestCatalog_Categories_EarlyBreak(t *testing.T) {
	kv := newMemoryKV()
	quotes := newLoadedStore(t, kv, nil)
	c := NewCatalog(quotes, kv, logger.Nop())

	var got []string
	for category := range c.Categories() {
		got = append(got, category)
		break
	}
	assert.Equal(t, []string{"Motivation"}, got)
}

func TestCategoryOptions(t *testing.T) {
	kv := newMemoryKV()
	c := NewCatalog(newLoadedStore(t, kv, nil), kv, logger.Nop())

	assert.Equal(t, []string{models.FilterAll, "Motivation", "Life", "Inspiration"}, CategoryOptions(c))
}

func TestCatalog_Filter_DefaultAndPersisted(t *testing.T) {
	kv := newMemoryKV()
	c := NewCatalog(newLoadedStore(t, kv, nil), kv, logger.Nop())
	ctx := context.Background()

	filter, err := c.CurrentFilter(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.FilterAll, filter)

	require.NoError(t, c.SetFilter(ctx, "Life"))

	raw, err := kv.Get(ctx, KeyLastCategory)
	require.NoError(t, err)
	assert.Equal(t, "Life", raw)

	filter, err = c.CurrentFilter(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Life", filter)

	require.NoError(t, c.SetFilter(ctx, ""))
	filter, err = c.CurrentFilter(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.FilterAll, filter)
}

func TestCatalog_Filter_StorageErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockKeyValueRepository(ctrl)
	c := NewCatalog(nil, repo, logger.Nop())
	ctx := context.Background()

	readErr := errors.New("read failed")
	repo.EXPECT().Get(gomock.Any(), KeyLastCategory).Return("", readErr)
	_, err := c.CurrentFilter(ctx)
	assert.ErrorIs(t, err, readErr)

	repo.EXPECT().Set(gomock.Any(), KeyLastCategory, "Life").Return(store.ErrExecutingStatement)
	assert.ErrorIs(t, c.SetFilter(ctx, "Life"), store.ErrExecutingStatement)
}

func TestCatalog_Pool(t *testing.T) {
	kv := newMemoryKV()
	all := []models.Quote{q("1", "A"), q("2", "B"), q("3", "A")}
	c := NewCatalog(newLoadedStore(t, kv, all), kv, logger.Nop())

	tests := []struct {
		filter string
		want   []models.Quote
	}{
		{filter: models.FilterAll, want: all},
		{filter: "A", want: []models.Quote{q("1", "A"), q("3", "A")}},
		{filter: "B", want: []models.Quote{q("2", "B")}},
		{filter: "missing", want: []models.Quote{}},
		{filter: "a", want: []models.Quote{}},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Pool(tt.filter))
		})
	}
}
