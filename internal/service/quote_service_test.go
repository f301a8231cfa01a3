package service_test

import (
	"context"
	"math/rand/v2"
	"testing"

	errorvalues "github.com/mindful/unplug/internal/error_values"
	"github.com/mindful/unplug/internal/repository"
	"github.com/mindful/unplug/internal/service"
	"github.com/mindful/unplug/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func seededRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 0))
}

func TestDailyQuote(t *testing.T) {
	store := repository.NewStore()
	repo := repository.NewQuotesRepo(store)
	ctx := context.Background()
	qs := service.NewQuoteServiceWithRand(repo, seededRand())
	t.Run("no active quotes", func(t *testing.T) {
		_, err := qs.Daily(ctx)
		assert.ErrorIs(t, err, errorvalues.ErrNoActiveQuotes)
	})
	quotes := []entity.DailyQuote{
		{Quote: "Almost everything will work again if you unplug it.", Author: "Anne Lamott", Category: "wellness", IsActive: true},
		{Quote: "Focus on being productive instead of busy.", Author: "Tim Ferriss", Category: "productivity", IsActive: true},
		{Quote: "Retired.", Author: "Unknown", Category: "motivation", IsActive: false},
	}
	for i := range quotes {
		if _, err := repo.Create(ctx, &quotes[i]); err != nil {
			t.Fatal(err)
		}
	}
	t.Run("picks only active quotes", func(t *testing.T) {
		for range 20 {
			quote, err := qs.Daily(ctx)
			assert.NoError(t, err)
			assert.True(t, quote.IsActive)
		}
	})
	t.Run("same seed, same sequence", func(t *testing.T) {
		a := service.NewQuoteServiceWithRand(repo, seededRand())
		b := service.NewQuoteServiceWithRand(repo, seededRand())
		for range 10 {
			qa, err := a.Daily(ctx)
			assert.NoError(t, err)
			qb, err := b.Daily(ctx)
			assert.NoError(t, err)
			assert.Equal(t, qa.ID, qb.ID)
		}
	})
}

func TestAllQuotes(t *testing.T) {
	store := repository.NewStore()
	repo := repository.NewQuotesRepo(store)
	ctx := context.Background()
	qs := service.NewQuoteServiceWithRand(repo, seededRand())
	for _, active := range []bool{true, false, true} {
		if _, err := repo.Create(ctx, &entity.DailyQuote{Quote: "q", Author: "a", Category: "wellness", IsActive: active}); err != nil {
			t.Fatal(err)
		}
	}
	all, err := qs.All(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 3, len(all))
}
