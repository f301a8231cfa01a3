package repository

import (
	"bytes"
	"context"
	"log"
	"sort"

	"github.com/google/uuid"
	errorvalues "github.com/mindful/unplug/internal/error_values"
	"github.com/mindful/unplug/pkg/entity"
)

type QuotesRepository struct {
	store *Store
}

func NewQuotesRepo(store *Store) *QuotesRepository {
	if store == nil {
		log.Fatal("provided nil store for quotesRepo")
	}
	return &QuotesRepository{
		store: store,
	}
}

func (qr *QuotesRepository) Create(ctx context.Context, quote *entity.DailyQuote) (uuid.UUID, error) {
	if quote == nil {
		return uuid.UUID{}, errorvalues.ErrValidation
	}
	qr.store.mu.Lock()
	defer qr.store.mu.Unlock()
	stored := copyQuote(quote)
	stored.ID = uuid.New()
	qr.store.quotes[stored.ID] = stored
	return stored.ID, nil
}

func (qr *QuotesRepository) GetAll(ctx context.Context) ([]*entity.DailyQuote, error) {
	qr.store.mu.RLock()
	defer qr.store.mu.RUnlock()
	quotes := []*entity.DailyQuote{}
	for _, quote := range qr.store.quotes {
		quotes = append(quotes, copyQuote(quote))
	}
	sortQuotes(quotes)
	return quotes, nil
}

func (qr *QuotesRepository) GetActive(ctx context.Context) ([]*entity.DailyQuote, error) {
	qr.store.mu.RLock()
	defer qr.store.mu.RUnlock()
	quotes := []*entity.DailyQuote{}
	for _, quote := range qr.store.quotes {
		if quote.IsActive {
			quotes = append(quotes, copyQuote(quote))
		}
	}
	sortQuotes(quotes)
	return quotes, nil
}

// Map iteration order is random; a fixed order keeps the seeded random
// daily pick reproducible.
func sortQuotes(quotes []*entity.DailyQuote) {
	sort.Slice(quotes, func(i, j int) bool {
		return bytes.Compare(quotes[i].ID[:], quotes[j].ID[:]) < 0
	})
}
