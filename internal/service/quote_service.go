package service

import (
	"context"
	"errors"
	"log"
	"math/rand/v2"
	"time"

	errorvalues "github.com/mindful/unplug/internal/error_values"
	"github.com/mindful/unplug/internal/repository"
	"github.com/mindful/unplug/pkg/entity"
)

type QuoteService struct {
	repo repository.QuotesRepositoryI
	rng  *rand.Rand
}

func NewQuoteService(quotesRepo repository.QuotesRepositoryI) *QuoteService {
	return NewQuoteServiceWithRand(quotesRepo, rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)))
}

// NewQuoteServiceWithRand lets tests pin the daily pick with a seeded source.
func NewQuoteServiceWithRand(quotesRepo repository.QuotesRepositoryI, rng *rand.Rand) *QuoteService {
	if quotesRepo == nil {
		log.Fatal("provided nil quotesRepo")
	}
	if rng == nil {
		log.Fatal("provided nil random source for quote service")
	}
	return &QuoteService{
		repo: quotesRepo,
		rng:  rng,
	}
}

func (qs *QuoteService) Daily(ctx context.Context) (*entity.DailyQuote, error) {
	active, err := qs.repo.GetActive(ctx)
	if err != nil {
		return nil, errors.New("quotes repository error: " + err.Error())
	}
	if len(active) == 0 {
		return nil, errorvalues.ErrNoActiveQuotes
	}
	return active[qs.rng.IntN(len(active))], nil
}

func (qs *QuoteService) All(ctx context.Context) ([]*entity.DailyQuote, error) {
	quotes, err := qs.repo.GetAll(ctx)
	if err != nil {
		return nil, errors.New("quotes repository error: " + err.Error())
	}
	return quotes, nil
}
