package app

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"musicbingo/internal/config"
	"musicbingo/internal/domain"
)

const (
	MinCardCount = 1
	MaxCardCount = 100
	MinCardSize  = 3
	MaxCardSize  = 7
)

// Service runs win scheduling with an owned random source, so runs with an
// explicit seed are fully reproducible.
type Service struct {
	rng *rand.Rand
	log *zap.Logger
}

// NewService constructs a Service with the provided rng and logger, defaulting
// to a time-seeded source and a no-op logger.
func NewService(rng *rand.Rand, log *zap.Logger) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{rng: rng, log: log}
}

// TargetRound pins one place to an exact round.
type TargetRound struct {
	Place string
	Round int
}

// Config is the full, explicit configuration of one engine run.
type Config struct {
	CardCount int
	CardSize  int
	FreeSpace bool // center free cell on odd-sized cards
	Rules     []domain.WinRule
	Targets   []TargetRound

	// Steering budgets; zero means the loaded engine config (or its default).
	MaxAttempts         int
	CallAttemptsPerDeck int
}

// Schedule is the complete output of one successful engine run.
type Schedule struct {
	ID         string
	Cards      []domain.Card
	Calls      domain.CallSequence
	Table      OperatorTable
	Milestones []CardMilestones
}

// Run generates cards and a call sequence from the pool, simulates the game,
// steers toward any target rounds, and builds the operator table.
func (s *Service) Run(pool *domain.Pool, cfg Config) (*Schedule, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	rules := cfg.Rules
	if len(rules) == 0 {
		rules = domain.DefaultRules()
	}
	targets, err := resolveTargets(cfg.Targets, rules, cfg.CardSize, freeSpace(cfg), pool.Len())
	if err != nil {
		return nil, err
	}

	cards, err := s.GenerateCards(pool, cfg.CardCount, cfg.CardSize, cfg.FreeSpace)
	if err != nil {
		return nil, err
	}
	calls, err := s.NewCallSequence(pool)
	if err != nil {
		return nil, err
	}

	var records []WinnerRecord
	var miles []CardMilestones
	if len(targets) == 0 {
		records, miles, err = simulate(cards, calls, rules)
	} else {
		cards, calls, records, miles, err = s.steer(pool, cfg, cards, calls, rules, targets)
	}
	if err != nil {
		return nil, err
	}

	table, err := BuildTable(records, len(rules))
	if err != nil {
		return nil, err
	}

	s.log.Info("schedule complete",
		zap.Int("cards", len(cards)),
		zap.Int("rounds", len(calls)),
		zap.Int("places", len(table)))

	return &Schedule{
		ID:         uuid.NewString(),
		Cards:      cards,
		Calls:      calls,
		Table:      table,
		Milestones: miles,
	}, nil
}

// GenerateCards draws count unique size×size grids from the pool. Each card
// samples its cells without replacement and duplicate grids are rejected, with
// a retry budget of 10×count before giving up.
func (s *Service) GenerateCards(pool *domain.Pool, count, size int, free bool) ([]domain.Card, error) {
	if count < MinCardCount || count > MaxCardCount {
		return nil, fmt.Errorf("%w: card count %d outside %d..%d", ErrInvalidConfig, count, MinCardCount, MaxCardCount)
	}
	if size < MinCardSize || size > MaxCardSize {
		return nil, fmt.Errorf("%w: card size %d outside %d..%d", ErrInvalidConfig, size, MinCardSize, MaxCardSize)
	}

	needed := size * size
	if free && size%2 == 1 {
		needed--
	}
	if pool.Len() < needed {
		return nil, fmt.Errorf("%w: have %d items, need %d for a %dx%d card",
			ErrInsufficientPool, pool.Len(), needed, size, size)
	}

	items := pool.Items()
	seen := make(map[string]struct{}, count)
	cards := make([]domain.Card, 0, count)
	maxAttempts := 10 * count

	for attempt := 0; attempt < maxAttempts && len(cards) < count; attempt++ {
		s.rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
		card := domain.NewCard(len(cards), items[:needed], size, free && size%2 == 1)
		sig := card.Signature()
		if _, dup := seen[sig]; dup {
			continue
		}
		seen[sig] = struct{}{}
		cards = append(cards, card)
	}

	if len(cards) < count {
		return nil, fmt.Errorf("%w: produced %d of %d cards within %d attempts",
			ErrUnsatisfiableUniqueness, len(cards), count, maxAttempts)
	}
	return cards, nil
}

// NewCallSequence returns a uniformly random permutation of the whole pool.
func (s *Service) NewCallSequence(pool *domain.Pool) (domain.CallSequence, error) {
	if pool.Len() == 0 {
		return nil, ErrEmptyPool
	}
	calls := domain.CallSequence(pool.Items())
	s.rng.Shuffle(len(calls), func(i, j int) { calls[i], calls[j] = calls[j], calls[i] })
	return calls, nil
}

func validateConfig(cfg Config) error {
	if cfg.CardCount < MinCardCount || cfg.CardCount > MaxCardCount {
		return fmt.Errorf("%w: card count %d outside %d..%d", ErrInvalidConfig, cfg.CardCount, MinCardCount, MaxCardCount)
	}
	if cfg.CardSize < MinCardSize || cfg.CardSize > MaxCardSize {
		return fmt.Errorf("%w: card size %d outside %d..%d", ErrInvalidConfig, cfg.CardSize, MinCardSize, MaxCardSize)
	}
	return nil
}

func freeSpace(cfg Config) bool {
	return cfg.FreeSpace && cfg.CardSize%2 == 1
}

func (s *Service) maxAttempts(cfg Config) int {
	if cfg.MaxAttempts > 0 {
		return cfg.MaxAttempts
	}
	return config.MaxSteeringAttempts()
}

func (s *Service) callAttemptsPerDeck(cfg Config) int {
	if cfg.CallAttemptsPerDeck > 0 {
		return cfg.CallAttemptsPerDeck
	}
	return config.CallAttemptsPerDeck()
}
