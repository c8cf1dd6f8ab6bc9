package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/spigell/hiring-desk/internal/ai/heuristic"
	"github.com/spigell/hiring-desk/internal/campaign"
	"github.com/spigell/hiring-desk/internal/seed"
	"github.com/spigell/hiring-desk/internal/store"
)

// newDesk builds the in-process store and campaign dialer from the config.
func newDesk(config *Config, log *zap.Logger) (*store.Store, *campaign.Dialer, error) {
	lang := store.Language(config.Language)
	if lang != store.LanguageEnglish && lang != store.LanguageArabic {
		return nil, nil, fmt.Errorf("unsupported language %q, use en or ar", config.Language)
	}

	data, err := loadSeed(config.Seed, log)
	if err != nil {
		return nil, nil, err
	}

	var noise heuristic.Noise = heuristic.RandomNoise{}
	if config.Seed.RandomSeed != 0 {
		noise = heuristic.SeededNoise(config.Seed.RandomSeed)
	}

	st := store.New(data,
		store.WithLogger(log.Named("store")),
		store.WithMatcher(heuristic.NewMatcher(noise, log.Named("matcher"))),
		store.WithCallDelay(config.Calls.Delay),
	)
	st.SetLanguage(lang)

	return st, campaign.New(st, config.Calls.Stagger, log.Named("campaign")), nil
}

func loadSeed(config *SeedConfig, log *zap.Logger) (store.Seed, error) {
	if config.File != "" {
		data, err := seed.LoadFile(config.File)
		if err != nil {
			return store.Seed{}, fmt.Errorf("loading seed: %w", err)
		}
		log.Info("seed loaded", zap.String("file", config.File), zap.Int("jobs", len(data.Jobs)), zap.Int("candidates", len(data.Candidates)))
		return data, nil
	}

	data := seed.Generate(seed.Options{Candidates: config.Candidates, RandomSeed: config.RandomSeed})
	log.Info("seed generated", zap.Int("jobs", len(data.Jobs)), zap.Int("candidates", len(data.Candidates)))
	return data, nil
}
