package seed

import (
	"errors"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/spigell/hiring-desk/internal/recruiting"
	"github.com/spigell/hiring-desk/internal/store"
)

// LoadFile reads a fixture in any format viper understands (YAML, JSON, TOML).
// Job creation times are RFC 3339 strings.
func LoadFile(path string) (store.Seed, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return store.Seed{}, fmt.Errorf("reading seed file: %w", err)
	}

	var seed store.Seed
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeHookFunc(time.RFC3339),
		WeaklyTypedInput: true,
		Result:           &seed,
	})
	if err != nil {
		return store.Seed{}, fmt.Errorf("creating seed decoder: %w", err)
	}
	if err := decoder.Decode(v.AllSettings()); err != nil {
		return store.Seed{}, fmt.Errorf("decoding seed file %s: %w", path, err)
	}

	if err := Validate(seed); err != nil {
		return store.Seed{}, fmt.Errorf("invalid seed file %s: %w", path, err)
	}
	return seed, nil
}

// Validate checks that ids are present and unique, statuses are known and every
// job pipeline references existing candidates.
func Validate(seed store.Seed) error {
	var errs []error

	candidates := make(map[string]struct{}, len(seed.Candidates))
	for i, c := range seed.Candidates {
		switch _, dup := candidates[c.ID]; {
		case c.ID == "":
			errs = append(errs, fmt.Errorf("candidate %d: missing id", i))
		case dup:
			errs = append(errs, fmt.Errorf("candidate %s: duplicate id", c.ID))
		}
		candidates[c.ID] = struct{}{}

		if !recruiting.ValidCandidateStatus(c.Status) {
			errs = append(errs, fmt.Errorf("candidate %s: unknown status %q", c.ID, c.Status))
		}
	}

	jobs := make(map[string]struct{}, len(seed.Jobs))
	for i, j := range seed.Jobs {
		switch _, dup := jobs[j.ID]; {
		case j.ID == "":
			errs = append(errs, fmt.Errorf("job %d: missing id", i))
		case dup:
			errs = append(errs, fmt.Errorf("job %s: duplicate id", j.ID))
		}
		jobs[j.ID] = struct{}{}

		for _, id := range j.Candidates {
			if _, ok := candidates[id]; !ok {
				errs = append(errs, fmt.Errorf("job %s: unknown candidate %s", j.ID, id))
			}
		}
	}

	return errors.Join(errs...)
}
