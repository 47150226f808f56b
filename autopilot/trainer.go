package autopilot

import (
	"context"
	"log/slog"

	"snake-arcade/game"
)

// TrainOptions controls a training run. Zero values disable saving and
// progress logging.
type TrainOptions struct {
	SavePath  string // q-table file
	SaveEvery int    // episodes between saves
	LogEvery  int    // episodes between progress lines
	Logger    *slog.Logger
}

// Summary aggregates finished episodes.
type Summary struct {
	Episodes int
	Best     int
	Average  float64
}

// Train plays episodes headless on session, learning after every tick. An
// episode ends on a collision or after 100*area ticks without food. The
// table is saved every SaveEvery episodes and once more at the end.
func Train(ctx context.Context, session *game.Session, pilot *Pilot, episodes int, opts TrainOptions) (Summary, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	stepCap := 100 * session.Grid().Area()

	var sum Summary
	total := 0
	for ep := 0; ep < episodes; ep++ {
		if err := ctx.Err(); err != nil {
			return sum, firstErr(err, save(pilot, opts))
		}

		session.Reset()
		sinceFood := 0
		for !session.Over() && sinceFood < stepCap {
			res := pilot.Step(session)
			if res.Tick.Advance.AteFood {
				sinceFood = 0
			} else {
				sinceFood++
			}
		}
		pilot.Agent().IncrementEpisode()

		score := session.Score()
		sum.Episodes++
		total += score
		if score > sum.Best {
			sum.Best = score
		}
		sum.Average = float64(total) / float64(sum.Episodes)

		if opts.LogEvery > 0 && sum.Episodes%opts.LogEvery == 0 {
			logger.Info("training progress",
				"episode", sum.Episodes,
				"score", score,
				"best", sum.Best,
				"average", sum.Average,
				"epsilon", pilot.Agent().Epsilon,
			)
		}
		if opts.SaveEvery > 0 && sum.Episodes%opts.SaveEvery == 0 {
			if err := save(pilot, opts); err != nil {
				return sum, err
			}
		}
	}
	return sum, save(pilot, opts)
}

func save(pilot *Pilot, opts TrainOptions) error {
	if opts.SavePath == "" {
		return nil
	}
	return pilot.Agent().Save(opts.SavePath)
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
