package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"deepsheep/internal/config"
	"deepsheep/internal/learning"
	"deepsheep/internal/rng"
	"deepsheep/internal/util"
	"deepsheep/pkg/actor"
	"deepsheep/pkg/archive"
	"deepsheep/pkg/sheepshead"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var (
	command = flag.String("c", "play", "specifies the command (play, monkey, learn, replay, recent)")
	seed    = flag.Int64("seed", 0, "the seed of the first hand, random if 0")
	hands   = flag.Int("n", 100, "the number of hands the monkey plays")
	seat    = flag.Int("seat", 0, "the seat you play in")
	handID  = flag.String("id", "", "the id of the archived hand to replay")
	limit   = flag.Int("limit", 10, "the number of archived hands to list")
)

func main() {
	flag.Parse()
	setupLogger()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg := config.Instance()
	if *seed == 0 {
		*seed = rng.Crypto{}.Seed()
	}

	var err error
	switch *command {
	case "play":
		err = play(ctx, cfg)
	case "monkey":
		err = monkey(ctx, cfg)
	case "learn":
		err = learn(ctx, cfg)
	case "replay":
		err = replay(ctx)
	case "recent":
		err = recent(ctx)
	default:
		logrus.Fatalf("unknown command: %s", *command)
	}

	if err != nil {
		logrus.WithError(err).Fatalf("%s failed", *command)
	}
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func setupLogger() {
	cfg := config.Instance()
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" || !stdoutIsTerminal() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

// save archives the hand when archiving is enabled
func save(ctx context.Context, cfg config.Config, h *sheepshead.Hand) {
	if !cfg.Archive {
		return
	}

	if _, err := archive.New(nil).Save(ctx, h); err != nil {
		logrus.WithError(err).WithField("handID", h.ID()).Error("could not archive hand")
	}
}

func play(ctx context.Context, cfg config.Config) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !stdoutIsTerminal() {
		return fmt.Errorf("play needs a terminal")
	}

	n := cfg.Rules.NumPlayers
	if *seat < 0 || *seat >= n {
		return sheepshead.PlayerError{Player: *seat, Err: sheepshead.ErrNoSuchSeat}
	}

	h, err := sheepshead.NewHand(logrus.StandardLogger(), cfg.Rules, *seed)
	if err != nil {
		return err
	}

	g := rng.NewSeeded(h.Seed())
	names := util.SeatNames(g, n)
	names[*seat] = "You"

	actors := actor.RandomActors(g, n)
	you := &human{names: names, seat: *seat}
	actors[*seat] = you

	pterm.DefaultSection.Printfln("Hand %s (seed %d)", h.ID(), h.Seed())
	if err := actor.PlayToEnd(ctx, h, actors); err != nil {
		return err
	}

	you.catchUp(h)
	renderHand(h, names, -1)
	renderRewards(h, names)
	save(ctx, cfg, h)
	return nil
}

func monkey(ctx context.Context, cfg config.Config) error {
	totals := make([]int, cfg.Rules.NumPlayers)
	for i := 0; i < *hands; i++ {
		h, err := actor.Monkey(ctx, logrus.StandardLogger(), cfg.Rules, *seed+int64(i))
		if err != nil {
			return err
		}

		rewards, err := h.Rewards()
		if err != nil {
			return err
		}

		for seat, r := range rewards {
			totals[seat] += r
		}

		save(ctx, cfg, h)
	}

	logrus.WithFields(logrus.Fields{
		"hands":  *hands,
		"seed":   *seed,
		"totals": totals,
	}).Info("monkey finished")

	return nil
}

func learn(ctx context.Context, cfg config.Config) error {
	q := learning.NewQFunction(cfg.Learner.LearnRate)
	err := learning.Train(ctx, logrus.StandardLogger(), q, learning.TrainOptions{
		Rules:       cfg.Rules,
		Seed:        *seed,
		Iterations:  cfg.Learner.Iterations,
		Epsilon:     cfg.Learner.Epsilon,
		ReportEvery: cfg.Learner.ReportEvery,
	})
	if err != nil {
		return err
	}

	fmt.Println(q.String())
	return nil
}

func replay(ctx context.Context) error {
	id, err := uuid.Parse(*handID)
	if err != nil {
		return fmt.Errorf("invalid hand id %q: %w", *handID, err)
	}

	r, err := archive.New(nil).ByID(ctx, id)
	if err != nil {
		return err
	}

	h, err := r.Hand(logrus.StandardLogger())
	if err != nil {
		return err
	}

	names := util.SeatNames(rng.NewSeeded(h.Seed()), h.NumberOfPlayers())
	if !stdoutIsTerminal() {
		fmt.Print(h.String())
		return nil
	}

	pterm.DefaultSection.Printfln("Hand %s (seed %d, archived %s)", r.ID, r.Seed, r.Created.Format("2006-01-02 15:04:05"))
	renderHand(h, names, -1)
	renderTricks(h, names)
	renderRewards(h, names)
	return nil
}

func recent(ctx context.Context) error {
	records, err := archive.New(nil).Recent(ctx, *limit)
	if err != nil {
		return err
	}

	data := recentRows(records)
	if !stdoutIsTerminal() {
		for _, row := range data[1:] {
			fmt.Println(strings.Join(row, "\t"))
		}
		return nil
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
