package bench_test

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/bogorace/internal/bench"
	"github.com/tupyy/bogorace/internal/config"
	"github.com/tupyy/bogorace/internal/race"
	"github.com/tupyy/bogorace/internal/store"
	"github.com/tupyy/bogorace/internal/util"
)

// fixedRace pretends every race of length n took n*10µs, and warmups take one second.
func fixedRace(calls *int, warmupsPerLength int) bench.RaceFunc {
	perLength := map[int]int{}
	return func(ctx context.Context, seq []int) (*race.Result[int], error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		*calls++
		n := len(seq)
		perLength[n]++
		elapsed := time.Duration(n*10) * time.Microsecond
		if perLength[n] <= warmupsPerLength {
			elapsed = time.Second
		}
		return &race.Result[int]{RunID: uuid.New(), Input: seq, Workers: 2, Shuffles: uint64(n), Elapsed: elapsed}, nil
	}
}

var _ = Describe("Runner", func() {
	var (
		ctx context.Context
		db  *sql.DB
		st  *store.Store
		out *bytes.Buffer
		gen bench.Generator
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())
		st = store.NewStore(db)
		Expect(st.Migrate(ctx)).To(Succeed())

		out = &bytes.Buffer{}
		rng := rand.New(rand.NewPCG(1, 2))
		gen = func(n int) []int { return util.GenerateSequence(rng, n, 0, 100) }
	})

	AfterEach(func() {
		db.Close()
	})

	// Given a sweep over three lengths with warmups
	// When the runner completes
	// Then every run is printed and stored and warmups are left out of the stats
	It("should sweep every length", func() {
		calls := 0
		cfg := config.Bench{From: 1, To: 3, Warmups: 2, Samples: 4}
		runner := bench.NewRunner(cfg, st, fixedRace(&calls, 2), gen, out)

		report, err := runner.Run(ctx)

		Expect(err).NotTo(HaveOccurred())
		Expect(report.Interrupted).To(BeFalse())
		Expect(calls).To(Equal(3 * 6))

		Expect(report.Stats).To(HaveLen(3))
		for i, s := range report.Stats {
			Expect(s.Length).To(Equal(i + 1))
			Expect(s.Count).To(Equal(4))
			Expect(s.Average).To(Equal(float64((i + 1) * 10)))
			Expect(s.StdDev).To(BeZero())
		}

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		Expect(lines).To(HaveLen(18))
		Expect(lines[0]).To(Equal("Warmup: n=1 1 s"))
		Expect(lines[2]).To(Equal("n=1 10 µs"))
		Expect(lines[17]).To(Equal("n=3 30 µs"))

		count, err := st.Samples().Count(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(18))
	})

	It("should ignore samples of previous sweeps", func() {
		calls := 0
		cfg := config.Bench{From: 2, To: 2, Warmups: 0, Samples: 3}

		_, err := bench.NewRunner(cfg, st, fixedRace(&calls, 0), gen, out).Run(ctx)
		Expect(err).NotTo(HaveOccurred())

		report, err := bench.NewRunner(cfg, st, fixedRace(&calls, 0), gen, out).Run(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Stats).To(HaveLen(1))
		Expect(report.Stats[0].Count).To(Equal(3))
	})

	// Given a sweep interrupted in the middle of the second length
	// When the runner stops
	// Then the report is flagged and holds the samples gathered so far
	It("should report partial results on interruption", func() {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		calls := 0
		inner := fixedRace(&calls, 0)
		raceFn := func(ctx context.Context, seq []int) (*race.Result[int], error) {
			if calls == 5 {
				cancel()
				return nil, ctx.Err()
			}
			return inner(ctx, seq)
		}
		cfg := config.Bench{From: 1, To: 5, Warmups: 0, Samples: 3}

		report, err := bench.NewRunner(cfg, st, raceFn, gen, out).Run(ctx)

		Expect(err).NotTo(HaveOccurred())
		Expect(report.Interrupted).To(BeTrue())
		Expect(out.String()).To(ContainSubstring("interrupted"))
		Expect(report.Stats).To(HaveLen(2))
		Expect(report.Stats[0].Count).To(Equal(3))
		Expect(report.Stats[1].Count).To(Equal(2))
	})

	It("should fail on a race error", func() {
		boom := errors.New("boom")
		raceFn := func(context.Context, []int) (*race.Result[int], error) {
			return nil, boom
		}
		cfg := config.Bench{From: 1, To: 2, Warmups: 1, Samples: 1}

		_, err := bench.NewRunner(cfg, st, raceFn, gen, out).Run(ctx)

		Expect(err).To(MatchError(boom))
	})
})
