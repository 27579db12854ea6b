// Package selftest cross-validates the arithmetic engine against math/big on
// randomized operands. Both squaring paths are exercised by forcing the
// dispatcher below and above the operand sizes in play.
package selftest

import (
	"context"
	"fmt"
	"math/big"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/mpcalc/internal/digits"
	apperrors "github.com/agbru/mpcalc/internal/errors"
	"github.com/agbru/mpcalc/internal/logging"
)

// Options configures a self-test run.
type Options struct {
	// Rounds is the total number of randomized rounds across all workers.
	Rounds int
	// MaxDigits bounds the operand size per round. Zero selects a default
	// that comfortably covers the Toom-Cook recursion.
	MaxDigits int
	// Workers is the number of parallel checkers. Zero means NumCPU.
	Workers int
	// Seed makes the run reproducible. Zero derives a seed from the clock.
	Seed int64
}

// Report summarizes a completed self-test run.
type Report struct {
	// Rounds is the number of rounds actually executed.
	Rounds int
	// Duration is the wall-clock time of the whole run.
	Duration time.Duration
}

// ProgressFunc receives completed-round counts during a run. It may be called
// from multiple goroutines.
type ProgressFunc func(done, total int)

const defaultMaxDigits = 160

// phase pins the squaring dispatcher to one algorithm for a batch of rounds.
// Mutating the dispatcher threshold is only safe while no other goroutine is
// inside Sqr, so phases run back to back, never concurrently.
type phase struct {
	name      string
	threshold int
}

// Run executes the self-test and returns a report. A divergence from the
// reference surfaces as a MismatchError; the returned exit code for that case
// is ExitErrorMismatch, mapped by the caller.
func Run(ctx context.Context, opts Options, log logging.Logger, progress ProgressFunc) (Report, error) {
	if opts.Rounds <= 0 {
		return Report{}, apperrors.NewConfigError("self-test rounds must be positive, got %d", opts.Rounds)
	}
	if opts.MaxDigits <= 0 {
		opts.MaxDigits = defaultMaxDigits
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	phases := []phase{
		{name: "comba", threshold: opts.MaxDigits + 1},
		{name: "toom", threshold: digits.MinToomSqrDigits},
	}

	start := time.Now()
	var (
		mu   sync.Mutex
		done int
	)
	tick := func() {
		if progress == nil {
			return
		}
		mu.Lock()
		done++
		d := done
		mu.Unlock()
		progress(d, opts.Rounds)
	}

	saved := digits.ToomSqrThreshold
	defer func() { digits.ToomSqrThreshold = saved }()

	executed := 0
	for i, ph := range phases {
		rounds := opts.Rounds / len(phases)
		if i == len(phases)-1 {
			rounds = opts.Rounds - executed
		}
		log.Debug("self-test phase starting",
			logging.String("phase", ph.name),
			logging.Int("rounds", rounds),
			logging.Int("workers", opts.Workers))

		digits.ToomSqrThreshold = ph.threshold
		if err := runPhase(ctx, ph, rounds, opts, tick); err != nil {
			return Report{Rounds: executed, Duration: time.Since(start)}, err
		}
		executed += rounds
	}

	report := Report{Rounds: executed, Duration: time.Since(start)}
	log.Info("self-test passed",
		logging.Int("rounds", report.Rounds),
		logging.Dur("duration", report.Duration))
	return report, nil
}

// runPhase distributes rounds over the worker pool.
func runPhase(ctx context.Context, ph phase, rounds int, opts Options, tick func()) error {
	g, ctx := errgroup.WithContext(ctx)
	perWorker := rounds / opts.Workers
	extra := rounds % opts.Workers

	for w := 0; w < opts.Workers; w++ {
		worker := w
		n := perWorker
		if worker < extra {
			n++
		}
		if n == 0 {
			continue
		}
		g.Go(func() error {
			rnd := rand.New(rand.NewSource(opts.Seed + int64(worker)*7919 + int64(ph.threshold)))
			for round := 0; round < n; round++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := checkRound(rnd, opts.MaxDigits); err != nil {
					return err
				}
				tick()
			}
			return nil
		})
	}
	return g.Wait()
}

// checkRound generates random operands and cross-checks every public
// operation against math/big.
func checkRound(rnd *rand.Rand, maxDigits int) error {
	a := randomInt(rnd, maxDigits)
	b := randomInt(rnd, maxDigits)
	refA, refB := a.Big(), b.Big()

	if err := checkMul(a, b, refA, refB); err != nil {
		return err
	}
	if err := checkMulDigits(rnd, a, b, refA, refB); err != nil {
		return err
	}
	if err := checkSqr(a, refA); err != nil {
		return err
	}
	return checkKronecker(rnd, refA)
}

func checkMul(a, b *digits.Int, refA, refB *big.Int) error {
	var z digits.Int
	if err := z.Mul(a, b); err != nil {
		return apperrors.WrapError(err, "self-test mul")
	}
	want := new(big.Int).Mul(refA, refB)
	if z.Big().Cmp(want) != 0 {
		return apperrors.MismatchError{
			Op:     "mul",
			Detail: fmt.Sprintf("a=%#x b=%#x got=%#x want=%#x", refA, refB, z.Big(), want),
		}
	}
	return nil
}

func checkMulDigits(rnd *rand.Rand, a, b *digits.Int, refA, refB *big.Int) error {
	digs := 1 + rnd.Intn(a.Used()+b.Used()+1)
	var z digits.Int
	if err := z.MulDigits(a, b, digs); err != nil {
		return apperrors.WrapError(err, "self-test truncated mul")
	}

	want := new(big.Int).Mul(refA, refB)
	want.Abs(want)
	mod := new(big.Int).Lsh(big.NewInt(1), uint(digs*32))
	want.Mod(want, mod)
	got := new(big.Int).Abs(z.Big())
	if got.Cmp(want) != 0 {
		return apperrors.MismatchError{
			Op:     "mul-digits",
			Detail: fmt.Sprintf("a=%#x b=%#x digs=%d got=%#x want=%#x", refA, refB, digs, got, want),
		}
	}
	return nil
}

func checkSqr(a *digits.Int, refA *big.Int) error {
	var z digits.Int
	if err := z.Sqr(a); err != nil {
		return apperrors.WrapError(err, "self-test sqr")
	}
	want := new(big.Int).Mul(refA, refA)
	if z.Big().Cmp(want) != 0 {
		return apperrors.MismatchError{
			Op:     "sqr",
			Detail: fmt.Sprintf("a=%#x got=%#x want=%#x", refA, z.Big(), want),
		}
	}
	return nil
}

func checkKronecker(rnd *rand.Rand, refA *big.Int) error {
	// An odd positive modulus keeps big.Jacobi usable as the reference.
	n := new(big.Int).Rand(rnd, new(big.Int).Lsh(big.NewInt(1), 128))
	n.SetBit(n, 0, 1)

	var a, m digits.Int
	if err := a.SetBig(refA); err != nil {
		return apperrors.WrapError(err, "self-test kronecker operand")
	}
	if err := m.SetBig(n); err != nil {
		return apperrors.WrapError(err, "self-test kronecker modulus")
	}
	got := digits.Kronecker(&a, &m)
	want := big.Jacobi(refA, n)
	if got != want {
		return apperrors.MismatchError{
			Op:     "kronecker",
			Detail: fmt.Sprintf("a=%#x n=%#x got=%d want=%d", refA, n, got, want),
		}
	}
	return nil
}

// randomInt builds a random signed operand of up to maxDigits digits.
// Small and zero operands appear regularly to keep edge cases in rotation.
func randomInt(rnd *rand.Rand, maxDigits int) *digits.Int {
	var x digits.Int
	switch rnd.Intn(8) {
	case 0:
		return x.SetUint64(0)
	case 1:
		return x.SetUint64(uint64(rnd.Intn(16)))
	}

	bits := 1 + rnd.Intn(maxDigits*32)
	v := new(big.Int).Rand(rnd, new(big.Int).Lsh(big.NewInt(1), uint(bits)))
	if rnd.Intn(2) == 0 {
		v.Neg(v)
	}
	// maxDigits stays far below the container bound, SetBig cannot fail here.
	if err := x.SetBig(v); err != nil {
		panic(err)
	}
	return &x
}
