package securityaudit

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/buildmat/pkg/logger"
	"github.com/dmitrymomot/buildmat/pkg/validator"
)

var repeatedWhitespaceRegex = regexp.MustCompile(`\s{2,}`)

// Result is the verdict for one probe.
type Result struct {
	Probe    Probe
	Outcome  validator.Outcome
	Failures []string
}

// Passed reports whether the probe was handled correctly.
func (r Result) Passed() bool {
	return len(r.Failures) == 0
}

// Report summarizes a run.
type Report struct {
	RunID     string
	StartedAt time.Time
	Duration  time.Duration
	Results   []Result
	Passed    int
	Failed    int
	Skipped   int
}

// OK reports whether every probe ran and passed.
func (r Report) OK() bool {
	return r.Failed == 0 && r.Skipped == 0
}

// FailedResults returns the results of failed probes in run order.
func (r Report) FailedResults() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.Passed() {
			failed = append(failed, res)
		}
	}
	return failed
}

// Err returns nil for a passing run. Otherwise it wraps ErrProbesFailed with
// the failed probe names, or ErrRunCanceled when probes were skipped.
func (r Report) Err() error {
	if r.Skipped > 0 {
		return fmt.Errorf("%w: %d of %d probes skipped", ErrRunCanceled, r.Skipped, len(r.Results)+r.Skipped)
	}
	if r.Failed == 0 {
		return nil
	}
	names := make([]string, 0, r.Failed)
	for _, res := range r.FailedResults() {
		names = append(names, res.Probe.Name)
	}
	return fmt.Errorf("%w: %d of %d: %s", ErrProbesFailed, r.Failed, len(r.Results), strings.Join(names, ", "))
}

// Option configures Run.
type Option func(*runner)

type runner struct {
	logger     *slog.Logger
	validators map[string]func(string) validator.Outcome
	newID      func() string
}

// WithLogger sets the logger for the run summary and failed probes.
func WithLogger(l *slog.Logger) Option {
	return func(r *runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithValidator registers or replaces the validator used for field.
// Fields without an override use validator.ForField.
func WithValidator(field string, fn func(string) validator.Outcome) Option {
	return func(r *runner) {
		if field != "" && fn != nil {
			r.validators[field] = fn
		}
	}
}

// WithRunIDGenerator replaces the random run ID source.
func WithRunIDGenerator(fn func() string) Option {
	return func(r *runner) {
		if fn != nil {
			r.newID = fn
		}
	}
}

// Run validates every probe and checks the result against the expected
// verdict and the outcome properties. Probes are run in order; when ctx is
// canceled the remaining probes are counted as skipped.
func Run(ctx context.Context, probes []Probe, opts ...Option) Report {
	r := &runner{
		logger:     logger.Discard(),
		validators: make(map[string]func(string) validator.Outcome),
		newID:      func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(r)
	}

	report := Report{
		RunID:     r.newID(),
		StartedAt: time.Now(),
		Results:   make([]Result, 0, len(probes)),
	}
	ctx = ContextWithRunID(ctx, report.RunID)

	for i, p := range probes {
		if ctx.Err() != nil {
			report.Skipped = len(probes) - i
			break
		}

		res := r.check(p)
		report.Results = append(report.Results, res)
		if res.Passed() {
			report.Passed++
			continue
		}

		report.Failed++
		r.logger.WarnContext(ctx, "security probe failed",
			logger.Probe(p.Name),
			logger.Field(p.Field),
			slog.String("category", p.Category),
			logger.Reason(string(res.Outcome.Reason)),
			slog.String("failures", strings.Join(res.Failures, "; ")),
		)
	}
	report.Duration = time.Since(report.StartedAt)

	level := slog.LevelInfo
	if !report.OK() {
		level = slog.LevelWarn
	}
	r.logger.Log(ctx, level, "security audit finished",
		logger.RunID(report.RunID),
		slog.Int("passed", report.Passed),
		slog.Int("failed", report.Failed),
		slog.Int("skipped", report.Skipped),
		logger.Duration(report.Duration),
	)

	return report
}

func (r *runner) check(p Probe) Result {
	res := Result{Probe: p}

	validate, ok := r.validators[p.Field]
	if !ok {
		validate, ok = validator.ForField(p.Field)
	}
	if !ok {
		res.Failures = append(res.Failures, fmt.Sprintf("%v: %q", ErrUnknownField, p.Field))
		return res
	}

	out := validate(p.Input)
	res.Outcome = out

	if out.Accepted != p.WantAccepted {
		if p.WantAccepted {
			res.Failures = append(res.Failures, fmt.Sprintf("rejected (%s: %s), want accepted", out.Reason, out.Message))
		} else {
			res.Failures = append(res.Failures, fmt.Sprintf("accepted as %q, want rejected", out.Value))
		}
	}

	if !out.Accepted {
		if out.Reason == "" {
			res.Failures = append(res.Failures, "rejection without reason")
		}
		if out.Message == "" {
			res.Failures = append(res.Failures, "rejection without message")
		}
	} else {
		res.Failures = append(res.Failures, checkAccepted(p, out, validate)...)
	}

	if again := validate(p.Input); !sameOutcome(out, again) {
		res.Failures = append(res.Failures, "validator is not deterministic")
	}

	return res
}

func checkAccepted(p Probe, out validator.Outcome, validate func(string) validator.Outcome) []string {
	var failures []string

	if p.WantValue != "" && out.Value != p.WantValue {
		failures = append(failures, fmt.Sprintf("value %q, want %q", out.Value, p.WantValue))
	}
	if strings.ContainsAny(out.Value, `<>"'&`) {
		failures = append(failures, fmt.Sprintf("value %q contains markup characters", out.Value))
	}
	if strings.TrimSpace(out.Value) != out.Value || repeatedWhitespaceRegex.MatchString(out.Value) {
		failures = append(failures, fmt.Sprintf("value %q has untidy whitespace", out.Value))
	}

	if p.Field == validator.FieldPrice || p.Field == validator.FieldQuantity {
		v, err := strconv.ParseFloat(out.Value, 64)
		if err != nil || v < 0 || v > validator.MaxNumericValue {
			failures = append(failures, fmt.Sprintf("value %q outside [0, %.2f]", out.Value, validator.MaxNumericValue))
		}
	}

	again := validate(out.Value)
	if !again.Accepted || again.Value != out.Value {
		failures = append(failures, fmt.Sprintf("revalidating %q gives accepted=%t value=%q", out.Value, again.Accepted, again.Value))
	}

	return failures
}

func sameOutcome(a, b validator.Outcome) bool {
	return a.Field == b.Field &&
		a.Accepted == b.Accepted &&
		a.Value == b.Value &&
		a.Reason == b.Reason &&
		a.Message == b.Message &&
		maps.Equal(a.Params, b.Params)
}
