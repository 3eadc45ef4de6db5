package warmup

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_palindrome/internal/ports"
)

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Approximate size in bytes of the generated sample sentences
	SampleTextSize int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency:    runtime.NumCPU(),
		Iterations:     200,
		SampleTextSize: 256,
		Duration:       2 * time.Second,
		ForceGC:        true,
	}
}

// Manager exercises registered normalizers and checkers before real traffic arrives.
type Manager struct {
	logger      ports.Logger
	checkers    []ports.PalindromeChecker
	normalizers []ports.Normalizer
	config      WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterChecker adds a checker to be warmed up
func (wm *Manager) RegisterChecker(checker ports.PalindromeChecker) {
	wm.checkers = append(wm.checkers, checker)
}

// RegisterNormalizer adds a normalizer to be warmed up
func (wm *Manager) RegisterNormalizer(norm ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, norm)
}

// WarmUp runs every registered component until the iterations are exhausted
// or the configured duration elapses. It returns the number of completed runs.
func (wm *Manager) WarmUp(ctx context.Context) int64 {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.checkers)+len(wm.normalizers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	warmupCtx := ctx
	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	samples := []string{
		GeneratePalindrome(wm.config.SampleTextSize),
		GenerateSampleText(wm.config.SampleTextSize),
	}

	var mu sync.Mutex
	var runs int64

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			var local int64
		loop:
			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-warmupCtx.Done():
					break loop
				default:
				}

				sample := samples[j%len(samples)]
				for _, normalizer := range wm.normalizers {
					_ = normalizer.Normalize(sample)
					local++
				}
				for _, checker := range wm.checkers {
					_ = checker.Check(warmupCtx, sample)
					local++
				}
			}

			mu.Lock()
			runs += local
			mu.Unlock()
		}()
	}

	wg.Wait()

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("System warmup completed",
		"duration", time.Since(startTime),
		"runs", runs,
	)
	return runs
}

var sampleWords = []string{
	"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
	"level", "rotor", "civic", "kayak", "madam", "refer", "stats",
}

// GenerateSampleText builds a punctuated sentence of roughly size bytes.
func GenerateSampleText(size int) string {
	var sb strings.Builder
	for i := 0; sb.Len() < size; i++ {
		if i > 0 {
			if i%4 == 0 {
				sb.WriteString(", ")
			} else {
				sb.WriteString(" ")
			}
		}
		word := sampleWords[i%len(sampleWords)]
		if i%3 == 0 {
			word = strings.ToUpper(word[:1]) + word[1:]
		}
		sb.WriteString(word)
	}
	sb.WriteString(".")
	return sb.String()
}

// GeneratePalindrome mirrors a sample sentence so its normalized form is a
// palindrome while its raw form keeps mixed case and punctuation.
func GeneratePalindrome(size int) string {
	half := GenerateSampleText(size / 2)
	runes := []rune(half)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return half + " " + strings.ToUpper(string(runes))
}
