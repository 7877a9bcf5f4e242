package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"ripple-ca/internal/sims/wave"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Underline(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	badStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

func main() {
	steps := flag.Int("steps", 1000, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 96, "grid width")
	height := flag.Int("h", 72, "grid height")
	seed := flag.Int64("seed", 1337, "spawn seed shared by every scenario")
	dampingList := flag.String("damping", "0,0.001,0.004,0.01,0.05", "comma separated damping values")
	moodList := flag.String("moods", strings.Join(wave.Moods(), ","), "comma separated moods")
	flag.Parse()

	dampings, err := parseFloats(*dampingList)
	if err != nil {
		log.Fatalf("wave-sweep: -damping: %v", err)
	}
	if *workers < 1 {
		*workers = 1
	}

	base := wave.DefaultConfig()
	base.Width, base.Height, base.Seed = *width, *height, *seed

	var scenarios []wave.Scenario
	for _, mood := range strings.Split(*moodList, ",") {
		mood = strings.TrimSpace(mood)
		if mood == "" {
			continue
		}
		for _, d := range dampings {
			scenarios = append(scenarios, wave.Scenario{Mood: mood, Damping: d, Steps: *steps})
		}
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Sweeping %d scenarios (%d workers, %d steps, %dx%d)",
		len(scenarios), *workers, *steps, base.Width, base.Height)))

	jobs := make(chan wave.Scenario)
	results := make(chan wave.SweepResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- wave.RunScenario(base, sc)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range scenarios {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []wave.SweepResult
	unstable := 0
	for res := range results {
		all = append(all, res)
		if res.Err != nil || !res.Stable {
			unstable++
		}
	}
	elapsed := time.Since(start)

	sort.Slice(all, func(i, j int) bool {
		if all[i].Scenario.Mood != all[j].Scenario.Mood {
			return all[i].Scenario.Mood < all[j].Scenario.Mood
		}
		return all[i].Scenario.Damping < all[j].Scenario.Damping
	})

	fmt.Println()
	fmt.Println(headerStyle.Render(fmt.Sprintf("%-10s %9s %-10s %10s %12s %12s %8s %9s",
		"mood", "damping", "status", "peak", "peak energy", "final energy", "ripples", "period")))
	for _, res := range all {
		fmt.Println(formatRow(res))
	}

	summary := fmt.Sprintf("\n%d/%d scenarios stable (elapsed %s)", len(all)-unstable, len(all), elapsed.Round(time.Millisecond))
	if unstable > 0 {
		fmt.Println(badStyle.Render(summary))
		return
	}
	fmt.Println(okStyle.Render(summary))
}

func formatRow(res wave.SweepResult) string {
	sc := res.Scenario
	if res.Err != nil {
		return fmt.Sprintf("%-10s %9.4f %s", sc.Mood, sc.Damping, badStyle.Render("error: "+res.Err.Error()))
	}
	status := okStyle.Render(fmt.Sprintf("%-10s", "stable"))
	if !res.Stable {
		status = badStyle.Render(fmt.Sprintf("%-10s", "nan@"+strconv.Itoa(res.DivergedAt)))
	}
	period := dimStyle.Render(fmt.Sprintf("%9s", "-"))
	if res.Period > 0 {
		period = fmt.Sprintf("%9.2f", res.Period)
	}
	return fmt.Sprintf("%-10s %9.4f %s %10.3f %12.3f %12.3f %8d %s",
		sc.Mood, sc.Damping, status, res.PeakAbs, res.PeakEnergy, res.FinalEnergy, res.PeakRipples, period)
}

func parseFloats(list string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no values in %q", list)
	}
	return out, nil
}
