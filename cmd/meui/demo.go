package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/OogleOG/MEUI/internal/logger"
	"github.com/OogleOG/MEUI/internal/tui"
	"github.com/OogleOG/MEUI/internal/window"
)

func newDemoCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Launch a sample script window",
		Long:  `Launch an interactive window with sample configuration fields and a simulated runtime snapshot feed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(flags, log)
		},
	}

	return cmd
}

func runDemo(flags *rootFlags, log *logger.Logger) error {
	if flags.verbose {
		if dbg, err := logger.New(logger.Options{Level: "debug", HumanReadable: true}); err == nil {
			log = dbg
		}
	}

	win, err := window.New("Boss Killer", flags.theme,
		window.WithConfigRoot(flags.configRoot),
		window.WithLogger(log),
	)
	if err != nil {
		return err
	}

	declare := func(errs ...error) error {
		for _, e := range errs {
			if e != nil {
				return e
			}
		}
		return nil
	}
	if err := declare(
		win.Section("Combat", "How the script fights"),
		win.Checkbox("usePrayer", "Use prayer", true, "Flick protection prayers"),
		win.Slider("eatAt", "Eat at", 50, 1, 99, "%d%%", "Health percentage to eat at"),
		win.Combo("food", "Food", 0, []string{"Shark", "Karambwan", "Anglerfish"}, ""),
		win.Separator(),
		win.Section("Banking", ""),
		win.Checkbox("bankWhenOut", "Bank when out of food", true, ""),
		win.Spacing(),
		win.Input("notifyName", "Notify name", "", "Name shown in notifications", 20),
	); err != nil {
		return err
	}

	win.LoadConfig()

	started := time.Now()
	kills := 0
	provider := func() window.Snapshot {
		if win.State().Started() && !win.State().PausedFlag() && !win.State().StoppedFlag() {
			kills++
		}
		elapsed := time.Since(started)
		kph := 0.0
		if elapsed > 0 {
			kph = float64(kills) / elapsed.Hours()
		}
		gp := kills * 42_000
		recent := make([]string, 0, 5)
		for i := kills - 5; i < kills; i++ {
			if i >= 0 {
				recent = append(recent, fmt.Sprintf("Kill #%d", i+1))
			}
		}
		return window.Snapshot{
			StateName:     "Fighting",
			BossHealth:    window.IntPtr(180 - (kills*7)%180),
			BossHealthMax: window.IntPtr(180),
			Kills:         window.IntPtr(kills),
			KillsPerHour:  window.FloatPtr(kph),
			GPEarned:      window.IntPtr(gp),
			GPPerHour:     window.FloatPtr(float64(gp) / max(elapsed.Hours(), 0.001)),
			Runtime:       elapsed,
			RecentKills:   recent,
		}
	}

	model := tui.NewModel(win, provider)
	program := tea.NewProgram(model, tea.WithAltScreen())

	final, err := program.Run()
	if err != nil {
		return err
	}

	if m, ok := final.(tui.Model); ok && !m.Open() {
		log.WithFields(map[string]any{
			"phase": m.Window().State().Phase().String(),
		}).Info("window closed")
	}
	return nil
}
