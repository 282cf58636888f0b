package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Vprince099/restaurant-scheduler/pkg/models"
	"github.com/Vprince099/restaurant-scheduler/pkg/roster"
	"github.com/Vprince099/restaurant-scheduler/pkg/scheduler"
)

const (
	formatJSON = "json"
	formatCSV  = "csv"
	formatText = "text"
)

func loadValid(path string) (models.Roster, error) {
	r, err := roster.Load(path)
	if err != nil {
		return models.Roster{}, err
	}
	if err := scheduler.ValidateRoster(r); err != nil {
		return models.Roster{}, err
	}
	return r, nil
}

func runCmd(app *App) *cobra.Command {
	var file, week, format string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate and auto-assign a week",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadValid(file)
			if err != nil {
				return err
			}
			anchor, err := scheduler.ParseWeekStart(week, time.Now())
			if err != nil {
				return err
			}

			res := scheduler.NewGenerator().Plan(scheduler.Prepare(r), anchor)
			app.log.WithFields(map[string]interface{}{
				"week_start": anchor.Format("2006-01-02"),
				"shifts":     len(res.Shifts),
				"unassigned": len(res.Unassigned),
				"fairness":   res.FairnessScore,
			}).Info("scheduled week")

			return writeResult(cmd.OutOrStdout(), format, res, r)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Roster file (.yaml or .json)")
	cmd.Flags().StringVar(&week, "week", "", "Any date in the target week, YYYY-MM-DD (default: this week)")
	cmd.Flags().StringVar(&format, "format", formatText, "Output format: text, json or csv")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func generateCmd(app *App) *cobra.Command {
	var file, week string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a week of unassigned shifts",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadValid(file)
			if err != nil {
				return err
			}
			anchor, err := scheduler.ParseWeekStart(week, time.Now())
			if err != nil {
				return err
			}

			p := scheduler.Prepare(r)
			shifts := scheduler.Generate(scheduler.BuildWeekDates(anchor), p.Demand, p.Templates, p.Roles, p.ClosedDays)
			if shifts == nil {
				shifts = []models.ShiftInstance{}
			}
			app.log.WithField("shifts", len(shifts)).Info("generated week")

			return writeJSON(cmd.OutOrStdout(), map[string]interface{}{
				"week_start": anchor.Format("2006-01-02"),
				"shifts":     shifts,
				"labor_cost": scheduler.LaborCost(shifts, r.Roles).StringFixed(2),
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Roster file (.yaml or .json)")
	cmd.Flags().StringVar(&week, "week", "", "Any date in the target week, YYYY-MM-DD (default: this week)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func assignCmd(app *App) *cobra.Command {
	var file, shiftsFile, format string

	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Auto-assign an existing set of shifts",
		Long:  "Auto-assign shifts read from a JSON file using the employees and roles of a roster. Existing assignments are discarded.",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadValid(file)
			if err != nil {
				return err
			}
			shifts, err := roster.LoadShifts(shiftsFile)
			if err != nil {
				return err
			}

			p := scheduler.Prepare(r)
			res := scheduler.AssignWithReport(shifts, p.Employees, p.Roles)
			app.log.WithFields(map[string]interface{}{
				"shifts":     len(res.Shifts),
				"unassigned": len(res.Unassigned),
			}).Info("assigned shifts")

			return writeResult(cmd.OutOrStdout(), format, res, r)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Roster file (.yaml or .json)")
	cmd.Flags().StringVar(&shiftsFile, "shifts", "", "JSON file of shifts")
	cmd.Flags().StringVar(&format, "format", formatJSON, "Output format: text, json or csv")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("shifts")
	return cmd
}

func validateCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a roster file",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadValid(file)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ %s is valid: %d roles, %d employees, %d templates\n",
				file, len(r.Roles), len(r.Employees), len(r.Templates))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Roster file (.yaml or .json)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func writeResult(w io.Writer, format string, res scheduler.Result, r models.Roster) error {
	switch strings.ToLower(format) {
	case formatJSON:
		return writeJSON(w, models.ScheduleResponse{
			Shifts:         res.Shifts,
			UnfilledShifts: res.Unassigned,
			Conflicts:      res.Conflicts,
			FairnessScore:  res.FairnessScore,
			LaborCost:      scheduler.LaborCost(res.Shifts, r.Roles).StringFixed(2),
			Employees:      res.Employees,
		})
	case formatCSV:
		return scheduler.WriteCSV(w, res.Shifts, r.Employees)
	case formatText:
		return writeText(w, res, r)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeText prints each day with role-adjusted times, earliest first.
func writeText(w io.Writer, res scheduler.Result, r models.Roster) error {
	names := make(map[string]string, len(r.Employees))
	for _, e := range r.Employees {
		names[e.ID] = e.Name
	}

	if r.Title != "" {
		fmt.Fprintf(w, "%s\n\n", r.Title)
	}
	for day, shifts := range scheduler.SortForDisplay(res.Shifts, r.Roles) {
		if len(shifts) == 0 {
			continue
		}
		date := ""
		if len(shifts[0].DateISO) >= 10 {
			date = shifts[0].DateISO[:10]
		}
		fmt.Fprintf(w, "%s %s\n", models.DayName(day), date)
		for _, s := range scheduler.ApplyRoleTimeOverrides(shifts, r.Roles) {
			who := "(unassigned)"
			if s.Assigned() {
				who = names[s.AssignedTo()]
			}
			fmt.Fprintf(w, "  %-8s %-10s %s - %s  %s\n",
				s.Label, s.Role, scheduler.FormatClock12h(s.Start), scheduler.FormatClock12h(s.End), who)
		}
	}

	fmt.Fprintf(w, "\nUnfilled: %d of %d   Fairness: %.1f%%   Labor cost: %s\n",
		len(res.Unassigned), len(res.Shifts), res.FairnessScore,
		scheduler.LaborCost(res.Shifts, r.Roles).StringFixed(2))
	for _, c := range res.Conflicts {
		fmt.Fprintf(w, "  %s %s %s: %s\n", models.DayName(c.Day), c.Label, c.Role, strings.Join(c.Reasons, "; "))
	}

	hours := scheduler.HoursByEmployee(res.Shifts)
	fmt.Fprintln(w, "\nHours:")
	for _, e := range r.Employees {
		fmt.Fprintf(w, "  %s: %.1fh\n", e.Name, hours[e.ID])
	}
	return nil
}
