package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"expenses/internal/core"
	"expenses/internal/export"
	"expenses/internal/ledger"
	"expenses/internal/log"
)

// App bundles the collaborators the commands operate on. In and Out
// default to the process streams and are injectable for tests.
type App struct {
	Ledger   *ledger.Ledger
	Exporter export.Exporter
	Logger   *log.Logger

	In  io.Reader
	Out io.Writer

	// now is the clock used for the future-date policy.
	now func() time.Time
}

func (a *App) init() {
	if a.In == nil {
		a.In = os.Stdin
	}
	if a.Out == nil {
		a.Out = os.Stdout
	}
	if a.now == nil {
		a.now = time.Now
	}
	if a.Logger == nil {
		a.Logger = log.New(log.DefaultConfig())
	}
}

// NewRootCmd builds the command tree. The bare command runs the
// interactive menu; subcommands cover scripted use.
func NewRootCmd(app *App) *cobra.Command {
	app.init()

	root := &cobra.Command{
		Use:   "expenses",
		Short: "Track personal expenses and export them to spreadsheets",
		Long: `Expenses is a personal finance tracker: it records spending events,
aggregates them into totals and per-category breakdowns, and exports
filtered views to spreadsheet files. Records live in memory for the
lifetime of one run.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunMenu(cmd.Context())
		},
	}

	root.AddCommand(
		newAddCmd(app),
		newStatsCmd(app),
		newListCmd(app),
		newExportCmd(app),
		newCategoriesCmd(app),
	)
	return root
}

// isFuture reports whether the date falls after today.
func (a *App) isFuture(d core.Date) bool {
	today := core.DateOf(a.now())
	return d.After(today.Time) && !d.Equal(today)
}

// sortedTotals returns category totals sorted by amount, largest first.
// Ordering is a presentation concern; the ledger map is unordered.
func (a *App) sortedTotals() []core.CategoryAmount {
	totals := a.Ledger.CategoryTotals()
	out := make([]core.CategoryAmount, 0, len(totals))
	for category, amount := range totals {
		out = append(out, core.CategoryAmount{Category: category, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount.Cents != out[j].Amount.Cents {
			return out[i].Amount.Cents > out[j].Amount.Cents
		}
		return out[i].Category < out[j].Category
	})
	return out
}

func newAddCmd(app *App) *cobra.Command {
	var (
		amountFlag  string
		catFlag     string
		dateFlag    string
		descFlag    string
		allowFuture bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := ParseAmount(amountFlag)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amountFlag, err)
			}
			category, err := ResolveCategory(catFlag)
			if err != nil {
				return fmt.Errorf("invalid category %q: %w", catFlag, err)
			}

			date := core.DateOf(app.now())
			if dateFlag != "" {
				date, err = ParseDate(dateFlag)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", dateFlag, err)
				}
			}
			if app.isFuture(date) && !allowFuture {
				return fmt.Errorf("date %s is in the future: pass --allow-future to confirm", date)
			}

			e, err := core.NewExpense(amount, category, date, descFlag)
			if err != nil {
				return err
			}
			if err := app.Ledger.Append(cmd.Context(), e); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded: %s\n", e)
			return nil
		},
	}

	cmd.Flags().StringVarP(&amountFlag, "amount", "a", "", "expense amount, e.g. 12.50")
	cmd.Flags().StringVarP(&catFlag, "category", "c", "", "category label or its number from 'expenses categories'")
	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "date (yyyy-mm-dd or dd-mm-yyyy), defaults to today")
	cmd.Flags().StringVarP(&descFlag, "description", "m", "", "optional description")
	cmd.Flags().BoolVar(&allowFuture, "allow-future", false, "confirm recording a future-dated expense")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the total and the per-category breakdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.printStatistics(cmd.OutOrStdout())
			return nil
		},
	}
}

func newListCmd(app *App) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses recorded on a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := ParseDate(dateFlag)
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", dateFlag, err)
			}
			return app.printByDate(cmd.OutOrStdout(), date)
		},
	}

	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "date to list (yyyy-mm-dd or dd-mm-yyyy)")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newExportCmd(app *App) *cobra.Command {
	var (
		catFlag     string
		dateFlag    string
		perCategory bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export expenses to a spreadsheet",
		Long: `Export writes expenses through the configured backend (a local XLSX
workbook or a Google Sheets spreadsheet). Without flags every record is
exported; --category and --date export a filtered view with a summary
total row; --per-category writes one spreadsheet per category.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			set := 0
			for _, on := range []bool{catFlag != "", dateFlag != "", perCategory} {
				if on {
					set++
				}
			}
			if set > 1 {
				return fmt.Errorf("--category, --date and --per-category are mutually exclusive")
			}

			records := app.Ledger.All()
			out := cmd.OutOrStdout()

			switch {
			case catFlag != "":
				category, err := ResolveCategory(catFlag)
				if err != nil {
					return fmt.Errorf("invalid category %q: %w", catFlag, err)
				}
				ref, err := app.Exporter.ExportByCategory(cmd.Context(), records, category)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Exported %s expenses to %s\n", category, ref)
			case dateFlag != "":
				date, err := ParseDate(dateFlag)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", dateFlag, err)
				}
				ref, err := app.Exporter.ExportByDate(cmd.Context(), records, date)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Exported expenses for %s to %s\n", date, ref)
			case perCategory:
				refs, err := export.PerCategory(cmd.Context(), app.Exporter, records)
				if err != nil {
					return err
				}
				for _, ref := range refs {
					fmt.Fprintf(out, "Exported %s\n", ref)
				}
			default:
				ref, err := app.Exporter.ExportAll(cmd.Context(), records)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Exported all expenses to %s\n", ref)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&catFlag, "category", "c", "", "export a single category")
	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "export a single date (yyyy-mm-dd or dd-mm-yyyy)")
	cmd.Flags().BoolVar(&perCategory, "per-category", false, "export one spreadsheet per category")

	return cmd
}

func newCategoriesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the known expense categories",
		Run: func(cmd *cobra.Command, args []string) {
			printCategories(cmd.OutOrStdout())
		},
	}
}

func printCategories(w io.Writer) {
	for i, c := range core.Categories() {
		fmt.Fprintf(w, "%2d. %s\n", i+1, c)
	}
}

func (a *App) printStatistics(w io.Writer) {
	total := a.Ledger.Total()
	fmt.Fprintf(w, "Total expenses: %.2f (%d records)\n", total.Units(), a.Ledger.Count())

	breakdown := a.sortedTotals()
	if len(breakdown) == 0 {
		fmt.Fprintln(w, "No expenses recorded yet.")
		return
	}
	fmt.Fprintln(w, "By category:")
	for _, ca := range breakdown {
		fmt.Fprintf(w, "  %-36s %10.2f\n", ca.Category, ca.Amount.Units())
	}
}

func (a *App) printByDate(w io.Writer, date core.Date) error {
	records, err := a.Ledger.RecordsForDate(date)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintf(w, "No expenses recorded on %s.\n", date)
		return nil
	}
	for _, e := range records {
		fmt.Fprintf(w, "  %s\n", e)
	}
	total, err := a.Ledger.TotalForDate(date)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Total for %s: %.2f\n", date, total.Units())
	return nil
}
