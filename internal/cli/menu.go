package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"expenses/internal/core"
	"expenses/internal/export"
	"expenses/internal/log"
)

// RunMenu drives the interactive console loop until the user exits or
// the input stream closes.
func (a *App) RunMenu(ctx context.Context) error {
	scanner := bufio.NewScanner(a.In)

	for {
		fmt.Fprintln(a.Out)
		fmt.Fprintln(a.Out, "=== PERSONAL EXPENSE TRACKER ===")
		fmt.Fprintln(a.Out, "1. Add expense")
		fmt.Fprintln(a.Out, "2. View statistics")
		fmt.Fprintln(a.Out, "3. View expenses by date")
		fmt.Fprintln(a.Out, "4. Export to spreadsheet")
		fmt.Fprintln(a.Out, "5. Exit")
		fmt.Fprint(a.Out, "Choose an option: ")

		line, ok := readLine(scanner)
		if !ok {
			fmt.Fprintln(a.Out)
			return nil
		}

		switch line {
		case "1":
			a.menuAddExpense(ctx, scanner)
		case "2":
			a.printStatistics(a.Out)
		case "3":
			a.menuByDate(scanner)
		case "4":
			a.menuExport(ctx, scanner)
		case "5":
			fmt.Fprintln(a.Out, "Bye.")
			return nil
		case "":
			fmt.Fprintln(a.Out, "Please enter a number.")
		default:
			fmt.Fprintln(a.Out, "Invalid option. Please choose 1-5.")
		}
	}
}

func (a *App) menuAddExpense(ctx context.Context, scanner *bufio.Scanner) {
	fmt.Fprint(a.Out, "Amount: ")
	line, ok := readLine(scanner)
	if !ok {
		return
	}
	amount, err := ParseAmount(line)
	if err != nil {
		fmt.Fprintf(a.Out, "Invalid amount: %v\n", err)
		return
	}

	printCategories(a.Out)
	fmt.Fprint(a.Out, "Category (name or number): ")
	line, ok = readLine(scanner)
	if !ok {
		return
	}
	category, err := ResolveCategory(line)
	if err != nil {
		fmt.Fprintf(a.Out, "Invalid category: %v\n", err)
		return
	}

	fmt.Fprint(a.Out, "Date (yyyy-mm-dd, empty for today): ")
	line, ok = readLine(scanner)
	if !ok {
		return
	}
	date := core.DateOf(a.now())
	if line != "" {
		date, err = ParseDate(line)
		if err != nil {
			fmt.Fprintf(a.Out, "Invalid date: %v\n", err)
			return
		}
	}
	if a.isFuture(date) {
		fmt.Fprintf(a.Out, "Date %s is in the future. Record anyway? (y/n): ", date)
		answer, ok := readLine(scanner)
		if !ok || !strings.EqualFold(answer, "y") {
			fmt.Fprintln(a.Out, "Expense not recorded.")
			return
		}
	}

	fmt.Fprint(a.Out, "Description (optional): ")
	description, ok := readLine(scanner)
	if !ok {
		return
	}

	e, err := core.NewExpense(amount, category, date, description)
	if err != nil {
		fmt.Fprintf(a.Out, "Invalid expense: %v\n", err)
		return
	}
	if err := a.Ledger.Append(ctx, e); err != nil {
		a.Logger.Error("Failed to record expense", log.FieldError, err)
		fmt.Fprintf(a.Out, "Could not record expense: %v\n", err)
		return
	}
	fmt.Fprintf(a.Out, "Recorded: %s\n", e)
}

func (a *App) menuByDate(scanner *bufio.Scanner) {
	fmt.Fprint(a.Out, "Date (yyyy-mm-dd): ")
	line, ok := readLine(scanner)
	if !ok {
		return
	}
	date, err := ParseDate(line)
	if err != nil {
		fmt.Fprintf(a.Out, "Invalid date: %v\n", err)
		return
	}
	if err := a.printByDate(a.Out, date); err != nil {
		fmt.Fprintf(a.Out, "Could not list expenses: %v\n", err)
	}
}

func (a *App) menuExport(ctx context.Context, scanner *bufio.Scanner) {
	fmt.Fprintln(a.Out, "1. Export all expenses")
	fmt.Fprintln(a.Out, "2. Export by category")
	fmt.Fprintln(a.Out, "3. Export by date")
	fmt.Fprintln(a.Out, "4. Export one spreadsheet per category")
	fmt.Fprint(a.Out, "Choose an option: ")

	choice, ok := readLine(scanner)
	if !ok {
		return
	}

	records := a.Ledger.All()

	var (
		ref string
		err error
	)
	switch choice {
	case "1":
		ref, err = a.Exporter.ExportAll(ctx, records)
	case "2":
		printCategories(a.Out)
		fmt.Fprint(a.Out, "Category (name or number): ")
		line, lok := readLine(scanner)
		if !lok {
			return
		}
		var category core.Category
		category, err = ResolveCategory(line)
		if err == nil {
			ref, err = a.Exporter.ExportByCategory(ctx, records, category)
		}
	case "3":
		fmt.Fprint(a.Out, "Date (yyyy-mm-dd): ")
		line, lok := readLine(scanner)
		if !lok {
			return
		}
		var date core.Date
		date, err = ParseDate(line)
		if err == nil {
			ref, err = a.Exporter.ExportByDate(ctx, records, date)
		}
	case "4":
		var refs []string
		refs, err = export.PerCategory(ctx, a.Exporter, records)
		if err == nil {
			for _, r := range refs {
				fmt.Fprintf(a.Out, "Exported %s\n", r)
			}
			return
		}
	default:
		fmt.Fprintln(a.Out, "Invalid option. Please choose 1-4.")
		return
	}

	switch {
	case errors.Is(err, export.ErrNoExpenses):
		fmt.Fprintln(a.Out, "Nothing to export: the ledger is empty.")
	case errors.Is(err, export.ErrNoMatch):
		fmt.Fprintln(a.Out, "Nothing to export: no expenses match that filter.")
	case err != nil:
		a.Logger.Error("Export failed", log.FieldOperation, log.OpExport, log.FieldError, err)
		fmt.Fprintf(a.Out, "Export failed: %v\n", err)
	default:
		fmt.Fprintf(a.Out, "Exported to %s\n", ref)
	}
}

// readLine returns the next trimmed input line; ok is false when the
// input stream is exhausted.
func readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}
