package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"rmt/internal/config"
	"rmt/internal/domain"
	"rmt/internal/storage"
)

// DiffViewer displays the failed cases of the last run in an interactive TUI,
// one structural diff per case.
type DiffViewer struct {
	config  *config.Config
	storage storage.Storage
}

// NewDiffViewer creates a new DiffViewer.
func NewDiffViewer(cfg *config.Config, st storage.Storage) *DiffViewer {
	return &DiffViewer{config: cfg, storage: st}
}

// View opens the TUI over a run summary. Reviewed toggles are written back to
// the persisted summary so they survive across invocations.
func (dv *DiffViewer) View(summary *domain.RunSummary) error {
	// Indices of failed cases within summary.Cases; toggling must mutate the
	// summary itself so the save below persists it.
	var failedIdx []int
	for i, c := range summary.Cases {
		if !c.Passed {
			failedIdx = append(failedIdx, i)
		}
	}
	if len(failedIdx) == 0 {
		color.Green("✓ No failed cases in the last run!")
		return nil
	}

	saveReviewed := func() error {
		return dv.storage.Save(summary)
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	getListItemText := func(pos int) string {
		result := summary.Cases[failedIdx[pos]]
		if result.Reviewed {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", pos+1, result.Case)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", pos+1, result.Case)
	}

	updateListItem := func(pos int) {
		if pos < 0 || pos >= list.GetItemCount() {
			return
		}
		list.SetItemText(pos, getListItemText(pos), "")
	}

	for pos := range failedIdx {
		list.AddItem(getListItemText(pos), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	countUnreviewed := func() int {
		count := 0
		for _, i := range failedIdx {
			if !summary.Cases[i].Reviewed {
				count++
			}
		}
		return count
	}

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(
			" Failed Cases (%d total, %d unreviewed) | ↑↓ navigate, [yellow]R[white] mark reviewed, → details, ← back, Ctrl+C exit ",
			len(failedIdx), countUnreviewed()))
	}
	updateHeader()

	updateDetails := func() {
		pos := list.GetCurrentItem()
		if pos >= 0 && pos < len(failedIdx) {
			result := summary.Cases[failedIdx[pos]]
			statsView.SetText(dv.formatCaseStats(result, pos+1))
			detailsView.SetText(dv.formatCaseDetails(result))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				pos := list.GetCurrentItem()
				if pos >= 0 && pos < len(failedIdx) {
					i := failedIdx[pos]
					summary.Cases[i].Reviewed = !summary.Cases[i].Reviewed
					updateListItem(pos)
					updateHeader()
					updateDetails()
					if err := saveReviewed(); err != nil {
						_ = err
					}
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(pos int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// formatCaseDetails formats a failed case for display using tview color tags.
func (dv *DiffViewer) formatCaseDetails(result domain.CaseResult) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[red]✗ Case: %s[white]\n\n", result.Case)
	fmt.Fprintf(&builder, "[yellow]Reason:[white] %s\n", result.Reason)
	if result.Detail != "" {
		fmt.Fprintf(&builder, "[yellow]Detail:[white] %s\n", result.Detail)
	}
	fmt.Fprintf(&builder, "\n")

	if result.Diff != nil {
		fmt.Fprintf(&builder, "[yellow]Structural diff (produced vs golden):[white]\n%s\n\n", result.Diff.String())
	}

	if result.Output != "" {
		lines := strings.Split(strings.TrimRight(result.Output, "\n"), "\n")
		fmt.Fprintf(&builder, "[yellow]Program output:[white]\n")
		shown := lines
		if len(lines) > 15 {
			shown = lines[len(lines)-15:]
			fmt.Fprintf(&builder, "  [gray]... %d earlier lines omitted[white]\n", len(lines)-15)
		}
		for _, line := range shown {
			fmt.Fprintf(&builder, "  %s\n", line)
		}
	}

	return builder.String()
}

// formatCaseStats formats the stats header for a failed case.
func (dv *DiffViewer) formatCaseStats(result domain.CaseResult, number int) string {
	return fmt.Sprintf("[cyan]case:[white] [yellow]%d. %s[white] [cyan]duration:[white] %s\n",
		number, result.Case, result.Duration)
}
