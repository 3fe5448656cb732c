package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkPopulationCrash    BookmarkType = "population_crash"
	BookmarkPopulationRecovery BookmarkType = "population_recovery"
	BookmarkExtinction         BookmarkType = "extinction"
	BookmarkBrainSweep         BookmarkType = "brain_sweep"
	BookmarkStablePopulation   BookmarkType = "stable_population"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        uint64       `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector detects interesting moments in the simulation.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	recentMin          int // minimum population since the last recovery
	recentPeak         int // peak population since the last crash
	extinct            bool
	stableWindowsCount int
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 5 {
		historySize = 5
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
		recentMin:   -1,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if b := bd.checkExtinction(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if bd.historyFull || bd.historyIdx > 0 {
		if b := bd.checkCrash(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
		if b := bd.checkRecovery(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
		if b := bd.checkBrainSweep(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
		if b := bd.checkStable(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
	}

	bd.addToHistory(stats)

	if bd.recentMin < 0 || stats.Creatures < bd.recentMin {
		bd.recentMin = stats.Creatures
	}
	if stats.Creatures > bd.recentPeak {
		bd.recentPeak = stats.Creatures
	}

	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

// recent returns up to n of the latest windows, oldest first.
func (bd *BookmarkDetector) recent(n int) []WindowStats {
	count := bd.historyIdx
	if bd.historyFull {
		count = bd.historySize
	}
	if n > count {
		n = count
	}
	out := make([]WindowStats, 0, n)
	for i := n; i > 0; i-- {
		idx := (bd.historyIdx - i + bd.historySize) % bd.historySize
		out = append(out, bd.history[idx])
	}
	return out
}

func (bd *BookmarkDetector) checkExtinction(stats WindowStats) *Bookmark {
	if stats.Creatures > 0 {
		bd.extinct = false
		return nil
	}
	if bd.extinct {
		return nil
	}
	bd.extinct = true
	return &Bookmark{
		Type:        BookmarkExtinction,
		Tick:        stats.WindowEndTick,
		Description: "no creatures alive",
	}
}

func (bd *BookmarkDetector) checkCrash(stats WindowStats) *Bookmark {
	if bd.recentPeak == 0 {
		return nil
	}

	drop := 1.0 - float64(stats.Creatures)/float64(bd.recentPeak)
	if drop > 0.30 && stats.Creatures < bd.recentPeak-10 {
		oldPeak := bd.recentPeak
		bd.recentPeak = stats.Creatures
		return &Bookmark{
			Type:        BookmarkPopulationCrash,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("population fell %.0f%% from peak %d to %d", drop*100, oldPeak, stats.Creatures),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkRecovery(stats WindowStats) *Bookmark {
	if bd.recentMin < 0 || bd.recentMin > 3 {
		return nil
	}

	if stats.Creatures >= max(bd.recentMin*3, 6) {
		oldMin := bd.recentMin
		bd.recentMin = stats.Creatures
		return &Bookmark{
			Type:        BookmarkPopulationRecovery,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("population recovered from %d to %d", oldMin, stats.Creatures),
		}
	}
	return nil
}

// checkBrainSweep flags windows where brain copying runs far above its
// rolling average, i.e. one brain is spreading through the population.
func (bd *BookmarkDetector) checkBrainSweep(stats WindowStats) *Bookmark {
	history := bd.recent(bd.historySize)
	if len(history) < 3 {
		return nil
	}

	var total int
	for _, h := range history {
		total += h.BrainCopies
	}
	avg := float64(total) / float64(len(history))
	if avg == 0 {
		return nil
	}

	if float64(stats.BrainCopies) > avg*2 && stats.BrainCopies >= 5 {
		return &Bookmark{
			Type:        BookmarkBrainSweep,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("%d brain copies is %.1fx average (%.1f)", stats.BrainCopies, float64(stats.BrainCopies)/avg, avg),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkStable(stats WindowStats) *Bookmark {
	if stats.Creatures < 10 {
		bd.stableWindowsCount = 0
		return nil
	}

	history := bd.recent(4)
	if len(history) < 4 {
		return nil
	}

	var sum float64
	for _, h := range history {
		sum += float64(h.Creatures)
	}
	mean := sum / 4

	var variance float64
	for _, h := range history {
		d := float64(h.Creatures) - mean
		variance += d * d
	}
	variance /= 4

	// CV^2 < 0.04 means CV < 0.2
	if mean > 0 && variance/(mean*mean) < 0.04 {
		bd.stableWindowsCount++
	} else {
		bd.stableWindowsCount = 0
	}

	if bd.stableWindowsCount == 5 {
		return &Bookmark{
			Type:        BookmarkStablePopulation,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("stable population around %d over 5+ windows", stats.Creatures),
		}
	}
	return nil
}
