package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"

	"github.com/palemoky/tonetrainer/internal/database"
	apperrors "github.com/palemoky/tonetrainer/internal/errors"
	"github.com/palemoky/tonetrainer/internal/hanzi"
	"github.com/palemoky/tonetrainer/internal/logger"
	"github.com/palemoky/tonetrainer/internal/processor"
	"github.com/palemoky/tonetrainer/internal/quiz"
)

// Probe resolves availability of words never looked up before, at most
// limit of them (all when limit <= 0), with the given number of concurrent
// lookups. It applies the same rules as the quiz, so words only move from
// unknown to yes or no.
func (a *App) Probe(ctx context.Context, limit, workers int) (result processor.Result, err error) {
	lookup, excluded, err := a.lookupDeps()
	if err != nil {
		return result, err
	}

	db, err := a.openStore()
	if err != nil {
		return result, err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = apperrors.Store("failed to close word database", cerr)
		}
	}()

	repo := database.NewRepository(db)
	entries, err := repo.ListUnknown(ctx, limit)
	if err != nil {
		return result, apperrors.Store("failed to list unchecked words", err)
	}

	resolver := quiz.NewResolver(repo, lookup, excluded)
	result, err = processor.NewProcessor(resolver, workers, a.Out).Process(ctx, entries)
	if err != nil {
		return result, err
	}

	logger.Info("Probe finished",
		zap.Int("checked", result.Checked),
		zap.Int("available", result.Available),
		zap.Int("unavailable", result.Unavailable),
	)
	_, _ = fmt.Fprintf(a.Out, "checked %d words: %d available, %d without usable pronunciation\n",
		result.Checked, result.Available, result.Unavailable)

	return result, nil
}

// Stats prints availability counts and the most tested words.
func (a *App) Stats(ctx context.Context, top int) (err error) {
	db, err := a.openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	stats, err := database.NewRepository(db).GetStatistics(ctx, top)
	if err != nil {
		return apperrors.Store("failed to read statistics", err)
	}

	summary := tablewriter.NewWriter(a.Out)
	summary.Header("Availability", "Words")
	for _, av := range []database.Availability{
		database.AvailabilityUnknown, database.AvailabilityYes, database.AvailabilityNo,
	} {
		if err := summary.Append([]string{string(av), strconv.Itoa(stats.ByAvailability[av])}); err != nil {
			return err
		}
	}
	if err := summary.Append([]string{"total", strconv.Itoa(stats.TotalWords)}); err != nil {
		return err
	}
	if err := summary.Render(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(a.Out, "rounds played: %d\n", stats.TotalTested)
	if len(stats.MostTested) == 0 {
		return nil
	}

	tested := tablewriter.NewWriter(a.Out)
	tested.Header("Simplified", "Traditional", "Pinyin", "Tested")
	for _, e := range stats.MostTested {
		row := []string{e.Simplified, e.Form(database.LangTraditional), e.Pinyin(), strconv.Itoa(e.NumberTested)}
		if err := tested.Append(row); err != nil {
			return err
		}
	}
	return tested.Render()
}

// Mismatch is a word whose stored tones differ from its dictionary reading.
type Mismatch struct {
	Entry      database.Entry
	Dictionary []string
}

// Verify compares stored tones with dictionary readings and prints the
// words that differ. It never modifies the store. Differences are expected
// for words with a neutral second syllable or tone changes of 一 and 不.
func (a *App) Verify(ctx context.Context) (mismatches []Mismatch, err error) {
	db, err := a.openStore()
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	entries, err := database.NewRepository(db).ListAll(ctx)
	if err != nil {
		return nil, apperrors.Store("failed to list words", err)
	}

	mismatches = FindMismatches(entries)

	if len(mismatches) == 0 {
		_, _ = fmt.Fprintf(a.Out, "all %d words match their dictionary readings\n", len(entries))
		return nil, nil
	}

	table := tablewriter.NewWriter(a.Out)
	table.Header("Word", "Stored", "Dictionary")
	for _, m := range mismatches {
		stored := fmt.Sprintf("%s %s", m.Entry.Pinyin1, m.Entry.Pinyin2)
		if err := table.Append([]string{m.Entry.Simplified, stored, strings.Join(m.Dictionary, " ")}); err != nil {
			return mismatches, err
		}
	}
	if err := table.Render(); err != nil {
		return mismatches, err
	}
	_, _ = fmt.Fprintf(a.Out, "%d of %d words differ\n", len(mismatches), len(entries))

	return mismatches, nil
}

// FindMismatches returns the entries whose stored tones differ from the
// dictionary tones of their simplified form.
func FindMismatches(entries []database.Entry) []Mismatch {
	var mismatches []Mismatch
	for _, e := range entries {
		tones := hanzi.Tones(e.Simplified)
		if len(tones) == 2 && tones[0] == e.Tone1 && tones[1] == e.Tone2 {
			continue
		}
		mismatches = append(mismatches, Mismatch{Entry: e, Dictionary: hanzi.Syllables(e.Simplified)})
	}
	return mismatches
}
