package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/gallery/internal/config"
	"github.com/llehouerou/gallery/internal/content"
	"github.com/llehouerou/gallery/internal/errmsg"
	"github.com/llehouerou/gallery/internal/state"
)

const (
	listKindWidth  = 6
	listTitleWidth = 48
)

var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "Print the catalog, optionally filtered",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		loader, err := newLoader(cfg, log)
		if err != nil {
			return err
		}
		st, err := state.Open(log)
		if err != nil {
			return fmt.Errorf("%s: %w", errmsg.OpInitialize, err)
		}
		defer st.Close()

		items, err := loader.Load(cmd.Context())
		if err != nil {
			cached, ok := st.ReadCached()
			if !ok {
				return errors.New(errmsg.FormatWith(errmsg.OpCatalogLoad, sourceName(cfg), err))
			}
			fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpCatalogRefresh, err)+" (showing cached items)")
			items = cached
		} else {
			st.WriteCached(items)
		}

		var query string
		if len(args) > 0 {
			query = args[0]
		}
		log.Debug("list", zap.String("query", query), zap.Int("items", len(items)))
		printItems(cmd.OutOrStdout(), content.Filter(items, query))
		return nil
	},
}

// sourceName names the configured catalog source for error messages.
func sourceName(cfg *config.Config) string {
	if cfg.Source.Backend == config.BackendRemote {
		return cfg.Source.Remote.URL
	}
	return cfg.Source.Fixture
}

// printItems writes one aligned row per item.
func printItems(w io.Writer, items []content.Item) {
	for _, it := range items {
		title := runewidth.Truncate(strings.TrimSpace(it.Title), listTitleWidth, "…")
		row := runewidth.FillRight(it.Kind.String(), listKindWidth) + "  " +
			runewidth.FillRight(title, listTitleWidth)
		if !it.CreatedAt.IsZero() {
			row += "  " + it.CreatedAt.Format("2006-01-02")
		}
		fmt.Fprintln(w, strings.TrimRight(row, " "))
	}
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the cached catalog",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop the cached catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, err := loadConfig()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		st, err := state.Open(log)
		if err != nil {
			return fmt.Errorf("%s: %w", errmsg.OpInitialize, err)
		}
		defer st.Close()

		if err := st.ClearCache(); err != nil {
			return errors.New(errmsg.Format(errmsg.OpCacheClear, err))
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Cache cleared")
		return nil
	},
}
