package commands

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/parkcrawl/parkcrawl/internal/fetcher"
	"github.com/parkcrawl/parkcrawl/internal/listing"
	"github.com/parkcrawl/parkcrawl/internal/logger"
	"github.com/parkcrawl/parkcrawl/internal/pipeline"
	"github.com/parkcrawl/parkcrawl/internal/site"
)

var crawlCmd = &cobra.Command{
	Use:   "crawl",
	Short: "Crawl listings and write the merged dataset",
	Long: `Crawl list pages for the primary language, fetch each new listing's
detail page (both languages with --dual-lang), and write the merged
JSON dataset. With --resume, listings already fetched successfully in
the prior output are skipped and previously failed ones are retried.`,
	RunE: runCrawl,
}

func init() {
	rootCmd.AddCommand(crawlCmd)

	flags := crawlCmd.Flags()

	flags.String("lang", "zh", "primary language: en, zh")
	flags.Bool("dual-lang", true, "also fetch the alternate-language detail page")
	flags.Int("max", 0, "max listings to collect (0 = site-reported total)")
	flags.Duration("delay", 2*time.Second, "delay between list-page fetches")
	flags.IntP("concurrency", "c", 4, "concurrent detail fetches")
	flags.StringP("output", "o", "listings.json", "output JSON path")
	flags.String("csv", "", "optional CSV projection path")
	flags.String("yaml", "", "optional YAML projection path")
	flags.Bool("resume", false, "resume from prior output, skipping fetched listings")
	flags.Bool("download-images", false, "download photos locally")
	flags.String("image-dir", "images", "directory for downloaded photos")
	flags.Bool("dump-html", false, "write raw HTML snapshots for drift diagnosis")
	flags.String("dump-dir", "debug-html", "directory for HTML snapshots")
	flags.Int("dump-detail-limit", 5, "max detail-page snapshots per language")
	flags.Duration("timeout", 30*time.Second, "request timeout")

	_ = viper.BindPFlag("lang", flags.Lookup("lang"))
	_ = viper.BindPFlag("concurrency", flags.Lookup("concurrency"))
}

func runCrawl(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// lang and concurrency are viper-bound so config file and
	// PARKCRAWL_* env overrides apply.
	lang := viper.GetString("lang")
	concurrency := viper.GetInt("concurrency")
	dualLang, _ := cmd.Flags().GetBool("dual-lang")
	max, _ := cmd.Flags().GetInt("max")
	delay, _ := cmd.Flags().GetDuration("delay")
	output, _ := cmd.Flags().GetString("output")
	csvPath, _ := cmd.Flags().GetString("csv")
	yamlPath, _ := cmd.Flags().GetString("yaml")
	resume, _ := cmd.Flags().GetBool("resume")
	downloadImages, _ := cmd.Flags().GetBool("download-images")
	imageDir, _ := cmd.Flags().GetString("image-dir")
	dumpHTML, _ := cmd.Flags().GetBool("dump-html")
	dumpDir, _ := cmd.Flags().GetString("dump-dir")
	dumpDetailLimit, _ := cmd.Flags().GetInt("dump-detail-limit")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	st := site.Default()
	cfg := pipeline.Config{
		Lang:            listing.Lang(lang),
		DualLang:        dualLang,
		MaxListings:     max,
		PageDelay:       delay,
		Concurrency:     concurrency,
		OutputPath:      output,
		CSVPath:         csvPath,
		YAMLPath:        yamlPath,
		Resume:          resume,
		DownloadImages:  downloadImages,
		ImageDir:        imageDir,
		DumpHTML:        dumpHTML,
		DumpDir:         dumpDir,
		DumpDetailLimit: dumpDetailLimit,
		Site:            st,
		Fetcher: fetcher.NewStatic(fetcher.Config{
			UserAgent: st.UserAgent,
			Timeout:   timeout,
		}),
	}

	stats, err := pipeline.Run(ctx, cfg)
	if err != nil {
		logger.Error("run failed", "error", err)
		return err
	}
	logger.Info("dataset written",
		"path", output, "records", stats.Total, "new", stats.Fetched, "failed", stats.Failed)
	return nil
}
