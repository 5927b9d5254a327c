// Command report prints an investor statement: the four derived aggregates and
// the per-period operation history, straight from a consistent DB snapshot.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mkravtsov/investra-backend/internal/investors"
	"github.com/mkravtsov/investra-backend/internal/statement"
	"github.com/mkravtsov/investra-backend/pkg/config"
	"github.com/mkravtsov/investra-backend/pkg/db"
	"github.com/mkravtsov/investra-backend/pkg/enums"
	"github.com/mkravtsov/investra-backend/pkg/env"
	pkgerrors "github.com/mkravtsov/investra-backend/pkg/errors"
	"github.com/mkravtsov/investra-backend/pkg/logger"
	"github.com/mkravtsov/investra-backend/pkg/metrics"
	"github.com/mkravtsov/investra-backend/pkg/migrate"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "report"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	investorFlag := flag.String("investor", "", "investor id (uuid); omit to list investors")
	percentFlag := flag.Float64("draft-percent", 0, "preview a payout of this percent of current capital")
	kindFlag := flag.String("kind", "", "only show history rows of this kind (topup, reinvest, withdraw_capital, withdraw_profit, operation)")
	jsonFlag := flag.Bool("json", env.Bool("INVESTRA_REPORT_JSON", false), "emit the statement as JSON")
	flag.Parse()

	cfg, err := config.Load()
	requireResource(logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "report",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})
	ctx := logg.WithField(context.Background(), "env", cfg.App.Env)

	var kindFilter enums.EntryKind
	if *kindFlag != "" {
		kindFilter, err = enums.ParseEntryKind(*kindFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -kind value %q: %v\n", *kindFlag, err)
			os.Exit(1)
		}
	}

	dbClient, err := db.New(ctx, cfg.DB, cfg.FeatureFlags.UseSQLite, logg)
	requireResource(logg, "database", err)
	defer dbClient.Close()

	requireResource(logg, "database ping", dbClient.Ping(ctx))

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		exitOn(ctx, logg, "failed to run dev migrations", err)
	}

	repo := investors.NewRepository(dbClient)
	svc, err := investors.NewService(repo, logg, metrics.NewLedgerMetrics(prometheus.NewRegistry()))
	requireResource(logg, "investor service", err)

	if *investorFlag == "" {
		listInvestors(ctx, svc)
		return
	}

	investorID, err := uuid.Parse(*investorFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -investor value %q: %v\n", *investorFlag, err)
		os.Exit(1)
	}

	investor, entries, err := svc.Snapshot(ctx, investorID)
	if err != nil {
		exitOn(ctx, logg, "loading investor snapshot", err)
	}

	st := statement.Build(investor, entries)
	if *kindFlag != "" {
		st = st.FilterRows(kindFilter)
	}
	if *jsonFlag {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(st); err != nil {
			exitOn(ctx, logg, "encoding statement", err)
		}
	} else {
		fmt.Print(st.Render())
	}

	if *percentFlag != 0 {
		draft, err := svc.DraftPayout(ctx, investorID, *percentFlag)
		if err != nil {
			exitOn(ctx, logg, "computing draft payout", err)
		}
		fmt.Printf("\nDraft payout at %.2f%%: %s\n", *percentFlag, statement.FormatCents(draft))
	}
}

func listInvestors(ctx context.Context, svc investors.Service) {
	list, err := svc.ListInvestors(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "listing investors: %v\n", err)
		os.Exit(1)
	}
	if len(list) == 0 {
		fmt.Println("no investors recorded")
		return
	}
	for _, investor := range list {
		fmt.Printf("%s  %-30s invested %s\n",
			investor.ID, investor.FullName, statement.FormatCents(investor.InvestedAmountCents))
	}
}

func requireResource(logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	exitOn(context.Background(), logg, fmt.Sprintf("resource not working: %s", resource), err)
}

// exitOn logs the failure, prints the user-facing message for the error's
// code, and exits 2 when the failure is retryable so cron wrappers can tell
// "try again later" from "fix your input".
func exitOn(ctx context.Context, logg *logger.Logger, msg string, err error) {
	logg.Error(ctx, msg, err)

	meta := pkgerrors.MetadataFor(pkgerrors.As(err).Code())
	fmt.Fprintln(os.Stderr, meta.PublicMessage)
	if meta.Retryable {
		os.Exit(2)
	}
	os.Exit(1)
}
