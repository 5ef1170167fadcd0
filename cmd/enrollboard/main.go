// enrollboard/cmd/enrollboard/main.go
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"enrollboard/config"
	"enrollboard/internal/report"
	"enrollboard/internal/routes"
	"enrollboard/internal/workbook"

	"github.com/gin-gonic/gin"
)

var rootCmd = &cobra.Command{
	Use:   "enrollboard",
	Short: "Enrollment reporting: warehouse fetcher and dashboard server",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard HTTP server",
	Run:   runServe,
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Export a report from the warehouse into the shared workbook",
	Run:   runFetch,
}

var fetchFlags struct {
	report   string
	tab      string
	date     string
	workbook string
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchFlags.report, "report", "r", "", "Report name (required)")
	fetchCmd.Flags().StringVarP(&fetchFlags.tab, "tab", "t", "", "Workbook tab name (defaults to the report name)")
	fetchCmd.Flags().StringVarP(&fetchFlags.date, "date", "d", "", "Query date YYYY-MM-DD (defaults to today)")
	fetchCmd.Flags().StringVarP(&fetchFlags.workbook, "workbook", "w", "", "Workbook path (defaults to WORKBOOK_PATH)")
	fetchCmd.MarkFlagRequired("report")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(fetchCmd)
}

func runServe(cmd *cobra.Command, args []string) {
	config.Load()
	config.ConnectRedis()

	r := gin.Default()
	routes.SetupRoutes(r)

	addr := ":" + config.Port()
	slog.Info("Дашборд запущен", "addr", addr, "workbook", config.WorkbookPath())
	if err := r.Run(addr); err != nil {
		slog.Error("HTTP-сервер завершился с ошибкой", "error", err)
		os.Exit(1)
	}
}

func runFetch(cmd *cobra.Command, args []string) {
	config.Load()
	config.ConnectWarehouse()

	queryDate := time.Now()
	if fetchFlags.date != "" {
		t, err := time.Parse(workbook.DateLayout, fetchFlags.date)
		if err != nil {
			fmt.Printf("Error: invalid --date %q, expected YYYY-MM-DD\n", fetchFlags.date)
			os.Exit(1)
		}
		queryDate = t
	}

	opts := report.Options{
		ReportName:   fetchFlags.report,
		Tab:          fetchFlags.tab,
		QueryDate:    queryDate,
		WorkbookPath: fetchFlags.workbook,
	}
	if opts.Tab == "" {
		opts.Tab = opts.ReportName
	}
	if opts.WorkbookPath == "" {
		opts.WorkbookPath = config.WorkbookPath()
	}

	run, err := report.Run(config.DB, opts)
	if err != nil {
		slog.Error("Запуск фетчера не удался", "report", opts.ReportName, "error", err)
		os.Exit(1)
	}
	fmt.Printf("%s: %d rows, total %s (run %s)\n", run.ReportName, run.RowCount, run.TotalAmount.StringFixed(2), run.RunID)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
