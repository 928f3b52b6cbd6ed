package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/youpv/personal-trainer/internal/config"
	"github.com/youpv/personal-trainer/internal/customers"
	"github.com/youpv/personal-trainer/internal/logging"
	"github.com/youpv/personal-trainer/internal/pages"
	"github.com/youpv/personal-trainer/internal/restapi"
	"github.com/youpv/personal-trainer/internal/stats"
	"github.com/youpv/personal-trainer/internal/trainings"

	log "github.com/sirupsen/logrus"
)

const usage = `usage: trainer [flags] <command>

commands:
  customers          list customers (use -search to filter)
  customers:export   export all customers as CSV (use -out for the target file)
  customer:add       add a customer (-firstname, -lastname, ...)
  customer:delete    delete a customer (-ref <self link>)
  trainings          list trainings (use -search to filter)
  training:add       schedule a training (-date, -duration, -activity, -customer <self link>)
  training:delete    delete a training (-id)
  calendar           show trainings as calendar events
  stats              show summed minutes per activity
  reset              wipe and reseed the remote database
`

type flags struct {
	search    string
	out       string
	ref       string
	id        int64
	date      string
	duration  int
	activity  string
	firstname string
	lastname  string
	street    string
	postcode  string
	city      string
	email     string
	phone     string
}

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	apiOverride := flag.String("api", "", "override the API base URL from the config")

	var f flags
	flag.StringVar(&f.search, "search", "", "case-insensitive search term for list commands")
	flag.StringVar(&f.out, "out", "customers.csv", "target file for customers:export")
	flag.StringVar(&f.ref, "ref", "", "customer self link")
	flag.Int64Var(&f.id, "id", 0, "training id")
	flag.StringVar(&f.date, "date", "", "training date, ISO-8601")
	flag.IntVar(&f.duration, "duration", 60, "training duration in minutes")
	flag.StringVar(&f.activity, "activity", "", "training activity name")
	flag.StringVar(&f.firstname, "firstname", "", "customer first name")
	flag.StringVar(&f.lastname, "lastname", "", "customer last name")
	flag.StringVar(&f.street, "streetaddress", "", "customer street address")
	flag.StringVar(&f.postcode, "postcode", "", "customer postcode")
	flag.StringVar(&f.city, "city", "", "customer city")
	flag.StringVar(&f.email, "email", "", "customer email")
	flag.StringVar(&f.phone, "phone", "", "customer phone")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		fmt.Print(usage)
		os.Exit(2)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "trainer-cli",
	})

	baseURL := cfg.ApiBaseURL
	if *apiOverride != "" {
		baseURL = *apiOverride
	}
	log.Debugf("using api base url: %s", baseURL)

	client := restapi.NewClient(baseURL, nil)
	notifier := pages.NewLogNotifier()
	ctx := context.Background()

	if err := run(ctx, command, f, client, notifier); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, f flags, client *restapi.Client, notifier pages.Notifier) error {
	switch command {
	case "customers":
		return listCustomers(ctx, f, client, notifier)
	case "customers:export":
		return exportCustomers(ctx, f, client, notifier)
	case "customer:add":
		return addCustomer(ctx, f, client, notifier)
	case "customer:delete":
		return deleteCustomer(ctx, f, client, notifier)
	case "trainings":
		return listTrainings(ctx, f, client, notifier)
	case "training:add":
		return addTraining(ctx, f, client, notifier)
	case "training:delete":
		return deleteTraining(ctx, f, client, notifier)
	case "calendar":
		return showCalendar(ctx, client, notifier)
	case "stats":
		return showStats(ctx, client, notifier)
	case "reset":
		return client.Reset(ctx)
	default:
		fmt.Print(usage)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func listCustomers(ctx context.Context, f flags, client *restapi.Client, notifier pages.Notifier) error {
	page := pages.NewCustomersPage(client, notifier)
	if err := page.Refresh(ctx); err != nil {
		return err
	}
	page.SetSearch(f.search)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tEMAIL\tPHONE\tCITY\tREF")
	for _, c := range page.Visible() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.FullName(), c.Email, c.Phone, c.City, c.Ref)
	}
	return w.Flush()
}

func exportCustomers(ctx context.Context, f flags, client *restapi.Client, notifier pages.Notifier) error {
	page := pages.NewCustomersPage(client, notifier)
	if err := page.Refresh(ctx); err != nil {
		return err
	}

	file, err := os.Create(f.out)
	if err != nil {
		return fmt.Errorf("create %s: %w", f.out, err)
	}
	defer file.Close()

	if err := page.ExportCSV(file); err != nil {
		return err
	}

	fmt.Printf("exported %d customers to %s\n", len(page.Visible()), f.out)
	return nil
}

func addCustomer(ctx context.Context, f flags, client *restapi.Client, notifier pages.Notifier) error {
	if f.firstname == "" || f.lastname == "" {
		return fmt.Errorf("-firstname and -lastname are required")
	}

	page := pages.NewCustomersPage(client, notifier)
	page.OpenNew()
	page.SetDraft(customers.Customer{
		Firstname:     f.firstname,
		Lastname:      f.lastname,
		Streetaddress: f.street,
		Postcode:      f.postcode,
		City:          f.city,
		Email:         f.email,
		Phone:         f.phone,
	})
	return page.Save(ctx)
}

func deleteCustomer(ctx context.Context, f flags, client *restapi.Client, notifier pages.Notifier) error {
	if f.ref == "" {
		return fmt.Errorf("-ref is required")
	}
	page := pages.NewCustomersPage(client, notifier)
	if err := page.Refresh(ctx); err != nil {
		return err
	}
	return page.Delete(ctx, customers.ResourceRef(f.ref))
}

func listTrainings(ctx context.Context, f flags, client *restapi.Client, notifier pages.Notifier) error {
	page := pages.NewTrainingsPage(client, notifier)
	if err := page.Refresh(ctx); err != nil {
		return err
	}
	page.SetSearch(f.search)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tDURATION\tACTIVITY\tCUSTOMER")
	for _, t := range page.Visible() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", t.ID, t.Date, t.Duration, t.Activity, t.CustomerName())
	}
	return w.Flush()
}

func addTraining(ctx context.Context, f flags, client *restapi.Client, notifier pages.Notifier) error {
	if f.date == "" || f.activity == "" || f.ref == "" {
		return fmt.Errorf("-date, -activity and -ref are required")
	}

	page := pages.NewTrainingsPage(client, notifier)
	return page.Add(ctx, trainings.NewTraining{
		Date:     f.date,
		Duration: f.duration,
		Activity: f.activity,
		Customer: customers.ResourceRef(f.ref),
	})
}

func deleteTraining(ctx context.Context, f flags, client *restapi.Client, notifier pages.Notifier) error {
	if f.id == 0 {
		return fmt.Errorf("-id is required")
	}
	page := pages.NewTrainingsPage(client, notifier)
	return page.Delete(ctx, f.id)
}

func showCalendar(ctx context.Context, client *restapi.Client, notifier pages.Notifier) error {
	page := pages.NewCalendarPage(client, notifier)
	if err := page.Refresh(ctx); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "START\tEND\tTITLE")
	for _, event := range page.Events() {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			event.Start.Format("Mon 02 Jan 2006 15:04"),
			event.End.Format("15:04"),
			event.Title,
		)
	}
	return w.Flush()
}

func showStats(ctx context.Context, client *restapi.Client, notifier pages.Notifier) error {
	analyzer := stats.NewAnalyzer(client)
	activityStats, err := analyzer.ActivityStats(ctx)
	if err != nil {
		return err
	}
	percentages, err := analyzer.ActivityPercentages(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ACTIVITY\tMINUTES\tSHARE")
	for _, stat := range activityStats {
		fmt.Fprintf(w, "%s\t%s\t%.2f%%\n",
			stat.Activity,
			strings.TrimSuffix(fmt.Sprintf("%.2f", stat.Duration), ".00"),
			percentages[stat.Activity],
		)
	}
	return w.Flush()
}
