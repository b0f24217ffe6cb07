// Package leads implements the operator CLI for reviewing recorded leads.
package leads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	entrypoint "github.com/Godwin-Baiju/aissol-test/internal/platform/cmd"
	siteleads "github.com/Godwin-Baiju/aissol-test/internal/services/site/leads"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/storage"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/storage/sqlite"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const exportPageSize = 100

// Config holds leads command configuration.
type Config struct {
	DBPath string `env:"AISSOL_SITE_DB_PATH" envDefault:"data/site.db"`
}

// OpenStore opens the lead store at path.
type OpenStore func(path string) (storage.LeadStore, io.Closer, error)

func openSQLite(path string) (storage.LeadStore, io.Closer, error) {
	store, err := sqlite.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return store, store, nil
}

// Execute runs the leads CLI with args.
func Execute(ctx context.Context, args []string, stdout io.Writer) error {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return err
	}
	root := NewRootCommand(cfg, openSQLite)
	root.SetArgs(args)
	root.SetOut(stdout)
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceLeads, root.ExecuteContext)
}

// NewRootCommand builds the leads command tree.
func NewRootCommand(cfg Config, open OpenStore) *cobra.Command {
	app := &cli{dbPath: cfg.DBPath, open: open, now: time.Now}
	root := &cobra.Command{
		Use:   "leads",
		Short: "Review lead submissions recorded by the site",
		Long: `Review contact, career, product, service and enquiry-list submissions
recorded by the site service.

Examples:
  leads list --kind contact --limit 10
  leads show 4qcyk2m7yxf3ngq2bdhq5ckc3e
  leads export --format html > digest.html`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&app.dbPath, "db", cfg.DBPath, "SQLite database path")
	root.AddCommand(app.listCommand(), app.showCommand(), app.exportCommand())
	return root
}

type cli struct {
	dbPath string
	open   OpenStore
	now    func() time.Time
}

func (c *cli) withStore(fn func(storage.LeadStore) error) error {
	store, closer, err := c.open(c.dbPath)
	if err != nil {
		return fmt.Errorf("open lead store: %w", err)
	}
	if closer != nil {
		defer closer.Close()
	}
	return fn(store)
}

func (c *cli) listCommand() *cobra.Command {
	var kind string
	var limit int
	var pageToken string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent leads, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kindFilter, err := parseKindFlag(kind)
			if err != nil {
				return err
			}
			if limit <= 0 {
				return fmt.Errorf("limit must be greater than zero")
			}
			return c.withStore(func(store storage.LeadStore) error {
				page, err := store.ListLeads(cmd.Context(), kindFilter, limit, pageToken)
				if err != nil {
					return err
				}
				printLeadTable(cmd.OutOrStdout(), page)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "Only list leads of this kind")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum leads to list")
	cmd.Flags().StringVar(&pageToken, "page-token", "", "Continue from a previous listing")
	return cmd
}

func (c *cli) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <lead-id>",
		Short: "Show every field of one lead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(func(store storage.LeadStore) error {
				record, err := store.GetLead(cmd.Context(), args[0])
				if errors.Is(err, storage.ErrNotFound) {
					return fmt.Errorf("lead not found: %s", args[0])
				}
				if err != nil {
					return err
				}
				lead, err := siteleads.Decode(record)
				if err != nil {
					return err
				}
				printLead(cmd.OutOrStdout(), lead)
				return nil
			})
		},
	}
}

func (c *cli) exportCommand() *cobra.Command {
	var kind string
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every lead as JSON or an HTML digest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kindFilter, err := parseKindFlag(kind)
			if err != nil {
				return err
			}
			format = strings.ToLower(strings.TrimSpace(format))
			if format != "json" && format != "html" {
				return fmt.Errorf("unsupported format %q; use json or html", format)
			}
			return c.withStore(func(store storage.LeadStore) error {
				all, err := collectLeads(cmd.Context(), store, kindFilter)
				if err != nil {
					return err
				}
				if format == "html" {
					return siteleads.Digest(all, c.now()).Render(cmd.Context(), cmd.OutOrStdout())
				}
				return writeJSON(cmd.OutOrStdout(), all)
			})
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "Only export leads of this kind")
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or html")
	return cmd
}

func parseKindFlag(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	kind, err := siteleads.ParseKind(raw)
	if err != nil {
		return "", err
	}
	return string(kind), nil
}

func collectLeads(ctx context.Context, store storage.LeadStore, kind string) ([]siteleads.Lead, error) {
	var all []siteleads.Lead
	token := ""
	for {
		page, err := store.ListLeads(ctx, kind, exportPageSize, token)
		if err != nil {
			return nil, err
		}
		for _, record := range page.Leads {
			lead, err := siteleads.Decode(record)
			if err != nil {
				return nil, err
			}
			all = append(all, lead)
		}
		if page.NextPageToken == "" {
			return all, nil
		}
		token = page.NextPageToken
	}
}

func printLeadTable(w io.Writer, page storage.LeadPage) {
	bold := color.New(color.Bold)
	bold.Fprintf(w, "%-26s  %-18s  %-20s  %s\n", "ID", "KIND", "CREATED", "CONTACT")
	for _, record := range page.Leads {
		fmt.Fprintf(w, "%-26s  %-18s  %-20s  %s <%s>\n",
			record.ID, record.Kind, record.CreatedAt.UTC().Format(time.RFC3339), record.Name, record.Email)
	}
	if len(page.Leads) == 0 {
		fmt.Fprintln(w, "no leads recorded")
	}
	if page.NextPageToken != "" {
		color.New(color.Faint).Fprintf(w, "more leads: --page-token %s\n", page.NextPageToken)
	}
}

func printLead(w io.Writer, lead siteleads.Lead) {
	bold := color.New(color.Bold)
	fmt.Fprintln(w, "----------------------------------------")
	bold.Fprintf(w, "LEAD: %s\n", lead.ID)
	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprintf(w, "Kind:     %s\n", lead.Kind)
	fmt.Fprintf(w, "Created:  %s\n", lead.CreatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintln(w)
	for _, field := range siteleads.Fields(lead.Form) {
		color.New(color.FgCyan).Fprintf(w, "  %s", field.Name)
		fmt.Fprintf(w, ": %s\n", field.Value)
	}
}

type exportedLead struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	CreatedAt time.Time       `json:"created_at"`
	Fields    []exportedField `json:"fields"`
}

type exportedField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func writeJSON(w io.Writer, all []siteleads.Lead) error {
	out := make([]exportedLead, 0, len(all))
	for _, lead := range all {
		fields := siteleads.Fields(lead.Form)
		exported := exportedLead{
			ID:        lead.ID,
			Kind:      string(lead.Kind),
			CreatedAt: lead.CreatedAt.UTC(),
			Fields:    make([]exportedField, 0, len(fields)),
		}
		for _, field := range fields {
			exported.Fields = append(exported.Fields, exportedField(field))
		}
		out = append(out, exported)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
