package cli

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"sip-planner/chart"
	"sip-planner/domain"
	"sip-planner/repository"
	"sip-planner/service"
)

type calcOptions struct {
	req       domain.CalculationRequest
	chartPath string
	asJSON    bool
	explain   bool
}

func newCalcCmd(a *app) *cobra.Command {
	o := calcOptions{req: domain.DefaultRequest()}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate a plan and print the summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var explainer service.Explainer
			if o.explain {
				explainer = service.NewAIService(service.AIConfig{
					APIKey:   a.cfg.OpenAIKey,
					URL:      a.cfg.OpenAIURL,
					Model:    a.cfg.OpenAIModel,
					Currency: a.cfg.Currency,
				})
			}

			svc := service.NewSIPService(
				repository.NewHistoryRepositoryMemory(1),
				nil,
				explainer,
				service.Options{Currency: a.cfg.Currency},
			)

			report, err := svc.Calculate(cmd.Context(), o.req)
			if err != nil {
				return err
			}

			if o.chartPath != "" {
				if err := writeChart(o.chartPath, report.Result); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if o.asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			for _, line := range report.Lines {
				fmt.Fprintln(out, line)
			}
			if report.Explanation != "" {
				fmt.Fprintln(out)
				fmt.Fprintln(out, report.Explanation)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, report.Note)
			if o.chartPath != "" {
				fmt.Fprintf(out, "Chart written to %s\n", o.chartPath)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&o.req.Rate, "rate", o.req.Rate, "annual rate of return (%, 0-100)")
	f.IntVar(&o.req.Years, "years", o.req.Years, "investment duration in years (1-50)")
	f.Float64Var(&o.req.InitialSIP, "sip", o.req.InitialSIP, "initial monthly SIP amount (100-1000000)")
	f.Float64Var(&o.req.SIPIncreaseRate, "increase", o.req.SIPIncreaseRate, "annual SIP increase rate (%, 0-100)")
	f.Float64Var(&o.req.InitialInvestment, "initial", o.req.InitialInvestment, "initial lump sum (0-10000000)")
	f.StringVar(&o.chartPath, "chart", "", "write the growth chart as HTML to this path")
	f.BoolVar(&o.asJSON, "json", false, "print the full report as JSON")
	f.BoolVar(&o.explain, "explain", false, "add an explanation (uses OPENAI_API_KEY when set)")
	return cmd
}

func writeChart(path string, result domain.SimulationResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	if err := chart.Render(f, result); err != nil {
		_ = f.Close()
		return fmt.Errorf("render chart: %w", err)
	}
	return f.Close()
}
