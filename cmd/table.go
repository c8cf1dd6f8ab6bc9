package cmd

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spigell/hiring-desk/internal/api"
	"github.com/spigell/hiring-desk/internal/filtering"
	"github.com/spigell/hiring-desk/internal/recruiting"
)

func printJobs(w io.Writer, jobs []*recruiting.Job) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tDEPARTMENT\tSTATUS\tCANDIDATES\tCREATED")
	for _, j := range jobs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
			j.ID, j.Title, j.Department, j.Status, len(j.Candidates), j.CreatedAt.Format("2006-01-02"))
	}
	return tw.Flush()
}

func printCandidates(w io.Writer, candidates []*recruiting.Candidate) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tROLE\tEXP\tSTATUS\tSCORE")
	for _, c := range candidates {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Role, c.Exp, c.Status, score(c))
	}
	return tw.Flush()
}

func printCandidate(w io.Writer, c *recruiting.Candidate) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\t%s\n", c.ID)
	fmt.Fprintf(tw, "NAME\t%s\n", c.Name)
	fmt.Fprintf(tw, "ROLE\t%s\n", c.Role)
	fmt.Fprintf(tw, "CONTACT\t%s / %s\n", c.Email, c.Phone)
	fmt.Fprintf(tw, "EXPERIENCE\t%s\n", c.Exp)
	fmt.Fprintf(tw, "SALARY\t%s\n", c.Salary)
	fmt.Fprintf(tw, "STATUS\t%s\n", c.Status)
	fmt.Fprintf(tw, "SCORE\t%s\n", score(c))
	if len(c.MatchAnalysis) > 0 {
		fmt.Fprintf(tw, "ANALYSIS\t%s\n", strings.Join(c.MatchAnalysis, "; "))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if c.CallDetails == nil {
		return nil
	}

	fmt.Fprintln(w, "\nTRANSCRIPT")
	for _, line := range c.CallDetails.Transcript {
		fmt.Fprintf(w, "  %s: %s\n", line.Speaker, line.Text)
	}
	if len(c.CallDetails.GeneratedLeads) > 0 {
		fmt.Fprintf(w, "LEADS: %s\n", strings.Join(c.CallDetails.GeneratedLeads, ", "))
	}
	return nil
}

func printOverview(w io.Writer, o *api.Overview) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "JOBS\t%d (%d active)\n", o.Jobs, o.ActiveJobs)
	fmt.Fprintf(tw, "CANDIDATES\t%d (%d scored)\n", o.Candidates, o.Scored)
	fmt.Fprintf(tw, "CALLS\t%d answered, %d in flight\n", o.CallsAnswered, o.CallsInFlight)
	fmt.Fprintf(tw, "AGENTS\t%d (%d active)\n", o.Agents, o.ActiveAgents)
	fmt.Fprintf(tw, "LANGUAGE\t%s\n", o.Language)
	return tw.Flush()
}

func printFilters(w io.Writer, filters []filtering.Status) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILTER\tENABLED\tDETAILS")
	for _, f := range filters {
		details := f.Reason
		if len(f.Details) > 0 {
			pairs := make([]string, 0, len(f.Details))
			for _, k := range slices.Sorted(maps.Keys(f.Details)) {
				pairs = append(pairs, k+"="+f.Details[k])
			}
			details = strings.Join(pairs, " ")
		}
		fmt.Fprintf(tw, "%s\t%t\t%s\n", f.Name, f.Enabled, details)
	}
	return tw.Flush()
}

func score(c *recruiting.Candidate) string {
	if !c.Scored() {
		return "-"
	}
	return strconv.Itoa(*c.MatchScore) + "%"
}
