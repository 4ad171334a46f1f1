package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Output formats API responses for display.
// Amounts arrive as JSON numbers encoded by the server; the CLI
// carries them as strings and never does arithmetic on them.
type Output struct {
	w      io.Writer
	format string
}

// NewOutput creates a new output formatter
func NewOutput(w io.Writer, format string) *Output {
	return &Output{w: w, format: format}
}

// JSON returns true when the output format is json
func (o *Output) JSON() bool {
	return o.format == "json"
}

// PrintJSON writes a value as indented JSON
func (o *Output) PrintJSON(v any) error {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Printf writes formatted text output
func (o *Output) Printf(format string, args ...any) {
	fmt.Fprintf(o.w, format, args...)
}

// Println writes a line of text output
func (o *Output) Println(args ...any) {
	fmt.Fprintln(o.w, args...)
}

// Rebuy mirrors the API rebuy payload
type Rebuy struct {
	ID     string `json:"id"`
	Amount string `json:"amount"`
	Status string `json:"status"`
}

// Player mirrors the API player payload
type Player struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	BuyInStatus   string  `json:"buy_in_status"`
	Rebuys        []Rebuy `json:"rebuys"`
	Cashout       *string `json:"cashout,omitempty"`
	InvestedChips string  `json:"invested_chips"`
	PaidCash      string  `json:"paid_cash"`
	TotalCost     string  `json:"total_cost"`
	PendingCash   string  `json:"pending_cash"`
}

// Game mirrors the API game payload
type Game struct {
	Phase   string   `json:"phase"`
	BuyIn   string   `json:"buy_in"`
	Players []Player `json:"players"`
	Totals  Totals   `json:"totals"`
}

// Totals mirrors the API totals payload
type Totals struct {
	PlayerCount int    `json:"player_count"`
	BuyIns      string `json:"buy_ins"`
	Fees        string `json:"fees"`
	Rebuys      string `json:"rebuys"`
	Chips       string `json:"chips"`
	Paid        string `json:"paid"`
	Pending     string `json:"pending"`
}

// Debtor mirrors the API debtor payload
type Debtor struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Pending  string `json:"pending"`
}

// Debtors mirrors the API debtors payload
type Debtors struct {
	Debtors []Debtor `json:"debtors"`
}

// PlayerResult mirrors the API ranking entry payload
type PlayerResult struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Invested string `json:"invested_chips"`
	Out      string `json:"out"`
	Ratio    string `json:"ratio"`
	Fee      string `json:"fee"`
	Net      string `json:"net"`
	Rank     int    `json:"rank"`
	Points   int    `json:"points"`
}

// Ranking mirrors the API ranking payload
type Ranking struct {
	Results       []PlayerResult `json:"results"`
	TotalDeclared string         `json:"total_declared"`
	HouseCut      string         `json:"house_cut"`
	PayoutPool    string         `json:"payout_pool"`
}

// Audit mirrors the API audit payload
type Audit struct {
	Chips      string `json:"chips"`
	Declared   string `json:"declared"`
	Difference string `json:"difference"`
	Status     string `json:"status"`
	Balanced   bool   `json:"balanced"`
}

// Health mirrors the API health payload
type Health struct {
	Status string `json:"status"`
}

// PrintGame displays a game
func (o *Output) PrintGame(g *Game) error {
	if o.JSON() {
		return o.PrintJSON(g)
	}

	o.Printf("Phase: %s\n", g.Phase)
	if g.Phase != "setup" {
		o.Printf("Buy-in: %s\n", g.BuyIn)
	}
	if len(g.Players) == 0 {
		o.Println("No players")
		return nil
	}

	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tBUY-IN\tREBUYS\tCHIPS\tPENDING\tCASHOUT")
	for _, p := range g.Players {
		cashout := "-"
		if p.Cashout != nil {
			cashout = *p.Cashout
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			p.ID, p.Name, p.BuyInStatus, len(p.Rebuys),
			p.InvestedChips, p.PendingCash, cashout)
	}
	return tw.Flush()
}

// PrintTotals displays game totals
func (o *Output) PrintTotals(t *Totals) error {
	if o.JSON() {
		return o.PrintJSON(t)
	}

	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Players:\t%d\n", t.PlayerCount)
	fmt.Fprintf(tw, "Buy-ins:\t%s\n", t.BuyIns)
	fmt.Fprintf(tw, "House fees:\t%s\n", t.Fees)
	fmt.Fprintf(tw, "Rebuys:\t%s\n", t.Rebuys)
	fmt.Fprintf(tw, "Chips in play:\t%s\n", t.Chips)
	fmt.Fprintf(tw, "Paid:\t%s\n", t.Paid)
	fmt.Fprintf(tw, "Pending:\t%s\n", t.Pending)
	return tw.Flush()
}

// PrintDebtors displays the outstanding-payment list
func (o *Output) PrintDebtors(d *Debtors) error {
	if o.JSON() {
		return o.PrintJSON(d)
	}

	if len(d.Debtors) == 0 {
		o.Println("All settled up")
		return nil
	}
	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tOWES")
	for _, deb := range d.Debtors {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", deb.PlayerID, deb.Name, deb.Pending)
	}
	return tw.Flush()
}

// PrintRanking displays the settlement ranking
func (o *Output) PrintRanking(r *Ranking) error {
	if o.JSON() {
		return o.PrintJSON(r)
	}

	if len(r.Results) == 0 {
		o.Println("No results yet")
		return nil
	}
	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tNAME\tIN\tOUT\tRATIO\tFEE\tNET\tPOINTS")
	for _, res := range r.Results {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			res.Rank, res.Name, res.Invested, res.Out,
			res.Ratio, res.Fee, res.Net, res.Points)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	o.Printf("\nDeclared: %s  House cut: %s  Payout pool: %s\n",
		r.TotalDeclared, r.HouseCut, r.PayoutPool)
	return nil
}

// PrintAudit displays a chip audit report
func (o *Output) PrintAudit(a *Audit) error {
	if o.JSON() {
		return o.PrintJSON(a)
	}

	o.Printf("Chips in play: %s\n", a.Chips)
	o.Printf("Declared:      %s\n", a.Declared)
	status := strings.ReplaceAll(a.Status, "_", " ")
	if a.Balanced {
		o.Printf("Status:        %s\n", status)
	} else {
		o.Printf("Status:        %s (difference %s)\n", status, a.Difference)
	}
	return nil
}

// PrintHealth displays the server health status
func (o *Output) PrintHealth(h *Health) error {
	if o.JSON() {
		return o.PrintJSON(h)
	}
	o.Printf("Server status: %s\n", h.Status)
	return nil
}
