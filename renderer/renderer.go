// Package renderer renders wallets, transactions and statements as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"
	"time"

	"github.com/etnz/wallet"
)

//go:embed templates/*.md
var templates embed.FS

// StampFormat is the layout of transaction timestamps in rendered tables.
const StampFormat = "2006-01-02 15:04"

// Renderer renders markdown with amounts formatted in Currency.
type Renderer struct {
	Currency string // ISO 4217 code used to format amounts, e.g. "USD".
}

// New returns a Renderer formatting amounts in currency.
func New(currency string) *Renderer { return &Renderer{Currency: currency} }

// balanceView is the data of the balance template.
type balanceView struct {
	Name            string
	Balance         wallet.Amount
	Count           int
	Credits, Debits wallet.Amount
	Last            *wallet.Transaction
}

// Balance renders the wallet name, its balance and a one line summary of its
// activity.
func (r *Renderer) Balance(w *wallet.Wallet) string {
	v := balanceView{Name: w.Name(), Balance: w.Balance(), Count: w.Len()}
	v.Credits, v.Debits = w.Totals()
	if last, ok := w.Last(); ok {
		v.Last = &last
	}
	return r.render("balance", v)
}

// Transactions renders transactions as a markdown table.
func (r *Renderer) Transactions(txs []wallet.Transaction) string {
	return r.render("transactions", txs)
}

// Statement renders a statement: its totals followed by its transactions.
func (r *Renderer) Statement(s wallet.Statement) string {
	return r.render("statement", s)
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"money": func(a wallet.Amount) string { return a.Format(r.Currency) },
		"signed": func(tx wallet.Transaction) string {
			if tx.Kind == wallet.Debit {
				return "-" + tx.Amount.Format(r.Currency)
			}
			return "+" + tx.Amount.Format(r.Currency)
		},
		"stamp": func(t time.Time) string { return t.UTC().Format(StampFormat) },
		"cell":  cell,
	}
}

// cell escapes text so that it fits in a single markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

// render executes the named template. Every template file is available to
// the others as a partial named after the file without its extension.
func (r *Renderer) render(name string, data any) string {
	tmpl := template.New("").Funcs(r.funcs())
	files, err := fs.Glob(templates, "templates/*.md")
	if err != nil {
		return fmt.Sprintf("error listing templates: %v", err)
	}
	for _, file := range files {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading template %q: %v", file, err)
		}
		partial := strings.TrimSuffix(path.Base(file), ".md")
		if _, err := tmpl.New(partial).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing template %q: %v", file, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, name, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}
