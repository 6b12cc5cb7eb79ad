// Package pdf genera la representación gráfica de un estado de cuenta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + datos      │  ESTADO DE CUENTA N° + fecha │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE + PERÍODO                                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Concepto | Cargo | Abono | Saldo            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Saldo anterior / Cargos / Abonos / SALDO ACTUAL   │
//	│  OBSERVACIONES                                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appstatement "github.com/protecfuego/gestion-api/internal/application/statement"
	"github.com/protecfuego/gestion-api/internal/domain/entity"
	"github.com/protecfuego/gestion-api/internal/domain/ledger"
	appconfig "github.com/protecfuego/gestion-api/pkg/config"
	"github.com/protecfuego/gestion-api/pkg/money"
)

const displayDate = "02/01/2006"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 170, Green: 25, Blue: 25}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	headerBg     = &props.Color{Red: 170, Green: 25, Blue: 25}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appstatement.StatementPDFGenerator = (*MarotoStatementGenerator)(nil)

// MarotoStatementGenerator implementa statement.StatementPDFGenerator usando Maroto v2.
type MarotoStatementGenerator struct {
	company appconfig.CompanyConfig
	money   *money.Formatter
}

// NewMarotoStatementGenerator construye el generador con los datos del emisor y el formato de montos.
func NewMarotoStatementGenerator(company appconfig.CompanyConfig, f *money.Formatter) *MarotoStatementGenerator {
	if f == nil {
		f = money.NewFormatter("es", "$")
	}
	return &MarotoStatementGenerator{company: company, money: f}
}

// GenerateStatementPDF genera el PDF y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateStatementPDF(_ context.Context, doc appstatement.StatementDocument) ([]byte, error) {
	s := doc.Statement
	if s == nil {
		return nil, fmt.Errorf("pdf: estado de cuenta nulo")
	}
	if len(doc.RunningBalances) != len(s.Movements) {
		return nil, fmt.Errorf("pdf: %d saldos para %d movimientos", len(doc.RunningBalances), len(s.Movements))
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de cuenta "+s.Number, true).
		WithAuthor(g.company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(s, doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.priorBalanceRow(s.PriorBalance))
	m.AddRows(g.movementRows(s.Movements, doc.RunningBalances)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(doc.Summary))

	if obs := strings.TrimSpace(s.Observations); obs != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(observationsRow(obs))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa (izq) y número + fecha de emisión (der).
func (g *MarotoStatementGenerator) headerRow(s *entity.AccountStatement, doc appstatement.StatementDocument) core.Row {
	contact := joinNonEmpty("   |   ",
		prefixed("NIT: ", g.company.TaxID),
		g.company.Address,
		prefixed("Tel: ", g.company.Phone),
		g.company.Email,
	)
	return row.New(20).Add(
		col.New(7).Add(
			text.New(g.company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(contact, props.Text{Size: 7.5, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("ESTADO DE CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+s.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Emitido: "+doc.GeneratedAt.Format(displayDate), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clientRow: cliente y período del estado.
func clientRow(s *entity.AccountStatement) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(nonEmpty(s.ClientName, s.ClientID), props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		),
		col.New(4).Add(
			text.New("PERÍODO", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(periodText(s.Period), props.Text{Size: 9, Align: align.Right, Top: 6}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Concepto", 4, align.Left),
		h("Cargo", 2, align.Right),
		h("Abono", 2, align.Right),
		h("Saldo", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: headerBg})
}

func (g *MarotoStatementGenerator) priorBalanceRow(prior decimal.Decimal) core.Row {
	return row.New(7).Add(
		col.New(2),
		col.New(4).Add(text.New("Saldo anterior", props.Text{Style: fontstyle.Italic, Size: 8, Top: 1, Left: 1})),
		col.New(2),
		col.New(2),
		col.New(2).Add(text.New(g.money.Currency(prior), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

// movementRows: una fila por movimiento; el monto va en Cargo o Abono según su signo.
func (g *MarotoStatementGenerator) movementRows(movs []entity.Movement, running []decimal.Decimal) []core.Row {
	cell := func(s string, a align.Type) core.Component {
		return text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1})
	}
	rows := make([]core.Row, 0, len(movs))
	for i, mv := range movs {
		var charge, credit string
		switch ledger.Classify(mv.Amount) {
		case ledger.KindCharge:
			charge = g.money.Currency(mv.Amount)
		case ledger.KindCredit:
			credit = g.money.Currency(mv.Amount.Neg())
		}
		date := ""
		if !mv.Date.IsZero() {
			date = mv.Date.Format(displayDate)
		}
		rows = append(rows, row.New(7).Add(
			col.New(2).Add(cell(date, align.Left)),
			col.New(4).Add(cell(mv.Concept, align.Left)),
			col.New(2).Add(cell(charge, align.Right)),
			col.New(2).Add(cell(credit, align.Right)),
			col.New(2).Add(cell(g.money.Currency(running[i]), align.Right)),
		))
	}
	return rows
}

// totalsRow: bloque de totales alineado a la derecha.
func (g *MarotoStatementGenerator) totalsRow(sum ledger.Summary) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grand := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: top,
		})
	}

	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Saldo anterior:", 0),
			label("Total cargos:", 5),
			label("Total abonos:", 10),
			text.New("SALDO ACTUAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 16,
			}),
		),
		col.New(4).Add(
			value(g.money.Currency(sum.PriorBalance), 0),
			value(g.money.Currency(sum.TotalCharges), 5),
			value(g.money.Currency(sum.TotalCredits), 10),
			grand(g.money.Currency(sum.CurrentBalance), 16),
		),
	)
}

func observationsRow(obs string) core.Row {
	return row.New(20).Add(col.New(12).Add(
		text.New("OBSERVACIONES", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		text.New(obs, props.Text{Size: 8, Top: 6, Color: colorGray}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func periodText(p entity.Period) string {
	switch {
	case p.From.IsZero() && p.To.IsZero():
		return "—"
	case p.From.IsZero():
		return "hasta " + p.To.Format(displayDate)
	case p.To.IsZero():
		return "desde " + p.From.Format(displayDate)
	default:
		return p.From.Format(displayDate) + " al " + p.To.Format(displayDate)
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func prefixed(prefix, s string) string {
	if s == "" {
		return ""
	}
	return prefix + s
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
