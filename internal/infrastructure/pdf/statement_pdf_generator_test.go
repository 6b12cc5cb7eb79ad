package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appstatement "github.com/protecfuego/gestion-api/internal/application/statement"
	"github.com/protecfuego/gestion-api/internal/domain/entity"
	"github.com/protecfuego/gestion-api/internal/domain/ledger"
	"github.com/protecfuego/gestion-api/internal/infrastructure/pdf"
	"github.com/protecfuego/gestion-api/pkg/config"
	"github.com/protecfuego/gestion-api/pkg/money"
)

func sampleDocument() appstatement.StatementDocument {
	s := &entity.AccountStatement{
		ID:           "e1",
		Number:       "EC-2024-001",
		ClientID:     "cli-1",
		ClientName:   "Consorcio Av. Libertador 1200",
		Period:       entity.Period{From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), To: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)},
		PriorBalance: decimal.RequireFromString("1000"),
		Movements: []entity.Movement{
			{ID: 1, Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Concept: "FACTURA FC-001 - Recarga de extintores", Amount: decimal.RequireFromString("500")},
			{ID: 2, Date: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), Concept: "Pago transferencia", Amount: decimal.RequireFromString("-200")},
			{ID: 3, Concept: "Visita sin cargo", Amount: decimal.Zero},
		},
		Observations: "Próxima inspección: marzo.",
	}
	ledger.Recompute(s)
	return appstatement.StatementDocument{
		Statement:       s,
		Summary:         ledger.Summarize(s.PriorBalance, s.Movements),
		RunningBalances: ledger.RunningBalances(s.PriorBalance, s.Movements),
		GeneratedAt:     time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestGenerateStatementPDF(t *testing.T) {
	g := pdf.NewMarotoStatementGenerator(config.CompanyConfig{
		Name:  "Protección Contra Incendios S.A.",
		TaxID: "30-12345678-9",
		Phone: "011 4444-5555",
	}, money.NewFormatter("es", "$"))

	out, err := g.GenerateStatementPDF(context.Background(), sampleDocument())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un PDF")
}

func TestGenerateStatementPDF_SinMovimientos(t *testing.T) {
	doc := sampleDocument()
	doc.Statement.Movements = nil
	doc.Statement.Observations = ""
	doc.RunningBalances = nil

	out, err := pdf.NewMarotoStatementGenerator(config.CompanyConfig{Name: "PCI"}, nil).
		GenerateStatementPDF(context.Background(), doc)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateStatementPDF_SaldosInconsistentes(t *testing.T) {
	doc := sampleDocument()
	doc.RunningBalances = doc.RunningBalances[:1]

	_, err := pdf.NewMarotoStatementGenerator(config.CompanyConfig{}, nil).GenerateStatementPDF(context.Background(), doc)
	assert.Error(t, err)
}
