package postgres

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/protecfuego/gestion-api/internal/domain/entity"
	"github.com/protecfuego/gestion-api/internal/domain/ledger"
)

// encodeMovements serializa los movimientos en formato unificado para la columna JSONB.
func encodeMovements(movs []entity.Movement) ([]byte, error) {
	raw := ledger.FromMovements(movs)
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("serializar movimientos: %w", err)
	}
	return data, nil
}

// decodeMovements lee la columna JSONB. Los documentos viejos pueden traer debe/haber:
// se migran al vuelo y lo degradado vuelve como advertencias.
func decodeMovements(data []byte) ([]entity.Movement, []string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return []entity.Movement{}, nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw []ledger.RawMovement
	if err := dec.Decode(&raw); err != nil {
		return nil, nil, fmt.Errorf("leer movimientos: %w", err)
	}

	migrated, migWarns := ledger.MigrateLegacyMovements(raw)
	movs, loadWarns := ledger.LoadMovements(migrated)

	var warns []string
	for _, w := range append(migWarns, loadWarns...) {
		warns = append(warns, w.String())
	}
	return movs, warns, nil
}
