package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"salvamed/internal/domain/catalog"
)

type CatalogRepo struct {
	db *sql.DB
}

func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func (r *CatalogRepo) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, color
		FROM categories
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Category, 0)
	for rows.Next() {
		var c catalog.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Color); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CatalogRepo) ListDrugs(ctx context.Context) ([]catalog.Drug, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+drugColumns+`
		FROM drugs
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Drug, 0)
	for rows.Next() {
		d, err := scanDrug(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *CatalogRepo) GetDrugByID(ctx context.Context, id string) (catalog.Drug, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return catalog.Drug{}, catalog.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+drugColumns+`
		FROM drugs
		WHERE id = $1
	`, id)

	d, err := scanDrug(row)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Drug{}, catalog.ErrNotFound
	}
	return d, err
}

// Seed inserta (upsert) el catálogo compilado. Pensado para el comando
// `salvamed seed`; idempotente.
func (r *CatalogRepo) Seed(ctx context.Context, ref catalog.Reference) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for i, c := range ref.Categories {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO categories (id, name, color, position)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE
			SET name = EXCLUDED.name, color = EXCLUDED.color, position = EXCLUDED.position
		`, c.ID, c.Name, c.Color, i); err != nil {
			return err
		}
	}

	for i, d := range ref.Drugs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO drugs (
				id, group_name, name, variant_label, category_id,
				presentation, dilution, concentration_label, dose_label, notes,
				kind, concentration_value, concentration_unit, dose_unit,
				weight_based, position
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
			ON CONFLICT (id) DO UPDATE SET
				group_name = EXCLUDED.group_name,
				name = EXCLUDED.name,
				variant_label = EXCLUDED.variant_label,
				category_id = EXCLUDED.category_id,
				presentation = EXCLUDED.presentation,
				dilution = EXCLUDED.dilution,
				concentration_label = EXCLUDED.concentration_label,
				dose_label = EXCLUDED.dose_label,
				notes = EXCLUDED.notes,
				kind = EXCLUDED.kind,
				concentration_value = EXCLUDED.concentration_value,
				concentration_unit = EXCLUDED.concentration_unit,
				dose_unit = EXCLUDED.dose_unit,
				weight_based = EXCLUDED.weight_based,
				position = EXCLUDED.position
		`,
			d.ID, d.GroupName, d.Name, d.VariantLabel, d.CategoryID,
			d.Presentation, d.Dilution, d.ConcentrationLabel, d.DoseLabel, d.Notes,
			string(d.Kind), d.ConcentrationValue, string(d.ConcentrationUnit), string(d.DoseUnit),
			d.WeightBased, i,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

const drugColumns = `
	id, group_name, name, variant_label, category_id,
	presentation, dilution, concentration_label, dose_label, notes,
	kind, concentration_value, concentration_unit, dose_unit, weight_based
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDrug(row rowScanner) (catalog.Drug, error) {
	var d catalog.Drug
	var kind, concUnit, doseUnit string

	err := row.Scan(
		&d.ID, &d.GroupName, &d.Name, &d.VariantLabel, &d.CategoryID,
		&d.Presentation, &d.Dilution, &d.ConcentrationLabel, &d.DoseLabel, &d.Notes,
		&kind, &d.ConcentrationValue, &concUnit, &doseUnit, &d.WeightBased,
	)
	if err != nil {
		return catalog.Drug{}, err
	}

	d.Kind = catalog.CalculationKind(kind)
	d.ConcentrationUnit = catalog.ConcentrationUnit(concUnit)
	d.DoseUnit = catalog.DoseUnit(doseUnit)
	return d, nil
}
