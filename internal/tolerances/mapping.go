package tolerances

import (
	"context"
	"database/sql"

	"github.com/camco-mfg/gauge/pkg/repository"
)

const partitionQuery = `
	SELECT designation, minimum_diameter, maximum_diameter,
	       upper_deviation, lower_deviation, it5, it6
	FROM tolerance_rows
	WHERE category = $1
	ORDER BY designation, minimum_diameter`

type designatedRow struct {
	designation string
	row         Row
}

func scanDesignatedRow(s repository.Scanner) (designatedRow, error) {
	var d designatedRow
	err := s.Scan(
		&d.designation,
		&d.row.MinimumDiameter,
		&d.row.MaximumDiameter,
		&d.row.UpperDeviation,
		&d.row.LowerDeviation,
		&d.row.IT5,
		&d.row.IT6,
	)
	return d, err
}

func loadPartition(ctx context.Context, db *sql.DB, c Category) (map[string][]Row, error) {
	items, err := repository.QueryMany(
		ctx, db,
		partitionQuery,
		[]any{c.Keyword()},
		scanDesignatedRow,
	)
	if err != nil {
		return nil, err
	}

	designations := make(map[string][]Row)
	for _, item := range items {
		designations[item.designation] = append(designations[item.designation], item.row)
	}
	return designations, nil
}
