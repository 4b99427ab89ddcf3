package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polygon_dashboard/internal/feature/financials/domain/entity"
	"polygon_dashboard/internal/feature/financials/usecase"
)

func TestFreeCashFlow(t *testing.T) {
	testCases := []struct {
		name     string
		items    map[string]float64
		expected float64
	}{
		{
			name: "operating plus investing",
			items: map[string]float64{
				"Net Cash Flow From Operating Activities": 110543000000,
				"Net Cash Flow From Investing Activities": -10959000000,
			},
			expected: 99584000000,
		},
		{
			name: "missing investing cash flow counts as zero",
			items: map[string]float64{
				"Net Cash Flow From Operating Activities": 50000,
			},
			expected: 50000,
		},
		{
			name: "missing operating cash flow counts as zero",
			items: map[string]float64{
				"Net Cash Flow From Investing Activities": -20000,
			},
			expected: -20000,
		},
		{
			name:     "both missing",
			items:    map[string]float64{},
			expected: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := entity.Statement{Items: tc.items}
			assert.Equal(t, tc.expected, usecase.FreeCashFlow(s))
		})
	}
}

func TestBuildTable(t *testing.T) {
	t.Run("schema is fixed and free cash flow is the last column", func(t *testing.T) {
		statements := []entity.Statement{
			{
				CIK:          "0000320193",
				CompanyName:  "Apple Inc.",
				FiscalYear:   "2023",
				FiscalPeriod: "FY",
				StartDate:    "2022-09-25",
				EndDate:      "2023-09-30",
				FilingDate:   "2023-11-03",
				Items: map[string]float64{
					"Revenues": 383285000000,
					"Net Cash Flow From Operating Activities": 110543000000,
					"Net Cash Flow From Investing Activities": 3705000000,
				},
			},
		}

		got := usecase.BuildTable(statements)

		assert.Equal(t, usecase.FinancialColumns, got.Columns)
		assert.Equal(t, usecase.ColumnFreeCashFlow, got.Columns[len(got.Columns)-1])
		require.Len(t, got.Rows, 1)

		row := got.Rows[0]
		require.Len(t, row, len(usecase.FinancialColumns))
		assert.Equal(t, "0000320193", row[0])
		assert.Equal(t, "383,285,000,000.00", row[7]) // Revenues
		assert.Equal(t, "114,248,000,000.00", row[len(row)-1])
	})

	t.Run("missing line items become empty cells", func(t *testing.T) {
		statements := []entity.Statement{
			{EndDate: "2023-09-30", Items: map[string]float64{}},
		}

		got := usecase.BuildTable(statements)

		require.Len(t, got.Rows, 1)
		row := got.Rows[0]
		// メタデータ列の後、派生カラムを除くすべての明細セルが空文字
		for i := 7; i < len(row)-1; i++ {
			assert.Equal(t, "", row[i], "column %s", got.Columns[i])
		}
		// 派生カラムは0.00
		assert.Equal(t, "0.00", row[len(row)-1])
	})

	t.Run("rows are sorted by end date descending", func(t *testing.T) {
		statements := []entity.Statement{
			{EndDate: "2021-09-25"},
			{EndDate: "2023-09-30"},
			{EndDate: "2022-09-24"},
		}

		got := usecase.BuildTable(statements)

		require.Len(t, got.Rows, 3)
		assert.Equal(t, "2023-09-30", got.Rows[0][5])
		assert.Equal(t, "2022-09-24", got.Rows[1][5])
		assert.Equal(t, "2021-09-25", got.Rows[2][5])
	})

	t.Run("empty input yields empty table with same schema", func(t *testing.T) {
		got := usecase.BuildTable(nil)

		assert.Equal(t, usecase.FinancialColumns, got.Columns)
		assert.True(t, got.Empty())
	})
}
