package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestPersonRepository_Ping(t *testing.T) {
	testErr := errors.New("connection refused")

	testCases := []struct {
		name        string
		mockSetup   func(mock sqlmock.Sqlmock)
		expectedErr error
	}{
		{
			name: "Success Store reachable",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT 1`)).
					WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
			},
			expectedErr: nil,
		},
		{
			name: "Error Store unreachable",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT 1`)).
					WillReturnError(testErr)
			},
			expectedErr: testErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewPersonRepository(db)

			tc.mockSetup(mock)

			err := repo.Ping(context.Background())

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPersonRepository_GetDistinctInstitutions(t *testing.T) {
	excludeID := "u1"
	testErr := errors.New("test error")

	queryWithoutFilter := `SELECT DISTINCT "institution" FROM "people" WHERE id <> $1 AND institution IS NOT NULL AND institution <> '' ORDER BY institution ASC LIMIT $2`
	queryWithFilter := `SELECT DISTINCT "institution" FROM "people" WHERE id <> $1 AND institution IS NOT NULL AND institution <> '' AND institution ILIKE $2 ORDER BY institution ASC LIMIT $3`

	testCases := []struct {
		name          string
		filter        string
		mockSetup     func(mock sqlmock.Sqlmock)
		expected      []string
		expectedError error
	}{
		{
			name:   "Success No filter",
			filter: "",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(queryWithoutFilter)).
					WithArgs(excludeID, 20).
					WillReturnRows(sqlmock.NewRows([]string{"institution"}).
						AddRow("MIT").
						AddRow("Yale"))
			},
			expected: []string{"MIT", "Yale"},
		},
		{
			name:   "Success Case-insensitive substring filter",
			filter: "mit",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(queryWithFilter)).
					WithArgs(excludeID, "%mit%", 20).
					WillReturnRows(sqlmock.NewRows([]string{"institution"}).
						AddRow("MIT"))
			},
			expected: []string{"MIT"},
		},
		{
			name:   "Success LIKE metacharacters in filter are escaped",
			filter: `100%_tech\u`,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(queryWithFilter)).
					WithArgs(excludeID, `%100\%\_tech\\u%`, 20).
					WillReturnRows(sqlmock.NewRows([]string{"institution"}))
			},
			expected: nil,
		},
		{
			name:   "Success No match yields empty result",
			filter: "nowhere",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(queryWithFilter)).
					WithArgs(excludeID, "%nowhere%", 20).
					WillReturnRows(sqlmock.NewRows([]string{"institution"}))
			},
			expected: nil,
		},
		{
			name:   "Error Generic database error",
			filter: "",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(queryWithoutFilter)).
					WithArgs(excludeID, 20).
					WillReturnError(testErr)
			},
			expectedError: testErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewPersonRepository(db)

			tc.mockSetup(mock)

			institutions, err := repo.GetDistinctInstitutions(context.Background(), tc.filter, excludeID, 20)

			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, institutions)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEscapeLikePattern(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"mit", "mit"},
		{"100%", `100\%`},
		{"a_b", `a\_b`},
		{`a\b`, `a\\b`},
		{`%_\`, `\%\_\\`},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, escapeLikePattern(tc.input))
	}
}
