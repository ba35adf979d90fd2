package query

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutor_Run(t *testing.T) {
	tests := []struct {
		name        string
		request     CommandRequest
		wantColumns []string
		wantRows    []Row
	}{
		{
			name:        "no operations returns input",
			request:     CommandRequest{},
			wantColumns: []string{"name", "brand", "price", "rating"},
			wantRows:    phones().Rows,
		},
		{
			name:        "empty expression is skipped",
			request:     CommandRequest{"where": ""},
			wantColumns: []string{"name", "brand", "price", "rating"},
			wantRows:    phones().Rows,
		},
		{
			name:        "where brand",
			request:     CommandRequest{"where": "brand=xiaomi"},
			wantColumns: []string{"name", "brand", "price", "rating"},
			wantRows:    phones().Rows[:2],
		},
		{
			name:        "where price",
			request:     CommandRequest{"where": "price>300"},
			wantColumns: []string{"name", "brand", "price", "rating"},
			wantRows:    phones().Rows[2:],
		},
		{
			name:        "aggregate min",
			request:     CommandRequest{"aggregate": "rating=min"},
			wantColumns: []string{"min"},
			wantRows:    []Row{{"min": 4.4}},
		},
		{
			name:        "where then aggregate",
			request:     CommandRequest{"where": "brand=xiaomi", "aggregate": "rating=min"},
			wantColumns: []string{"min"},
			wantRows:    []Row{{"min": 4.4}},
		},
		{
			name:        "filter to nothing then avg",
			request:     CommandRequest{"where": "brand=foo", "aggregate": "rating=avg"},
			wantColumns: []string{"avg"},
			wantRows:    []Row{{"avg": 0.0}},
		},
		{
			name:        "unregistered request is ignored",
			request:     CommandRequest{"limit": "1=1"},
			wantColumns: []string{"name", "brand", "price", "rating"},
			wantRows:    phones().Rows,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExecutor(NewRegistry(nil), nil)
			got, err := e.Run(tt.request, phones())
			require.NoError(t, err)
			assert.Equal(t, tt.wantColumns, got.Columns)
			assert.Equal(t, tt.wantRows, got.Rows)
		})
	}
}

func TestExecutor_AverageRating(t *testing.T) {
	got, err := NewExecutor(NewRegistry(nil), nil).Run(CommandRequest{"aggregate": "rating=avg"}, phones())
	require.NoError(t, err)
	require.Len(t, got.Rows, 1)
	assert.InDelta(t, 4.675, got.Rows[0]["avg"], 1e-9)
}

func TestExecutor_RegistryOrder(t *testing.T) {
	r := NewRegistry(nil)
	require.True(t, r.Register("head", head(1)))
	e := NewExecutor(r, nil)

	// head is registered after where, so it only sees the filtered rows
	got, err := e.Run(CommandRequest{"head": "n=1", "where": "price>300"}, phones())
	require.NoError(t, err)
	assert.Equal(t, []string{"iphone 15 pro"}, names(got))
}

func TestExecutor_ReplacedOperation(t *testing.T) {
	r := NewRegistry(nil)
	require.True(t, r.Replace(OperationWhere, head(2)))

	got, err := NewExecutor(r, nil).Run(CommandRequest{"where": "anything=1"}, phones())
	require.NoError(t, err)
	assert.Equal(t, []string{"redmi note 12", "poco x5 pro"}, names(got))
}

func TestExecutor_Errors(t *testing.T) {
	tests := []struct {
		name    string
		request CommandRequest
		check   func(t *testing.T, err error)
	}{
		{
			name:    "invalid expression",
			request: CommandRequest{"where": "brand"},
			check: func(t *testing.T, err error) {
				var invalid *InvalidExpressionError
				assert.True(t, errors.As(err, &invalid))
			},
		},
		{
			name:    "where type mismatch",
			request: CommandRequest{"where": "price>foo"},
			check: func(t *testing.T, err error) {
				var valid *ValidCommandError
				require.True(t, errors.As(err, &valid))
				assert.Contains(t, err.Error(), "Check the type - '>' not supported between instances of 'float' and 'str'")
			},
		},
		{
			name:    "where missing column",
			request: CommandRequest{"where": "foo>15"},
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "Missing parameter - 'foo'")
			},
		},
		{
			name:    "where missing column with string value",
			request: CommandRequest{"where": "foo>bar"},
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "Missing parameter - 'foo'")
			},
		},
		{
			name:    "aggregate unknown function",
			request: CommandRequest{"aggregate": "price>foo"},
			check: func(t *testing.T, err error) {
				var unknown *UnknownAggregateFunctionError
				assert.True(t, errors.As(err, &unknown))
				assert.Contains(t, err.Error(), "Check the type")
			},
		},
		{
			name:    "aggregate missing column",
			request: CommandRequest{"aggregate": "foo>min"},
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "Missing parameter - 'foo'")
			},
		},
		{
			name:    "where fails before aggregate runs",
			request: CommandRequest{"where": "foo>1", "aggregate": "bar=avg"},
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "'foo'")
			},
		},
		{
			name:    "min after filtering to nothing",
			request: CommandRequest{"where": "brand=foo", "aggregate": "rating=min"},
			check: func(t *testing.T, err error) {
				var unknown *UnknownYetError
				assert.True(t, errors.As(err, &unknown))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewExecutor(NewRegistry(nil), nil).Run(tt.request, phones())
			require.Error(t, err)
			assert.Nil(t, got)
			tt.check(t, err)
		})
	}
}

func TestExecutor_InputUntouchedOnFailure(t *testing.T) {
	ds := phones()
	_, err := NewExecutor(NewRegistry(nil), nil).Run(CommandRequest{"where": "brand=xiaomi", "aggregate": "name=avg"}, ds)
	require.Error(t, err)
	assert.Equal(t, phones(), ds)
}

func TestExecutor_LogsStages(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	_, err := NewExecutor(NewRegistry(logger), logger).Run(CommandRequest{"where": "brand=xiaomi"}, phones())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "operation=where")
	assert.Contains(t, buf.String(), "rows_in=4")
	assert.Contains(t, buf.String(), "rows_out=2")
}
